package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"robots/internal/config"
)

// app carries the streams and settings shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "robots",
		Short: "Drive robots around a bounded grid from line instructions",
		Long: `robots reads instructions one line at a time:

  5 5        grid size, sent once
  1 2 N      place a robot at x y facing N, E, S or W
  LLFF       turn left, right or move forward, then release the robot

The final position of every released robot is printed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.readConfig()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .robots.yml, can also use ROBOTS_CONFIG_FILE)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	if err := bindFlags(a.v, flags, map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
	}); err != nil {
		panic(err)
	}

	root.AddCommand(newRunCmd(a), newVersionCmd())
	return root
}

// readConfig picks the config file from --config, then ROBOTS_CONFIG_FILE,
// then .robots.yml in the working directory. Only an explicitly named file
// has to exist.
func (a *app) readConfig() error {
	explicit := true
	switch env := os.Getenv(config.EnvPrefix + "_CONFIG_FILE"); {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
	case env != "":
		a.v.SetConfigFile(env)
	default:
		explicit = false
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".robots")
	}

	if err := a.v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); missing && !explicit {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags ties each config key to the flag that overrides it.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("no flag %q for %s", name, key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
