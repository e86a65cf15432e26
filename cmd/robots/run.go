package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"robots/internal/config"
	"robots/internal/logging"
	"robots/internal/observe"
	"robots/internal/world"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Read instruction lines from a file or stdin",
		Long: `Read instruction lines from file, or from stdin when file is omitted or "-",
and print each robot's final state once its command line has been applied.

Examples:
  robots run input.txt
  printf '5 5\n1 2 N\nLLFF\n' | robots run
  robots run --format json --draw input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "text", "output format (text, json, yaml)")
	flags.Bool("draw", false, "draw the grid after each released robot (text format)")
	flags.Int("max-coordinate", 0, "largest accepted grid or placement coordinate")
	flags.Int("max-length", 0, "longest accepted instruction line")
	if err := bindFlags(a.v, flags, map[string]string{
		"output.format":          "format",
		"output.draw":            "draw",
		"grid.max_coordinate":    "max-coordinate",
		"instruction.max_length": "max-length",
	}); err != nil {
		panic(err)
	}
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	logger, err := logging.New(a.errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	format, err := observe.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	input, closeInput, err := a.openInput(args)
	if err != nil {
		return err
	}
	defer closeInput()

	report := observe.NewReport(a.out, format, cfg.Output.Draw)
	w := world.New(
		world.WithObserver(observe.NewMulti(observe.NewSlog(logger), report)),
		world.WithMaxCoordinate(cfg.Grid.MaxCoordinate),
		world.WithMaxLength(cfg.Instruction.MaxLength),
		world.WithMaxNavigateLength(cfg.Navigate.MaxLength),
	)
	logger.Debug("session started", "session", w.Session())

	if err := w.ReadLines(cmd.Context(), input); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return report.Close()
}

func (a *app) openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return a.in, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
