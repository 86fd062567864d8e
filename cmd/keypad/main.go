// Command keypad computes the shortest keystroke sequences for typing door
// codes through a chain of robot-operated keypads.
//
// Usage:
//
//	keypad count --robots 2 029A 980A
//	keypad sequences --robots 1 --limit 3 029A
//	keypad verify --robots 2 029A
//	keypad solve --config keypad.yaml --input codes.txt
//	keypad version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drewjcooper/AdventOfCode-sub001/internal/config"
	"github.com/drewjcooper/AdventOfCode-sub001/internal/logging"
)

// Set by the linker: -ldflags "-X main.gitCommit=... -X main.buildDate=...".
var (
	gitCommit string
	buildDate string
)

// app carries the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer
	in     io.Reader

	verbose    bool
	logFormat  string
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out, errOut io.Writer, in io.Reader) *cobra.Command {
	a := &app{out: out, errOut: errOut, in: in, logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "keypad",
		Short: "Shortest keystrokes through a chain of robot keypads",
		Long: `keypad computes how many buttons a human has to press to type a code on a
numeric door keypad when the keypad is operated by a robot, which is steered
from a directional keypad operated by another robot, and so on.

--robots is the number of robot-operated directional keypads between the
human and the numeric keypad's robot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, format := cfg.Logging.Level, cfg.Logging.Format
			if a.verbose {
				level = "debug"
			}
			if cmd.Flags().Changed("log-format") {
				format = a.logFormat
			}
			logger, err := logging.New(level, format, a.errOut)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(in)

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log format: console or json")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		a.countCmd(),
		a.sequencesCmd(),
		a.verifyCmd(),
		a.solveCmd(),
		a.versionCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr, os.Stdin).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
