package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drewjcooper/AdventOfCode-sub001/internal/parallel"
	"github.com/drewjcooper/AdventOfCode-sub001/internal/puzzle"
	"github.com/drewjcooper/AdventOfCode-sub001/pkg/keypad"
)

// robots returns the --robots flag if it was given, else the configured depth.
func (a *app) robots(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("robots") {
		return cmd.Flags().GetInt("robots")
	}
	return a.cfg.Robots, nil
}

func addRobotsFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("robots", "r", 0, "number of robot-operated directional keypads (default from config)")
}

func (a *app) countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count CODE...",
		Short: "Print the minimum number of human presses for each code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := a.robots(cmd)
			if err != nil {
				return err
			}
			chain, err := keypad.NewRobotChain(depth)
			if err != nil {
				return err
			}
			for _, code := range args {
				n, err := chain.ButtonCount(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s: %d\n", code, n)
			}
			a.logger.Debug("codes counted",
				zap.Int("robots", depth),
				zap.Stringer("memo", chain.Table().Stats()))
			return nil
		},
	}
	addRobotsFlag(cmd)
	return cmd
}

func (a *app) sequencesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "sequences CODE",
		Short: "Print minimal keystroke sequences for a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := a.robots(cmd)
			if err != nil {
				return err
			}
			chain, err := keypad.NewRobotChain(depth)
			if err != nil {
				return err
			}
			seq, err := chain.ButtonPresses(args[0])
			if err != nil {
				return err
			}
			printed := 0
			for keys := range seq {
				if limit > 0 && printed == limit {
					break
				}
				fmt.Fprintln(a.out, keys)
				printed++
			}
			a.logger.Debug("sequences printed", zap.Int("count", printed), zap.Int("robots", depth))
			return nil
		},
	}
	addRobotsFlag(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 1, "print at most this many sequences (0 for all)")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "verify CODE...",
		Short: "Reconstruct minimal sequences and replay them through the chain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := a.robots(cmd)
			if err != nil {
				return err
			}
			chain, err := keypad.NewRobotChain(depth)
			if err != nil {
				return err
			}
			for _, code := range args {
				checked, err := verify(chain, code, limit)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s: ok (%d sequences checked)\n", code, checked)
			}
			return nil
		},
	}
	addRobotsFlag(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "check at most this many sequences per code (0 for all)")
	return cmd
}

// verify checks that reconstructed sequences have the minimal length and type
// the code when replayed.
func verify(chain *keypad.RobotChain, code string, limit int) (int, error) {
	want, err := chain.ButtonCount(code)
	if err != nil {
		return 0, err
	}
	seq, err := chain.ButtonPresses(code)
	if err != nil {
		return 0, err
	}
	checked := 0
	for keys := range seq {
		if limit > 0 && checked == limit {
			break
		}
		if int64(len(keys)) != want {
			return checked, fmt.Errorf("%s: sequence %q has %d presses, want %d", code, keys, len(keys), want)
		}
		typed, err := chain.Replay(keys)
		if err != nil {
			return checked, fmt.Errorf("%s: replay %q: %w", code, keys, err)
		}
		if typed != code {
			return checked, fmt.Errorf("%s: sequence %q types %q", code, keys, typed)
		}
		checked++
	}
	return checked, nil
}

func (a *app) solveCmd() *cobra.Command {
	var (
		input   string
		asJSON  bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Sum code complexities for every configured part",
		Long: `solve reads one door code per line and prints, for each configured part,
the sum over all codes of (minimum presses × numeric part of the code).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") {
				input = a.cfg.Input
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			codes, err := a.readCodes(input)
			if err != nil {
				return err
			}

			pool := parallel.NewWorkerPool(workers)
			defer pool.Shutdown()
			solver := puzzle.NewSolver(pool, a.logger)

			results := make([]partResult, 0, len(a.cfg.Parts))
			for _, part := range a.cfg.Parts {
				res, err := solver.Solve(cmd.Context(), codes, part.Robots)
				if err != nil {
					return fmt.Errorf("%s: %w", part.Name, err)
				}
				results = append(results, partResult{Name: part.Name, Robots: part.Robots, Total: res.Total})
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(a.out, "%s (%d robots): %d\n", r.Name, r.Robots, r.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "puzzle input file, - for stdin (default from config)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent evaluations, 0 for one per CPU (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

type partResult struct {
	Name   string `json:"name"`
	Robots int    `json:"robots"`
	Total  int64  `json:"total"`
}

func (a *app) readCodes(path string) ([]string, error) {
	var r io.Reader = a.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return puzzle.ParseCodes(r)
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := keypad.GetVersionInfo(gitCommit, buildDate)
			fmt.Fprintf(a.out, "keypad %s (go %s)\n", info.Version, info.GoVersion)
			if info.GitCommit != "" {
				fmt.Fprintf(a.out, "commit %s built %s\n", info.GitCommit, info.BuildDate)
			}
			return nil
		},
	}
}
