// Package puzzle is the glue between puzzle input and the keypad solver:
// it reads door codes, evaluates them concurrently and sums their
// complexities.
package puzzle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/drewjcooper/AdventOfCode-sub001/internal/parallel"
	"github.com/drewjcooper/AdventOfCode-sub001/pkg/keypad"
)

// ParseCodes reads one code per line. Blank lines are skipped and
// surrounding whitespace is trimmed; the codes themselves are validated by
// the solver.
func ParseCodes(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		codes = append(codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read codes: %w", err)
	}
	return codes, nil
}

// NumericPart returns the number formed by the digits of code, ignoring
// leading zeroes and every non-digit. A code without digits is worth 0.
func NumericPart(code string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, code)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Complexity is the press count of a code multiplied by its numeric part.
func Complexity(code string, presses int64) int64 {
	return presses * NumericPart(code)
}

// CodeResult is the outcome for one code.
type CodeResult struct {
	Code       string
	Presses    int64
	Complexity int64
}

// Result is the outcome for a whole input at one chain depth.
type Result struct {
	Robots int
	Codes  []CodeResult
	Total  int64
}

// Solver evaluates codes on a worker pool against one shared cost table.
type Solver struct {
	pool   *parallel.WorkerPool
	table  *keypad.CostTable
	logger *zap.Logger
}

// NewSolver returns a solver that uses pool for concurrency. The cost table
// persists across calls, so later depths reuse the memo of earlier ones.
func NewSolver(pool *parallel.WorkerPool, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{
		pool:   pool,
		table:  keypad.NewCostTable(),
		logger: logger,
	}
}

// Table returns the shared cost table.
func (s *Solver) Table() *keypad.CostTable { return s.table }

// Solve evaluates every code through a chain of robots directional
// operators. All codes are validated before any is evaluated.
func (s *Solver) Solve(ctx context.Context, codes []string, robots int) (Result, error) {
	chain, err := keypad.NewRobotChain(robots, keypad.WithCostTable(s.table))
	if err != nil {
		return Result{}, err
	}
	for _, code := range codes {
		if err := chain.Validate(code); err != nil {
			return Result{}, err
		}
	}

	start := time.Now()
	results, err := parallel.Map(ctx, s.pool, codes, func(ctx context.Context, code string) (CodeResult, error) {
		if err := ctx.Err(); err != nil {
			return CodeResult{}, err
		}
		n, err := chain.ButtonCount(code)
		if err != nil {
			return CodeResult{}, fmt.Errorf("code %q: %w", code, err)
		}
		s.logger.Debug("code evaluated",
			zap.String("code", code),
			zap.Int("robots", robots),
			zap.Int64("presses", n))
		return CodeResult{Code: code, Presses: n, Complexity: Complexity(code, n)}, nil
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Robots: robots, Codes: results}
	for _, r := range results {
		res.Total += r.Complexity
	}

	stats := s.table.Stats()
	s.logger.Info("input solved",
		zap.Int("robots", robots),
		zap.Int("codes", len(codes)),
		zap.Int64("total_complexity", res.Total),
		zap.Int("memo_entries", stats.Entries),
		zap.Int64("memo_hits", stats.Hits),
		zap.Int64("memo_misses", stats.Misses),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
