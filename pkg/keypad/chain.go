package keypad

import (
	"fmt"
	"iter"
	"sync"
)

// RobotChain describes a stack of directional-keypad operators between the
// human and the numeric keypad.
//
// With depth n the human types on a directional keypad whose presses steer
// the n-th robot; each robot steers the next one down on its own directional
// keypad, and the last one steers the robot standing at the numeric keypad.
// A chain of depth 0 therefore has the human steering the numeric robot
// directly.
//
// A RobotChain is immutable and safe for concurrent use; its cost table may be
// shared with other chains.
type RobotChain struct {
	depth int
	table *CostTable
}

// ChainOption configures NewRobotChain.
type ChainOption func(*RobotChain)

// WithCostTable makes the chain read and fill t instead of a private table.
// Chains of different depths can share one table.
func WithCostTable(t *CostTable) ChainOption {
	return func(c *RobotChain) { c.table = t }
}

// NewRobotChain returns a chain of count directional operators. A negative
// count is an *InvalidInputError.
func NewRobotChain(count int, opts ...ChainOption) (*RobotChain, error) {
	if count < 0 {
		return nil, invalidDepth(count)
	}
	c := &RobotChain{depth: count}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = NewCostTable()
	}
	return c, nil
}

// Depth returns the number of directional operators in the chain.
func (c *RobotChain) Depth() int { return c.depth }

// Table returns the cost table the chain evaluates against.
func (c *RobotChain) Table() *CostTable { return c.table }

// ButtonCount returns the minimum number of presses the human makes to type
// code on the numeric keypad. The numeric pointer starts on Activate.
func (c *RobotChain) ButtonCount(code string) (int64, error) {
	if err := c.Validate(code); err != nil {
		return 0, err
	}
	n := c.table.codeCost(c.depth, Activate, code)
	if n == saturated {
		return 0, &InvalidInputError{Field: "code", Value: code, Reason: "press count overflows 64 bits at this chain depth"}
	}
	return n, nil
}

// ButtonPresses returns every minimal keystroke sequence for code. The
// sequence is lazy and can be ranged over any number of times; each string it
// yields has length ButtonCount(code).
func (c *RobotChain) ButtonPresses(code string) (iter.Seq[string], error) {
	if _, err := c.ButtonCount(code); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		c.table.expandCode(c.depth, Activate, code, yield)
	}, nil
}

// Validate reports an *InvalidInputError if code has a symbol that is not on
// the chain's numeric keypad.
func (c *RobotChain) Validate(code string) error {
	for i := 0; i < len(code); i++ {
		if !c.table.numeric.Has(Button(code[i])) {
			return &InvalidInputError{Field: "code", Value: code, Reason: fmt.Sprintf("symbol %q is not on the numeric keypad", code[i:i+1])}
		}
	}
	return nil
}

var sharedTable = sync.OnceValue(NewCostTable)

// ButtonCount returns the minimum number of human presses needed to type code
// through a chain of depth directional operators. It evaluates against a
// process-wide cost table, so repeated calls get cheaper.
func ButtonCount(code string, depth int) (int64, error) {
	chain, err := NewRobotChain(depth, WithCostTable(sharedTable()))
	if err != nil {
		return 0, err
	}
	return chain.ButtonCount(code)
}

// ButtonPresses is the package-level form of RobotChain.ButtonPresses.
func ButtonPresses(code string, chain *RobotChain) (iter.Seq[string], error) {
	return chain.ButtonPresses(code)
}
