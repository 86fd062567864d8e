package keypad

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// CostTable memoises the minimum number of human presses needed to perform
// one button transition at the bottom of a chain of directional operators.
//
// The recurrence is
//
//	cost(0, x, y) = 1
//	cost(d, x, y) = min over minimal paths p from x to y of
//	                Σ cost(d-1, a, b) for consecutive (a, b) in "A" + p
//
// where p is rendered as directional keystrokes ending in Activate. A value
// only depends on the depth and the two buttons, never on the code being
// typed, so one table serves every code and every query.
//
// Thread safety: a CostTable is safe for concurrent use. Misses are computed
// outside the lock and stored idempotently; two goroutines racing on the same
// key compute the same value.
type CostTable struct {
	directional *Keypad
	numeric     *Keypad

	mu          sync.RWMutex
	memo        map[costKey]int64
	numericMemo map[costKey]int64

	hits   atomic.Int64
	misses atomic.Int64
}

type costKey struct {
	depth int
	from  Button
	to    Button
}

// TableStats is a snapshot of a CostTable's memo.
type TableStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// saturated marks a cost that no longer fits in 64 bits.
const saturated = math.MaxInt64

// NewCostTable returns an empty table over the standard numeric and
// directional keypads.
func NewCostTable() *CostTable {
	return newCostTable(Numeric(), Directional())
}

// NewCostTableFor returns an empty table over custom layouts. The numeric
// keypad needs Activate, where its pointer starts; the directional keypad
// needs the four arrows and Activate. A missing button is a *LayoutError.
func NewCostTableFor(numeric, directional *Keypad) (*CostTable, error) {
	if numeric == nil || directional == nil {
		return nil, &LayoutError{Reason: "nil keypad"}
	}
	if err := requireButtons(numeric, Activate); err != nil {
		return nil, err
	}
	if err := requireButtons(directional, Up.Button(), Down.Button(), Left.Button(), Right.Button(), Activate); err != nil {
		return nil, err
	}
	return newCostTable(numeric, directional), nil
}

func requireButtons(kp *Keypad, want ...Button) error {
	for _, b := range want {
		if !kp.Has(b) {
			return &LayoutError{Keypad: kp.Name(), Reason: fmt.Sprintf("missing %q button", b)}
		}
	}
	return nil
}

func newCostTable(numeric, directional *Keypad) *CostTable {
	return &CostTable{
		directional: directional,
		numeric:     numeric,
		memo:        make(map[costKey]int64),
		numericMemo: make(map[costKey]int64),
	}
}

// Cost returns cost(depth, from, to) for two directional buttons.
func (t *CostTable) Cost(depth int, from, to Button) (int64, error) {
	if depth < 0 {
		return 0, invalidDepth(depth)
	}
	for _, b := range []Button{from, to} {
		if !t.directional.Has(b) {
			return 0, &InvalidInputError{Field: "button", Value: b.String(), Reason: "not on the directional keypad"}
		}
	}
	return t.cost(depth, from, to), nil
}

// Stats reports the number of memoised entries and the hit/miss counters.
func (t *CostTable) Stats() TableStats {
	t.mu.RLock()
	n := len(t.memo) + len(t.numericMemo)
	t.mu.RUnlock()
	return TableStats{Entries: n, Hits: t.hits.Load(), Misses: t.misses.Load()}
}

func (s TableStats) String() string {
	return fmt.Sprintf("entries=%d hits=%d misses=%d", s.Entries, s.Hits, s.Misses)
}

func (t *CostTable) cost(depth int, from, to Button) int64 {
	if depth == 0 {
		return 1
	}
	k := costKey{depth, from, to}
	if v, ok := t.load(t.memo, k); ok {
		return v
	}

	best := int64(saturated)
	for _, p := range t.directional.Paths(from, to) {
		best = min(best, t.pathCost(depth-1, p))
	}

	t.store(t.memo, k, best)
	return best
}

// numericCost is the cost of moving the numeric pointer from one button to
// another and pressing it, with depth directional operators above it.
func (t *CostTable) numericCost(depth int, from, to Button) int64 {
	k := costKey{depth, from, to}
	if v, ok := t.load(t.numericMemo, k); ok {
		return v
	}

	best := int64(saturated)
	for _, p := range t.numeric.Paths(from, to) {
		best = min(best, t.pathCost(depth, p))
	}

	t.store(t.numericMemo, k, best)
	return best
}

// pathCost is the cost of typing the keystrokes of p at the given depth,
// starting from a pointer resting on Activate.
func (t *CostTable) pathCost(depth int, p Path) int64 {
	var sum int64
	prev := Activate
	for _, m := range p {
		sum = addSaturating(sum, t.cost(depth, prev, m.Button()))
		prev = m.Button()
	}
	return addSaturating(sum, t.cost(depth, prev, Activate))
}

// codeCost sums the numeric transitions of code, starting with the pointer on
// start.
func (t *CostTable) codeCost(depth int, start Button, code string) int64 {
	var sum int64
	prev := start
	for i := 0; i < len(code); i++ {
		next := Button(code[i])
		sum = addSaturating(sum, t.numericCost(depth, prev, next))
		prev = next
	}
	return sum
}

func (t *CostTable) load(m map[costKey]int64, k costKey) (int64, bool) {
	t.mu.RLock()
	v, ok := m[k]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return v, ok
}

func (t *CostTable) store(m map[costKey]int64, k costKey, v int64) {
	t.mu.Lock()
	m[k] = v
	t.mu.Unlock()
}

func addSaturating(a, b int64) int64 {
	if a > saturated-b {
		return saturated
	}
	return a + b
}
