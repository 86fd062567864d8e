package keypad

// MinimalPaths returns the directional paths from one button to another whose
// cost, with depth-1 operators above them, equals cost(depth, from, to). Only
// these paths can appear in a minimal keystroke sequence. For depth 0 every
// press costs the same, so all paths are returned.
func (t *CostTable) MinimalPaths(depth int, from, to Button) []Path {
	all := t.directional.Paths(from, to)
	if depth <= 0 {
		return all
	}
	best := t.cost(depth, from, to)
	return t.filterPaths(all, depth-1, best)
}

func (t *CostTable) minimalNumericPaths(depth int, from, to Button) []Path {
	return t.filterPaths(t.numeric.Paths(from, to), depth, t.numericCost(depth, from, to))
}

func (t *CostTable) filterPaths(all []Path, depth int, best int64) []Path {
	var keep []Path
	for _, p := range all {
		if t.pathCost(depth, p) == best {
			keep = append(keep, p)
		}
	}
	return keep
}

// expandCode yields every minimal human keystroke string that types code. It
// stops early when yield returns false and reports whether it ran to the end.
//
// Sequences are assembled one level at a time: the code becomes the
// keystrokes of the operator directly above the numeric keypad, those become
// the keystrokes of the operator above it, and so on up to the human. At each
// level only paths already known to be minimal are expanded.
func (t *CostTable) expandCode(depth int, start Button, code string, yield func(string) bool) bool {
	var next func(i int, prev Button, acc []byte) bool
	next = func(i int, prev Button, acc []byte) bool {
		if i == len(code) {
			return t.expandKeys(depth, string(acc), yield)
		}
		to := Button(code[i])
		for _, p := range t.minimalNumericPaths(depth, prev, to) {
			if !next(i+1, to, p.AppendButtons(acc)) {
				return false
			}
		}
		return true
	}
	return next(0, start, nil)
}

// expandKeys yields the minimal human keystrokes that make the operator at
// depth type keys on its directional keypad.
func (t *CostTable) expandKeys(depth int, keys string, yield func(string) bool) bool {
	if depth == 0 {
		return yield(keys)
	}

	var next func(i int, prev Button, acc []byte) bool
	next = func(i int, prev Button, acc []byte) bool {
		if i == len(keys) {
			return t.expandKeys(depth-1, string(acc), yield)
		}
		to := Button(keys[i])
		for _, p := range t.MinimalPaths(depth, prev, to) {
			if !next(i+1, to, p.AppendButtons(acc)) {
				return false
			}
		}
		return true
	}
	return next(0, Activate, nil)
}
