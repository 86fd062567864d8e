package keypad

import (
	"fmt"
	"strings"
	"sync"
)

// Keypad is a fixed grid of buttons with exactly one gap cell that a pointer
// may never rest on, not even in passing.
//
// A Keypad is immutable after construction and safe for concurrent use. All
// minimal paths between every ordered pair of buttons are computed by
// NewKeypad and cached on the keypad, so a Keypad that constructs
// successfully is guaranteed to route between any two of its buttons.
type Keypad struct {
	name    string
	rows    []string
	buttons []Button
	coords  map[Button]Coord
	gap     Coord
	paths   map[buttonPair][]Path
}

type buttonPair struct {
	from Button
	to   Button
}

// NewKeypad builds a keypad from a text grid, one string per row. Each
// character is a button symbol except a single space, which marks the gap.
//
// Contract:
//   - all rows have the same width;
//   - exactly one cell is the gap;
//   - no symbol appears twice.
//
// Any violation, or a pair of buttons that cannot be reached from each other
// without crossing the gap, is reported as a *LayoutError.
func NewKeypad(name string, rows ...string) (*Keypad, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &LayoutError{Keypad: name, Reason: "empty grid"}
	}

	kp := &Keypad{
		name:   name,
		rows:   append([]string(nil), rows...),
		coords: make(map[Button]Coord),
		paths:  make(map[buttonPair][]Path),
	}

	gaps := 0
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, &LayoutError{Keypad: name, Reason: fmt.Sprintf("row %d has width %d, want %d", r, len(row), width)}
		}
		for c := 0; c < len(row); c++ {
			at := Coord{Row: r, Col: c}
			if row[c] == ' ' {
				gaps++
				kp.gap = at
				continue
			}
			b := Button(row[c])
			if _, dup := kp.coords[b]; dup {
				return nil, &LayoutError{Keypad: name, From: b, Reason: "duplicate button"}
			}
			kp.coords[b] = at
			kp.buttons = append(kp.buttons, b)
		}
	}
	if gaps != 1 {
		return nil, &LayoutError{Keypad: name, Reason: fmt.Sprintf("grid has %d gap cells, want exactly 1", gaps)}
	}

	for _, from := range kp.buttons {
		for _, to := range kp.buttons {
			ps := enumeratePaths(kp.gap, kp.coords[from], kp.coords[to])
			if len(ps) == 0 {
				return nil, &LayoutError{Keypad: name, From: from, To: to, Reason: "every minimal route crosses the gap"}
			}
			kp.paths[buttonPair{from, to}] = ps
		}
	}

	return kp, nil
}

// MustKeypad is like NewKeypad but panics on error. It is meant for layouts
// fixed at compile time.
func MustKeypad(name string, rows ...string) *Keypad {
	kp, err := NewKeypad(name, rows...)
	if err != nil {
		panic(err)
	}
	return kp
}

var (
	numericKeypad = sync.OnceValue(func() *Keypad {
		return MustKeypad("numeric",
			"789",
			"456",
			"123",
			" 0A",
		)
	})
	directionalKeypad = sync.OnceValue(func() *Keypad {
		return MustKeypad("directional",
			" ^A",
			"<v>",
		)
	})
)

// Numeric returns the door keypad the code is finally typed on.
func Numeric() *Keypad { return numericKeypad() }

// Directional returns the arrow keypad every operator in the chain uses.
func Directional() *Keypad { return directionalKeypad() }

// Name returns the name the keypad was built with.
func (kp *Keypad) Name() string { return kp.name }

// Buttons returns the keypad's buttons in row-major order.
func (kp *Keypad) Buttons() []Button {
	return append([]Button(nil), kp.buttons...)
}

// Has reports whether b is a button of this keypad.
func (kp *Keypad) Has(b Button) bool {
	_, ok := kp.coords[b]
	return ok
}

// CoordinateOf returns the cell of button b.
func (kp *Keypad) CoordinateOf(b Button) (Coord, bool) {
	c, ok := kp.coords[b]
	return c, ok
}

// MustCoordinateOf is like CoordinateOf but panics for a button that is not on
// the keypad.
func (kp *Keypad) MustCoordinateOf(b Button) Coord {
	c, ok := kp.coords[b]
	if !ok {
		panic(fmt.Sprintf("keypad %q has no button %q", kp.name, b))
	}
	return c
}

// ButtonAt returns the button at c. The second result is false for the gap
// and for cells outside the grid.
func (kp *Keypad) ButtonAt(c Coord) (Button, bool) {
	if c.Row < 0 || c.Row >= len(kp.rows) || c.Col < 0 || c.Col >= len(kp.rows[c.Row]) {
		return 0, false
	}
	if kp.IsGap(c.Row, c.Col) {
		return 0, false
	}
	return Button(kp.rows[c.Row][c.Col]), true
}

// IsGap reports whether (row, col) is the forbidden cell.
func (kp *Keypad) IsGap(row, col int) bool {
	return kp.gap == Coord{Row: row, Col: col}
}

// Gap returns the forbidden cell.
func (kp *Keypad) Gap() Coord { return kp.gap }

// Paths returns every minimal path from one button to another; all of them
// have the same length. The result is shared and must not be modified. It is
// nil if either button is not on the keypad.
func (kp *Keypad) Paths(from, to Button) []Path {
	return kp.paths[buttonPair{from, to}]
}

func (kp *Keypad) String() string {
	return fmt.Sprintf("%s[%s]", kp.name, strings.Join(kp.rows, "|"))
}

// enumeratePaths lists every interleaving of the vertical and horizontal moves
// between two cells whose prefixes never land on the gap. Vertical moves are
// tried first, so the output order is deterministic.
func enumeratePaths(gap, from, to Coord) []Path {
	var (
		out   []Path
		moves Path
	)

	var walk func(at Coord)
	walk = func(at Coord) {
		if at == gap {
			return
		}
		if at == to {
			out = append(out, append(Path{}, moves...))
			return
		}
		if at.Row != to.Row {
			m := Down
			if to.Row < at.Row {
				m = Up
			}
			moves = append(moves, m)
			walk(at.Step(m))
			moves = moves[:len(moves)-1]
		}
		if at.Col != to.Col {
			m := Right
			if to.Col < at.Col {
				m = Left
			}
			moves = append(moves, m)
			walk(at.Step(m))
			moves = moves[:len(moves)-1]
		}
	}
	walk(from)

	return out
}
