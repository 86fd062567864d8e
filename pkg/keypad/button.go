package keypad

// Button is a single labelled key. Buttons are identified by their symbol:
// '0'..'9' and 'A' on the numeric keypad, '^', 'v', '<', '>' and 'A' on the
// directional keypad.
type Button byte

// Activate is the button that presses whatever the pointer one level down is
// aimed at. Every pointer rests on it between actions.
const Activate Button = 'A'

// String returns the button symbol.
func (b Button) String() string {
	return string(rune(b))
}

// Coord is a cell of a keypad grid. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// Step returns the cell one unit move away.
func (c Coord) Step(m Move) Coord {
	switch m {
	case Up:
		c.Row--
	case Down:
		c.Row++
	case Left:
		c.Col--
	case Right:
		c.Col++
	}
	return c
}

// Move is a unit step of a pointer. Each move is produced by pressing the
// matching arrow on the directional keypad one level up.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// Button returns the directional button that produces the move.
func (m Move) Button() Button {
	switch m {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

func (m Move) String() string {
	return m.Button().String()
}

// MoveOf returns the move produced by a directional button. The second result
// is false for Activate and for anything that is not an arrow.
func MoveOf(b Button) (Move, bool) {
	switch b {
	case '^':
		return Up, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	case '>':
		return Right, true
	}
	return 0, false
}

// Path is one way of travelling between two buttons: a sequence of moves that
// is always followed by an implicit press of Activate.
type Path []Move

// Len is the number of presses the path costs one level up, including the
// trailing Activate.
func (p Path) Len() int {
	return len(p) + 1
}

// AppendButtons appends the directional buttons that perform the path,
// trailing Activate included, to dst.
func (p Path) AppendButtons(dst []byte) []byte {
	for _, m := range p {
		dst = append(dst, byte(m.Button()))
	}
	return append(dst, byte(Activate))
}

// Buttons renders the path as the directional keystrokes that perform it,
// e.g. "<^A".
func (p Path) Buttons() string {
	return string(p.AppendButtons(make([]byte, 0, p.Len())))
}

func (p Path) String() string {
	return p.Buttons()
}
