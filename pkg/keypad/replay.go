package keypad

import "fmt"

// Replay feeds the human's keystrokes through a chain of depth directional
// operators over the standard keypads and returns what ends up typed on the
// numeric keypad.
//
// Every pointer starts on Activate. A keystroke that moves any pointer off
// the grid or onto a gap, or a symbol that is not a directional button, is an
// *InvalidInputError.
func Replay(keys string, depth int) (string, error) {
	if depth < 0 {
		return "", invalidDepth(depth)
	}
	return replay(Numeric(), Directional(), keys, depth)
}

// Replay is like the package-level Replay but drives the chain's own
// keypad layouts.
func (c *RobotChain) Replay(keys string) (string, error) {
	return replay(c.table.numeric, c.table.directional, keys, c.depth)
}

func replay(numeric, directional *Keypad, keys string, depth int) (string, error) {
	var err error
	for level := depth; level > 0; level-- {
		if keys, err = drive(directional, keys); err != nil {
			return "", fmt.Errorf("directional operator %d: %w", level, err)
		}
	}
	typed, err := drive(numeric, keys)
	if err != nil {
		return "", fmt.Errorf("numeric operator: %w", err)
	}
	return typed, nil
}

// drive moves a pointer over kp according to directional keystrokes and
// returns the buttons it pressed.
func drive(kp *Keypad, keys string) (string, error) {
	at := kp.MustCoordinateOf(Activate)
	out := make([]byte, 0, len(keys)/2)
	for i := 0; i < len(keys); i++ {
		b := Button(keys[i])
		if b == Activate {
			pressed, _ := kp.ButtonAt(at)
			out = append(out, byte(pressed))
			continue
		}
		m, ok := MoveOf(b)
		if !ok {
			return "", &InvalidInputError{Field: "keystroke", Value: b.String(), Reason: fmt.Sprintf("position %d is not a directional button", i)}
		}
		at = at.Step(m)
		if _, ok := kp.ButtonAt(at); !ok {
			return "", &InvalidInputError{Field: "keystroke", Value: b.String(), Reason: fmt.Sprintf("position %d moves the %s pointer off its buttons", i, kp.Name())}
		}
	}
	return string(out), nil
}
