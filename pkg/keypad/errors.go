package keypad

import (
	"errors"
	"fmt"
)

var (
	// ErrLayout is matched by every *LayoutError.
	ErrLayout = errors.New("invalid keypad layout")

	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
)

// LayoutError reports a keypad layout that cannot be used: a malformed grid,
// or a pair of buttons that cannot be routed between without crossing the gap
// under any ordering of moves. It is a construction-time failure.
type LayoutError struct {
	Keypad string
	From   Button
	To     Button
	Reason string
}

func (e *LayoutError) Error() string {
	if e.From != 0 || e.To != 0 {
		return fmt.Sprintf("keypad %q: %q -> %q: %s", e.Keypad, e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("keypad %q: %s", e.Keypad, e.Reason)
}

// Is makes errors.Is(err, ErrLayout) succeed.
func (e *LayoutError) Is(target error) bool {
	return target == ErrLayout
}

// InvalidInputError reports a caller mistake: a code containing a symbol
// that is not on the numeric keypad, a negative chain depth, or a keystroke
// sequence that cannot be replayed.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) succeed.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidDepth(depth int) error {
	return &InvalidInputError{
		Field:  "chain depth",
		Value:  fmt.Sprint(depth),
		Reason: "must not be negative",
	}
}
