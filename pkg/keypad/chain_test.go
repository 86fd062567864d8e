package keypad

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestButtonCount_Scenarios(t *testing.T) {
	tests := []struct {
		depth int
		code  string
		want  int64
	}{
		{2, "029A", 68},
		{2, "980A", 60},
		{2, "179A", 68},
		{2, "456A", 64},
		{2, "379A", 64},
		{3, "26", 102},
		{3, "35", 83},
		{3, "53", 99},
		{3, "62", 84},
		{4, "26", 252},
		{4, "35", 209},
		{4, "53", 247},
		{4, "62", 210},
		{0, "029A", 12},
		{1, "029A", 28},
		{0, "0", 2},
		{1, "0", 8},
		{2, "0", 18},
		{2, "", 0},
	}
	for _, tt := range tests {
		got, err := ButtonCount(tt.code, tt.depth)
		if err != nil {
			t.Fatalf("ButtonCount(%q, %d) error: %v", tt.code, tt.depth, err)
		}
		if got != tt.want {
			t.Errorf("ButtonCount(%q, %d) = %d, want %d", tt.code, tt.depth, got, tt.want)
		}
	}
}

func TestButtonCount_GrowsWithDepth(t *testing.T) {
	want := []int64{12, 28, 68, 164, 404, 998, 2482, 6166}
	chain := func(depth int) *RobotChain {
		c, err := NewRobotChain(depth)
		if err != nil {
			t.Fatalf("NewRobotChain(%d): %v", depth, err)
		}
		return c
	}
	for depth, w := range want {
		got, err := chain(depth).ButtonCount("029A")
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if got != w {
			t.Errorf("depth %d: got %d, want %d", depth, got, w)
		}
	}
}

func TestButtonCount_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		depth int
	}{
		{"negative depth", "029A", -1},
		{"directional symbol", "0<9A", 2},
		{"lower case", "029a", 2},
		{"gap", "0 9A", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ButtonCount(tt.code, tt.depth)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("got %v, want ErrInvalidInput", err)
			}
			var ie *InvalidInputError
			if !errors.As(err, &ie) {
				t.Fatalf("got %T, want *InvalidInputError", err)
			}
		})
	}
}

func TestNewRobotChain(t *testing.T) {
	if _, err := NewRobotChain(-3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewRobotChain(-3): got %v, want ErrInvalidInput", err)
	}

	c, err := NewRobotChain(0)
	if err != nil {
		t.Fatalf("NewRobotChain(0): %v", err)
	}
	if c.Depth() != 0 || c.Table() == nil {
		t.Errorf("NewRobotChain(0) = depth %d table %v", c.Depth(), c.Table())
	}

	shared := NewCostTable()
	a, _ := NewRobotChain(2, WithCostTable(shared))
	b, _ := NewRobotChain(3, WithCostTable(shared))
	if a.Table() != shared || b.Table() != shared {
		t.Errorf("WithCostTable was not applied")
	}
}

func TestButtonCount_Overflow(t *testing.T) {
	_, err := ButtonCount("7A", 200)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected overflow to be reported as invalid input, got %v", err)
	}
}

func TestRobotChain_CustomLayout(t *testing.T) {
	table, err := NewCostTableFor(MustKeypad("pad", "12", " A"), Directional())
	if err != nil {
		t.Fatalf("NewCostTableFor: %v", err)
	}

	for depth, want := range []int64{7, 19} {
		chain, err := NewRobotChain(depth, WithCostTable(table))
		if err != nil {
			t.Fatalf("NewRobotChain(%d): %v", depth, err)
		}
		got, err := chain.ButtonCount("12A")
		if err != nil {
			t.Fatalf("depth %d: ButtonCount: %v", depth, err)
		}
		if got != want {
			t.Errorf("depth %d: ButtonCount(12A) = %d, want %d", depth, got, want)
		}

		seq, err := chain.ButtonPresses("12A")
		if err != nil {
			t.Fatalf("depth %d: ButtonPresses: %v", depth, err)
		}
		n := 0
		for keys := range seq {
			n++
			if int64(len(keys)) != want {
				t.Errorf("depth %d: %q has %d presses, want %d", depth, keys, len(keys), want)
			}
			typed, err := chain.Replay(keys)
			if err != nil {
				t.Fatalf("depth %d: Replay(%q): %v", depth, keys, err)
			}
			if typed != "12A" {
				t.Errorf("depth %d: Replay(%q) = %q, want 12A", depth, keys, typed)
			}
		}
		if n == 0 {
			t.Errorf("depth %d: no sequences", depth)
		}
	}

	chain, _ := NewRobotChain(0, WithCostTable(table))
	if _, err := chain.ButtonCount("3"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ButtonCount(3) on custom pad: got %v, want ErrInvalidInput", err)
	}
	// The same keystrokes mean something else on the standard numeric keypad.
	if got, _ := Replay("^<A>AvA", 0); got != "23A" {
		t.Errorf("Replay on standard keypad = %q, want 23A", got)
	}
}

func TestValidate_ReportsRawByte(t *testing.T) {
	chain, _ := NewRobotChain(0)
	err := chain.Validate("0\xffA")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	msg := err.Error()
	if !utf8.ValidString(msg) || !strings.Contains(msg, `symbol "\xff"`) {
		t.Errorf("error message %q does not quote the offending byte", msg)
	}
}
