package keypad

import (
	"errors"
	"testing"
)

func TestReplay(t *testing.T) {
	tests := []struct {
		keys  string
		depth int
		want  string
	}{
		{"<A^A>^^AvvvA", 0, "029A"},
		{"<A^A^^>AvvvA", 0, "029A"},
		{"v<<A>>^A<A>A<AA>vA^Av<AAA>^A", 1, "029A"},
		{"<vA<AA>>^AvAA<^A>A<v<A>>^AvA^A<vA>^A<v<A>^A>AAvA^A<v<A>A>^AAAvA<^A>A", 2, "029A"},
		{"", 3, ""},
		{"A", 0, "A"},
		{"AAA", 2, "AAA"},
	}
	for _, tt := range tests {
		got, err := Replay(tt.keys, tt.depth)
		if err != nil {
			t.Fatalf("Replay(%q, %d) error: %v", tt.keys, tt.depth, err)
		}
		if got != tt.want {
			t.Errorf("Replay(%q, %d) = %q, want %q", tt.keys, tt.depth, got, tt.want)
		}
	}
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		depth int
	}{
		{"negative depth", "A", -1},
		{"not a directional button", "<7A", 0},
		// Two lefts from A land on the numeric gap.
		{"numeric gap", "<<A", 0},
		// From A on the directional keypad, two lefts reach the gap.
		{"directional gap", "<<A", 1},
		{"off the grid", ">A", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replay(tt.keys, tt.depth)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Replay(%q, %d): got %v, want ErrInvalidInput", tt.keys, tt.depth, err)
			}
		})
	}
}
