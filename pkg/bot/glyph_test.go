package bot

import (
	"math"
	"testing"
)

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		position int
		want     string
	}{
		{1, "①"},
		{2, "②"},
		{10, "⑩"},
		{11, "11."},
		{0, "0."},
	}
	for _, tt := range tests {
		if got := GlyphFor(tt.position); got != tt.want {
			t.Errorf("GlyphFor(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestPositionFor(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOk bool
	}{
		{"1", 1, true},
		{" 3 ", 3, true},
		{"10", 10, true},
		{"15", 15, true},
		{"①", 1, true},
		{"⑩", 10, true},
		// "0" is a selection (an out-of-range one), not free text.
		{"0", 0, true},
		{"007", 7, true},
		{"99999999999999999999999", math.MaxInt, true},
		// Only bare digit runs count; signs are free text.
		{"-2", 0, false},
		{"+3", 0, false},
		{"", 0, false},
		{"hola", 0, false},
		{"1a", 0, false},
	}
	for _, tt := range tests {
		got, ok := PositionFor(tt.text)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("PositionFor(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOk)
		}
	}
}
