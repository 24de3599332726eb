package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Circled digit glyphs used to number menu options in WhatsApp messages.
var glyphs = []string{"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩"}

// GlyphFor returns the circled glyph for a 1-based menu position.
// Positions past ⑩ fall back to a plain "11." style prefix.
func GlyphFor(position int) string {
	if position >= 1 && position <= len(glyphs) {
		return glyphs[position-1]
	}
	return fmt.Sprintf("%d.", position)
}

// PositionFor parses a user reply into a 1-based menu position. It accepts
// digit-only strings ("3") and the circled glyphs themselves, since some
// clients let users tap-to-copy the menu line. Any digit run counts as a
// selection, even "0"; range checking is the caller's job, so out-of-range
// numbers get the invalid-option reply instead of the free-text fallback.
func PositionFor(text string) (int, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}
	for i, g := range glyphs {
		if trimmed == g {
			return i + 1, true
		}
	}
	if !isDigits(trimmed) {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		// Digit run too long for an int. Still a selection, never in range.
		return math.MaxInt, true
	}
	return n, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
