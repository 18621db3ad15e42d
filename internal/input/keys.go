package input

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyNames uses browser KeyboardEvent names (key and code) so binding tables
// read the same as web keymaps. Single letters and digits are handled in LookupKey.
var keyNames = map[string]int32{
	"ArrowUp":      rl.KeyUp,
	"ArrowDown":    rl.KeyDown,
	"ArrowLeft":    rl.KeyLeft,
	"ArrowRight":   rl.KeyRight,
	"Space":        rl.KeySpace,
	" ":            rl.KeySpace,
	"Enter":        rl.KeyEnter,
	"Tab":          rl.KeyTab,
	"Escape":       rl.KeyEscape,
	"Backspace":    rl.KeyBackspace,
	"ShiftLeft":    rl.KeyLeftShift,
	"ShiftRight":   rl.KeyRightShift,
	"Shift":        rl.KeyLeftShift,
	"ControlLeft":  rl.KeyLeftControl,
	"ControlRight": rl.KeyRightControl,
	"Control":      rl.KeyLeftControl,
	"AltLeft":      rl.KeyLeftAlt,
	"AltRight":     rl.KeyRightAlt,
	"Alt":          rl.KeyLeftAlt,
}

// LookupKey resolves a key name to a raylib key code. Letters are case
// insensitive because raylib reports physical keys ("w" and "W" are both KeyW).
func LookupKey(name string) (int32, bool) {
	if code, ok := keyNames[name]; ok {
		return code, true
	}
	// "KeyW" / "Digit1" style codes
	if rest, ok := strings.CutPrefix(name, "Key"); ok && len(rest) == 1 {
		name = rest
	} else if rest, ok := strings.CutPrefix(name, "Digit"); ok && len(rest) == 1 {
		name = rest
	}
	if len(name) != 1 {
		return 0, false
	}
	c := name[0]
	switch {
	case c >= 'a' && c <= 'z':
		return rl.KeyA + int32(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return rl.KeyA + int32(c-'A'), true
	case c >= '0' && c <= '9':
		return rl.KeyZero + int32(c-'0'), true
	}
	return 0, false
}
