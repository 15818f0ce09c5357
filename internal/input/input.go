// Package input translates raw device events into game inputs.
package input

import (
	"strings"
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Browser-style key codes.
const (
	KeySpace = 32
	KeyUp    = 38
	KeyDown  = 40
)

// FromKeyCode maps a key press or release. Jump fires on press only; duck
// starts on press and ends on release.
func FromKeyCode(code int, pressed bool) core.Input {
	switch code {
	case KeyUp, KeySpace:
		if pressed {
			return core.InputJump
		}
	case KeyDown:
		if pressed {
			return core.InputDuck
		}
		return core.InputStopDuck
	}
	return core.InputNone
}

// FromKeyName maps a named key press, as reported by terminals and window
// toolkits, onto the same bindings as FromKeyCode.
func FromKeyName(name string) core.Input {
	switch strings.ToLower(name) {
	case "space", " ", "up", "arrowup", "w", "k":
		return core.InputJump
	case "down", "arrowdown", "s", "j":
		return core.InputDuck
	}
	return core.InputNone
}

// FromTouchStart maps the number of active touch points when a new touch
// begins: one finger jumps, two duck.
func FromTouchStart(touches int) core.Input {
	switch touches {
	case 1:
		return core.InputJump
	case 2:
		return core.InputDuck
	}
	return core.InputNone
}

// FromTouchEnd maps any touch ending.
func FromTouchEnd() core.Input {
	return core.InputStopDuck
}

// Hold turns repeated presses of a key into a press and a release for
// devices that never report releases. The release fires once the key has
// not repeated for the hold duration.
type Hold struct {
	duration time.Duration
	until    time.Duration
	held     bool
}

// NewHold creates a Hold that releases after d without a repeat.
func NewHold(d time.Duration) *Hold {
	return &Hold{duration: d}
}

// Press records a press at now. It returns InputDuck for the first press and
// InputNone for repeats.
func (h *Hold) Press(now time.Duration) core.Input {
	h.until = now + h.duration
	if h.held {
		return core.InputNone
	}
	h.held = true
	return core.InputDuck
}

// Expire returns InputStopDuck once the hold has lapsed, and InputNone
// otherwise.
func (h *Hold) Expire(now time.Duration) core.Input {
	if !h.held || now < h.until {
		return core.InputNone
	}
	h.held = false
	return core.InputStopDuck
}

// Held reports whether a press is active.
func (h *Hold) Held() bool {
	return h.held
}
