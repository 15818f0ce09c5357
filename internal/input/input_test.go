package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
)

func TestFromKeyCode(t *testing.T) {
	tests := []struct {
		code     int
		pressed  bool
		expected core.Input
	}{
		{KeyUp, true, core.InputJump},
		{KeySpace, true, core.InputJump},
		{KeyUp, false, core.InputNone},
		{KeySpace, false, core.InputNone},
		{KeyDown, true, core.InputDuck},
		{KeyDown, false, core.InputStopDuck},
		{65, true, core.InputNone},
		{65, false, core.InputNone},
	}

	for _, tt := range tests {
		if got := FromKeyCode(tt.code, tt.pressed); got != tt.expected {
			t.Errorf("FromKeyCode(%d, %v) = %v, expected %v", tt.code, tt.pressed, got, tt.expected)
		}
	}
}

func TestFromKeyName(t *testing.T) {
	tests := []struct {
		name     string
		expected core.Input
	}{
		{"space", core.InputJump},
		{" ", core.InputJump},
		{"up", core.InputJump},
		{"ArrowUp", core.InputJump},
		{"down", core.InputDuck},
		{"j", core.InputDuck},
		{"q", core.InputNone},
		{"", core.InputNone},
	}

	for _, tt := range tests {
		if got := FromKeyName(tt.name); got != tt.expected {
			t.Errorf("FromKeyName(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestFromTouch(t *testing.T) {
	tests := []struct {
		touches  int
		expected core.Input
	}{
		{0, core.InputNone},
		{1, core.InputJump},
		{2, core.InputDuck},
		{3, core.InputNone},
	}

	for _, tt := range tests {
		if got := FromTouchStart(tt.touches); got != tt.expected {
			t.Errorf("FromTouchStart(%d) = %v, expected %v", tt.touches, got, tt.expected)
		}
	}
	if FromTouchEnd() != core.InputStopDuck {
		t.Errorf("FromTouchEnd() = %v, expected stop-duck", FromTouchEnd())
	}
}

func TestHold(t *testing.T) {
	ms := time.Millisecond
	h := NewHold(150 * ms)

	if got := h.Expire(0); got != core.InputNone {
		t.Errorf("Expire before press = %v", got)
	}
	if got := h.Press(0); got != core.InputDuck {
		t.Errorf("first Press = %v, expected duck", got)
	}
	if got := h.Press(100 * ms); got != core.InputNone {
		t.Errorf("repeat Press = %v, expected none", got)
	}
	if got := h.Expire(200 * ms); got != core.InputNone {
		t.Errorf("Expire within extended hold = %v, expected none", got)
	}
	if got := h.Expire(250 * ms); got != core.InputStopDuck {
		t.Errorf("Expire after hold = %v, expected stop-duck", got)
	}
	if h.Held() {
		t.Error("Held() = true after release")
	}
	if got := h.Expire(300 * ms); got != core.InputNone {
		t.Errorf("second Expire = %v, expected none", got)
	}
	if got := h.Press(400 * ms); got != core.InputDuck {
		t.Errorf("Press after release = %v, expected duck", got)
	}
}
