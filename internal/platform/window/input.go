package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/input"
)

// keyCodes maps the game keys onto browser key codes.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeySpace:     input.KeySpace,
	ebiten.KeyArrowUp:   input.KeyUp,
	ebiten.KeyArrowDown: input.KeyDown,
}

// pollInputs collects this tick's game inputs from keys and touches in
// the order a player would expect: releases first, then presses.
func pollInputs() []core.Input {
	var out []core.Input
	add := func(in core.Input) {
		if in != core.InputNone {
			out = append(out, in)
		}
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustReleased(key) {
			add(input.FromKeyCode(code, false))
		}
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		add(input.FromTouchEnd())
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			add(input.FromKeyCode(code, true))
		}
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		add(input.FromTouchStart(len(ebiten.AppendTouchIDs(nil))))
	}
	return out
}

// command is a frontend control outside the game's own inputs.
type command int

const (
	commandNone command = iota
	commandPause
	commandStep
	commandFPS
	commandQuit
)

var commandKeys = []struct {
	key ebiten.Key
	cmd command
}{
	{ebiten.KeyP, commandPause},
	{ebiten.KeyN, commandStep},
	{ebiten.KeyF, commandFPS},
	{ebiten.KeyEscape, commandQuit},
}

func pollCommands() []command {
	var out []command
	for _, ck := range commandKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			out = append(out, ck.cmd)
		}
	}
	return out
}
