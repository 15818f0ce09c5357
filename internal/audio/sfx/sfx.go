// Package sfx names the game's sound effects. It has no audio device
// dependencies so the game and its headless frontends can use it.
package sfx

// Sound names understood by PlaySound.
const (
	Jump     = "jump"
	LevelUp  = "level-up"
	GameOver = "game-over"
)

// All lists every effect.
var All = []string{Jump, LevelUp, GameOver}

// Silent discards every sound.
type Silent struct{}

// PlaySound does nothing.
func (Silent) PlaySound(string) {}
