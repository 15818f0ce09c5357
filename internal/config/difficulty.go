package config

import "math"

// LevelUp ratchets the settings for the level just reached.
// Levels 5-7 add one to the scroll speed. From level 8 the scroll speed grows
// by 10% (rounded up), cacti spawn 2% more often (rounded down), and every
// even level speeds up the leg animation until it reaches 3 frames.
// Levels 4 and below change nothing.
func (s *Settings) LevelUp(level int) {
	switch {
	case level > 4 && level < 8:
		s.BgSpeed++
		s.BirdSpeed = s.BgSpeed * 0.8
	case level > 7:
		s.BgSpeed = math.Ceil(s.BgSpeed * 1.1)
		s.BirdSpeed = s.BgSpeed * 0.9
		s.CactiSpawnRate = int(math.Floor(float64(s.CactiSpawnRate) * 0.98))
		if level%2 == 0 && s.DinoLegsRate > 3 {
			s.DinoLegsRate--
		}
	}
}
