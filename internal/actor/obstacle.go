package actor

import "github.com/vovakirdan/tui-dino/internal/sprite"

// CactusVariants are the ground obstacle sprites, picked uniformly at spawn.
var CactusVariants = []string{
	sprite.Cactus,
	sprite.CactusDouble,
	sprite.CactusDoubleB,
	sprite.CactusTriple,
}

// Cactus is the ground obstacle payload.
type Cactus struct {
	Variant string
}

// NewCactus creates a ground obstacle showing variant.
func NewCactus(sheet *Sheet, variant string, speed float64) *Actor {
	a := newActor(KindCactus, sheet, true)
	a.Cactus = &Cactus{Variant: variant}
	a.Speed = speed
	a.SetSprite(variant)
	return a
}

// Cloud is the decorative background payload.
type Cloud struct {
	SpeedMod float64
}

// NewCloud creates a cloud drifting at speed*speedMod. Clouds never carry
// a mask.
func NewCloud(sheet *Sheet, speed, speedMod float64) *Actor {
	a := newActor(KindCloud, sheet, false)
	a.Cloud = &Cloud{SpeedMod: speedMod}
	a.Speed = speed
	a.SetSprite(sprite.Cloud)
	return a
}
