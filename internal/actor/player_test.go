package actor

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/sprite"
)

func newTestPlayer() *Actor {
	p := NewPlayer(NewSheet(sprite.Default, nil), 6, 10, 0.5)
	p.X = 25
	p.SetY(146)
	return p
}

func TestPlayerStartsGrounded(t *testing.T) {
	p := newTestPlayer()
	if !p.Grounded() {
		t.Error("new player is not grounded")
	}
	if p.Sprite() != sprite.DinoLeftLeg {
		t.Errorf("Sprite() = %q, expected %q", p.Sprite(), sprite.DinoLeftLeg)
	}
	if p.Y() != 146-43 {
		t.Errorf("Y() = %v, expected %v", p.Y(), 146-43)
	}
}

func TestPlayerJumpTrajectory(t *testing.T) {
	p := newTestPlayer()
	if !p.Jump() {
		t.Fatal("Jump() = false on the ground")
	}
	if p.Player.Velocity != -10 {
		t.Fatalf("Velocity = %v, expected -10", p.Player.Velocity)
	}

	for k := 1; k <= 39; k++ {
		p.Update()
		fk := float64(k)
		expected := -10*fk + 0.25*fk*(fk+1)
		if p.Player.RelativeY != expected {
			t.Fatalf("frame %d: RelativeY = %v, expected %v", k, p.Player.RelativeY, expected)
		}
		if p.Player.RelativeY > 0 {
			t.Fatalf("frame %d: RelativeY went below ground", k)
		}
		if k == 1 && p.Sprite() != sprite.Dino {
			t.Errorf("airborne sprite = %q, expected %q", p.Sprite(), sprite.Dino)
		}
	}

	// Exactly back on the ground but still moving down.
	if !p.Player.Falling {
		t.Error("frame 39: velocity cleared before overshooting the ground")
	}

	p.Update()
	if p.Player.RelativeY != 0 || p.Player.Falling || p.Player.Velocity != 0 {
		t.Errorf("frame 40: RelativeY=%v Falling=%v Velocity=%v, expected landed",
			p.Player.RelativeY, p.Player.Falling, p.Player.Velocity)
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Update()

	if p.Jump() {
		t.Error("Jump() = true while airborne")
	}
	if p.Player.Velocity != -9.5 {
		t.Errorf("Velocity = %v after rejected jump, expected -9.5", p.Player.Velocity)
	}
}

func TestPlayerLegCadence(t *testing.T) {
	p := newTestPlayer()
	for frame := 1; frame <= 24; frame++ {
		p.Update()
		expected := sprite.DinoLeftLeg
		if ((frame-1)/6)%2 == 1 {
			expected = sprite.DinoRightLeg
		}
		if p.Sprite() != expected {
			t.Errorf("frame %d: Sprite() = %q, expected %q", frame, p.Sprite(), expected)
		}
	}
}

func TestPlayerDuck(t *testing.T) {
	p := newTestPlayer()
	p.Duck(true)
	p.Update()

	if p.Sprite() != sprite.DinoDuckLeftLeg {
		t.Errorf("Sprite() = %q, expected %q", p.Sprite(), sprite.DinoDuckLeftLeg)
	}
	if p.Width != 55 || p.Height != 26 {
		t.Errorf("ducking size = %vx%v, expected 55x26", p.Width, p.Height)
	}
	if p.Y() != 146-26 {
		t.Errorf("ducking Y() = %v, expected %v", p.Y(), 146-26)
	}

	p.Duck(false)
	p.Update()
	if p.Sprite() != sprite.DinoLeftLeg {
		t.Errorf("Sprite() after stop-duck = %q, expected %q", p.Sprite(), sprite.DinoLeftLeg)
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer()
	p.Duck(true)
	for i := 0; i < 8; i++ {
		p.Update()
	}
	p.Jump()
	p.Update()

	p.Reset()
	pl := p.Player
	if pl.RelativeY != 0 || pl.Falling || pl.Ducking || pl.Leg != LegLeft || pl.LegFrames != 0 {
		t.Errorf("Reset() left state %+v", *pl)
	}
	if pl.BaseY != 146 || pl.LegsRate != 6 {
		t.Errorf("Reset() changed BaseY=%v LegsRate=%v", pl.BaseY, pl.LegsRate)
	}
	if p.Sprite() != sprite.DinoLeftLeg {
		t.Errorf("Sprite() = %q after Reset", p.Sprite())
	}
}
