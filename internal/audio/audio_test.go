package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-dino/internal/audio/sfx"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSynthesizedSoundsAreBounded(t *testing.T) {
	for _, name := range sfx.All {
		s := synthesize(name, sampleRate)
		if s == nil {
			t.Fatalf("synthesize(%q) = nil", name)
		}
		samples := drain(s)
		if len(samples) == 0 {
			t.Errorf("%s produced no samples", name)
		}
		if d := sampleRate.D(len(samples)); d > time.Second {
			t.Errorf("%s lasts %v, expected well under a second", name, d)
		}
		for i, smp := range samples {
			if math.Abs(smp[0]) > 1 || math.Abs(smp[1]) > 1 || math.IsNaN(smp[0]) {
				t.Fatalf("%s sample %d = %v out of range", name, i, smp)
			}
		}
	}

	if synthesize("moo", sampleRate) != nil {
		t.Error("synthesize(unknown) != nil")
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := newOscillator(440, 440, 100*time.Millisecond, WaveSine, sampleRate)
	if got := len(drain(osc)); got != sampleRate.N(100*time.Millisecond) {
		t.Errorf("oscillator produced %d samples, expected %d", got, sampleRate.N(100*time.Millisecond))
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 50 * time.Millisecond
	s := newEnvelope(newOscillator(0, 0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)
	samples := drain(s)

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at start of attack", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if mid != 1 {
		t.Errorf("sustain sample = %v, expected 1", mid)
	}
	if last := samples[len(samples)-1][0]; last >= mid || last <= 0 {
		t.Errorf("last sample = %v, expected a faded positive value", last)
	}
}

func TestNewVolume(t *testing.T) {
	half := drain(newVolume(newOscillator(0, 0, 10*time.Millisecond, WaveSquare, sampleRate), 0.5))
	if math.Abs(half[0][0]-0.5) > 1e-9 {
		t.Errorf("half volume sample = %v, expected 0.5", half[0][0])
	}
	mute := drain(newVolume(newOscillator(0, 0, 10*time.Millisecond, WaveSquare, sampleRate), 0))
	if mute[0][0] != 0 {
		t.Errorf("muted sample = %v, expected 0", mute[0][0])
	}
}

func TestPlaySoundBeforeLoadIsDropped(t *testing.T) {
	p := NewPlayer(1, nil)
	p.PlaySound(sfx.Jump)
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before load, expected 0", p.mixer.Len())
	}
	if p.Loaded() {
		t.Error("Loaded() = true before Load")
	}
}

func TestPlaySoundAfterPrepare(t *testing.T) {
	p := NewPlayer(1, nil)
	p.prepare()
	p.loaded.Store(true)

	p.PlaySound(sfx.LevelUp)
	p.PlaySound("moo")
	if p.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers, expected 1", p.mixer.Len())
	}
	for _, name := range sfx.All {
		if p.buffers[name].Len() == 0 {
			t.Errorf("%s buffer is empty", name)
		}
	}
}
