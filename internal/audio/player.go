// Package audio plays the game's synthesized sound effects.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dino/internal/audio/sfx"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player mixes the effects named in sfx into the system speaker. Sounds requested before
// Load has finished are dropped.
type Player struct {
	volume  float64
	logger  *log.Logger
	mixer   *beep.Mixer
	buffers map[string]*beep.Buffer
	loaded  atomic.Bool
	once    sync.Once
}

// NewPlayer creates an unloaded player. volume is linear in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	return &Player{
		volume: volume,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// prepare renders every effect into a buffer.
func (p *Player) prepare() {
	p.buffers = make(map[string]*beep.Buffer, len(sfx.All))
	for _, name := range sfx.All {
		buf := beep.NewBuffer(format)
		buf.Append(newVolume(synthesize(name, sampleRate), p.volume))
		p.buffers[name] = buf
	}
}

// Load renders the effects and opens the speaker. It only does work the
// first time it is called.
func (p *Player) Load() error {
	var err error
	p.once.Do(func() {
		p.prepare()
		if initErr := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); initErr != nil {
			err = fmt.Errorf("audio: cannot open speaker: %w", initErr)
			return
		}
		speaker.Play(p.mixer)
		p.loaded.Store(true)
	})
	return err
}

// LoadAsync loads on a new goroutine and logs a warning on failure, leaving
// the player silent.
func (p *Player) LoadAsync() {
	go func() {
		if err := p.Load(); err != nil && p.logger != nil {
			p.logger.Warn("audio disabled", "error", err)
		}
	}()
}

// Loaded reports whether sounds will be heard.
func (p *Player) Loaded() bool {
	return p.loaded.Load()
}

// PlaySound starts the named effect without waiting for it. Unknown names
// and calls before Load completes are ignored.
func (p *Player) PlaySound(name string) {
	if !p.loaded.Load() {
		return
	}
	buf, ok := p.buffers[name]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops every playing effect.
func (p *Player) Close() {
	if !p.loaded.Load() {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
