package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/input"
	"github.com/vovakirdan/tui-dino/internal/runner"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// statusLines is the number of rows under the picture taken by the status
// line.
const statusLines = 1

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	alertStyle  = colorStyles[core.ColorAlert]
)

// Options configure a terminal session.
type Options struct {
	Config config.DinoConfig
	Audio  dino.Audio

	// Seed drives spawning. Zero picks a time based seed.
	Seed int64

	// TickRate is the host tick frequency. Zero uses the world's target FPS.
	TickRate int

	// Width and Height are the initial terminal size in cells.
	Width  int
	Height int

	// Clock overrides the frame clock. Nil uses the system clock.
	Clock runner.Clock

	// ScreenshotDir receives plain text dumps of the picture on ctrl+s.
	// Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game   *dino.Game
	canvas *Canvas
	screen *core.Screen
	queue  *runner.TickQueue
	clock  runner.Clock
	hold   *input.Hold
	keys   KeyMap
	help   help.Model

	tickRate int
	shotDir  string
	width    int
	height   int
	quitting bool
}

// NewModel creates the game, loads its assets and starts the attract loop.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	def := core.DefaultConfig()
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.World.TargetFPS
	}
	if opts.TickRate <= 0 {
		opts.TickRate = def.TickRate
	}
	if opts.Clock == nil {
		opts.Clock = runner.NewSystemClock()
	}
	if opts.Width <= 0 {
		opts.Width = def.ScreenW
	}
	if opts.Height <= 0 {
		opts.Height = def.ScreenH
	}

	queue := &runner.TickQueue{}
	canvas := NewCanvas(cfg.World.Width, cfg.World.Height)
	game := dino.New(cfg, dino.Deps{
		Loader:    assets.NewLoader(sprite.Default),
		Renderer:  canvas,
		Audio:     opts.Audio,
		Clock:     opts.Clock,
		Scheduler: queue,
		Rand:      rand.New(rand.NewSource(opts.Seed)),
	})
	if err := game.Start(false); err != nil {
		return Model{}, err
	}

	m := Model{
		game:     game,
		canvas:   canvas,
		screen:   core.NewScreen(1, 1),
		queue:    queue,
		clock:    opts.Clock,
		hold:     input.NewHold(cfg.Controls.DuckHold),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: opts.TickRate,
		shotDir:  opts.ScreenshotDir,
	}
	m.resize(opts.Width, opts.Height)
	return m, nil
}

// Game returns the hosted game.
func (m Model) Game() *dino.Game {
	return m.game
}

// Canvas returns the renderer the game paints into.
func (m Model) Canvas() *Canvas {
	return m.canvas
}

// Init starts the host tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()

	case key.Matches(msg, m.keys.Step):
		m.game.StepFrame()

	case key.Matches(msg, m.keys.FPS):
		m.game.ToggleFPS()

	case key.Matches(msg, m.keys.Shot):
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	default:
		switch input.FromKeyName(msg.String()) {
		case core.InputJump:
			m.game.OnInput(core.InputJump)
		case core.InputDuck:
			// Terminals repeat the key instead of reporting a release.
			if in := m.hold.Press(m.clock.Now()); in != core.InputNone {
				m.game.OnInput(in)
			}
		}
	}

	return m, nil
}

// handleTick releases an expired duck and fires the frame requests queued
// by the runner.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if in := m.hold.Expire(m.clock.Now()); in != core.InputNone {
		m.game.OnInput(in)
	}
	m.queue.Fire()
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current picture as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}

	m.canvas.Flush(m.screen)
	name := fmt.Sprintf("dino_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// resize fits the canvas into the terminal minus the status line and help.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.canvas.Fit(width, height-statusLines-footer)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Flush(m.screen)
	picture := RenderScreen(m.screen)
	body := lipgloss.JoinVertical(lipgloss.Left, picture, m.status())
	body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m Model) status() string {
	g := m.game
	switch {
	case g.Runner().Paused():
		return alertStyle.Render(fmt.Sprintf("paused at frame %d, n steps", g.Runner().FrameCount()))
	case g.GameOver():
		return alertStyle.Render("press space to play again")
	case !g.Running():
		return statusStyle.Render("press space to start")
	default:
		return statusStyle.Render(fmt.Sprintf("level %d", g.Level()))
	}
}

// Run starts the Bubble Tea program with a new game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.game.Stop()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
