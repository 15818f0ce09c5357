// Package tui is the terminal frontend: a Bubble Tea program that drives the
// game's frame loop, paints it with half-block characters and serves it over
// SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is the host tick that fires the game's queued frame requests.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a TickMsg after one host
// interval.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
