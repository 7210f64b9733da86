// Package tui provides the Bubble Tea front end for watersort: the puzzle
// screen, the level picker, solve history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/config"
)

// TickMsg refreshes the solve clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick every interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigMsg carries a config file reload.
type ConfigMsg config.Update

// waitForConfig blocks on the next config reload. It returns nil once the
// watcher closes the channel.
func waitForConfig(updates <-chan config.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigMsg(u)
	}
}
