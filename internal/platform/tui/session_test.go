package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/levels"
)

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	items := []levels.Level{twoPourLevel()}
	m := NewSessionModel(items, DefaultOptions(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if !strings.Contains(m.View(), "Two Pour") {
		t.Fatal("picker does not list the level")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modePlay || m.Play() == nil {
		t.Fatalf("enter did not start the puzzle (mode %d)", m.mode)
	}

	m = sendSession(t, m, keys("1213")...)
	if !m.Play().Game().Solved() {
		t.Error("keys did not reach the puzzle")
	}

	m = sendSession(t, m, runeKey('b'))
	if m.mode != modeMenu || m.Play() != nil {
		t.Fatalf("b did not return to the picker (mode %d)", m.mode)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeHistory {
		t.Fatalf("tab did not open history (mode %d)", m.mode)
	}
	if !strings.Contains(m.View(), "History is unavailable") {
		t.Error("history without a store should say so")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu {
		t.Fatalf("esc did not leave history (mode %d)", m.mode)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q on the picker should quit")
	}
}

func TestSessionBadLevelStaysInMenu(t *testing.T) {
	broken := levels.Level{ID: "broken", Name: "Broken", Capacity: 2, Tubes: 1, Layout: []string{"R"}}
	m := NewSessionModel([]levels.Level{broken}, DefaultOptions(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeMenu {
		t.Fatalf("unplayable level started (mode %d)", m.mode)
	}
	if m.status == "" {
		t.Error("expected an error status for the unplayable level")
	}
}
