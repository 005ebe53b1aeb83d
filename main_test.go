package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel() model {
	m := model{
		engine:   NewEngine(),
		config:   defaultConfig(),
		heldKeys: make(map[string]time.Time),
		width:    80,
		height:   24,
	}
	m.engine.Resize(80, 23)
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDiscreteZoomStepsAreExact(t *testing.T) {
	m := testModel()
	m.handleKey(runeKey("+"))
	if got := m.engine.VP.TargetZoom; got != keyZoomStep {
		t.Errorf("zoom in: target = %v, want %v", got, keyZoomStep)
	}
	m.handleKey(runeKey("-"))
	want := keyZoomStep * keyZoomStepOut
	if got := m.engine.VP.TargetZoom; !almostEqual(got, want, 1e-12) {
		t.Errorf("zoom out: target = %v, want %v", got, want)
	}
}

func TestDiscreteZoomKeepsCenter(t *testing.T) {
	m := testModel()
	m.engine.VP.SetTarget(Complex{-0.75, 0.1}, 1, 0)
	m.handleKey(runeKey("+"))
	if got := m.engine.VP.TargetCenter; got != (Complex{-0.75, 0.1}) {
		t.Errorf("zooming at screen center moved the center to %v", got)
	}
}

func TestDiscreteZoomPushesHistory(t *testing.T) {
	m := testModel()
	mm, _ := m.handleKey(runeKey("+"))
	m = mm.(model)
	if m.engine.VP.TargetZoom == 1 {
		t.Fatal("zoom key had no effect")
	}
	if !m.history.Back(m.engine) {
		t.Fatal("discrete zoom should leave a history stop")
	}
	if got := m.engine.VP.TargetZoom; got != 1 {
		t.Errorf("history back after zoom: target = %v, want 1", got)
	}
}
