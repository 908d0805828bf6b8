package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T) Model {
	t.Helper()
	model, err := newModel(defaultScenario().Specs(), 2)
	require.NoError(t, err)
	return model
}

func TestNewModelRunsEveryPolicy(t *testing.T) {
	model := testModel(t)
	require.Len(t, model.runs, 4)
	for _, r := range model.runs {
		assert.NotEmpty(t, r.timeline)
		assert.Len(t, r.results, len(model.specs))
	}
}

func TestLoadScenarioFromFile(t *testing.T) {
	scenario, err := loadScenario("testdata/scenario.json")
	require.NoError(t, err)
	assert.Len(t, scenario.Jobs, 3)
	assert.Equal(t, 2, scenario.TimeQuantum)

	_, err = loadScenario("testdata/missing.json")
	assert.Error(t, err)
}

func TestPlaybackAdvancesOnTick(t *testing.T) {
	model := testModel(t)
	require.True(t, model.playing)

	updated, cmd := model.Update(tickMsg(time.Now()))
	next := updated.(Model)
	assert.Equal(t, 1, next.cursor)
	assert.NotNil(t, cmd, "playback keeps ticking")

	// Paused playback holds position.
	next.playing = false
	updated, _ = next.Update(tickMsg(time.Now()))
	assert.Equal(t, 1, updated.(Model).cursor)
}

func TestKeyBindings(t *testing.T) {
	model := testModel(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, updated.(Model).playing, "space pauses")

	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, 1, updated.(Model).cursor, "l steps forward")

	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	assert.Equal(t, 0, updated.(Model).cursor, "h steps back")

	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, updated.(Model).active, "tab cycles policy")

	_, cmd := updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd(), "q quits")
}

func TestViewRendersChartAndResults(t *testing.T) {
	model := testModel(t)
	model.cursor = model.end()

	view := model.View()
	assert.Contains(t, view, "FCFS")
	assert.Contains(t, view, "P1")
	assert.Contains(t, view, "IDLE")
	assert.Contains(t, view, "WAITING")
	assert.Contains(t, view, "avg wait")
}
