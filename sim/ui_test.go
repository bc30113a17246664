// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvgoveira/voxpad"
	"github.com/jvgoveira/voxpad/hal"
)

func testModel(t *testing.T) (Model, *Board) {
	t.Helper()

	board, err := NewBoard(nil)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	cfg := voxpad.DefaultConfig()
	cfg.DurationSeconds = 1
	cfg.SampleRate = 8
	looper, err := voxpad.NewLooper(board, cfg)
	if err != nil {
		t.Fatalf("NewLooper() error = %v", err)
	}

	return NewModel(looper, board), board
}

func TestModel_KeysPressButtons(t *testing.T) {
	t.Parallel()

	model, board := testModel(t)

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !board.ReadButton(hal.ButtonRecord) {
		t.Error("r key did not press the record button")
	}

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !board.ReadButton(hal.ButtonPlay) {
		t.Error("p key did not press the play button")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()

	model, _ := testModel(t)

	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		_, cmd := model.Update(msg)
		if cmd == nil {
			t.Errorf("key %q returned no command, want tea.Quit", key)
		}
	}
}

func TestModel_ViewShowsState(t *testing.T) {
	t.Parallel()

	model, board := testModel(t)

	view := model.View()
	if !strings.Contains(view, "idle") {
		t.Errorf("View() missing state, got:\n%s", view)
	}

	board.SetIndicator(hal.IndicatorRecord, true)
	view = model.View()
	if !strings.Contains(view, "REC") {
		t.Errorf("View() missing record lamp, got:\n%s", view)
	}
}
