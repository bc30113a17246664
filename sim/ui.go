// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jvgoveira/voxpad"
	"github.com/jvgoveira/voxpad/hal"
)

const uiRefresh = 100 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 2).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	lampOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	recordLampStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040"))

	playLampStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#40C040"))
)

type tickMsg time.Time

// Model is the bubbletea state for the looper front end.
type Model struct {
	looper *voxpad.Looper
	board  *Board
}

// NewModel builds the front end over a looper and its simulated board.
func NewModel(looper *voxpad.Looper, board *Board) Model {
	return Model{looper: looper, board: board}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(uiRefresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.board.Press(hal.ButtonRecord)
		case "p":
			m.board.Press(hal.ButtonPlay)
		}

	case tickMsg:
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	s := titleStyle.Render("voxpad") + "\n"
	s += fmt.Sprintf("state: %s\n\n", m.looper.State())
	s += lamp("REC", m.board.Indicator(hal.IndicatorRecord), recordLampStyle) + "  "
	s += lamp("PLAY", m.board.Indicator(hal.IndicatorPlay), playLampStyle) + "\n\n"
	s += helpStyle.Render("r record · p play · q quit") + "\n"

	return s
}

func lamp(label string, on bool, onStyle lipgloss.Style) string {
	if on {
		return onStyle.Render("● " + label)
	}
	return lampOffStyle.Render("○ " + label)
}

// Run drives the looper and the terminal front end together until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, looper *voxpad.Looper, board *Board) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go looper.Run(ctx)

	prog := tea.NewProgram(NewModel(looper, board))
	go func() {
		<-ctx.Done()
		prog.Quit()
	}()

	_, err := prog.Run()
	return err
}
