package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/internship-checkin/internal/domain"
)

type checkInDoneMsg struct {
	err error
}

type checkInProgressMsg struct {
	account domain.AccountID
	index   int
	total   int
}

type checkInSpinnerModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	err     error
	done    bool
}

func newCheckInSpinnerModel(label string, run tea.Cmd) checkInSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return checkInSpinnerModel{
		spinner: s,
		label:   label,
		run:     run,
	}
}

func (m checkInSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m checkInSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case checkInProgressMsg:
		m.label = fmt.Sprintf("Checking in %s (%d/%d)...", msg.account, msg.index+1, msg.total)
		return m, nil
	case checkInDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m checkInSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runCheckInSpinner(ctx context.Context, output io.Writer, run func(context.Context, func(domain.AccountID, int, int)) error) error {
	var p *tea.Program

	runCmd := func() tea.Msg {
		return checkInDoneMsg{err: run(ctx, func(id domain.AccountID, index, total int) {
			p.Send(checkInProgressMsg{account: id, index: index, total: total})
		})}
	}

	p = tea.NewProgram(
		newCheckInSpinnerModel("Loading accounts...", runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(checkInSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
