package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/config"
	"github.com/wippyai/vk-validation/scenario"
)

// stepModel steps through one script, showing the reports of the selected
// step in a scrollable pane.
type stepModel struct {
	runner   *scenario.Runner
	p        painter
	results  []scenario.StepResult
	selected int
	reports  viewport.Model
	status   string
	err      error
}

// settingsMsg carries settings reloaded from disk.
type settingsMsg config.Settings

func newStepModel(r *scenario.Runner) *stepModel {
	return &stepModel{
		runner:  r,
		p:       painter{color: true},
		reports: viewport.New(80, 10),
	}
}

func (m *stepModel) Init() tea.Cmd { return nil }

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "n", " ":
			m.step()

		case "r":
			for !m.runner.Done() {
				m.step()
			}

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}

		case "down", "j":
			if m.selected < len(m.results)-1 {
				m.selected++
				m.refresh()
			}
		}

	case tea.WindowSizeMsg:
		m.reports.Width = msg.Width
		m.reports.Height = max(msg.Height/3, 5)
		m.refresh()

	case settingsMsg:
		if err := m.runner.Setup(); err != nil {
			m.err = err
			return m, nil
		}
		s := config.Settings(msg)
		m.runner.Layer().ApplySettings(s.Layer())
		m.status = fmt.Sprintf("settings reloaded: block_on=%s report_flags=%s", s.BlockOn, s.ReportFlags)
	}

	var cmd tea.Cmd
	m.reports, cmd = m.reports.Update(msg)
	return m, cmd
}

func (m *stepModel) step() {
	res, ok := m.runner.Step()
	if !ok {
		return
	}
	m.results = append(m.results, res)
	m.selected = len(m.results) - 1
	m.refresh()
}

func (m *stepModel) refresh() {
	if len(m.results) == 0 {
		m.reports.SetContent("")
		return
	}
	st := m.results[m.selected]
	var b strings.Builder
	if st.Step.Note != "" {
		b.WriteString(helpStyle.Render(st.Step.Note))
		b.WriteString("\n")
	}
	if st.Err != nil {
		b.WriteString(m.p.paint(failStyle, st.Err.Error()))
		b.WriteString("\n")
	}
	if len(st.Reports) == 0 {
		b.WriteString("no reports\n")
	}
	for _, rep := range st.Reports {
		fmt.Fprintf(&b, "%s %s %s\n", m.p.severity(rep.Severity), rep.Code, rep.Message)
	}
	m.reports.SetContent(b.String())
	m.reports.GotoTop()
}

func (m *stepModel) View() string {
	if m.err != nil {
		return m.p.paint(failStyle, fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	s := m.runner.Script()
	var b strings.Builder
	b.WriteString(titleStyle.Render("vkcheck"))
	b.WriteString(" ")
	b.WriteString(s.Name)
	b.WriteString("\n")
	if s.Description != "" {
		b.WriteString(helpStyle.Render(s.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, st := range s.Steps {
		line := fmt.Sprintf("%3d %s", i+1, st)
		switch {
		case i < len(m.results):
			r := m.results[i]
			mark := m.p.paint(passStyle, "ok  ")
			if !r.Passed() {
				mark = m.p.paint(failStyle, "FAIL")
			}
			line = fmt.Sprintf("%s %s -> %s", mark, line, r.Result)
		default:
			line = "     " + line
		}
		if i == m.selected && i < len(m.results) {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.reports.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	if n := len(m.runner.Messages()); n > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d callback message(s)", n)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("n step • r run all • ↑/↓ select • q quit"))
	return b.String()
}

func runInteractive(path string, cfg config.Settings, log *zap.Logger, settingsPath string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	r := scenario.NewRunner(s, scenario.WithSettings(cfg.Layer()), scenario.WithLogger(log))
	defer r.Close()

	p := tea.NewProgram(newStepModel(r), tea.WithAltScreen())
	if settingsPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := config.Watch(ctx, settingsPath, func(s config.Settings) {
			p.Send(settingsMsg(s))
		}); err != nil {
			return err
		}
	}
	_, err = p.Run()
	return err
}
