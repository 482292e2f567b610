// Package tui provides an interactive question answering session built on
// Bubble Tea. One text input, one scrollable answer pane.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driving"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// askResultMsg carries a completed answer back into the update loop.
type askResultMsg struct {
	result *domain.AskResult
}

// askErrMsg carries a pipeline failure back into the update loop.
type askErrMsg struct {
	err error
}

// Model is the Bubble Tea model for the ask session.
type Model struct {
	ask      driving.AskService
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	thinking bool
	ready    bool
}

// New creates a TUI model. The summary line describes the corpus, e.g.
// "3 documents".
func New(ask driving.AskService, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	vp := viewport.New(0, 0)

	return Model{
		ask:      ask,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   "Ready.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, query box, spacer
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-2)
		m.viewport.Height = vh
		return m, nil

	case askResultMsg:
		m.thinking = false
		m.status = "Answered. Ask another question, or press Esc to quit."
		m.viewport.SetContent(renderResult(msg.result))
		m.viewport.GotoTop()
		return m, nil

	case askErrMsg:
		m.thinking = false
		m.status = errorStyle.Render("Error: " + msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.thinking {
				return m, nil
			}
			m.thinking = true
			m.status = "Thinking..."
			m.input.Reset()
			return m, askCmd(m.ask, query)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the session layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("docq")
	summary := summaryStyle.Render(m.summary)
	answer := answerBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + answer + "\n" + input + "\n" + status
}

// askCmd runs the ask pipeline off the update loop.
func askCmd(ask driving.AskService, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := ask.Ask(context.Background(), query)
		if err != nil {
			return askErrMsg{err: err}
		}
		return askResultMsg{result: result}
	}
}

// renderResult formats the answer followed by its source chunks.
func renderResult(result *domain.AskResult) string {
	var b strings.Builder
	b.WriteString(result.Answer)

	if len(result.SelectedChunks) > 0 {
		b.WriteString("\n\n")
		b.WriteString(sourceStyle.Render("Sources:"))
		for _, chunk := range result.SelectedChunks {
			b.WriteString(fmt.Sprintf("\n  [%s #%d] score %.4f",
				chunk.Filename, chunk.ChunkIndex, chunk.FinalScore))
		}
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
