package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#00AAFF"))

	previewHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true)
)

// previewModel shows extracted text in a scrollable viewport and lets the
// user confirm or cancel the clipboard write.
type previewModel struct {
	viewport viewport.Model
	text     string
	copied   bool
	done     bool
	ready    bool
}

func newPreviewModel(text string) previewModel {
	return previewModel{text: text}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "y":
			m.copied = true
			m.done = true
			return m, tea.Quit

		case "q", "Q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Reserve 2 lines: title at top, controls at bottom.
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.text)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if m.done {
		return ""
	}
	if !m.ready {
		return "Loading preview..."
	}

	title := previewTitleStyle.Render(fmt.Sprintf("Preview (%d bytes)", len(m.text)))
	help := previewHelpStyle.Render("ENTER: copy  ↑/↓: scroll  Q: cancel")

	return title + "\n" + m.viewport.View() + "\n" + help
}

// runPreview displays text and reports whether the user confirmed the copy.
func runPreview(text string) (bool, error) {
	p := tea.NewProgram(newPreviewModel(text), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return false, err
	}
	return m.(previewModel).copied, nil
}
