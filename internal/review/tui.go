package review

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	modelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	fullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// item is one selectable response row in the browser.
type item struct {
	model    string
	response Response
}

// model is the Bubble Tea model for the review browser.
type model struct {
	sessionName string
	items       []item
	cursor      int
	expanded    map[int]bool
	width       int
}

func newModel(sessionFolder string, data []ModelResponses) model {
	var items []item
	for _, mr := range data {
		for _, r := range mr.Responses {
			items = append(items, item{model: mr.Model, response: r})
		}
	}
	return model{
		sessionName: filepath.Base(sessionFolder),
		items:       items,
		expanded:    make(map[int]bool),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Review Opinions: " + m.sessionName))
	sb.WriteString("\n")

	lastModel := ""
	for i, it := range m.items {
		if it.model != lastModel {
			sb.WriteString("\n")
			sb.WriteString(modelStyle.Render("Model: " + it.model))
			sb.WriteString("\n")
			lastModel = it.model
		}

		header := fmt.Sprintf("Response #%d | Convergence: %g%% | %s",
			it.response.RoundNumber, it.response.Convergence, it.response.Timestamp)

		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + header))
		} else {
			sb.WriteString(headerStyle.Render("  " + header))
		}
		sb.WriteString("\n")

		if m.expanded[i] {
			sb.WriteString(fullStyle.Render(it.response.Full))
		} else {
			sb.WriteString(fullStyle.Render(it.response.Preview))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓ navigate · enter expand/collapse · q quit"))
	return sb.String()
}

// Run loads the session folder and starts the interactive browser.
func Run(sessionFolder string) error {
	data, err := LoadSession(sessionFolder)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(sessionFolder, data), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
