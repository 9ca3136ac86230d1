package cli

import (
	"fmt"
	"strings"

	"buddyai/internal/chat"
	"buddyai/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chatModel is the bubbletea Model for the interactive chat session.
type chatModel struct {
	app *App

	input    textinput.Model
	viewport viewport.Model
	ready    bool

	history []chat.Message
	pending string
	waiting bool
	errText string

	botName string
}

func newChatModel(app *App, botName string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "> "
	ti.Placeholder = "Tell me what you want to work on"
	ti.CharLimit = 500

	return chatModel{
		app:     app,
		input:   ti,
		botName: botName,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.viewport.SetContent(m.transcript())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.input.Reset()
			m.pending = text
			m.waiting = true
			m.errText = ""
			return m, sendChatTurn(m.app, m.history, text)
		}

	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.errText = msg.err.Error()
		} else {
			m.history = append(m.history,
				chat.Message{Role: chat.RoleUser, Content: m.pending},
				chat.Message{Role: chat.RoleAssistant, Content: msg.reply.Text},
			)
			if msg.reply.Roadmap != nil && msg.reply.TasksCreated > 0 {
				note := fmt.Sprintf("%d tasks added to your list", msg.reply.TasksCreated)
				m.history = append(m.history, chat.Message{Role: chat.RoleAssistant, Content: formatter.Dim(note)})
			}
		}
		if m.ready {
			m.viewport.SetContent(m.transcript())
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	var (
		inputCmd tea.Cmd
		vpCmd    tea.Cmd
	)
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

func (m chatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	status := formatter.Dim("enter to send, esc to quit")
	if m.waiting {
		status = formatter.StyleYellow.Render("thinking...")
	}
	if m.errText != "" {
		status = formatter.StyleRed.Render(m.errText)
	}

	return fmt.Sprintf("%s\n%s\n%s", m.viewport.View(), m.input.View(), status)
}

// transcript renders the full message history for the viewport.
func (m chatModel) transcript() string {
	if len(m.history) == 0 {
		return formatter.Dim("Say hi, ask for a roadmap, or paste a plan to import.")
	}

	var b strings.Builder
	for _, msg := range m.history {
		switch msg.Role {
		case chat.RoleUser:
			b.WriteString(formatter.StyleBlue.Render("you") + "  " + msg.Content + "\n\n")
		default:
			b.WriteString(formatter.StyleGreen.Render(m.botName) + "  " + msg.Content + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
