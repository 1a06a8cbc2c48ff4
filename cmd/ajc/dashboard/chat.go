package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gustavoarielrecha-beep/AJC-POC/cmd/ajc/ui"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/bot"
)

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chat.open = false
		m.chat.input.Blur()
		return m, nil
	case "ctrl+g":
		// Cycle the selected model.
		current := m.assistant.Model()
		options := bot.AvailableModels()
		for i, opt := range options {
			if opt.ID == current {
				m.assistant.SetModel(options[(i+1)%len(options)].ID)
				break
			}
		}
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chat.input.Value())
		if text == "" || m.chat.loading {
			return m, nil
		}
		m.chat.input.Reset()
		m.chat.loading = true
		// Show the user's turn immediately; the reply message re-renders.
		m.refreshChatViewportWithPending(text)
		return m, tea.Batch(m.chatSendCmd(text), m.spinner.Tick)
	case "up", "pgup":
		var cmd tea.Cmd
		m.chat.viewport, cmd = m.chat.viewport.Update(msg)
		return m, cmd
	case "down", "pgdown":
		var cmd tea.Cmd
		m.chat.viewport, cmd = m.chat.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

// refreshChatViewport re-renders the conversation into the viewport.
func (m *Model) refreshChatViewport() {
	m.chat.viewport.SetContent(m.renderConversation(m.assistant.History(), ""))
	m.chat.viewport.GotoBottom()
}

// refreshChatViewportWithPending appends a not-yet-submitted user turn so
// it shows while the request is in flight.
func (m *Model) refreshChatViewportWithPending(pending string) {
	m.chat.viewport.SetContent(m.renderConversation(m.assistant.History(), pending))
	m.chat.viewport.GotoBottom()
}

func (m *Model) renderConversation(history []bot.Message, pending string) string {
	var sb strings.Builder

	for _, msg := range history {
		if msg.Role == "user" {
			sb.WriteString(m.styles.Bold.Foreground(ui.Navy).Render("You") + "\n")
			sb.WriteString(msg.Text)
			sb.WriteString("\n\n")
			continue
		}
		sb.WriteString(m.styles.Bold.Foreground(ui.Red).Render("AJC-Bot") + "\n")
		sb.WriteString(m.safeRenderMarkdown(msg.Text))
		sb.WriteString("\n")
	}

	if pending != "" {
		sb.WriteString(m.styles.Bold.Foreground(ui.Navy).Render("You") + "\n")
		sb.WriteString(pending)
		sb.WriteString("\n")
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery, falling back to
// the raw text if glamour misbehaves.
func (m *Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.chat.renderer != nil && content != "" {
		if rendered, err := m.chat.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}
