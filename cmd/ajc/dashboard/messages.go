package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// =============================================================================
// MESSAGES
// =============================================================================
// Every external call runs as a tea.Cmd goroutine and reports back with one
// of these messages. Results arriving after the root context is cancelled
// are delivered to a dead program and ignored.

type signedInMsg struct{}

type authErrMsg struct{ err error }

type signUpDoneMsg struct{ err error }

type signedOutMsg struct{}

type refreshDoneMsg struct{}

type createDoneMsg struct {
	kind string // "product" or "shipment"
	err  error
}

type deleteDoneMsg struct {
	kind string
	err  error
}

type chatReplyMsg struct{ reply string }

type sessionTickMsg struct{}

type tokenRefreshedMsg struct{ err error }

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

func (m Model) signInCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.backend.SignInWithPassword(m.ctx, email, password)
		if err != nil {
			return authErrMsg{err}
		}
		// Profile fetch and snapshot refresh both hang off the sign-in event.
		m.sessions.HandleAuthChange(m.ctx, types.EventSignedIn, sess)
		return signedInMsg{}
	}
}

func (m Model) signUpCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return signUpDoneMsg{err: m.backend.SignUp(m.ctx, email, password)}
	}
}

func (m Model) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.backend.SignOut(m.ctx)
		m.sessions.HandleAuthChange(m.ctx, types.EventSignedOut, nil)
		return signedOutMsg{}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		m.refresher.Refresh(m.ctx)
		return refreshDoneMsg{}
	}
}

func (m Model) createProductCmd(draft types.Product) tea.Cmd {
	return func() tea.Msg {
		return createDoneMsg{kind: "product", err: m.commands.CreateProduct(m.ctx, draft)}
	}
}

func (m Model) createShipmentCmd(draft types.Shipment) tea.Cmd {
	return func() tea.Msg {
		return createDoneMsg{kind: "shipment", err: m.commands.CreateShipment(m.ctx, draft)}
	}
}

func (m Model) deleteProductCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.commands.DeleteProduct(m.ctx, id, alwaysConfirm)
		return deleteDoneMsg{kind: "product", err: err}
	}
}

func (m Model) deleteShipmentCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.commands.DeleteShipment(m.ctx, id, alwaysConfirm)
		return deleteDoneMsg{kind: "shipment", err: err}
	}
}

func (m Model) chatSendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return chatReplyMsg{reply: m.assistant.Send(m.ctx, text)}
	}
}

// Access tokens are checked on a timer and exchanged shortly before expiry
// so a long-lived dashboard session never starts failing its requests.
const (
	sessionTickInterval = time.Minute
	tokenRefreshLeeway  = 2 * time.Minute
)

func sessionTickCmd() tea.Cmd {
	return tea.Tick(sessionTickInterval, func(time.Time) tea.Msg { return sessionTickMsg{} })
}

// maybeRefreshSessionCmd returns a refresh command when the access token is
// within the leeway of its expiry, nil otherwise.
func (m Model) maybeRefreshSessionCmd(now time.Time) tea.Cmd {
	sess := m.sessions.Session()
	if sess == nil || sess.RefreshToken == "" {
		return nil
	}
	if !sess.Expired(now.Add(tokenRefreshLeeway)) {
		return nil
	}
	return m.refreshSessionCmd(sess.RefreshToken)
}

func (m Model) refreshSessionCmd(refreshToken string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.backend.RefreshSession(m.ctx, refreshToken)
		if err != nil {
			return tokenRefreshedMsg{err: err}
		}
		m.sessions.HandleAuthChange(m.ctx, types.EventTokenRefreshed, sess)
		return tokenRefreshedMsg{}
	}
}
