// Package dashboard is the interactive TUI for the AJC logistics portal:
// an auth gate, four tabbed views over the shared business data snapshot
// (overview, inventory, logistics, map) and the AJC-Bot chat panel.
package dashboard

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/gustavoarielrecha-beep/AJC-POC/cmd/ajc/ui"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/bot"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/commands"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/session"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/snapshot"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
)

// alwaysConfirm satisfies the command-level confirmation gate once the user
// has already approved the delete in the modal.
var alwaysConfirm = commands.ConfirmFunc(func(string) bool { return true })

// deleteTarget is a pending delete awaiting modal confirmation.
type deleteTarget struct {
	kind  string // "product" or "shipment"
	id    string
	label string
}

// chatPanel is the AJC-Bot overlay state.
type chatPanel struct {
	open     bool
	loading  bool
	viewport viewport.Model
	input    textarea.Model
	renderer *glamour.TermRenderer
}

// Model is the root bubbletea model for the portal.
type Model struct {
	// root context for every external call; cancelled on quit. Pending
	// results after cancellation land in a dead program and are ignored.
	ctx    context.Context
	cancel context.CancelFunc

	styles ui.Styles
	width  int
	height int
	ready  bool

	backend   *supabase.Client
	sessions  *session.Store
	data      *snapshot.Store
	refresher *snapshot.Refresher
	commands  *commands.Commands
	assistant *bot.Assistant

	tab           Tab
	auth          authForm
	productForm   *productForm
	shipmentForm  *shipmentForm
	pendingDelete *deleteTarget
	selected      int // row index on the inventory/logistics tables

	chat    chatPanel
	spinner spinner.Model
	status  string
}

// New wires the dashboard to its stores and collaborators.
func New(backend *supabase.Client, sessions *session.Store, data *snapshot.Store,
	refresher *snapshot.Refresher, cmds *commands.Commands, assistant *bot.Assistant) Model {

	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textarea.New()
	input.Placeholder = "Ask about AJC Logistics..."
	input.SetHeight(2)
	input.ShowLineNumbers = false

	return Model{
		ctx:       ctx,
		cancel:    cancel,
		styles:    ui.NewStyles(),
		backend:   backend,
		sessions:  sessions,
		data:      data,
		refresher: refresher,
		commands:  cmds,
		assistant: assistant,
		auth:      newAuthForm(),
		chat:      chatPanel{input: input},
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, sessionTickCmd())
}

// Shutdown cancels the root context. Called after the program exits.
func (m Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// resize reflows the chat panel to the new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	chatHeight := height - 8
	if chatHeight < 5 {
		chatHeight = 5
	}
	if m.chat.viewport.Width == 0 {
		m.chat.viewport = viewport.New(width-4, chatHeight)
	} else {
		m.chat.viewport.Width = width - 4
		m.chat.viewport.Height = chatHeight
	}
	m.chat.input.SetWidth(width - 6)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-8),
	)
	if err == nil {
		m.chat.renderer = renderer
	}
	m.refreshChatViewport()
}
