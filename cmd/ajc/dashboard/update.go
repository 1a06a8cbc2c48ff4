package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionTickMsg:
		return m, tea.Batch(sessionTickCmd(), m.maybeRefreshSessionCmd(time.Now()))

	case tokenRefreshedMsg:
		if msg.err != nil {
			// The session keeps its old token; requests fail once it lapses
			// and the next tick tries again.
			logging.Get(logging.CategoryAuth).Warn("token refresh failed", zap.Error(msg.err))
		}
		return m, nil

	case signedInMsg:
		m.auth.loading = false
		m.auth.message = ""
		m.status = ""
		return m, nil

	case authErrMsg:
		m.auth.loading = false
		m.auth.message = msg.err.Error()
		return m, nil

	case signUpDoneMsg:
		m.auth.loading = false
		if msg.err != nil {
			m.auth.message = msg.err.Error()
		} else {
			m.auth.message = "Registration successful! Please check your email for confirmation."
			m.auth.signUp = false
		}
		return m, nil

	case signedOutMsg:
		// Snapshot intentionally keeps its last data; the auth gate hides it.
		m.tab = TabOverview
		m.chat.open = false
		m.status = ""
		return m, nil

	case refreshDoneMsg:
		m.status = ""
		m.clampSelection()
		return m, nil

	case createDoneMsg:
		if msg.err != nil {
			// Form stays open with the entered values intact.
			switch msg.kind {
			case "product":
				if m.productForm != nil {
					m.productForm.loading = false
					m.productForm.message = msg.err.Error()
				}
			case "shipment":
				if m.shipmentForm != nil {
					m.shipmentForm.loading = false
					m.shipmentForm.message = msg.err.Error()
				}
			}
			return m, nil
		}
		m.productForm = nil
		m.shipmentForm = nil
		m.status = ""
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.status = "Delete failed: " + msg.err.Error()
		} else {
			m.status = ""
		}
		return m, nil

	case chatReplyMsg:
		m.chat.loading = false
		m.refreshChatViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.sessions.SignedIn() {
		return m.handleAuthKey(msg)
	}
	if m.chat.open {
		return m.handleChatKey(msg)
	}
	if m.productForm != nil {
		return m.handleProductFormKey(msg)
	}
	if m.shipmentForm != nil {
		return m.handleShipmentFormKey(msg)
	}
	if m.pendingDelete != nil {
		return m.handleDeleteKey(msg)
	}
	return m.handleNavKey(msg)
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.auth.cycleFocus()
		return m, nil
	case "ctrl+r":
		m.auth.signUp = !m.auth.signUp
		m.auth.message = ""
		return m, nil
	case "enter":
		if m.auth.loading {
			return m, nil
		}
		email, password := m.auth.email.Value(), m.auth.password.Value()
		if email == "" || password == "" {
			m.auth.message = "Email and password are required."
			return m, nil
		}
		m.auth.loading = true
		m.auth.message = ""
		if m.auth.signUp {
			return m, m.signUpCmd(email, password)
		}
		return m, m.signInCmd(email, password)
	}
	cmd := m.auth.update(msg)
	return m, cmd
}

func (m Model) handleProductFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.productForm
	switch msg.String() {
	case "esc":
		m.productForm = nil
		return m, nil
	case "tab", "shift+tab":
		cycleInputs(f.inputs, &f.focus)
		return m, nil
	case "enter":
		if f.loading {
			return m, nil
		}
		draft, err := f.draft()
		if err != nil {
			f.message = err.Error()
			return m, nil
		}
		f.loading = true
		f.message = ""
		return m, m.createProductCmd(draft)
	}
	return m, updateInputs(f.inputs, msg)
}

func (m Model) handleShipmentFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.shipmentForm
	switch msg.String() {
	case "esc":
		m.shipmentForm = nil
		return m, nil
	case "tab", "shift+tab":
		cycleInputs(f.inputs, &f.focus)
		return m, nil
	case "enter":
		if f.loading {
			return m, nil
		}
		draft, err := f.draft()
		if err != nil {
			f.message = err.Error()
			return m, nil
		}
		f.loading = true
		f.message = ""
		return m, m.createShipmentCmd(draft)
	}
	return m, updateInputs(f.inputs, msg)
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := m.pendingDelete
	switch msg.String() {
	case "y", "Y":
		m.pendingDelete = nil
		m.status = "Deleting..."
		if target.kind == "product" {
			return m, m.deleteProductCmd(target.id)
		}
		return m, m.deleteShipmentCmd(target.id)
	case "n", "N", "esc":
		// Declined: no external call is ever issued.
		m.pendingDelete = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.tab = TabOverview
	case "2":
		m.tab = TabInventory
	case "3":
		m.tab = TabLogistics
	case "4":
		m.tab = TabMap
	case "tab":
		m.tab = m.tab.Next()
	case "shift+tab":
		m.tab = m.tab.Prev()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		m.selected++
		m.clampSelection()
	case "r":
		m.status = "Refreshing..."
		return m, m.refreshCmd()
	case "a":
		switch m.tab {
		case TabInventory:
			m.productForm = newProductForm()
		case TabLogistics:
			m.shipmentForm = newShipmentForm()
		}
	case "d":
		if t := m.selectedTarget(); t != nil {
			m.pendingDelete = t
		}
	case "c":
		m.chat.open = true
		m.chat.input.Focus()
		m.refreshChatViewport()
		return m, m.spinner.Tick
	case "s":
		return m, m.signOutCmd()
	}

	m.clampSelection()
	return m, nil
}

// selectedTarget resolves the highlighted table row to a delete target.
func (m Model) selectedTarget() *deleteTarget {
	switch m.tab {
	case TabInventory:
		products := m.data.Products()
		if m.selected < len(products) {
			p := products[m.selected]
			return &deleteTarget{kind: "product", id: p.ID, label: p.Name}
		}
	case TabLogistics:
		shipments := m.data.Shipments()
		if m.selected < len(shipments) {
			s := shipments[m.selected]
			return &deleteTarget{kind: "shipment", id: s.ID, label: s.TrackingNumber}
		}
	}
	return nil
}

func (m *Model) clampSelection() {
	max := 0
	switch m.tab {
	case TabInventory:
		max = len(m.data.Products()) - 1
	case TabLogistics:
		max = len(m.data.Shipments()) - 1
	}
	if max < 0 {
		max = 0
	}
	if m.selected > max {
		m.selected = max
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
