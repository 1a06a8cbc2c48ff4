package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/gustavoarielrecha-beep/AJC-POC/cmd/ajc/ui"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/bot"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading AJC portal..."
	}
	if !m.sessions.SignedIn() {
		return m.viewAuth()
	}

	var body string
	switch {
	case m.chat.open:
		body = m.viewChat()
	case m.productForm != nil:
		body = m.viewProductForm()
	case m.shipmentForm != nil:
		body = m.viewShipmentForm()
	case m.pendingDelete != nil:
		body = m.viewDeleteConfirm()
	default:
		switch m.tab {
		case TabOverview:
			body = m.viewOverview()
		case TabInventory:
			body = m.viewInventory()
		case TabLogistics:
			body = m.viewLogistics()
		case TabMap:
			body = m.viewMap()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewFooter(),
	)
}

// =============================================================================
// CHROME
// =============================================================================

func (m Model) viewHeader() string {
	brand := m.styles.Header.Render("AJC") + m.styles.Error.Render(" POC")

	tabs := make([]string, 0, len(AllTabs()))
	for _, t := range AllTabs() {
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(t.Title()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(t.Title()))
		}
	}

	who := ""
	if p := m.sessions.Profile(); p != nil {
		who = m.styles.Muted.Render(fmt.Sprintf("%s (%s)", p.FullName, p.Role))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		brand, "  ", strings.Join(tabs, " "), "  ", who)

	if m.status != "" {
		line += "\n" + m.styles.Muted.Render(m.spinner.View()+" "+m.status)
	}
	return line + "\n"
}

func (m Model) viewFooter() string {
	hints := "1-4/tab: views · a: add · d: delete · r: refresh · c: chat · s: sign out · q: quit"
	if m.chat.open {
		hints = "enter: send · ctrl+g: model · esc: close chat"
	} else if m.productForm != nil || m.shipmentForm != nil {
		hints = "tab: next field · enter: submit · esc: cancel"
	} else if m.pendingDelete != nil {
		hints = "y: confirm · n/esc: cancel"
	}
	return m.styles.Muted.Render(hints)
}

// =============================================================================
// AUTH GATE
// =============================================================================

func (m Model) viewAuth() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("AJC International") + "\n")
	sb.WriteString(m.styles.Muted.Render("Unified Logistics Portal") + "\n\n")

	mode := "Sign In"
	if m.auth.signUp {
		mode = "Register Account"
	}
	sb.WriteString(m.styles.Bold.Render(mode) + "\n\n")
	sb.WriteString("Email\n" + m.auth.email.View() + "\n")
	sb.WriteString("Password\n" + m.auth.password.View() + "\n\n")

	if m.auth.loading {
		sb.WriteString(m.spinner.View() + " Processing...\n")
	}
	if m.auth.message != "" {
		sb.WriteString(m.styles.Error.Render(m.auth.message) + "\n")
	}

	sb.WriteString("\n" + m.styles.Muted.Render("Or continue with GitHub:") + "\n")
	sb.WriteString(m.styles.Muted.Render(m.backend.OAuthURL(supabase.ProviderGitHub, "")) + "\n")
	sb.WriteString("\n" + m.styles.Muted.Render("enter: submit · tab: switch field · ctrl+r: toggle register · ctrl+c: quit"))

	return m.styles.Card.Render(sb.String())
}

// =============================================================================
// TABS
// =============================================================================

func (m Model) viewOverview() string {
	products := m.data.Products()
	shipments := m.data.Shipments()

	totalStock := 0.0
	for _, p := range products {
		totalStock += p.StockLevel
	}
	active, delayed := 0, 0
	for _, s := range shipments {
		switch s.Status {
		case types.StatusInTransit, types.StatusPending:
			active++
		case types.StatusCustoms:
			delayed++
		}
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.KPICard(m.styles, "Total Stock (MT)", fmt.Sprintf("%g", totalStock), ui.Blue),
		ui.KPICard(m.styles, "Active Shipments", fmt.Sprintf("%d", active), ui.Green),
		ui.KPICard(m.styles, "Delayed / Customs", fmt.Sprintf("%d", delayed), ui.Yellow),
		ui.KPICard(m.styles, "Products Listed", fmt.Sprintf("%d", len(products)), ui.Navy),
	)

	byCategory := map[types.ProductCategory]float64{}
	for _, p := range products {
		byCategory[p.Category] += p.StockLevel
	}
	var bars []ui.BarDatum
	for _, c := range types.Categories() {
		if v, ok := byCategory[c]; ok {
			bars = append(bars, ui.BarDatum{Label: string(c), Value: v})
		}
	}

	var statusLines []string
	byStatus := map[types.ShipmentStatus]int{}
	for _, s := range shipments {
		byStatus[s.Status]++
	}
	for _, s := range types.Statuses() {
		if n, ok := byStatus[s]; ok {
			statusLines = append(statusLines, fmt.Sprintf("%s %d", ui.StatusBadge(s), n))
		}
	}

	sections := []string{
		m.styles.Title.Render("Executive Overview"),
		cards,
		m.styles.Bold.Render("Inventory Distribution (MT)"),
		ui.BarChart(bars, 40),
		m.styles.Bold.Render("Shipment Status"),
		strings.Join(statusLines, "   "),
	}
	return strings.Join(sections, "\n")
}

func (m Model) viewInventory() string {
	table := ui.NewSimpleTable("Global Inventory",
		"", "Product Name", "Category", "Location", "Stock Level", "Unit")
	table.Empty = "No products found in inventory."

	for i, p := range m.data.Products() {
		marker := " "
		if i == m.selected {
			marker = ">"
		}
		table.AddRow(marker, p.Name, string(p.Category), p.Location,
			fmt.Sprintf("%g", p.StockLevel), p.Unit)
	}
	return table.View(m.styles)
}

func (m Model) viewLogistics() string {
	table := ui.NewSimpleTable("Shipment Tracking",
		"", "Tracking #", "Origin", "Destination", "Product", "Status", "ETA")
	table.Empty = "No shipments found."

	for i, s := range m.data.Shipments() {
		marker := " "
		if i == m.selected {
			marker = ">"
		}
		table.AddRow(marker, s.TrackingNumber, s.Origin, s.Destination,
			s.ProductName, ui.StatusBadge(s.Status), s.ETA)
	}
	return table.View(m.styles)
}

// viewMap lists the routes of shipments whose endpoints both resolved to
// coordinates. Shipments without a route are omitted without error.
func (m Model) viewMap() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Shipment Routes") + "\n\n")

	routes := 0
	for _, s := range m.data.Shipments() {
		if !s.HasRoute() {
			continue
		}
		routes++

		line := "──────────>"
		if s.Status == types.StatusPending {
			line = "- - - - - >"
		}
		arrow := lipgloss.NewStyle().Foreground(ui.StatusColor(s.Status)).Render(line)

		sb.WriteString(fmt.Sprintf("%s  %s\n", m.styles.Bold.Render(s.TrackingNumber), ui.StatusBadge(s.Status)))
		sb.WriteString(fmt.Sprintf("  %s (%.4f, %.4f) %s %s (%.4f, %.4f)\n",
			s.Origin, *s.OriginLat, *s.OriginLng,
			arrow,
			s.Destination, *s.DestLat, *s.DestLng))
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s · ETA %s", s.ProductName, s.ETA)) + "\n\n")
	}

	if routes == 0 {
		sb.WriteString(m.styles.Muted.Render("No shipments with mapped routes."))
	}
	return sb.String()
}

// =============================================================================
// MODALS
// =============================================================================

func (m Model) viewProductForm() string {
	return m.viewForm("Add Product", productFieldLabels(), m.productForm.inputs,
		m.productForm.message, m.productForm.loading)
}

func (m Model) viewShipmentForm() string {
	return m.viewForm("Create Shipment", shipmentFieldLabels(), m.shipmentForm.inputs,
		m.shipmentForm.message, m.shipmentForm.loading)
}

func (m Model) viewForm(title string, labels []string, inputs []textinput.Model, message string, loading bool) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(title) + "\n\n")
	for i, in := range inputs {
		sb.WriteString(labels[i] + "\n" + in.View() + "\n")
	}
	if loading {
		sb.WriteString("\n" + m.spinner.View() + " Saving...")
	}
	if message != "" {
		sb.WriteString("\n" + m.styles.Error.Render(message))
	}
	return m.styles.ModalBox.Render(sb.String())
}

func (m Model) viewDeleteConfirm() string {
	t := m.pendingDelete
	body := fmt.Sprintf("Delete %s %q?\n\nThis cannot be undone.  [y/N]", t.kind, t.label)
	return m.styles.ModalBox.Render(body)
}

// =============================================================================
// CHAT
// =============================================================================

func (m Model) viewChat() string {
	modelName := m.assistant.Model()
	for _, opt := range bot.AvailableModels() {
		if opt.ID == modelName {
			modelName = opt.Name
			break
		}
	}

	state := "Online"
	if m.chat.loading {
		state = m.spinner.View() + " Thinking..."
	}
	header := m.styles.Header.Render("AJC-Bot Assistant") + "  " +
		m.styles.Muted.Render(state+" | "+modelName)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.chat.viewport.View(),
		m.chat.input.View(),
	)
}
