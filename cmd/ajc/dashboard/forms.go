package dashboard

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// =============================================================================
// AUTH FORM
// =============================================================================

type authForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	signUp   bool // register instead of sign in
	message  string
	loading  bool
}

func newAuthForm() authForm {
	email := textinput.New()
	email.Placeholder = "you@ajcgroup.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return authForm{email: email, password: password}
}

func (f *authForm) cycleFocus() {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.email.Blur()
		f.password.Focus()
	}
}

func (f *authForm) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.email, cmd = f.email.Update(msg)
	cmds = append(cmds, cmd)
	f.password, cmd = f.password.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// =============================================================================
// PRODUCT FORM
// =============================================================================

// productForm collects a fully-populated product draft. On a failed insert
// the form stays open with the entered values intact.
type productForm struct {
	inputs  []textinput.Model // name, category, stock, unit, location
	focus   int
	message string
	loading bool
}

var productFields = []struct{ label, placeholder string }{
	{"Name", "Chicken Leg Quarters"},
	{"Category", "Poultry | Pork | Beef | Seafood | Vegetables | Fries"},
	{"Stock (MT)", "1200"},
	{"Unit", "MT"},
	{"Location", "Atlanta Cold Storage"},
}

func newProductForm() *productForm {
	f := &productForm{inputs: make([]textinput.Model, len(productFields))}
	for i, field := range productFields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f *productForm) draft() (types.Product, error) {
	stock, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[2].Value()), 64)
	if err != nil {
		stock = -1 // fails validation with a clear message
	}
	p := types.Product{
		Name:       strings.TrimSpace(f.inputs[0].Value()),
		Category:   types.ProductCategory(strings.TrimSpace(f.inputs[1].Value())),
		StockLevel: stock,
		Unit:       strings.TrimSpace(f.inputs[3].Value()),
		Location:   strings.TrimSpace(f.inputs[4].Value()),
	}
	return p, types.ValidateProduct(p)
}

// =============================================================================
// SHIPMENT FORM
// =============================================================================

type shipmentForm struct {
	inputs  []textinput.Model // tracking, origin, destination, status, product, eta
	focus   int
	message string
	loading bool
}

var shipmentFields = []struct{ label, placeholder string }{
	{"Tracking #", "SH-2024-001"},
	{"Origin", "Atlanta, US"},
	{"Destination", "Rotterdam, NL"},
	{"Status", "Pending | In Transit | Customs | Delivered"},
	{"Product", "Chicken Leg Quarters"},
	{"ETA", "2024-12-01"},
}

func newShipmentForm() *shipmentForm {
	f := &shipmentForm{inputs: make([]textinput.Model, len(shipmentFields))}
	for i, field := range shipmentFields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f *shipmentForm) draft() (types.Shipment, error) {
	s := types.Shipment{
		TrackingNumber: strings.TrimSpace(f.inputs[0].Value()),
		Origin:         strings.TrimSpace(f.inputs[1].Value()),
		Destination:    strings.TrimSpace(f.inputs[2].Value()),
		Status:         types.ShipmentStatus(strings.TrimSpace(f.inputs[3].Value())),
		ProductName:    strings.TrimSpace(f.inputs[4].Value()),
		ETA:            strings.TrimSpace(f.inputs[5].Value()),
	}
	return s, types.ValidateShipment(s)
}

func productFieldLabels() []string {
	labels := make([]string, len(productFields))
	for i, f := range productFields {
		labels[i] = f.label
	}
	return labels
}

func shipmentFieldLabels() []string {
	labels := make([]string, len(shipmentFields))
	for i, f := range shipmentFields {
		labels[i] = f.label
	}
	return labels
}

// =============================================================================
// SHARED INPUT HELPERS
// =============================================================================

func cycleInputs(inputs []textinput.Model, focus *int) {
	inputs[*focus].Blur()
	*focus = (*focus + 1) % len(inputs)
	inputs[*focus].Focus()
}

func updateInputs(inputs []textinput.Model, msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}
