package dashboard

import (
	"testing"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

func TestProductFormDraft(t *testing.T) {
	f := newProductForm()
	for i, v := range []string{"Chicken Breast", "Poultry", "120.5", "MT", "Atlanta Cold Storage"} {
		f.inputs[i].SetValue(v)
	}

	p, err := f.draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if p.Name != "Chicken Breast" || p.Category != types.CategoryPoultry || p.StockLevel != 120.5 {
		t.Errorf("unexpected draft: %+v", p)
	}
}

func TestProductFormDraftTrimsWhitespace(t *testing.T) {
	f := newProductForm()
	for i, v := range []string{"  Chicken Breast ", " Poultry ", " 120 ", " MT ", " Atlanta "} {
		f.inputs[i].SetValue(v)
	}

	p, err := f.draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if p.Name != "Chicken Breast" || p.Location != "Atlanta" {
		t.Errorf("whitespace not trimmed: %+v", p)
	}
}

func TestProductFormDraftBadStock(t *testing.T) {
	f := newProductForm()
	for i, v := range []string{"Chicken Breast", "Poultry", "lots", "MT", "Atlanta"} {
		f.inputs[i].SetValue(v)
	}
	if _, err := f.draft(); err == nil {
		t.Error("non-numeric stock must fail validation")
	}
}

func TestShipmentFormDraft(t *testing.T) {
	f := newShipmentForm()
	for i, v := range []string{"SH-2024-001", "Atlanta, US", "Rotterdam, NL", "Pending", "Chicken Breast", "2024-12-01"} {
		f.inputs[i].SetValue(v)
	}

	s, err := f.draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if s.TrackingNumber != "SH-2024-001" || s.Status != types.StatusPending {
		t.Errorf("unexpected draft: %+v", s)
	}
	// Port resolution happens in the command, not the form.
	if s.OriginLat != nil || s.DestLat != nil {
		t.Error("draft must not carry coordinates")
	}
}

func TestShipmentFormDraftBadETA(t *testing.T) {
	f := newShipmentForm()
	for i, v := range []string{"SH-2024-001", "Atlanta, US", "Rotterdam, NL", "Pending", "Chicken Breast", "soon"} {
		f.inputs[i].SetValue(v)
	}
	if _, err := f.draft(); err == nil {
		t.Error("free-text ETA must fail validation")
	}
}

func TestFieldLabelsMatchInputs(t *testing.T) {
	if got, want := len(productFieldLabels()), len(newProductForm().inputs); got != want {
		t.Errorf("product labels = %d, inputs = %d", got, want)
	}
	if got, want := len(shipmentFieldLabels()), len(newShipmentForm().inputs); got != want {
		t.Errorf("shipment labels = %d, inputs = %d", got, want)
	}
}
