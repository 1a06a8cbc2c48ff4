package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

func TestContextReport(t *testing.T) {
	products := []types.Product{
		{Name: "Chicken Breast", Category: types.CategoryPoultry, StockLevel: 120.5, Unit: "MT", Location: "Atlanta Cold Storage"},
	}
	shipments := []types.Shipment{
		{TrackingNumber: "SH-2024-001", Status: types.StatusInTransit, ProductName: "Chicken Breast",
			Origin: "Atlanta, US", Destination: "Rotterdam, NL", ETA: "2024-12-01"},
	}
	now := time.Date(2024, time.November, 5, 9, 30, 0, 0, time.UTC)

	got := ContextReport(products, shipments, now)

	wantLines := []string{
		"DATE: 11/5/2024",
		"LIVE INVENTORY DATA:",
		"- Product: Chicken Breast | Category: Poultry | Stock: 120.5 MT | Location: Atlanta Cold Storage",
		"LIVE SHIPMENT DATA:",
		"- Tracking ID: SH-2024-001 | Status: In Transit | Product: Chicken Breast | Route: Atlanta, US -> Rotterdam, NL | ETA: 2024-12-01",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("report missing %q\nreport:\n%s", line, got)
		}
	}
}

func TestContextReportDateHasNoLeadingZeros(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	got := ContextReport(nil, nil, now)
	if !strings.Contains(got, "DATE: 1/2/2025") {
		t.Errorf("expected 1/2/2025 date style, got:\n%s", got)
	}
}

func TestContextReportEmptySnapshot(t *testing.T) {
	got := ContextReport(nil, nil, time.Now())
	if !strings.Contains(got, "No products found in database.") {
		t.Error("missing empty-inventory placeholder")
	}
	if !strings.Contains(got, "No active shipments found.") {
		t.Error("missing empty-shipments placeholder")
	}
}

func TestSystemInstruction(t *testing.T) {
	report := "DATE: 1/1/2025"
	got := SystemInstruction(report)

	if !strings.HasPrefix(got, "You are AJC-Bot") {
		t.Error("persona preamble must lead the instruction")
	}
	if !strings.Contains(got, "Data Context:\n"+report) {
		t.Error("serialized report must follow the preamble")
	}
	if !strings.Contains(got, "reply in Spanish") {
		t.Error("language directive missing from the preamble")
	}
}
