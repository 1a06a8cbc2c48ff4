package ui

import (
	"strings"
	"testing"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

func TestSimpleTableRendersRows(t *testing.T) {
	tbl := NewSimpleTable("Inventory", "Name", "Stock")
	tbl.AddRow("Chicken Breast", "120")
	tbl.AddRow("Pork Loin", "40")

	out := tbl.View(NewStyles())
	for _, want := range []string{"Inventory", "Name", "Chicken Breast", "Pork Loin", "40"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleTableEmptyMessage(t *testing.T) {
	tbl := NewSimpleTable("Inventory", "Name", "Stock")
	tbl.Empty = "No products found in inventory."

	out := tbl.View(NewStyles())
	if !strings.Contains(out, "No products found in inventory.") {
		t.Errorf("empty message not rendered:\n%s", out)
	}
	if strings.Contains(out, "Name") {
		t.Error("headers must not render for an empty table")
	}
}

func TestStatusColor(t *testing.T) {
	cases := map[types.ShipmentStatus]string{
		types.StatusInTransit: string(Blue),
		types.StatusDelivered: string(Green),
		types.StatusCustoms:   string(Yellow),
		types.StatusPending:   string(Gray),
	}
	for status, want := range cases {
		if got := string(StatusColor(status)); got != want {
			t.Errorf("StatusColor(%q) = %s, want %s", status, got, want)
		}
	}
	if got := string(StatusColor("Unknown")); got != string(Gray) {
		t.Errorf("unknown status should fall back to gray, got %s", got)
	}
}

func TestBarChart(t *testing.T) {
	out := BarChart([]BarDatum{
		{Label: "Poultry", Value: 100},
		{Label: "Pork", Value: 50},
	}, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bars, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Poultry") || !strings.Contains(lines[0], "100") {
		t.Errorf("bar line malformed: %q", lines[0])
	}
	// The larger value gets the longer bar.
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("bar lengths must scale with values")
	}
}

func TestBarChartZeroValues(t *testing.T) {
	out := BarChart([]BarDatum{{Label: "Fries", Value: 0}}, 10)
	if !strings.Contains(out, "Fries") || !strings.Contains(out, "0") {
		t.Errorf("zero-value datum must still render a line:\n%s", out)
	}
	if BarChart(nil, 10) != "" {
		t.Error("no data renders nothing")
	}
}
