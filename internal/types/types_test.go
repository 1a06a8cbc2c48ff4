package types

import (
	"testing"
	"time"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if ProductCategory("Dairy").Valid() {
		t.Error("Dairy is not a known category")
	}
	if ProductCategory("poultry").Valid() {
		t.Error("categories are case-sensitive")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if ShipmentStatus("Lost").Valid() {
		t.Error("Lost is not a known status")
	}
	if ShipmentStatus("in transit").Valid() {
		t.Error("statuses are case-sensitive")
	}
}

func TestValidateProduct(t *testing.T) {
	good := Product{
		Name:       "Chicken Breast",
		Category:   CategoryPoultry,
		StockLevel: 120,
		Unit:       "MT",
		Location:   "Atlanta Cold Storage",
	}
	if err := ValidateProduct(good); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Product)
	}{
		{"empty name", func(p *Product) { p.Name = "" }},
		{"bad category", func(p *Product) { p.Category = "Gadgets" }},
		{"negative stock", func(p *Product) { p.StockLevel = -1 }},
		{"empty unit", func(p *Product) { p.Unit = "" }},
		{"empty location", func(p *Product) { p.Location = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := good
			tc.mutate(&p)
			if err := ValidateProduct(p); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Zero stock is allowed: out-of-stock products are still listed.
	zero := good
	zero.StockLevel = 0
	if err := ValidateProduct(zero); err != nil {
		t.Errorf("zero stock should validate: %v", err)
	}
}

func TestValidateShipment(t *testing.T) {
	good := Shipment{
		TrackingNumber: "SH-2024-001",
		Origin:         "Atlanta, US",
		Destination:    "Rotterdam, NL",
		Status:         StatusPending,
		ProductName:    "Chicken Breast",
		ETA:            "2024-12-01",
	}
	if err := ValidateShipment(good); err != nil {
		t.Fatalf("valid shipment rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Shipment)
	}{
		{"empty tracking number", func(s *Shipment) { s.TrackingNumber = "" }},
		{"empty origin", func(s *Shipment) { s.Origin = "" }},
		{"empty destination", func(s *Shipment) { s.Destination = "" }},
		{"bad status", func(s *Shipment) { s.Status = "Teleporting" }},
		{"empty product name", func(s *Shipment) { s.ProductName = "" }},
		{"bad eta", func(s *Shipment) { s.ETA = "December 1st" }},
		{"eta wrong layout", func(s *Shipment) { s.ETA = "01-12-2024" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := good
			tc.mutate(&s)
			if err := ValidateShipment(s); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Unknown ports pass validation; they only lose map coordinates.
	offTable := good
	offTable.Origin = "Timbuktu, ML"
	if err := ValidateShipment(offTable); err != nil {
		t.Errorf("unknown port should validate: %v", err)
	}
}

func TestShipmentHasRoute(t *testing.T) {
	lat, lng := 33.749, -84.388
	s := Shipment{OriginLat: &lat, OriginLng: &lng, DestLat: &lat, DestLng: &lng}
	if !s.HasRoute() {
		t.Error("all four coordinates set, expected a route")
	}
	s.DestLng = nil
	if s.HasRoute() {
		t.Error("missing coordinate, expected no route")
	}
	if (Shipment{}).HasRoute() {
		t.Error("zero shipment has no route")
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	var nilSession *Session
	if !nilSession.Expired(now) {
		t.Error("nil session is always expired")
	}
	live := &Session{ExpiresAt: now.Unix() + 60}
	if live.Expired(now) {
		t.Error("session expiring in the future is live")
	}
	dead := &Session{ExpiresAt: now.Unix() - 1}
	if !dead.Expired(now) {
		t.Error("past expiry must report expired")
	}
	// ExpiresAt of zero means the token carried no expiry; treat as live.
	if (&Session{}).Expired(now) {
		t.Error("zero expiry should not count as expired")
	}
}
