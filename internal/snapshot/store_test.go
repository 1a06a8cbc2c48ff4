package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

func TestReplaceWholesale(t *testing.T) {
	s := NewStore()
	first := []types.Product{
		{ID: "p1", Name: "Chicken Breast", Category: types.CategoryPoultry, StockLevel: 120, Unit: "MT"},
		{ID: "p2", Name: "Pork Loin", Category: types.CategoryPork, StockLevel: 40, Unit: "MT"},
	}
	s.ReplaceProducts(first)
	if diff := cmp.Diff(first, s.Products()); diff != "" {
		t.Errorf("products mismatch (-want +got):\n%s", diff)
	}

	// A replace removes rows absent from the new collection; nothing merges.
	second := []types.Product{{ID: "p3", Name: "Cod Fillet", Category: types.CategorySeafood, StockLevel: 10, Unit: "MT"}}
	s.ReplaceProducts(second)
	if diff := cmp.Diff(second, s.Products()); diff != "" {
		t.Errorf("products not replaced wholesale (-want +got):\n%s", diff)
	}
}

func TestReplaceEmptyClears(t *testing.T) {
	s := NewStore()
	s.ReplaceShipments([]types.Shipment{{ID: "s1", TrackingNumber: "SH-2024-001"}})
	s.ReplaceShipments(nil)
	if got := s.Shipments(); len(got) != 0 {
		t.Errorf("expected empty shipments after nil replace, got %d", len(got))
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewStore()
	s.ReplaceProducts([]types.Product{{ID: "p1", Name: "Chicken Breast"}})

	got := s.Products()
	got[0].Name = "mutated"
	if s.Products()[0].Name != "Chicken Breast" {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestReplaceCopiesIn(t *testing.T) {
	s := NewStore()
	in := []types.Product{{ID: "p1", Name: "Chicken Breast"}}
	s.ReplaceProducts(in)

	// The caller keeps no handle into the snapshot after a replace.
	in[0].Name = "mutated"
	if s.Products()[0].Name != "Chicken Breast" {
		t.Error("mutating the input slice must not affect the store")
	}

	ships := []types.Shipment{{ID: "s1", TrackingNumber: "SH-2024-001"}}
	s.ReplaceShipments(ships)
	ships[0].TrackingNumber = "mutated"
	if s.Shipments()[0].TrackingNumber != "SH-2024-001" {
		t.Error("mutating the input slice must not affect the store")
	}
}

func TestSubscribersNotifiedPerReplace(t *testing.T) {
	s := NewStore()
	var calls int
	s.Subscribe(func() { calls++ })

	s.ReplaceProducts(nil)
	s.ReplaceShipments(nil)
	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
}
