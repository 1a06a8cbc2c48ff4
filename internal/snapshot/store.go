// Package snapshot owns the in-memory copy of the business data every view
// renders from: the product list and the shipment list. The snapshot is the
// single source of truth — views keep no copy of their own — and is only
// ever replaced wholesale, never patched.
package snapshot

import (
	"sync"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// Store holds the current snapshot and notifies subscribers on every replace.
type Store struct {
	mu        sync.RWMutex
	products  []types.Product
	shipments []types.Shipment

	subMu       sync.Mutex
	subscribers []func()
}

// NewStore returns an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Products returns a copy of the current product collection.
func (s *Store) Products() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Shipments returns a copy of the current shipment collection.
func (s *Store) Shipments() []types.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out
}

// ReplaceProducts swaps the product collection wholesale. The slice is
// copied in, so the caller keeps no handle into the snapshot.
func (s *Store) ReplaceProducts(products []types.Product) {
	cp := make([]types.Product, len(products))
	copy(cp, products)
	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
	s.notify()
}

// ReplaceShipments swaps the shipment collection wholesale. The slice is
// copied in, so the caller keeps no handle into the snapshot.
func (s *Store) ReplaceShipments(shipments []types.Shipment) {
	cp := make([]types.Shipment, len(shipments))
	copy(cp, shipments)
	s.mu.Lock()
	s.shipments = cp
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a callback invoked after every replace. Callbacks run
// synchronously on the replacing goroutine and must not block.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
