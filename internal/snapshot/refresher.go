package snapshot

import (
	"context"

	"go.uber.org/zap"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// Reader is the subset of the backend client the refresher needs.
type Reader interface {
	Select(ctx context.Context, table string, dest any) error
}

// Refresher re-fetches the full snapshot from the external store.
//
// The two reads are independent: if one fails the other still replaces its
// collection, and the failed side keeps its previous (stale) value. Errors
// are logged and never surfaced to the user, and there is no retry. Refresh
// calls are not deduplicated or ordered — two overlapping refreshes both run
// to completion and the snapshot keeps whichever response lands last.
type Refresher struct {
	reader Reader
	store  *Store
}

// NewRefresher wires a refresher to a backend reader and a snapshot store.
func NewRefresher(reader Reader, store *Store) *Refresher {
	return &Refresher{reader: reader, store: store}
}

// Refresh replaces both collections from the external store.
func (r *Refresher) Refresh(ctx context.Context) {
	log := logging.Get(logging.CategorySnapshot)

	var products []types.Product
	if err := r.reader.Select(ctx, supabase.TableProducts, &products); err != nil {
		log.Warn("product refresh failed, keeping stale data", zap.Error(err))
	} else {
		r.store.ReplaceProducts(products)
	}

	var shipments []types.Shipment
	if err := r.reader.Select(ctx, supabase.TableShipments, &shipments); err != nil {
		log.Warn("shipment refresh failed, keeping stale data", zap.Error(err))
	} else {
		r.store.ReplaceShipments(shipments)
	}
}
