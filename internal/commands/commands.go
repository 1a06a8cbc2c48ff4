// Package commands implements the portal's mutation commands: create and
// delete for products and shipments. Every command writes to the external
// store and then triggers a full snapshot refresh; nothing is updated
// optimistically, so the UI only ever shows committed external state.
package commands

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/ports"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// Writer is the subset of the backend client mutation commands need.
type Writer interface {
	Insert(ctx context.Context, table string, record any) error
	Delete(ctx context.Context, table, id string) error
}

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Commands issues mutations against the external store.
type Commands struct {
	writer  Writer
	refresh func(context.Context)
}

// New wires the command set to a backend writer and a snapshot refresh
// trigger. refresh may be nil in tests.
func New(writer Writer, refresh func(context.Context)) *Commands {
	if refresh == nil {
		refresh = func(context.Context) {}
	}
	return &Commands{writer: writer, refresh: refresh}
}

// CreateProduct validates and inserts a new product, then refreshes the
// snapshot. The returned error is the external store's message, suitable
// for display in the open form.
func (c *Commands) CreateProduct(ctx context.Context, draft types.Product) error {
	if err := types.ValidateProduct(draft); err != nil {
		return err
	}
	draft.ID = uuid.NewString()
	draft.CreatedAt = ""

	if err := c.writer.Insert(ctx, supabase.TableProducts, draft); err != nil {
		logging.Get(logging.CategoryCommands).Error("create product failed", zap.Error(err))
		return err
	}
	logging.Get(logging.CategoryCommands).Info("product created",
		zap.String("id", draft.ID), zap.String("name", draft.Name))
	c.refresh(ctx)
	return nil
}

// CreateShipment validates and inserts a new shipment, then refreshes the
// snapshot. Origin and destination are resolved through the static port
// table; unknown ports leave the coordinates nil rather than failing.
func (c *Commands) CreateShipment(ctx context.Context, draft types.Shipment) error {
	if err := types.ValidateShipment(draft); err != nil {
		return err
	}
	draft.ID = uuid.NewString()
	draft.CreatedAt = ""
	resolveRoute(&draft)

	if err := c.writer.Insert(ctx, supabase.TableShipments, draft); err != nil {
		logging.Get(logging.CategoryCommands).Error("create shipment failed", zap.Error(err))
		return err
	}
	logging.Get(logging.CategoryCommands).Info("shipment created",
		zap.String("id", draft.ID), zap.String("tracking", draft.TrackingNumber))
	c.refresh(ctx)
	return nil
}

// DeleteProduct removes a product by id after interactive confirmation.
// A declined confirmation issues no external call and returns (false, nil).
func (c *Commands) DeleteProduct(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	return c.deleteRecord(ctx, supabase.TableProducts, id, confirm, "Delete this product?")
}

// DeleteShipment removes a shipment by id after interactive confirmation.
func (c *Commands) DeleteShipment(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	return c.deleteRecord(ctx, supabase.TableShipments, id, confirm, "Delete this shipment?")
}

func (c *Commands) deleteRecord(ctx context.Context, table, id string, confirm Confirmer, prompt string) (bool, error) {
	if confirm == nil || !confirm.Confirm(prompt) {
		return false, nil
	}
	if err := c.writer.Delete(ctx, table, id); err != nil {
		logging.Get(logging.CategoryCommands).Error("delete failed",
			zap.String("table", table), zap.String("id", id), zap.Error(err))
		return false, err
	}
	logging.Get(logging.CategoryCommands).Info("record deleted",
		zap.String("table", table), zap.String("id", id))
	c.refresh(ctx)
	return true, nil
}

// resolveRoute fills in coordinates for both endpoints where the port table
// knows them. A miss on either side leaves that side's pair nil.
func resolveRoute(s *types.Shipment) {
	if origin, ok := ports.Lookup(s.Origin); ok {
		s.OriginLat, s.OriginLng = &origin.Lat, &origin.Lng
	}
	if dest, ok := ports.Lookup(s.Destination); ok {
		s.DestLat, s.DestLng = &dest.Lat, &dest.Lng
	}
}
