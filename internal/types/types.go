// Package types defines the domain model shared across the AJC portal:
// profiles, products, shipments and the authenticated session. Field names
// and JSON tags mirror the hosted database columns.
package types

import (
	"fmt"
	"time"
)

// =============================================================================
// ENUMS
// =============================================================================

// UserRole is the access role carried on a profile.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleLogistics UserRole = "logistics"
	RoleSales     UserRole = "sales"
	RoleViewer    UserRole = "viewer"
)

// ProductCategory classifies inventory stock.
type ProductCategory string

const (
	CategoryPoultry    ProductCategory = "Poultry"
	CategoryPork       ProductCategory = "Pork"
	CategoryBeef       ProductCategory = "Beef"
	CategorySeafood    ProductCategory = "Seafood"
	CategoryVegetables ProductCategory = "Vegetables"
	CategoryFries      ProductCategory = "Fries"
)

// Categories lists all product categories in display order.
func Categories() []ProductCategory {
	return []ProductCategory{
		CategoryPoultry, CategoryPork, CategoryBeef,
		CategorySeafood, CategoryVegetables, CategoryFries,
	}
}

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryPoultry, CategoryPork, CategoryBeef,
		CategorySeafood, CategoryVegetables, CategoryFries:
		return true
	}
	return false
}

// ShipmentStatus is the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "Pending"
	StatusInTransit ShipmentStatus = "In Transit"
	StatusCustoms   ShipmentStatus = "Customs"
	StatusDelivered ShipmentStatus = "Delivered"
)

// Statuses lists all shipment statuses in display order.
func Statuses() []ShipmentStatus {
	return []ShipmentStatus{StatusPending, StatusInTransit, StatusCustoms, StatusDelivered}
}

// Valid reports whether the status is one of the known values.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusCustoms, StatusDelivered:
		return true
	}
	return false
}

// =============================================================================
// RECORDS
// =============================================================================

// Profile is the display identity bound to an authenticated user.
// Read-only to the UI; fetched once per session establishment.
type Profile struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	AvatarURL *string  `json:"avatar_url"`
	Role      UserRole `json:"role"`
	CreatedAt string   `json:"created_at"`
}

// Product is a stock record in the global inventory.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   ProductCategory `json:"category"`
	StockLevel float64         `json:"stock_level"`
	Unit       string          `json:"unit"`
	Location   string          `json:"location"`
	CreatedAt  string          `json:"created_at,omitempty"`
}

// Shipment is a logistics record. Coordinate pointers are nil when the
// origin or destination port is not in the static port table; such
// shipments render without a map route.
type Shipment struct {
	ID             string         `json:"id"`
	TrackingNumber string         `json:"tracking_number"`
	Origin         string         `json:"origin"`
	Destination    string         `json:"destination"`
	Status         ShipmentStatus `json:"status"`
	ProductName    string         `json:"product_name"`
	ETA            string         `json:"eta"`
	OriginLat      *float64       `json:"origin_lat,omitempty"`
	OriginLng      *float64       `json:"origin_lng,omitempty"`
	DestLat        *float64       `json:"dest_lat,omitempty"`
	DestLng        *float64       `json:"dest_lng,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
}

// HasRoute reports whether both endpoints resolved to coordinates.
func (s Shipment) HasRoute() bool {
	return s.OriginLat != nil && s.OriginLng != nil && s.DestLat != nil && s.DestLng != nil
}

// =============================================================================
// SESSION
// =============================================================================

// SessionUser identifies the authenticated user inside a session token.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the opaque authenticated identity issued by the auth service.
type Session struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	RefreshToken string      `json:"refresh_token"`
	User         SessionUser `json:"user"`
}

// Expired reports whether the session's access token is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}

// AuthEvent names a transition on the auth-state-change stream.
type AuthEvent string

const (
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// String implements fmt.Stringer for log output.
func (e AuthEvent) String() string { return string(e) }

// =============================================================================
// FORM VALIDATION
// =============================================================================

// ValidateProduct checks the basic input constraints the create form enforces.
func ValidateProduct(p Product) error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown product category %q", p.Category)
	}
	if p.StockLevel < 0 {
		return fmt.Errorf("stock level must be non-negative")
	}
	if p.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	if p.Location == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

// ValidateShipment checks the basic input constraints the create form enforces.
// Port resolution is not part of validation: unknown ports are allowed.
func ValidateShipment(s Shipment) error {
	if s.TrackingNumber == "" {
		return fmt.Errorf("tracking number is required")
	}
	if s.Origin == "" {
		return fmt.Errorf("origin is required")
	}
	if s.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if !s.Status.Valid() {
		return fmt.Errorf("unknown shipment status %q", s.Status)
	}
	if s.ProductName == "" {
		return fmt.Errorf("product name is required")
	}
	if _, err := time.Parse("2006-01-02", s.ETA); err != nil {
		return fmt.Errorf("eta must be a YYYY-MM-DD date: %w", err)
	}
	return nil
}
