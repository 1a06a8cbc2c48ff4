package session

import (
	"context"
	"errors"
	"testing"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/snapshot"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

type fakeProfiles struct {
	profile types.Profile
	err     error
	calls   int
	lastID  string
}

func (f *fakeProfiles) SelectOne(_ context.Context, table, column, value string, dest any) error {
	f.calls++
	f.lastID = value
	if table != supabase.TableProfiles || column != "id" {
		return errors.New("unexpected query")
	}
	if f.err != nil {
		return f.err
	}
	*dest.(*types.Profile) = f.profile
	return nil
}

func session(userID string) *types.Session {
	return &types.Session{
		AccessToken: "tok-" + userID,
		User:        types.SessionUser{ID: userID, Email: userID + "@ajc.example"},
	}
}

func TestSignInFetchesProfileAndRefreshes(t *testing.T) {
	profiles := &fakeProfiles{profile: types.Profile{ID: "u1", FullName: "Ops Lead", Role: types.RoleAdmin}}
	var refreshed int
	s := NewStore(profiles, func(context.Context) { refreshed++ })

	s.HandleAuthChange(context.Background(), types.EventSignedIn, session("u1"))

	if !s.SignedIn() {
		t.Fatal("expected a live session after sign-in")
	}
	if p := s.Profile(); p == nil || p.FullName != "Ops Lead" {
		t.Errorf("profile not stored: %+v", p)
	}
	if profiles.lastID != "u1" {
		t.Errorf("profile fetched for %q, want u1", profiles.lastID)
	}
	if refreshed != 1 {
		t.Errorf("expected one snapshot refresh, got %d", refreshed)
	}
}

func TestProfileFetchFailureIsSwallowed(t *testing.T) {
	profiles := &fakeProfiles{err: errors.New("row not found")}
	var refreshed int
	s := NewStore(profiles, func(context.Context) { refreshed++ })

	s.HandleAuthChange(context.Background(), types.EventSignedIn, session("u1"))

	// The session stands, the UI just has no profile to show, and the
	// snapshot refresh still runs.
	if !s.SignedIn() {
		t.Error("profile failure must not block sign-in")
	}
	if s.Profile() != nil {
		t.Error("expected nil profile after failed fetch")
	}
	if refreshed != 1 {
		t.Errorf("expected one snapshot refresh, got %d", refreshed)
	}
}

func TestTokenRefreshKeepsProfile(t *testing.T) {
	profiles := &fakeProfiles{profile: types.Profile{ID: "u1", FullName: "Ops Lead"}}
	s := NewStore(profiles, nil)

	s.HandleAuthChange(context.Background(), types.EventSignedIn, session("u1"))
	s.HandleAuthChange(context.Background(), types.EventTokenRefreshed, session("u1"))

	if profiles.calls != 1 {
		t.Errorf("token refresh must not refetch the profile, got %d calls", profiles.calls)
	}
	if s.Profile() == nil {
		t.Error("profile lost on token refresh")
	}
}

func TestSignOutLeavesSnapshotStale(t *testing.T) {
	data := snapshot.NewStore()
	data.ReplaceProducts([]types.Product{{ID: "p1", Name: "Chicken Breast"}})
	data.ReplaceShipments([]types.Shipment{{ID: "s1", TrackingNumber: "SH-2024-001"}})

	profiles := &fakeProfiles{profile: types.Profile{ID: "u1"}}
	s := NewStore(profiles, nil)
	s.HandleAuthChange(context.Background(), types.EventSignedIn, session("u1"))
	s.HandleAuthChange(context.Background(), types.EventSignedOut, nil)

	if s.Session() != nil || s.Profile() != nil {
		t.Error("sign-out must clear session and profile")
	}
	// The business data snapshot is not touched on sign-out. The stale rows
	// stay in memory until the next sign-in refreshes them.
	if len(data.Products()) != 1 || len(data.Shipments()) != 1 {
		t.Error("sign-out must not clear the data snapshot")
	}
}

func TestSubscribersNotifiedOnEveryEvent(t *testing.T) {
	s := NewStore(&fakeProfiles{}, nil)
	var calls int
	s.Subscribe(func() { calls++ })

	s.HandleAuthChange(context.Background(), types.EventSignedIn, session("u1"))
	s.HandleAuthChange(context.Background(), types.EventTokenRefreshed, session("u1"))
	s.HandleAuthChange(context.Background(), types.EventSignedOut, nil)

	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}
}
