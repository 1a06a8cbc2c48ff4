// Package session holds the authenticated identity for the portal: the
// current session token and the profile bound to it. Its presence gates
// whether the rest of the UI mounts at all.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// ProfileReader is the subset of the backend client used to fetch profiles.
type ProfileReader interface {
	SelectOne(ctx context.Context, table, column, value string, dest any) error
}

// Store tracks the current session and profile and reacts to events from
// the auth-state-change stream.
//
// Sign-out clears the session and profile but leaves the business data
// snapshot untouched; stale products and shipments stay in memory until the
// next sign-in refreshes them. A failed profile fetch is logged and
// swallowed — the UI simply renders without a profile.
type Store struct {
	profiles ProfileReader
	refresh  func(context.Context)

	mu      sync.RWMutex
	session *types.Session
	profile *types.Profile

	subMu       sync.Mutex
	subscribers []func()
}

// NewStore creates a session store. refresh is invoked after every sign-in
// to rebuild the business data snapshot; it may be nil in tests.
func NewStore(profiles ProfileReader, refresh func(context.Context)) *Store {
	if refresh == nil {
		refresh = func(context.Context) {}
	}
	return &Store{profiles: profiles, refresh: refresh}
}

// Session returns the current session, or nil when signed out.
func (s *Store) Session() *types.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Profile returns the profile for the current session, or nil.
func (s *Store) Profile() *types.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SignedIn reports whether a session is present.
func (s *Store) SignedIn() bool {
	return s.Session() != nil
}

// Subscribe registers a callback invoked after every auth transition.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// HandleAuthChange consumes one event from the auth-state-change stream.
func (s *Store) HandleAuthChange(ctx context.Context, event types.AuthEvent, sess *types.Session) {
	log := logging.Get(logging.CategoryAuth)
	log.Info("auth state change", zap.Stringer("event", event))

	switch event {
	case types.EventSignedIn:
		s.mu.Lock()
		s.session = sess
		s.mu.Unlock()
		s.fetchProfile(ctx, sess)
		s.refresh(ctx)
	case types.EventTokenRefreshed:
		s.mu.Lock()
		s.session = sess
		s.mu.Unlock()
	case types.EventSignedOut:
		s.mu.Lock()
		s.session = nil
		s.profile = nil
		s.mu.Unlock()
		// The snapshot is intentionally left as-is.
	}

	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) fetchProfile(ctx context.Context, sess *types.Session) {
	if sess == nil {
		return
	}
	var profile types.Profile
	err := s.profiles.SelectOne(ctx, supabase.TableProfiles, "id", sess.User.ID, &profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Swallowed: no profile rendered, no error surfaced.
		logging.Get(logging.CategoryAuth).Warn("profile fetch failed", zap.Error(err))
		s.profile = nil
		return
	}
	s.profile = &profile
}
