package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/johanmora/ganaderia-backend/internal/models"
)

// ProfileFetcher fetches or lazily creates the profile for an identity.
type ProfileFetcher interface {
	GetOrCreate(ctx context.Context, uid, email string) (*models.Profile, error)
}

// CredentialSource returns a fresh bearer credential for the signed-in
// identity (the provider SDK's token refresh).
type CredentialSource interface {
	Token(ctx context.Context, uid string) (string, error)
}

// Manager resolves identity-state events into session snapshots. Each event
// cancels any in-flight resolution and bumps a monotonic sequence number;
// only the resolution carrying the latest sequence may commit, so a stale
// slow resolution can never overwrite a newer one.
type Manager struct {
	profiles    ProfileFetcher
	credentials CredentialSource
	adminEmails map[string]struct{}

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current Session
	loading bool

	resolved *sync.WaitGroup
}

func NewManager(profiles ProfileFetcher, credentials CredentialSource, adminEmails []string) *Manager {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allowed[strings.ToLower(e)] = struct{}{}
	}
	return &Manager{
		profiles:    profiles,
		credentials: credentials,
		adminEmails: allowed,
		resolved:    &sync.WaitGroup{},
	}
}

// Run consumes identity events until the stream closes or ctx is done.
// Subscribe once at application start.
func (m *Manager) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			m.Handle(ctx, ev)
		}
	}
}

// Handle processes one identity-state change. The previous session is
// cleared immediately; resolution of a present identity runs asynchronously
// and commits atomically when done.
func (m *Manager) Handle(ctx context.Context, ev Event) {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.current = Session{}

	if ev.Identity == nil {
		m.loading = false
		m.mu.Unlock()
		return
	}

	m.loading = true
	resolveCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	m.resolved.Add(1)
	go func() {
		defer m.resolved.Done()
		m.resolve(resolveCtx, seq, *ev.Identity)
	}()
}

func (m *Manager) resolve(ctx context.Context, seq uint64, ident Identity) {
	profile, err := m.profiles.GetOrCreate(ctx, ident.UID, ident.Email)
	if err != nil {
		slog.Error("session profile fetch failed", "user_id", ident.UID, "error", err)
		m.commit(seq, Session{})
		return
	}

	role := m.resolveRole(ident, profile)

	token, err := m.credentials.Token(ctx, ident.UID)
	if err != nil || token == "" {
		if err != nil {
			slog.Error("session credential fetch failed", "user_id", ident.UID, "error", err)
		}
		m.commit(seq, Session{})
		return
	}

	m.commit(seq, Session{
		Identity:    ident,
		DisplayName: profile.DisplayName,
		Role:        role,
		Credential:  token,
	})
}

// resolveRole mirrors the server-side precedence: allow-listed email wins,
// then the stored profile role, then the default.
func (m *Manager) resolveRole(ident Identity, profile *models.Profile) models.Role {
	if _, ok := m.adminEmails[strings.ToLower(ident.Email)]; ok {
		return models.RoleAdmin
	}
	if profile != nil && profile.Role.Valid() {
		return profile.Role
	}
	return models.DefaultRole
}

func (m *Manager) commit(seq uint64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.seq {
		// superseded by a newer event; discard
		return
	}
	m.current = s
	m.loading = false
}

// Current returns the session snapshot and whether a resolution is still in
// flight. Consumers must treat loading=true as indeterminate.
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.loading
}

// Wait blocks until all started resolutions have finished. Test helper.
func (m *Manager) Wait() {
	m.resolved.Wait()
}
