package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanmora/ganaderia-backend/internal/models"
)

type fakeProfiles struct {
	mu    sync.Mutex
	roles map[string]models.Role
	err   error
}

func (f *fakeProfiles) GetOrCreate(_ context.Context, uid, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	role, ok := f.roles[uid]
	if !ok {
		role = models.DefaultRole
	}
	return &models.Profile{ID: uid, Email: email, Role: role}, nil
}

type fakeCredentials struct {
	mu     sync.Mutex
	tokens map[string]string
	err    error
	delay  map[string]chan struct{} // block Token until the channel closes
}

func (f *fakeCredentials) Token(ctx context.Context, uid string) (string, error) {
	f.mu.Lock()
	gate := f.delay[uid]
	token := f.tokens[uid]
	err := f.err
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func newFakes() (*fakeProfiles, *fakeCredentials) {
	return &fakeProfiles{roles: map[string]models.Role{}},
		&fakeCredentials{tokens: map[string]string{}, delay: map[string]chan struct{}{}}
}

func TestManagerResolvesAndCommitsAtomically(t *testing.T) {
	profiles, creds := newFakes()
	profiles.roles["uid-1"] = models.RoleTrucker
	creds.tokens["uid-1"] = "tok-1"

	m := NewManager(profiles, creds, []string{"johanmora.jm@gmail.com"})
	m.Handle(context.Background(), Event{Identity: &Identity{UID: "uid-1", Email: "conductor@finca.co"}})
	m.Wait()

	sess, loading := m.Current()
	assert.False(t, loading)
	require.True(t, sess.Authenticated())
	assert.Equal(t, models.RoleTrucker, sess.Role)
	assert.Equal(t, "tok-1", sess.Credential)
}

func TestManagerAllowListedEmailResolvesAdmin(t *testing.T) {
	profiles, creds := newFakes()
	creds.tokens["uid-johan"] = "tok-admin"

	m := NewManager(profiles, creds, []string{"johanmora.jm@gmail.com"})
	m.Handle(context.Background(), Event{Identity: &Identity{UID: "uid-johan", Email: "johanmora.jm@gmail.com"}})
	m.Wait()

	sess, _ := m.Current()
	assert.Equal(t, models.RoleAdmin, sess.Role)
}

func TestManagerLoadingIsIndeterminate(t *testing.T) {
	profiles, creds := newFakes()
	gate := make(chan struct{})
	creds.delay["uid-1"] = gate
	creds.tokens["uid-1"] = "tok-1"

	m := NewManager(profiles, creds, nil)
	m.Handle(context.Background(), Event{Identity: &Identity{UID: "uid-1", Email: "a@b.co"}})

	// Mid-resolution the session must be empty and flagged loading: never a
	// populated role without a credential.
	sess, loading := m.Current()
	assert.True(t, loading)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Role)

	close(gate)
	m.Wait()
	sess, loading = m.Current()
	assert.False(t, loading)
	assert.True(t, sess.Authenticated())
}

func TestManagerSignedOutClearsImmediately(t *testing.T) {
	profiles, creds := newFakes()
	creds.tokens["uid-1"] = "tok-1"

	m := NewManager(profiles, creds, nil)
	m.Handle(context.Background(), Event{Identity: &Identity{UID: "uid-1", Email: "a@b.co"}})
	m.Wait()

	m.Handle(context.Background(), Event{Identity: nil})
	sess, loading := m.Current()
	assert.False(t, loading)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Credential)
}

func TestManagerFailureCommitsEmptySession(t *testing.T) {
	profiles, creds := newFakes()
	creds.err = errors.New("network down")

	m := NewManager(profiles, creds, nil)
	m.Handle(context.Background(), Event{Identity: &Identity{UID: "uid-1", Email: "a@b.co"}})
	m.Wait()

	sess, loading := m.Current()
	assert.False(t, loading)
	assert.False(t, sess.Authenticated())
}

func TestManagerEmptyCredentialCommitsEmptySession(t *testing.T) {
	profiles, creds := newFakes()
	creds.tokens["uid-1"] = ""

	m := NewManager(profiles, creds, nil)
	m.Handle(context.Background(), Event{Identity: &Identity{UID: "uid-1", Email: "a@b.co"}})
	m.Wait()

	sess, _ := m.Current()
	assert.False(t, sess.Authenticated())
}

func TestManagerStaleResolutionIsDiscarded(t *testing.T) {
	profiles, creds := newFakes()
	gate := make(chan struct{})
	creds.delay["uid-slow"] = gate
	creds.tokens["uid-slow"] = "tok-stale"
	creds.tokens["uid-fast"] = "tok-fresh"

	m := NewManager(profiles, creds, nil)
	ctx := context.Background()

	// First event hangs in credential fetch; second supersedes it.
	m.Handle(ctx, Event{Identity: &Identity{UID: "uid-slow", Email: "slow@finca.co"}})
	m.Handle(ctx, Event{Identity: &Identity{UID: "uid-fast", Email: "fast@finca.co"}})
	close(gate)
	m.Wait()

	sess, loading := m.Current()
	assert.False(t, loading)
	assert.Equal(t, "tok-fresh", sess.Credential)
	assert.Equal(t, "uid-fast", sess.Identity.UID)
}

func TestManagerRunConsumesStream(t *testing.T) {
	profiles, creds := newFakes()
	creds.tokens["uid-1"] = "tok-1"

	m := NewManager(profiles, creds, nil)
	events := make(chan Event)
	done := make(chan struct{})
	go func() {
		m.Run(context.Background(), events)
		close(done)
	}()

	events <- Event{Identity: &Identity{UID: "uid-1", Email: "a@b.co"}}
	close(events)
	<-done
	m.Wait()

	require.Eventually(t, func() bool {
		sess, loading := m.Current()
		return !loading && sess.Authenticated()
	}, 2*time.Second, 5*time.Millisecond)
}
