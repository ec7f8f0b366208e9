package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanmora/ganaderia-backend/internal/auth"
	"github.com/johanmora/ganaderia-backend/internal/database"
	"github.com/johanmora/ganaderia-backend/internal/models"
)

func newResolver(t *testing.T, adminEmails ...string) (*RoleResolver, *ProfileService) {
	t.Helper()
	db, err := database.OpenEphemeral()
	require.NoError(t, err)
	profiles := NewProfileService(db)
	return NewRoleResolver(profiles, adminEmails), profiles
}

func ident(uid, email string) *auth.Identity {
	return &auth.Identity{UID: uid, Email: email}
}

func TestResolveAllowListedEmailIsAdmin(t *testing.T) {
	resolver, profiles := newResolver(t, "johanmora.jm@gmail.com")

	// Stored role disagrees on purpose; the allow-list must win.
	require.NoError(t, profiles.EnsureRole("uid-1", "johanmora.jm@gmail.com", models.RoleTrucker))

	role := resolver.Resolve(ident("uid-1", "johanmora.jm@gmail.com"))
	assert.Equal(t, models.RoleAdmin, role)
}

func TestResolveAllowListHealsStoredProfile(t *testing.T) {
	resolver, profiles := newResolver(t, "johanmora.jm@gmail.com")

	// No profile yet: resolution must still return admin immediately and a
	// profile write must follow.
	role := resolver.Resolve(ident("uid-1", "johanmora.jm@gmail.com"))
	assert.Equal(t, models.RoleAdmin, role)

	require.Eventually(t, func() bool {
		profile, err := profiles.GetByID("uid-1")
		return err == nil && profile.Role == models.RoleAdmin
	}, 2*time.Second, 10*time.Millisecond, "expected self-healing admin profile write")
}

func TestResolveStoredRoleWins(t *testing.T) {
	resolver, profiles := newResolver(t, "johanmora.jm@gmail.com")

	require.NoError(t, profiles.EnsureRole("uid-2", "driver@finca.co", models.RoleTrucker))

	role := resolver.Resolve(ident("uid-2", "driver@finca.co"))
	assert.Equal(t, models.RoleTrucker, role)
}

func TestResolveMissingProfileDefaultsToForeman(t *testing.T) {
	resolver, _ := newResolver(t, "johanmora.jm@gmail.com")

	role := resolver.Resolve(ident("uid-3", "nuevo@finca.co"))
	assert.Equal(t, models.RoleForeman, role)
}

func TestResolveIsIdempotent(t *testing.T) {
	resolver, profiles := newResolver(t, "johanmora.jm@gmail.com")
	require.NoError(t, profiles.EnsureRole("uid-4", "capataz@finca.co", models.RoleForeman))

	id := ident("uid-4", "capataz@finca.co")
	first := resolver.Resolve(id)
	second := resolver.Resolve(id)
	assert.Equal(t, first, second)
}

func TestResolveAllowListIsCaseInsensitive(t *testing.T) {
	resolver, _ := newResolver(t, "Johanmora.JM@gmail.com")

	role := resolver.Resolve(ident("uid-5", "johanmora.jm@gmail.com"))
	assert.Equal(t, models.RoleAdmin, role)
}
