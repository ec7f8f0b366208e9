package services

import (
	"log/slog"
	"strings"

	"github.com/johanmora/ganaderia-backend/internal/auth"
	"github.com/johanmora/ganaderia-backend/internal/models"
)

// ProfileStore is the subset of the profile service the resolver needs.
// Narrowed to an interface so route-guard tests can use a double.
type ProfileStore interface {
	GetByID(id string) (*models.Profile, error)
	EnsureRole(id, email string, role models.Role) error
}

// RoleResolver maps a verified identity to exactly one role:
// allow-listed email wins, then the stored profile role, then the default.
type RoleResolver struct {
	store       ProfileStore
	adminEmails map[string]struct{}
}

func NewRoleResolver(store ProfileStore, adminEmails []string) *RoleResolver {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allowed[strings.ToLower(e)] = struct{}{}
	}
	return &RoleResolver{store: store, adminEmails: allowed}
}

// Resolve returns the role for an identity. When an allow-listed email's
// stored profile disagrees, a fire-and-forget write upgrades the profile so
// the store converges on admin; the write never blocks or fails resolution.
func (r *RoleResolver) Resolve(ident *auth.Identity) models.Role {
	if _, ok := r.adminEmails[ident.Email]; ok {
		profile, err := r.store.GetByID(ident.UID)
		if err != nil || profile.Role != models.RoleAdmin {
			go r.healAdminProfile(ident)
		}
		return models.RoleAdmin
	}

	profile, err := r.store.GetByID(ident.UID)
	if err == nil && profile.Role.Valid() {
		return profile.Role
	}
	return models.DefaultRole
}

func (r *RoleResolver) healAdminProfile(ident *auth.Identity) {
	if err := r.store.EnsureRole(ident.UID, ident.Email, models.RoleAdmin); err != nil {
		slog.Error("failed to upgrade allow-listed profile to admin",
			"user_id", ident.UID, "error", err)
	}
}
