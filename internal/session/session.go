// Package session mirrors the web client's auth context on the Go side: it
// consumes identity-state events from the provider SDK, resolves the
// application role, fetches a fresh credential, and exposes the result as an
// atomically committed session snapshot for route guards.
package session

import "github.com/johanmora/ganaderia-backend/internal/models"

// Identity is the provider-issued principal as seen by the client.
type Identity struct {
	UID   string
	Email string
}

// Event is one identity-state change. A nil Identity means signed out.
type Event struct {
	Identity *Identity
}

// Session is the derived, non-authoritative projection of the signed-in
// state. It is committed as a whole: a populated Role never appears without
// a non-empty Credential.
type Session struct {
	Identity    Identity
	DisplayName string
	Role        models.Role
	Credential  string
}

// Authenticated reports whether the session holds a usable credential.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}
