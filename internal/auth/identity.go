package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity is the verified principal for the current request, extracted from
// the identity provider's token by the IdentityContext middleware. The role
// is deliberately not part of it: authorization re-resolves the role against
// the profile store and never trusts claims embedded in the credential.
type Identity struct {
	UID    string
	Email  string
	Claims jwt.MapClaims
}

// Store attaches the identity to the request context.
func Store(c *fiber.Ctx, ident *Identity) {
	c.Locals(identityKey, ident)
}

// FromContext returns the verified identity for the request, if any.
func FromContext(c *fiber.Ctx) (*Identity, bool) {
	ident, ok := c.Locals(identityKey).(*Identity)
	return ident, ok && ident != nil
}
