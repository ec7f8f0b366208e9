package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/johanmora/ganaderia-backend/internal/auth"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

// RoleRequired guards a route behind a role set. It requires a verified
// identity in the request context (IdentityContext must run first) and
// resolves the role server-side on every request; the client's cached role
// and any role claim embedded in the token are never trusted.
func RoleRequired(resolver *services.RoleResolver, roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		ident, ok := auth.FromContext(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "missing or invalid credential",
			})
		}

		role := resolver.Resolve(ident)
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "insufficient role",
			})
		}

		c.Locals("role", role)
		return c.Next()
	}
}

// AdminRequired restricts a route to administrators.
func AdminRequired(resolver *services.RoleResolver) fiber.Handler {
	return RoleRequired(resolver, models.RoleAdmin)
}
