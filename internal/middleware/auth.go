package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/johanmora/ganaderia-backend/internal/auth"
	"github.com/johanmora/ganaderia-backend/internal/config"
	"github.com/johanmora/ganaderia-backend/internal/dto"
)

// Protected verifies the bearer credential on every request. In production
// the identity provider's JWKS endpoint supplies the RS256 keys; with
// AUTH_DEV_SECRET set (local dev, tests) verification falls back to HS256.
// A missing, malformed, expired, or badly signed token terminates the
// request with 401 — there is no retry.
func Protected(cfg *config.Config) fiber.Handler {
	conf := jwtware.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "missing or invalid credential",
			})
		},
	}
	if cfg.AuthJWKSURL != "" {
		conf.JWKSetURLs = []string{cfg.AuthJWKSURL}
	} else {
		conf.SigningKey = jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.AuthDevSecret),
		}
	}
	return jwtware.New(conf)
}

// IdentityContext runs after Protected. It checks issuer and audience when
// configured and attaches the decoded identity to the request context.
func IdentityContext(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c, "missing or invalid credential")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "invalid token claims")
		}

		if cfg.AuthIssuer != "" {
			iss, err := claims.GetIssuer()
			if err != nil || iss != cfg.AuthIssuer {
				return unauthorized(c, "invalid token issuer")
			}
		}

		if cfg.AuthAudience != "" {
			aud, err := claims.GetAudience()
			if err != nil || !containsAudience(aud, cfg.AuthAudience) {
				return unauthorized(c, "invalid token audience")
			}
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return unauthorized(c, "invalid token claims")
		}
		email, _ := claims["email"].(string)

		auth.Store(c, &auth.Identity{
			UID:    sub,
			Email:  strings.ToLower(email),
			Claims: claims,
		})
		return c.Next()
	}
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg})
}
