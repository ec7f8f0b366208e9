package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/johanmora/ganaderia-backend/internal/config"
)

// CORS allows the configured web origins plus any localhost/127.0.0.1 port
// (dev servers pick arbitrary ports). Preflight requests short-circuit here,
// before any credential check, and are cached for 24 hours.
func CORS(cfg *config.Config) fiber.Handler {
	allowed := parseOrigins(cfg.CORSOrigins)

	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return originAllowed(allowed, origin)
		},
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400,
	})
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func originAllowed(allowed []string, origin string) bool {
	if isLocalOrigin(origin) {
		return true
	}
	for _, a := range allowed {
		if origin == a || strings.HasPrefix(origin, a) {
			return true
		}
	}
	return false
}

// isLocalOrigin accepts localhost and 127.0.0.1 on any port, http or https.
func isLocalOrigin(origin string) bool {
	rest := origin
	switch {
	case strings.HasPrefix(rest, "http://"):
		rest = strings.TrimPrefix(rest, "http://")
	case strings.HasPrefix(rest, "https://"):
		rest = strings.TrimPrefix(rest, "https://")
	default:
		return false
	}
	host := rest
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		host = rest[:i]
	}
	return host == "localhost" || host == "127.0.0.1"
}
