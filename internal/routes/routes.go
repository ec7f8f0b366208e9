package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/johanmora/ganaderia-backend/internal/config"
	"github.com/johanmora/ganaderia-backend/internal/handlers"
	"github.com/johanmora/ganaderia-backend/internal/middleware"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

// Handlers bundles everything Setup mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Profile   *handlers.ProfileHandler
	User      *handlers.UserHandler
	Farm      *handlers.FarmHandler
	Movement  *handlers.MovementHandler
	Inventory *handlers.InventoryHandler
	Sale      *handlers.SaleHandler
	Auction   *handlers.AuctionHandler
	Trip      *handlers.TripHandler
	Event     *handlers.EventHandler
}

// Setup mounts the API route table. Path names stay in Spanish for
// compatibility with the existing web client; everything except /api/health
// sits behind token verification, with admin-only routes additionally
// guarded by server-side role resolution.
func Setup(app *fiber.App, cfg *config.Config, resolver *services.RoleResolver, h *Handlers) {
	api := app.Group("/api")

	// 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	secured := api.Group("", middleware.Protected(cfg), middleware.IdentityContext(cfg))
	adminOnly := middleware.AdminRequired(resolver)

	// Own profile (created lazily on first fetch)
	secured.Get("/perfil", h.Profile.Get)
	secured.Put("/perfil", h.Profile.Update)

	// User management (admin)
	secured.Get("/usuarios", adminOnly, h.User.List)
	secured.Put("/usuarios/:id/rol", adminOnly, h.User.UpdateRole)

	// Farms
	secured.Get("/fincas", h.Farm.List)
	secured.Post("/fincas", h.Farm.Create)
	secured.Get("/fincas/:id", h.Farm.Get)
	secured.Put("/fincas/:id", h.Farm.Update)
	secured.Delete("/fincas/:id", h.Farm.Delete)

	// Animal movements; summary before :id so the path doesn't shadow it
	secured.Get("/movimientos/resumen", adminOnly, h.Movement.Summary)
	secured.Get("/movimientos", h.Movement.List)
	secured.Post("/movimientos", h.Movement.Create)
	secured.Get("/movimientos/:id", h.Movement.Get)
	secured.Put("/movimientos/:id", h.Movement.Update)
	secured.Delete("/movimientos/:id", h.Movement.Delete)

	// Warehouse inventory
	secured.Get("/bodega", h.Inventory.List)
	secured.Post("/bodega", h.Inventory.Create)
	secured.Get("/bodega/:id", h.Inventory.Get)
	secured.Put("/bodega/:id", h.Inventory.Update)
	secured.Delete("/bodega/:id", h.Inventory.Delete)

	// Sales
	secured.Get("/ventas", h.Sale.List)
	secured.Post("/ventas", h.Sale.Create)
	secured.Get("/ventas/:id", h.Sale.Get)
	secured.Put("/ventas/:id", h.Sale.Update)
	secured.Delete("/ventas/:id", h.Sale.Delete)

	// Auctions
	secured.Get("/subastas", h.Auction.List)
	secured.Post("/subastas", h.Auction.Create)
	secured.Get("/subastas/:id", h.Auction.Get)
	secured.Put("/subastas/:id", h.Auction.Update)
	secured.Delete("/subastas/:id", h.Auction.Delete)

	// Transport trips: reads for any authenticated user, writes admin-only
	secured.Get("/viajes/resumen", adminOnly, h.Trip.Summary)
	secured.Get("/viajes", h.Trip.List)
	secured.Post("/viajes", adminOnly, h.Trip.Create)
	secured.Get("/viajes/:id", h.Trip.Get)
	secured.Put("/viajes/:id", adminOnly, h.Trip.Update)
	secured.Delete("/viajes/:id", adminOnly, h.Trip.Delete)

	// Calendar
	secured.Get("/calendario", h.Event.List)
	secured.Post("/calendario", h.Event.Create)
	secured.Get("/calendario/:id", h.Event.Get)
	secured.Put("/calendario/:id", h.Event.Update)
	secured.Delete("/calendario/:id", h.Event.Delete)
}
