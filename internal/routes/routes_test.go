package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/johanmora/ganaderia-backend/internal/config"
	"github.com/johanmora/ganaderia-backend/internal/database"
	"github.com/johanmora/ganaderia-backend/internal/handlers"
	"github.com/johanmora/ganaderia-backend/internal/middleware"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.OpenEphemeral()
	require.NoError(t, err)

	cfg := &config.Config{
		AuthDevSecret: testSecret,
		AdminEmails:   "johanmora.jm@gmail.com",
	}

	profileService := services.NewProfileService(db)
	resolver := services.NewRoleResolver(profileService, cfg.AdminEmailList())

	h := &Handlers{
		Health:    handlers.NewHealthHandler(db),
		Profile:   handlers.NewProfileHandler(profileService),
		User:      handlers.NewUserHandler(profileService),
		Farm:      handlers.NewFarmHandler(services.NewFarmService(db)),
		Movement:  handlers.NewMovementHandler(services.NewMovementService(db)),
		Inventory: handlers.NewInventoryHandler(services.NewInventoryService(db)),
		Sale:      handlers.NewSaleHandler(services.NewSaleService(db)),
		Auction:   handlers.NewAuctionHandler(services.NewAuctionService(db)),
		Trip:      handlers.NewTripHandler(services.NewTripService(db)),
		Event:     handlers.NewEventHandler(services.NewEventService(db)),
	}

	app := fiber.New()
	app.Use(middleware.CORS(cfg))
	Setup(app, cfg, resolver, h)
	return app, db
}

func bearer(t *testing.T, uid, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestProtectedRouteWithoutCredentialIs401(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/fincas", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["error"])
}

func TestMalformedCredentialIs401(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/fincas", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPreflightShortCircuitsBeforeAuth(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/fincas", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestHealthIsPublic(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFarmCRUDLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := bearer(t, "uid-capataz", "capataz@finca.co")

	resp := doJSON(t, app, http.MethodPost, "/api/fincas", token, fiber.Map{
		"name": "La Esperanza", "location": "Monteria", "capacity": 300,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var farm models.Farm
	decodeBody(t, resp, &farm)
	assert.Equal(t, "La Esperanza", farm.Name)
	assert.Equal(t, "uid-capataz", farm.CreatedBy)

	resp = doJSON(t, app, http.MethodGet, "/api/fincas", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var farms []models.Farm
	decodeBody(t, resp, &farms)
	require.Len(t, farms, 1)

	resp = doJSON(t, app, http.MethodPut, "/api/fincas/"+farm.ID.String(), token, fiber.Map{
		"name": "La Esperanza II", "capacity": 350,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/fincas/"+farm.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/fincas/"+farm.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFarmValidationOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	token := bearer(t, "uid-capataz", "capataz@finca.co")

	resp := doJSON(t, app, http.MethodPost, "/api/fincas", token, fiber.Map{"location": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementAgainstUnknownFarmIs404(t *testing.T) {
	app, _ := newTestApp(t)
	token := bearer(t, "uid-capataz", "capataz@finca.co")

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", token, fiber.Map{
		"farm_id":  uuid.NewString(),
		"date":     time.Now().Format(time.RFC3339),
		"kind":     "entrada",
		"category": "vacas",
		"quantity": 5,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTripWritesAreAdminOnly(t *testing.T) {
	app, _ := newTestApp(t)
	foreman := bearer(t, "uid-capataz", "capataz@finca.co")
	admin := bearer(t, "uid-admin", "johanmora.jm@gmail.com")

	tripBody := fiber.Map{
		"date":        time.Now().Format(time.RFC3339),
		"origin":      "La Esperanza",
		"destination": "Subasta Monteria",
		"cargo":       "novillos",
		"quantity":    12,
	}

	resp := doJSON(t, app, http.MethodPost, "/api/viajes", foreman, tripBody)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/viajes", admin, tripBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var trip models.Trip
	decodeBody(t, resp, &trip)
	assert.Equal(t, models.TripScheduled, trip.Status)

	// Reads stay open to any authenticated user.
	resp = doJSON(t, app, http.MethodGet, "/api/viajes", foreman, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/viajes/"+trip.ID.String(), foreman, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTripSummaryForbiddenForNonAdmin(t *testing.T) {
	app, _ := newTestApp(t)
	foreman := bearer(t, "uid-capataz", "capataz@finca.co")

	resp := doJSON(t, app, http.MethodGet, "/api/viajes/resumen", foreman, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAllowListedAdminWithoutProfile(t *testing.T) {
	app, db := newTestApp(t)
	admin := bearer(t, "uid-johan", "johanmora.jm@gmail.com")

	resp := doJSON(t, app, http.MethodGet, "/api/movimientos/resumen", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The self-healing write runs async; the profile must converge on admin.
	require.Eventually(t, func() bool {
		var profile models.Profile
		if err := db.First(&profile, "id = ?", "uid-johan").Error; err != nil {
			return false
		}
		return profile.Role == models.RoleAdmin
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUserListIsAdminOnly(t *testing.T) {
	app, _ := newTestApp(t)
	foreman := bearer(t, "uid-capataz", "capataz@finca.co")

	resp := doJSON(t, app, http.MethodGet, "/api/usuarios", foreman, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProfileLazyCreationAndRoleAssignment(t *testing.T) {
	app, _ := newTestApp(t)
	admin := bearer(t, "uid-admin", "johanmora.jm@gmail.com")
	driver := bearer(t, "uid-driver", "conductor@finca.co")

	// First profile fetch creates the record with the default role.
	resp := doJSON(t, app, http.MethodGet, "/api/perfil", driver, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, models.RoleForeman, profile.Role)

	// Admin reassigns the role.
	resp = doJSON(t, app, http.MethodPut, "/api/usuarios/uid-driver/rol", admin, fiber.Map{"role": "trucker"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/perfil", driver, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &profile)
	assert.Equal(t, models.RoleTrucker, profile.Role)

	// Unknown roles are rejected.
	resp = doJSON(t, app, http.MethodPut, "/api/usuarios/uid-driver/rol", admin, fiber.Map{"role": "emperador"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSaleEndpointComputesTotal(t *testing.T) {
	app, _ := newTestApp(t)
	token := bearer(t, "uid-capataz", "capataz@finca.co")

	resp := doJSON(t, app, http.MethodPost, "/api/ventas", token, fiber.Map{
		"date":         time.Now().Format(time.RFC3339),
		"buyer":        "Frigorifico del Norte",
		"category":     "novillos",
		"quantity":     8,
		"total_kg":     3600,
		"price_per_kg": 9500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sale models.Sale
	decodeBody(t, resp, &sale)
	assert.InDelta(t, 34200000.0, sale.Total, 0.001)
}
