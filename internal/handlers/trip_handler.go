package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

// TripHandler serves transport trips. Reads are open to any authenticated
// user; create/update/delete and the summary are wired behind the admin
// guard in routes.
type TripHandler struct {
	tripService *services.TripService
}

func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

func isTripValidationErr(err error) bool {
	return errors.Is(err, services.ErrRouteRequired) ||
		errors.Is(err, services.ErrInvalidTripStatus)
}

func (h *TripHandler) Create(c *fiber.Ctx) error {
	var req dto.TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	trip, err := h.tripService.Create(&req)
	if err != nil {
		if isTripValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create trip"})
	}
	return c.Status(fiber.StatusCreated).JSON(trip)
}

func (h *TripHandler) List(c *fiber.Ctx) error {
	trips, err := h.tripService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch trips"})
	}
	return c.JSON(trips)
}

func (h *TripHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid trip id"})
	}

	trip, err := h.tripService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch trip"})
	}
	return c.JSON(trip)
}

func (h *TripHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid trip id"})
	}

	var req dto.TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	trip, err := h.tripService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if isTripValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update trip"})
	}
	return c.JSON(trip)
}

func (h *TripHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid trip id"})
	}

	if err := h.tripService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to delete trip"})
	}
	return c.JSON(dto.MessageResponse{Message: "trip deleted"})
}

func (h *TripHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.tripService.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to build summary"})
	}
	return c.JSON(summary)
}
