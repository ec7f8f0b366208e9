package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/auth"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

type MovementHandler struct {
	movementService *services.MovementService
}

func NewMovementHandler(movementService *services.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

func isMovementValidationErr(err error) bool {
	return errors.Is(err, services.ErrInvalidKind) ||
		errors.Is(err, services.ErrCategoryRequired) ||
		errors.Is(err, services.ErrInvalidQuantity) ||
		errors.Is(err, services.ErrFarmRequired)
}

func (h *MovementHandler) Create(c *fiber.Ctx) error {
	ident, ok := auth.FromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing or invalid credential"})
	}

	var req dto.MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	movement, err := h.movementService.Create(ident.UID, &req)
	if err != nil {
		if isMovementValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, services.ErrFarmNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create movement"})
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

func (h *MovementHandler) List(c *fiber.Ctx) error {
	var farmID *uuid.UUID
	if raw := c.Query("farm_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid farm_id filter"})
		}
		farmID = &id
	}

	movements, err := h.movementService.List(farmID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch movements"})
	}
	return c.JSON(movements)
}

func (h *MovementHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid movement id"})
	}

	movement, err := h.movementService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrMovementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch movement"})
	}
	return c.JSON(movement)
}

func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid movement id"})
	}

	var req dto.MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	movement, err := h.movementService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrMovementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if isMovementValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update movement"})
	}
	return c.JSON(movement)
}

func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid movement id"})
	}

	if err := h.movementService.Delete(id); err != nil {
		if errors.Is(err, services.ErrMovementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to delete movement"})
	}
	return c.JSON(dto.MessageResponse{Message: "movement deleted"})
}

// Summary is the admin-only livestock aggregation endpoint.
func (h *MovementHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.movementService.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to build summary"})
	}
	return c.JSON(summary)
}
