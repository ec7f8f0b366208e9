package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/auth"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

type FarmHandler struct {
	farmService *services.FarmService
}

func NewFarmHandler(farmService *services.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

func (h *FarmHandler) Create(c *fiber.Ctx) error {
	ident, ok := auth.FromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing or invalid credential"})
	}

	var req dto.FarmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	farm, err := h.farmService.Create(ident.UID, &req)
	if err != nil {
		if errors.Is(err, services.ErrFarmNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create farm"})
	}
	return c.Status(fiber.StatusCreated).JSON(farm)
}

func (h *FarmHandler) List(c *fiber.Ctx) error {
	farms, err := h.farmService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch farms"})
	}
	return c.JSON(farms)
}

func (h *FarmHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid farm id"})
	}

	farm, err := h.farmService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrFarmNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch farm"})
	}
	return c.JSON(farm)
}

func (h *FarmHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid farm id"})
	}

	var req dto.FarmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	farm, err := h.farmService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrFarmNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, services.ErrFarmNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update farm"})
	}
	return c.JSON(farm)
}

func (h *FarmHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid farm id"})
	}

	if err := h.farmService.Delete(id); err != nil {
		if errors.Is(err, services.ErrFarmNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to delete farm"})
	}
	return c.JSON(dto.MessageResponse{Message: "farm deleted"})
}
