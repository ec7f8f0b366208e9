package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/services"
)

type AuctionHandler struct {
	auctionService *services.AuctionService
}

func NewAuctionHandler(auctionService *services.AuctionService) *AuctionHandler {
	return &AuctionHandler{auctionService: auctionService}
}

func (h *AuctionHandler) Create(c *fiber.Ctx) error {
	var req dto.AuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	auction, err := h.auctionService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrLocationRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create auction"})
	}
	return c.Status(fiber.StatusCreated).JSON(auction)
}

func (h *AuctionHandler) List(c *fiber.Ctx) error {
	auctions, err := h.auctionService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch auctions"})
	}
	return c.JSON(auctions)
}

func (h *AuctionHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid auction id"})
	}

	auction, err := h.auctionService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAuctionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch auction"})
	}
	return c.JSON(auction)
}

func (h *AuctionHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid auction id"})
	}

	var req dto.AuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	auction, err := h.auctionService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrAuctionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, services.ErrLocationRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update auction"})
	}
	return c.JSON(auction)
}

func (h *AuctionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid auction id"})
	}

	if err := h.auctionService.Delete(id); err != nil {
		if errors.Is(err, services.ErrAuctionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to delete auction"})
	}
	return c.JSON(dto.MessageResponse{Message: "auction deleted"})
}
