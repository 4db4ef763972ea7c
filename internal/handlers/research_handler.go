package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type ResearchHandler struct {
	service *services.ResearchService
}

func NewResearchHandler(service *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{service: service}
}

func (h *ResearchHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ResearchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: true, Message: "Validation failed",
			Fields: map[string]string{"title": "field required"},
		})
	}

	research, err := h.service.Create(c.UserContext(), user, req)
	if err != nil {
		slog.Error("failed to create research", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create research",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(research)
}

func (h *ResearchHandler) List(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	skip, limit, fields := parsePagination(c)
	if len(fields) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: true, Message: "Validation failed", Fields: fields,
		})
	}

	researches, err := h.service.List(c.UserContext(), user, skip, limit)
	if err != nil {
		slog.Error("failed to list researches", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch researches",
		})
	}

	return c.JSON(researches)
}

func (h *ResearchHandler) Get(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	research, err := h.service.Get(c.UserContext(), user, id)
	if err != nil {
		if errors.Is(err, services.ErrResearchNotFound) {
			return notFound(c)
		}
		slog.Error("failed to fetch research", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch research",
		})
	}

	return c.JSON(research)
}

func (h *ResearchHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req dto.ResearchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Title != nil && *req.Title == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: true, Message: "Validation failed",
			Fields: map[string]string{"title": "must not be empty"},
		})
	}

	research, err := h.service.Update(c.UserContext(), user, id, req)
	if err != nil {
		if errors.Is(err, services.ErrResearchNotFound) {
			return notFound(c)
		}
		slog.Error("failed to update research", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update research",
		})
	}

	return c.JSON(research)
}

func (h *ResearchHandler) Delete(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.service.Delete(c.UserContext(), user, id); err != nil {
		if errors.Is(err, services.ErrResearchNotFound) {
			return notFound(c)
		}
		slog.Error("failed to delete research", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete research",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func parsePagination(c *fiber.Ctx) (skip, limit int, fields map[string]string) {
	fields = map[string]string{}

	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		fields["skip"] = "must be a non-negative integer"
	}

	limit, err = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 0 {
		fields["limit"] = "must be a non-negative integer"
	}

	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit, fields
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Could not validate credentials",
	})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Error: true, Message: "Validation failed",
		Fields: map[string]string{"id": "must be a positive integer"},
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "Research not found",
	})
}
