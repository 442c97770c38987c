package handlers

import (
	"ReliefLink/domain"
	"ReliefLink/internal/api/presenters"
	"ReliefLink/pkg/inventory"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		CreateEntry(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		GetEntryByID(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		UploadEvidence(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) CreateEntry(c *fiber.Ctx) error {
	providerID := c.Locals("user_id").(string)

	req := new(domain.CreateInventoryEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEntry, err)
	}

	result, err := h.inventoryService.CreateEntry(c.Context(), *req, providerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateEntry, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateEntry)
}

func (h *inventoryHandler) GetEntries(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	filter := domain.InventoryFilter{
		ProviderID:   c.Query("provider_id"),
		LocationCode: c.Query("location_code"),
		Category:     c.Query("category"),
		Status:       c.Query("status"),
		LowStockOnly: c.Query("low_stock_only") == "true",
		Page:         page,
		Limit:        limit,
	}

	if err := h.validator.Struct(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	entries, count, err := h.inventoryService.GetEntries(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"entries": entries,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *inventoryHandler) GetEntryByID(c *fiber.Ctx) error {
	entryID := c.Params("id")
	if entryID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, domain.ErrEntryNotFound)
	}

	result, err := h.inventoryService.GetEntryByID(c.Context(), entryID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *inventoryHandler) UpdateEntry(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	entryID := c.Params("id")

	req := new(domain.UpdateInventoryEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEntry, err)
	}

	result, err := h.inventoryService.UpdateEntry(c.Context(), entryID, *req, actorID, role)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateEntry, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateEntry)
}

func (h *inventoryHandler) DeleteEntry(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	entryID := c.Params("id")

	if err := h.inventoryService.DeleteEntry(c.Context(), entryID, actorID, role); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *inventoryHandler) UploadEvidence(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	entryID := c.Params("id")

	req := new(domain.UploadEvidenceRequest)
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEvidence, err)
	}

	result, err := h.inventoryService.UploadEvidence(c.Context(), entryID, *req, actorID, role)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUploadEvidence, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUploadEvidence)
}
