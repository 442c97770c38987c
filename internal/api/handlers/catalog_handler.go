package handlers

import (
	"ReliefLink/domain"
	"ReliefLink/internal/api/presenters"
	"ReliefLink/pkg/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		CreateItemType(c *fiber.Ctx) error
		GetItemTypes(c *fiber.Ctx) error
		CreateLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) CreateItemType(c *fiber.Ctx) error {
	req := new(domain.CreateItemTypeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateItemType, err)
	}

	result, err := h.catalogService.CreateItemType(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateItemType, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateItemType)
}

func (h *catalogHandler) GetItemTypes(c *fiber.Ctx) error {
	category := c.Query("category")

	result, err := h.catalogService.GetItemTypes(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetItemTypes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"item_types": result,
	}, fiber.StatusOK, domain.MessageSuccessGetItemTypes)
}

func (h *catalogHandler) CreateLocation(c *fiber.Ctx) error {
	req := new(domain.CreateLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocation, err)
	}

	result, err := h.catalogService.CreateLocation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateLocation, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateLocation)
}

func (h *catalogHandler) GetLocations(c *fiber.Ctx) error {
	result, err := h.catalogService.GetLocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"locations": result,
	}, fiber.StatusOK, domain.MessageSuccessGetLocations)
}
