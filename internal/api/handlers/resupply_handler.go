package handlers

import (
	"ReliefLink/domain"
	"ReliefLink/internal/api/presenters"
	"ReliefLink/pkg/resupply"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ResupplyHandler interface {
		CreateRequest(c *fiber.Ctx) error
		GetRequestsByEntry(c *fiber.Ctx) error
		ReviewRequest(c *fiber.Ctx) error
		FulfillRequest(c *fiber.Ctx) error
		CancelRequest(c *fiber.Ctx) error
	}

	resupplyHandler struct {
		resupplyService resupply.ResupplyService
		validator       *validator.Validate
	}
)

func NewResupplyHandler(resupplyService resupply.ResupplyService, validator *validator.Validate) ResupplyHandler {
	return &resupplyHandler{
		resupplyService: resupplyService,
		validator:       validator,
	}
}

func (h *resupplyHandler) CreateRequest(c *fiber.Ctx) error {
	requesterID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	req := new(domain.CreateResupplyRequestPayload)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	result, err := h.resupplyService.CreateRequest(c.Context(), entryID, *req, requesterID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *resupplyHandler) GetRequestsByEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	requests, count, err := h.resupplyService.GetRequestsByEntry(c.Context(), entryID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"requests": requests,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *resupplyHandler) ReviewRequest(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	req := new(domain.ReviewResupplyRequestPayload)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewRequest, err)
	}

	result, err := h.resupplyService.ReviewRequest(c.Context(), requestID, *req, reviewerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedReviewRequest, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessReviewRequest)
}

func (h *resupplyHandler) FulfillRequest(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	result, err := h.resupplyService.FulfillRequest(c.Context(), requestID, reviewerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedFulfillRequest, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessFulfillRequest)
}

func (h *resupplyHandler) CancelRequest(c *fiber.Ctx) error {
	requesterID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	result, err := h.resupplyService.CancelRequest(c.Context(), requestID, requesterID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCancelRequest, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessCancelRequest)
}
