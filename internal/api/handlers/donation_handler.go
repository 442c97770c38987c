package handlers

import (
	"ReliefLink/domain"
	"ReliefLink/internal/api/presenters"
	"ReliefLink/pkg/donation"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateOffer(c *fiber.Ctx) error
		GetOffersByEntry(c *fiber.Ctx) error
		AcceptOffer(c *fiber.Ctx) error
		DeclineOffer(c *fiber.Ctx) error
		MarkDelivered(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateOffer(c *fiber.Ctx) error {
	createdByID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	req := new(domain.CreateDonationOfferPayload)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOffer, err)
	}

	result, err := h.donationService.CreateOffer(c.Context(), entryID, *req, createdByID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateOffer, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateOffer)
}

func (h *donationHandler) GetOffersByEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	offers, count, err := h.donationService.GetOffersByEntry(c.Context(), entryID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetOffers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"offers": offers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetOffers)
}

func (h *donationHandler) AcceptOffer(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	offerID := c.Params("id")

	result, err := h.donationService.AcceptOffer(c.Context(), offerID, reviewerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAcceptOffer, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessAcceptOffer)
}

func (h *donationHandler) DeclineOffer(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	offerID := c.Params("id")

	result, err := h.donationService.DeclineOffer(c.Context(), offerID, reviewerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeclineOffer, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessDeclineOffer)
}

func (h *donationHandler) MarkDelivered(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	offerID := c.Params("id")

	result, err := h.donationService.MarkDelivered(c.Context(), offerID, reviewerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeliverOffer, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessDeliverOffer)
}
