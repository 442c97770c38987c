package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreatePayment = "donation payment created successfully"
	MessageSuccessWebhook       = "payment notification processed"

	MessageFailedCreatePayment = "failed to create donation payment"
	MessageFailedWebhook       = "failed to process payment notification"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("donation amount must be positive")
)

type (
	CashDonationRequest struct {
		Amount int64 `json:"amount" validate:"required,min=1"`
	}

	CashDonationResponse struct {
		OrderID     string `json:"order_id"`
		RedirectURL string `json:"redirect_url"`
		Token       string `json:"token"`
	}

	TransactionResponse struct {
		ID        string    `json:"id"`
		OrderID   string    `json:"order_id"`
		Amount    int64     `json:"amount"`
		Currency  string    `json:"currency"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
