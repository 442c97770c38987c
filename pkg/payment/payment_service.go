package payment

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"ReliefLink/internal/utils"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreateCashDonation(ctx context.Context, req domain.CashDonationRequest, userID string) (*domain.CashDonationResponse, error)
		HandleNotification(ctx context.Context, orderID string, transactionStatus string) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		snapClient        snap.Client
	}
)

func NewPaymentService(paymentRepository PaymentRepository) PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository: paymentRepository,
		snapClient:        client,
	}
}

func (s *paymentService) CreateCashDonation(ctx context.Context, req domain.CashDonationRequest, userID string) (*domain.CashDonationResponse, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("RELIEF-%s", uuid.New().String())

	transaction := &entities.Transaction{
		ID:       uuid.New(),
		UserID:   userUUID,
		OrderID:  orderID,
		Amount:   req.Amount,
		Currency: "IDR",
		Purpose:  "ReliefFund",
		Status:   entities.TransactionStatusPending,
	}

	if err := s.paymentRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Amount,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, snapErr
	}

	return &domain.CashDonationResponse{
		OrderID:     orderID,
		RedirectURL: snapResp.RedirectURL,
		Token:       snapResp.Token,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, orderID string, transactionStatus string) error {
	if _, err := s.paymentRepository.GetTransactionByOrderID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	var status string
	switch transactionStatus {
	case "settlement", "capture":
		status = entities.TransactionStatusSettlement
	case "expire":
		status = entities.TransactionStatusExpired
	case "cancel", "deny":
		status = entities.TransactionStatusCancelled
	default:
		status = entities.TransactionStatusPending
	}

	return s.paymentRepository.UpdateTransactionStatus(ctx, orderID, status)
}
