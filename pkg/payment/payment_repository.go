package payment

import (
	"ReliefLink/entities"
	"context"
	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error)
		UpdateTransactionStatus(ctx context.Context, orderID string, status string) error
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *paymentRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *paymentRepository) UpdateTransactionStatus(ctx context.Context, orderID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{"status": status}).Error
}
