package entities

import (
	"github.com/google/uuid"
)

const (
	TransactionStatusPending    = "Pending"
	TransactionStatusSettlement = "Settlement"
	TransactionStatusExpired    = "Expired"
	TransactionStatusCancelled  = "Cancelled"
)

type Transaction struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	OrderID  string    `gorm:"uniqueIndex" json:"order_id"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
	Purpose  string    `json:"purpose"` // ReliefFund
	Status   string    `json:"status"`  // Pending, Settlement, Expired, Cancelled

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
