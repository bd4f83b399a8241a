package models

import (
	"fmt"
	"time"
)

type PaymentStatus string
type OrderStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"

	OrderIncomplete OrderStatus = "incomplete"
	OrderCompleted  OrderStatus = "completed"
)

// Order is the local mirror of a platform checkout order. Payment status moves
// to paid only after the gateway's validation API confirms the transaction,
// and order status moves to completed only together with paid.
type Order struct {
	ID                uint          `json:"id" gorm:"primaryKey"`
	CourseID          string        `json:"course_id"`
	CustomerID        string        `json:"customer_id"`
	CustomerName      string        `json:"customer_name"`
	CustomerEmail     string        `json:"customer_email"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	OrderStatus       OrderStatus   `json:"order_status"`
	TransactionID     string        `json:"transaction_id"`
	BankTransactionID string        `json:"bank_transaction_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (o *Order) Validate() error {
	if o.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if len(o.Currency) != 3 {
		return fmt.Errorf("invalid currency: %s", o.Currency)
	}
	if o.CustomerID == "" {
		return fmt.Errorf("customer ID is required")
	}

	return nil
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderIncomplete, OrderCompleted:
		return true
	default:
		return false
	}
}
