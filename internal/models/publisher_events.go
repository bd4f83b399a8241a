package models

import "time"

const (
	PaymentReconciledEventTopic = "payments.reconciled"
	PaymentsDLQTopic            = "payments.dlq"
)

// PaymentReconciledEvent tells the platform the final outcome of a gateway
// transaction so it can complete enrollment. Published once per successful
// reconciliation; redeliveries of the same transaction produce identical
// events, so consumers can treat order_id+transaction_id as a natural
// idempotency key.
type PaymentReconciledEvent struct {
	OrderID           uint      `json:"order_id"`
	PaymentStatus     string    `json:"payment_status"`
	OrderStatus       string    `json:"order_status"`
	TransactionID     string    `json:"transaction_id"`
	BankTransactionID string    `json:"bank_transaction_id,omitempty"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	ReconciledAt      time.Time `json:"reconciled_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
