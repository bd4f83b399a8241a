package models

import "time"

const (
	OrderCreatedTopic string = "orders.created"
)

// OrderCreatedEvent is emitted by the platform's checkout when a course order
// is placed. The bridge mirrors it into the local order store so the gateway
// callbacks have something to reconcile against.
type OrderCreatedEvent struct {
	OrderID       uint      `json:"order_id"`
	CourseID      string    `json:"course_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TraceID       string    `json:"trace_id"`
	CreatedAt     time.Time `json:"created_at"`
}
