package dto

import (
	"strings"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
)

type Checkout struct {
	CourseID        string  `json:"course_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	CustomerID      string  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	CustomerCity    string  `json:"customer_city"`
	CustomerCountry string  `json:"customer_country"`
}

func (c *Checkout) Sanitize() {
	c.CourseID = strings.TrimSpace(c.CourseID)
	c.Currency = strings.TrimSpace(c.Currency)
	c.CustomerID = strings.TrimSpace(c.CustomerID)
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.CustomerEmail = strings.TrimSpace(c.CustomerEmail)
	c.CustomerPhone = strings.TrimSpace(c.CustomerPhone)

	c.Currency = strings.ToUpper(c.Currency)
}

func (c *Checkout) ToEntity() *models.Order {
	return &models.Order{
		CourseID:      c.CourseID,
		Amount:        c.Amount,
		Currency:      c.Currency,
		CustomerID:    c.CustomerID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderIncomplete,
	}
}
