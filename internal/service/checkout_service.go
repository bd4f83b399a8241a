package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/hasinhayder/tutor-sslcommerz/config"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models/dto"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/sirupsen/logrus"
)

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// GatewaySession defines the interface for opening a payment session with the
// gateway.
type GatewaySession interface {
	InitiateSession(ctx context.Context, r sslcommerz.InitiateRequest, creds sslcommerz.Credentials) (*sslcommerz.InitiateResponse, error)
}

// CheckoutService creates pending orders and opens gateway payment sessions
// for them. Orders can arrive through the HTTP checkout endpoint or mirrored
// from the platform's orders.created events.
type CheckoutService struct {
	Repo     OrderRepo
	Gateway  GatewaySession
	Settings config.SSLCommerz
}

func NewCheckoutService(repo OrderRepo, gateway GatewaySession, settings config.SSLCommerz) *CheckoutService {
	return &CheckoutService{
		Repo:     repo,
		Gateway:  gateway,
		Settings: settings,
	}
}

// Checkout persists a pending order and opens a payment session for it.
// It returns the order and the gateway page URL the payer must be redirected
// to. The order id is handed to the gateway through value_a so the callbacks
// can correlate back to it.
func (s *CheckoutService) Checkout(ctx context.Context, checkout *dto.Checkout) (*models.Order, string, error) {
	checkout.Sanitize()
	order := checkout.ToEntity()
	if err := order.Validate(); err != nil {
		return nil, "", err
	}

	creds, err := sslcommerz.NewCredentials(s.Settings.StoreID, s.Settings.StorePassword, s.Settings.Environment)
	if err != nil {
		return nil, "", fmt.Errorf("gateway not configured: %w", err)
	}

	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, "", err
	}

	tranID := uuid.New().String()
	session, err := s.Gateway.InitiateSession(ctx, sslcommerz.InitiateRequest{
		TranID:          tranID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		OrderID:         order.ID,
		ProductName:     order.CourseID,
		ProductCategory: "course",
		CustomerName:    checkout.CustomerName,
		CustomerEmail:   checkout.CustomerEmail,
		CustomerPhone:   checkout.CustomerPhone,
		CustomerAddress: checkout.CustomerAddress,
		CustomerCity:    checkout.CustomerCity,
		CustomerCountry: checkout.CustomerCountry,
		SuccessURL:      s.Settings.SuccessURL,
		FailURL:         s.Settings.FailURL,
		CancelURL:       s.Settings.CancelURL,
		IPNURL:          s.Settings.IPNURL,
	}, creds)
	if err != nil {
		return nil, "", err
	}

	id := strconv.FormatUint(uint64(order.ID), 10)
	if err := s.Repo.UpdateColumns(ctx, id, map[string]interface{}{"transaction_id": tranID}); err != nil {
		return nil, "", err
	}
	order.TransactionID = tranID

	return order, session.GatewayPageURL, nil
}

// HandleOrderCreated mirrors a platform checkout event into the local order
// store. Events are delivered at least once, so an order that already exists
// is a no-op rather than an error.
func (s *CheckoutService) HandleOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	if event.OrderID == 0 {
		return fmt.Errorf("order id must be positive")
	}

	id := strconv.FormatUint(uint64(event.OrderID), 10)
	if existing, err := s.Repo.GetByID(ctx, id); err == nil && existing != nil {
		logrus.Infof("order %d already mirrored, skipping", event.OrderID)
		return nil
	}

	order := &models.Order{
		ID:            event.OrderID,
		CourseID:      event.CourseID,
		CustomerID:    event.CustomerID,
		CustomerName:  event.CustomerName,
		CustomerEmail: event.CustomerEmail,
		Amount:        event.Amount,
		Currency:      event.Currency,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderIncomplete,
	}
	if err := order.Validate(); err != nil {
		return err
	}

	return s.Repo.Create(ctx, order)
}
