package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hasinhayder/tutor-sslcommerz/config"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models/dto"
	"github.com/hasinhayder/tutor-sslcommerz/internal/service"
	"github.com/hasinhayder/tutor-sslcommerz/internal/service/mocks"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var checkoutSettings = config.SSLCommerz{
	StoreID:       "teststore",
	StorePassword: "secret123",
	Environment:   "sandbox",
	SuccessURL:    "https://shop.example/payments/callback?landing_mode=success",
	FailURL:       "https://shop.example/payments/callback?landing_mode=fail",
	CancelURL:     "https://shop.example/payments/callback?landing_mode=cancel",
	IPNURL:        "https://shop.example/payments/ipn",
}

func checkoutDTO() *dto.Checkout {
	return &dto.Checkout{
		CourseID:      "course-7",
		Amount:        500.00,
		Currency:      "bdt",
		CustomerID:    "customer-1",
		CustomerName:  "Test Customer",
		CustomerEmail: "customer@example.com",
	}
}

func TestCheckout_Success(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, checkoutSettings)
	ctx := context.Background()

	mockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Order")).
		Run(func(ctx context.Context, order *models.Order) {
			order.ID = 11
		}).
		Return(nil).
		Once()

	mockGateway.EXPECT().
		InitiateSession(ctx, mock.MatchedBy(func(r sslcommerz.InitiateRequest) bool {
			return r.OrderID == 11 &&
				r.Amount == 500.00 &&
				r.Currency == "BDT" &&
				r.TranID != "" &&
				r.SuccessURL == checkoutSettings.SuccessURL &&
				r.IPNURL == checkoutSettings.IPNURL
		}), mock.AnythingOfType("sslcommerz.Credentials")).
		Return(&sslcommerz.InitiateResponse{Status: "SUCCESS", GatewayPageURL: "https://sandbox.sslcommerz.com/EasyCheckOut/x"}, nil).
		Once()

	mockRepo.EXPECT().
		UpdateColumns(ctx, "11", mock.MatchedBy(func(columns map[string]interface{}) bool {
			tranID, ok := columns["transaction_id"].(string)
			return ok && tranID != ""
		})).
		Return(nil).
		Once()

	order, gatewayURL, err := svc.Checkout(ctx, checkoutDTO())

	require.NoError(t, err)
	assert.Equal(t, uint(11), order.ID)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.NotEmpty(t, order.TransactionID)
	assert.Equal(t, "https://sandbox.sslcommerz.com/EasyCheckOut/x", gatewayURL)
}

func TestCheckout_InvalidOrder(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, checkoutSettings)

	bad := checkoutDTO()
	bad.Amount = 0

	_, _, err := svc.Checkout(context.Background(), bad)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_UnconfiguredGateway(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, config.SSLCommerz{Environment: "sandbox"})

	_, _, err := svc.Checkout(context.Background(), checkoutDTO())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gateway not configured")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_GatewayRejection(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, checkoutSettings)
	ctx := context.Background()

	mockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Order")).
		Return(nil).
		Once()

	expectedError := errors.New("gateway rejected session: store credential error")
	mockGateway.EXPECT().
		InitiateSession(ctx, mock.AnythingOfType("sslcommerz.InitiateRequest"), mock.AnythingOfType("sslcommerz.Credentials")).
		Return(nil, expectedError).
		Once()

	_, _, err := svc.Checkout(ctx, checkoutDTO())

	assert.ErrorIs(t, err, expectedError)
	mockRepo.AssertNotCalled(t, "UpdateColumns", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleOrderCreated_MirrorsNewOrder(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, checkoutSettings)
	ctx := context.Background()

	event := models.OrderCreatedEvent{
		OrderID:       42,
		CourseID:      "course-7",
		CustomerID:    "customer-1",
		CustomerEmail: "customer@example.com",
		Amount:        500.00,
		Currency:      "BDT",
	}

	mockRepo.EXPECT().
		GetByID(ctx, "42").
		Return(nil, gorm.ErrRecordNotFound).
		Once()

	mockRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *models.Order) bool {
			return order.ID == 42 &&
				order.PaymentStatus == models.PaymentPending &&
				order.OrderStatus == models.OrderIncomplete
		})).
		Return(nil).
		Once()

	err := svc.HandleOrderCreated(ctx, event)

	assert.NoError(t, err)
}

func TestHandleOrderCreated_DuplicateIsNoOp(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, checkoutSettings)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, "42").
		Return(pendingOrder(42), nil).
		Once()

	err := svc.HandleOrderCreated(ctx, models.OrderCreatedEvent{
		OrderID:    42,
		CustomerID: "customer-1",
		Amount:     500.00,
		Currency:   "BDT",
	})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleOrderCreated_RejectsZeroOrderID(t *testing.T) {
	mockRepo := mocks.NewMockOrderRepo(t)
	mockGateway := mocks.NewMockGatewaySession(t)
	svc := service.NewCheckoutService(mockRepo, mockGateway, checkoutSettings)

	err := svc.HandleOrderCreated(context.Background(), models.OrderCreatedEvent{OrderID: 0})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
