package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models/dto"
	"github.com/hasinhayder/tutor-sslcommerz/internal/service"
	"github.com/sirupsen/logrus"
)

type CheckoutServiceIn interface {
	Checkout(ctx context.Context, checkout *dto.Checkout) (*models.Order, string, error)
	HandleOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

type CallbackServiceIn interface {
	ProcessLanding(ctx context.Context, landingMode string, n *models.Notification) service.PipelineResult
	Process(ctx context.Context, n *models.Notification) service.PipelineResult
}

type PaymentHandler struct {
	Checkout CheckoutServiceIn
	Callback CallbackServiceIn
}

func NewPaymentHandler(checkout CheckoutServiceIn, callback CallbackServiceIn) *PaymentHandler {
	return &PaymentHandler{
		Checkout: checkout,
		Callback: callback,
	}
}

// POST /payments
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req dto.Checkout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, gatewayURL, err := h.Checkout.Checkout(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id":    order.ID,
		"gateway_url": gatewayURL,
	})
}

// POST /payments/callback
//
// The payer's browser lands here after the gateway page. The gateway only
// expects a 2xx acknowledgment, so every outcome — including malformed
// bodies — answers 200 and the pipeline result is only logged.
func (h *PaymentHandler) GatewayCallback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		logrus.Warnf("unreadable callback body: %v", err)
		c.String(http.StatusOK, "OK")
		return
	}

	n := models.NotificationFromForm(c.Request.PostForm)
	result := h.Callback.ProcessLanding(c.Request.Context(), c.Query("landing_mode"), n)
	logResult("callback", result)

	c.String(http.StatusOK, "OK")
}

// POST /payments/ipn
//
// Server-to-server push from the gateway. Same pipeline as the landing
// callback minus the landing filter.
func (h *PaymentHandler) GatewayIPN(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		logrus.Warnf("unreadable IPN body: %v", err)
		c.String(http.StatusOK, "OK")
		return
	}

	n := models.NotificationFromForm(c.Request.PostForm)
	result := h.Callback.Process(c.Request.Context(), n)
	logResult("ipn", result)

	c.String(http.StatusOK, "OK")
}

func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.OrderCreatedTopic:
		var event models.OrderCreatedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing order created event %s", err.Error())
			return fmt.Errorf("error parsing order created event %w", err)
		}
		if err := h.Checkout.HandleOrderCreated(ctx, event); err != nil {
			return fmt.Errorf("error mirroring order %d %w", event.OrderID, err)
		}
		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

func logResult(source string, result service.PipelineResult) {
	switch result.Outcome {
	case service.OutcomeCompleted:
		logrus.Infof("%s reconciled", source)
	case service.OutcomeSkipped:
		logrus.Infof("%s skipped at stage %s", source, result.Stage)
	case service.OutcomeFailed:
		logrus.Warnf("%s failed at stage %s: %v", source, result.Stage, result.Err)
	}
}
