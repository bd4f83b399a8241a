package service

import (
	"context"
	"errors"
	"time"

	"github.com/hasinhayder/tutor-sslcommerz/config"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/sirupsen/logrus"
)

// LandingModeSuccess is the query marker the success landing carries. Any
// other landing (fail, cancel, missing) is acknowledged and ignored.
const LandingModeSuccess = "success"

// Pipeline stages, in order. Stage names show up in logs and results so
// operators can see where a delivery stopped.
const (
	StageFilter      = "filter"
	StageExtract     = "extract"
	StageCredentials = "credentials"
	StageVerify      = "verify"
	StageValidate    = "validate"
	StageReconcile   = "reconcile"
	StageDone        = "done"
)

type Outcome int

const (
	// OutcomeCompleted means the order was reconciled.
	OutcomeCompleted Outcome = iota
	// OutcomeSkipped means a precondition gate stopped the pipeline; the
	// delivery is dropped and the gateway's redelivery is the retry path.
	OutcomeSkipped
	// OutcomeFailed means verification or validation could not confirm the
	// transaction, or a downstream write failed. No order mutation happened
	// unless Stage is reconcile.
	OutcomeFailed
)

// PipelineResult is the explicit per-stage outcome of a callback delivery.
// The HTTP layer acknowledges every delivery with a 2xx regardless; this
// result only drives logging and tests.
type PipelineResult struct {
	Outcome Outcome
	Stage   string
	Err     error
}

// ErrNotConfirmed marks a validation API response that did not confirm the
// transaction (failed/cancelled/pending status, or a field mismatch).
var ErrNotConfirmed = errors.New("transaction not confirmed by validation API")

// ErrSignatureMismatch marks a notification whose keyed hash did not verify.
var ErrSignatureMismatch = errors.New("notification signature mismatch")

// TransactionValidator defines the interface to the gateway's validation API.
type TransactionValidator interface {
	Validate(ctx context.Context, n *models.Notification, creds sslcommerz.Credentials) (*sslcommerz.ValidationResult, error)
}

// CallbackService drives an inbound gateway notification through the gate
// pipeline: filter, extract, resolve credentials, verify signature, validate
// against the gateway, reconcile, publish.
type CallbackService struct {
	Settings   config.SSLCommerz
	Validator  TransactionValidator
	Reconciler *OrderReconciler
	Publisher  Publisher
}

func NewCallbackService(settings config.SSLCommerz, validator TransactionValidator, reconciler *OrderReconciler, publisher Publisher) *CallbackService {
	return &CallbackService{
		Settings:   settings,
		Validator:  validator,
		Reconciler: reconciler,
		Publisher:  publisher,
	}
}

// ProcessLanding handles a browser landing callback. Only the success landing
// proceeds; fail and cancel landings are terminal no-ops because the payer
// never paid and there is nothing to reconcile.
func (s *CallbackService) ProcessLanding(ctx context.Context, landingMode string, n *models.Notification) PipelineResult {
	if landingMode != LandingModeSuccess {
		return PipelineResult{Outcome: OutcomeSkipped, Stage: StageFilter}
	}
	return s.Process(ctx, n)
}

// Process runs the pipeline on a notification that already passed the landing
// filter (IPN deliveries enter here directly). Every early exit is a skip,
// never an error surfaced to the gateway: the delivery model is at-least-once
// and a redelivery will retry anything transient.
func (s *CallbackService) Process(ctx context.Context, n *models.Notification) PipelineResult {
	if n.TranID() == "" {
		return PipelineResult{Outcome: OutcomeSkipped, Stage: StageExtract}
	}
	orderID, err := n.OrderID()
	if err != nil {
		return PipelineResult{Outcome: OutcomeSkipped, Stage: StageExtract, Err: err}
	}

	creds, err := sslcommerz.NewCredentials(s.Settings.StoreID, s.Settings.StorePassword, s.Settings.Environment)
	if err != nil {
		logrus.Warnf("gateway credentials not configured, dropping callback for order %d: %v", orderID, err)
		return PipelineResult{Outcome: OutcomeSkipped, Stage: StageCredentials, Err: err}
	}

	if !sslcommerz.VerifySignature(n, creds.StorePassword) {
		return PipelineResult{Outcome: OutcomeFailed, Stage: StageVerify, Err: ErrSignatureMismatch}
	}

	result, err := s.Validator.Validate(ctx, n, creds)
	if err != nil {
		// Transport failure. Treated the same as "could not confirm": no
		// retry here, no order mutation, rely on gateway redelivery.
		return PipelineResult{Outcome: OutcomeFailed, Stage: StageValidate, Err: err}
	}
	if !result.Valid {
		// The gateway did not confirm the transaction. The order is left
		// untouched (still pending) on purpose; see DESIGN.md before
		// changing this to a failed/cancelled write-back.
		logrus.Warnf("transaction %s for order %d not confirmed (gateway status %q), order left unreconciled",
			n.TranID(), orderID, result.Status)
		return PipelineResult{Outcome: OutcomeFailed, Stage: StageValidate, Err: ErrNotConfirmed}
	}

	status := sslcommerz.MapStatus(result.Status)
	order, err := s.Reconciler.Reconcile(ctx, orderID, status, n.TranID(), n.BankTranID())
	if err != nil {
		return PipelineResult{Outcome: OutcomeFailed, Stage: StageReconcile, Err: err}
	}
	if order == nil {
		return PipelineResult{Outcome: OutcomeSkipped, Stage: StageReconcile}
	}

	event := models.PaymentReconciledEvent{
		OrderID:           order.ID,
		PaymentStatus:     string(order.PaymentStatus),
		OrderStatus:       string(order.OrderStatus),
		TransactionID:     order.TransactionID,
		BankTransactionID: order.BankTransactionID,
		Amount:            order.Amount,
		Currency:          order.Currency,
		ReconciledAt:      time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.PaymentReconciledEventTopic, event); err != nil {
		// The order is already reconciled; losing the event must not turn
		// the delivery into a failure the gateway would redeliver forever.
		logrus.Errorf("failed to publish reconciled event for order %d: %v", order.ID, err)
	}

	return PipelineResult{Outcome: OutcomeCompleted, Stage: StageDone}
}
