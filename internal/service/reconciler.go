package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderRepo defines the interface for order persistence operations.
type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	UpdateColumns(ctx context.Context, id string, columns map[string]interface{}) error
}

// OrderReconciler applies a validated gateway outcome to an order exactly
// once per transaction. The write is a single atomic partial UPDATE, so
// applying the same (order, status, transaction) tuple again — which the
// gateway's at-least-once delivery will do — leaves the row unchanged.
type OrderReconciler struct {
	Repo OrderRepo
}

func NewOrderReconciler(repo OrderRepo) *OrderReconciler {
	return &OrderReconciler{Repo: repo}
}

// Reconcile writes the payment status and transaction ids to the order, and
// marks the order completed if and only if the payment is paid.
//
// An unknown order id is not an error: the gateway may redeliver callbacks
// for orders this store never saw, so the notification is logged and dropped,
// returning (nil, nil).
func (r *OrderReconciler) Reconcile(ctx context.Context, orderID uint, status models.PaymentStatus, tranID, bankTranID string) (*models.Order, error) {
	id := strconv.FormatUint(uint64(orderID), 10)

	order, err := r.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Warnf("order %s not found, dropping reconciliation for transaction %s", id, tranID)
			return nil, nil
		}
		return nil, err
	}

	columns := map[string]interface{}{
		"payment_status": status,
		"transaction_id": tranID,
	}
	if bankTranID != "" {
		columns["bank_transaction_id"] = bankTranID
	}
	if status == models.PaymentPaid {
		columns["order_status"] = models.OrderCompleted
	}

	if err := r.Repo.UpdateColumns(ctx, id, columns); err != nil {
		return nil, err
	}

	order.PaymentStatus = status
	order.TransactionID = tranID
	if bankTranID != "" {
		order.BankTransactionID = bankTranID
	}
	if status == models.PaymentPaid {
		order.OrderStatus = models.OrderCompleted
	}

	return order, nil
}
