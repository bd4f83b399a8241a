package sslcommerz

import "github.com/hasinhayder/tutor-sslcommerz/internal/models"

// MapStatus translates the gateway's status vocabulary into domain payment
// statuses. Anything unrecognized maps to failed.
func MapStatus(status string) models.PaymentStatus {
	switch status {
	case StatusValid, StatusValidated:
		return models.PaymentPaid
	case "FAILED":
		return models.PaymentFailed
	case "CANCELLED":
		return models.PaymentCancelled
	case "PENDING":
		return models.PaymentPending
	default:
		return models.PaymentFailed
	}
}
