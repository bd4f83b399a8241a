package sslcommerz_test

import (
	"testing"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	cases := map[string]models.PaymentStatus{
		"VALID":     models.PaymentPaid,
		"VALIDATED": models.PaymentPaid,
		"FAILED":    models.PaymentFailed,
		"CANCELLED": models.PaymentCancelled,
		"PENDING":   models.PaymentPending,
	}

	for in, want := range cases {
		assert.Equal(t, want, sslcommerz.MapStatus(in), "status %s", in)
	}
}

func TestMapStatus_UnknownDefaultsToFailed(t *testing.T) {
	for _, in := range []string{"", "UNATTEMPTED", "EXPIRED", "valid", "Paid", "garbage"} {
		got := sslcommerz.MapStatus(in)
		assert.Equal(t, models.PaymentFailed, got, "status %q", in)
		assert.True(t, got.IsValid())
	}
}
