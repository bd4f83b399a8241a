package models_test

import (
	"net/url"
	"testing"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFromForm_TrimsValues(t *testing.T) {
	n := models.NotificationFromForm(url.Values{
		"tran_id": {"  T1  "},
		"status":  {"VALID\n"},
	})

	assert.Equal(t, "T1", n.TranID())
	assert.Equal(t, "VALID", n.Status())
	assert.Equal(t, "", n.Field("missing"))
}

func TestNotification_OrderID(t *testing.T) {
	n := models.NotificationFromForm(url.Values{"value_a": {"42"}})

	id, err := n.OrderID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestNotification_OrderID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "0", "-1", "abc", "4.2"} {
		n := models.NotificationFromForm(url.Values{"value_a": {raw}})
		_, err := n.OrderID()
		assert.Error(t, err, "value_a %q", raw)
	}
}

func TestNotification_AmountValue(t *testing.T) {
	n := models.NotificationFromForm(url.Values{"amount": {"500.00"}})
	amount, err := n.AmountValue()
	require.NoError(t, err)
	assert.Equal(t, 500.00, amount)

	bad := models.NotificationFromForm(url.Values{"amount": {"lots"}})
	_, err = bad.AmountValue()
	assert.Error(t, err)
}
