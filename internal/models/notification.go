package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Notification is the raw callback payload posted by SSLCommerz, either from
// the payer's browser landing back on the shop or from the gateway's IPN push.
// Everything in it is untrusted until the signature check and the validation
// API call have both passed.
//
// The payload keeps its dynamic shape: the hash verification scheme names an
// arbitrary subset of fields in verify_key, so typed accessors sit on top of
// the full field map rather than replacing it.
type Notification struct {
	fields map[string]string
}

// NotificationFromForm builds a Notification from a decoded form body.
// Only the first value of each key is kept and values are trimmed.
func NotificationFromForm(form url.Values) *Notification {
	fields := make(map[string]string, len(form))
	for key := range form {
		fields[key] = strings.TrimSpace(form.Get(key))
	}
	return &Notification{fields: fields}
}

// Field returns the trimmed value for key, or "" when absent.
func (n *Notification) Field(key string) string {
	return n.fields[key]
}

func (n *Notification) TranID() string     { return n.fields["tran_id"] }
func (n *Notification) ValID() string      { return n.fields["val_id"] }
func (n *Notification) Amount() string     { return n.fields["amount"] }
func (n *Notification) Currency() string   { return n.fields["currency"] }
func (n *Notification) Status() string     { return n.fields["status"] }
func (n *Notification) BankTranID() string { return n.fields["bank_tran_id"] }
func (n *Notification) VerifyKey() string  { return n.fields["verify_key"] }
func (n *Notification) VerifySign() string { return n.fields["verify_sign"] }

// OrderID reads the order correlation id smuggled through the value_a
// pass-through field at initiation time. The gateway has no dedicated
// parameter for the merchant's order id, so value_a is the only channel.
func (n *Notification) OrderID() (uint, error) {
	raw := n.fields["value_a"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q: %w", raw, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("order id must be positive")
	}
	return uint(id), nil
}

// AmountValue parses the claimed amount as a float.
func (n *Notification) AmountValue() (float64, error) {
	amount, err := strconv.ParseFloat(n.fields["amount"], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", n.fields["amount"], err)
	}
	return amount, nil
}
