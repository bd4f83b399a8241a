package sslcommerz_test

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"testing"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/stretchr/testify/assert"
)

const storePassword = "secret123"

func md5hex(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

func TestVerifySignature_AcceptsDocumentedDigest(t *testing.T) {
	// Signed fields sorted by key, with store_passwd = md5 of the secret
	// spliced in, joined as key=value pairs.
	plain := "amount=500.00" +
		"&status=VALID" +
		"&store_passwd=" + md5hex(storePassword) +
		"&tran_id=T1"
	sign := md5hex(plain)

	n := models.NotificationFromForm(url.Values{
		"tran_id":     {"T1"},
		"amount":      {"500.00"},
		"status":      {"VALID"},
		"verify_key":  {"amount,status,tran_id"},
		"verify_sign": {sign},
	})

	assert.True(t, sslcommerz.VerifySignature(n, storePassword))
}

func TestVerifySignature_RejectsMutatedSignature(t *testing.T) {
	plain := "amount=500.00" +
		"&status=VALID" +
		"&store_passwd=" + md5hex(storePassword) +
		"&tran_id=T1"
	sign := md5hex(plain)

	// Flip a single character of the valid signature.
	mutated := []byte(sign)
	if mutated[0] == '0' {
		mutated[0] = '1'
	} else {
		mutated[0] = '0'
	}

	n := models.NotificationFromForm(url.Values{
		"tran_id":     {"T1"},
		"amount":      {"500.00"},
		"status":      {"VALID"},
		"verify_key":  {"amount,status,tran_id"},
		"verify_sign": {string(mutated)},
	})

	assert.False(t, sslcommerz.VerifySignature(n, storePassword))
}

func TestVerifySignature_RejectsWrongSecret(t *testing.T) {
	plain := "amount=500.00" +
		"&store_passwd=" + md5hex("some-other-secret") +
		"&tran_id=T1"
	sign := md5hex(plain)

	n := models.NotificationFromForm(url.Values{
		"tran_id":     {"T1"},
		"amount":      {"500.00"},
		"verify_key":  {"amount,tran_id"},
		"verify_sign": {sign},
	})

	assert.False(t, sslcommerz.VerifySignature(n, storePassword))
}

func TestVerifySignature_SkipsWhenHashAbsent(t *testing.T) {
	// The gateway's hash scheme is optional: a notification carrying neither
	// verify_sign nor verify_key passes unconditionally.
	n := models.NotificationFromForm(url.Values{
		"tran_id": {"T1"},
		"amount":  {"500.00"},
	})

	assert.True(t, sslcommerz.VerifySignature(n, storePassword))
}

func TestVerifySignature_RejectsPartialHashFields(t *testing.T) {
	signOnly := models.NotificationFromForm(url.Values{
		"tran_id":     {"T1"},
		"verify_sign": {"deadbeef"},
	})
	assert.False(t, sslcommerz.VerifySignature(signOnly, storePassword))

	keyOnly := models.NotificationFromForm(url.Values{
		"tran_id":    {"T1"},
		"verify_key": {"tran_id"},
	})
	assert.False(t, sslcommerz.VerifySignature(keyOnly, storePassword))
}

func TestVerifySignature_AcceptsUppercaseSignature(t *testing.T) {
	plain := "store_passwd=" + md5hex(storePassword) + "&tran_id=T1"
	sign := md5hex(plain)

	n := models.NotificationFromForm(url.Values{
		"tran_id":     {"T1"},
		"verify_key":  {"tran_id"},
		"verify_sign": {fmt.Sprintf("%X", md5.Sum([]byte(plain)))},
	})

	assert.Equal(t, len(sign), 32)
	assert.True(t, sslcommerz.VerifySignature(n, storePassword))
}
