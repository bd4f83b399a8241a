package sslcommerz_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = sslcommerz.Credentials{
	StoreID:       "teststore",
	StorePassword: "secret123",
	Environment:   sslcommerz.EnvSandbox,
}

func notification(fields map[string]string) *models.Notification {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	return models.NotificationFromForm(form)
}

func validationServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validator/api/validationserverAPI.php", r.URL.Path)
		assert.Equal(t, "teststore", r.URL.Query().Get("store_id"))
		assert.Equal(t, "secret123", r.URL.Query().Get("store_passwd"))
		assert.Equal(t, "1", r.URL.Query().Get("v"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestValidate_ConfirmedTransaction(t *testing.T) {
	srv := validationServer(t, `{"status":"VALID","tran_id":"T1","amount":"500.00","currency_amount":"500.00"}`)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "VALID", result.Status)
	assert.Equal(t, "T1", result.TranID)
	assert.Equal(t, 500.00, result.Amount)
}

func TestValidate_TrimsResponseTranID(t *testing.T) {
	srv := validationServer(t, `{"status":"VALIDATED","tran_id":"  T1 ","amount":"500.00"}`)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_AmountToleranceBoundary(t *testing.T) {
	cases := []struct {
		name      string
		confirmed string
		valid     bool
	}{
		{"just inside tolerance", "499.01", true},
		{"exactly one unit off", "499.00", false},
		{"beyond tolerance", "498.00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := validationServer(t, `{"status":"VALID","tran_id":"T1","amount":"`+tc.confirmed+`"}`)
			client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

			n := notification(map[string]string{
				"tran_id":  "T1",
				"val_id":   "V-100",
				"amount":   "500.00",
				"currency": "BDT",
			})

			result, err := client.Validate(context.Background(), n, testCreds)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, result.Valid)
		})
	}
}

func TestValidate_ForeignCurrencyUsesConvertedAmount(t *testing.T) {
	// Notification in USD: the settlement amount field is in BDT and must be
	// ignored in favor of currency_amount.
	srv := validationServer(t, `{"status":"VALID","tran_id":"T1","amount":"5500.00","currency_amount":"50.25"}`)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "50.00",
		"currency": "USD",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 50.25, result.Amount)
}

func TestValidate_TranIDMismatch(t *testing.T) {
	srv := validationServer(t, `{"status":"VALID","tran_id":"SOMETHING-ELSE","amount":"500.00"}`)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_UnconfirmedStatus(t *testing.T) {
	srv := validationServer(t, `{"status":"FAILED"}`)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "FAILED", result.Status)
}

func TestValidate_MalformedBodyIsNegativeNotError(t *testing.T) {
	srv := validationServer(t, `{"status":`)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_Non200IsNegativeNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}
	srv.Close()

	n := notification(map[string]string{
		"tran_id":  "T1",
		"val_id":   "V-100",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestValidate_MissingValID(t *testing.T) {
	client := &sslcommerz.Client{BaseURL: "http://unused.invalid", HTTP: http.DefaultClient}

	n := notification(map[string]string{
		"tran_id":  "T1",
		"amount":   "500.00",
		"currency": "BDT",
	})

	result, err := client.Validate(context.Background(), n, testCreds)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestInitiateSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gwprocess/v4/api.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "teststore", r.PostForm.Get("store_id"))
		assert.Equal(t, "TX-9", r.PostForm.Get("tran_id"))
		assert.Equal(t, "1500.00", r.PostForm.Get("total_amount"))
		assert.Equal(t, "42", r.PostForm.Get("value_a"))
		assert.Equal(t, "non-physical-goods", r.PostForm.Get("product_profile"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://sandbox.sslcommerz.com/EasyCheckOut/test"}`))
	}))
	t.Cleanup(srv.Close)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	resp, err := client.InitiateSession(context.Background(), sslcommerz.InitiateRequest{
		TranID:   "TX-9",
		Amount:   1500,
		Currency: "BDT",
		OrderID:  42,
	}, testCreds)

	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.sslcommerz.com/EasyCheckOut/test", resp.GatewayPageURL)
}

func TestInitiateSession_GatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","failedreason":"store credential error"}`))
	}))
	t.Cleanup(srv.Close)
	client := &sslcommerz.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	resp, err := client.InitiateSession(context.Background(), sslcommerz.InitiateRequest{
		TranID:   "TX-9",
		Amount:   1500,
		Currency: "BDT",
		OrderID:  42,
	}, testCreds)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store credential error")
	assert.Nil(t, resp)
}

func TestNewClient_EnvironmentPolicy(t *testing.T) {
	sandbox := sslcommerz.NewClient(sslcommerz.EnvSandbox)
	assert.Equal(t, "https://sandbox.sslcommerz.com", sandbox.BaseURL)

	live := sslcommerz.NewClient(sslcommerz.EnvLive)
	assert.Equal(t, "https://securepay.sslcommerz.com", live.BaseURL)
}
