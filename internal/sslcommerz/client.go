package sslcommerz

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
)

const (
	validationPath = "/validator/api/validationserverAPI.php"
	initiationPath = "/gwprocess/v4/api.php"

	requestTimeout = 30 * time.Second

	StatusValid     = "VALID"
	StatusValidated = "VALIDATED"

	// Settlement currency of the gateway. Amounts in other currencies are
	// confirmed against the converted currency_amount field instead.
	baseCurrency = "BDT"

	// The gateway rounds converted amounts, so confirmation tolerates a
	// difference strictly below one currency unit.
	amountTolerance = 1.0
)

// Client talks to the SSLCommerz HTTP API. BaseURL and the underlying
// http.Client are exported so tests can point it at a local server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(env Environment) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: env.SkipTLSVerify()},
	}
	return &Client{
		BaseURL: env.APIBase(),
		HTTP: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
	}
}

// ValidationResult is the outcome of asking the gateway for the authoritative
// record of a transaction. Valid is true only when the gateway confirms the
// transaction AND its record matches what the notification claimed.
type ValidationResult struct {
	Status   string
	TranID   string
	Amount   float64
	Currency string
	Valid    bool
}

// validationResponse mirrors the validator endpoint's JSON. The gateway
// serializes amounts as strings.
type validationResponse struct {
	Status         string `json:"status"`
	TranID         string `json:"tran_id"`
	Amount         string `json:"amount"`
	StoreAmount    string `json:"store_amount"`
	CurrencyAmount string `json:"currency_amount"`
	CurrencyType   string `json:"currency_type"`
}

// Validate queries the validation API for the transaction referenced by the
// notification. A transport failure returns an error; every other negative
// case (non-200, malformed body, unconfirmed status, field mismatch) is a
// result with Valid=false, not an error.
func (c *Client) Validate(ctx context.Context, n *models.Notification, creds Credentials) (*ValidationResult, error) {
	if n.ValID() == "" || n.TranID() == "" {
		return &ValidationResult{}, nil
	}

	query := url.Values{}
	query.Set("val_id", n.ValID())
	query.Set("store_id", creds.StoreID)
	query.Set("store_passwd", creds.StorePassword)
	query.Set("v", "1")
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+validationPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building validation request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("validation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ValidationResult{}, nil
	}

	var body validationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &ValidationResult{}, nil
	}

	result := &ValidationResult{
		Status:   body.Status,
		TranID:   strings.TrimSpace(body.TranID),
		Currency: n.Currency(),
	}

	if body.Status != StatusValid && body.Status != StatusValidated {
		return result, nil
	}
	if result.TranID != n.TranID() {
		return result, nil
	}

	confirmedRaw := body.CurrencyAmount
	if n.Currency() == baseCurrency {
		confirmedRaw = body.Amount
	}
	confirmed, err := strconv.ParseFloat(confirmedRaw, 64)
	if err != nil {
		return result, nil
	}
	claimed, err := n.AmountValue()
	if err != nil {
		return result, nil
	}
	if math.Abs(claimed-confirmed) >= amountTolerance {
		return result, nil
	}

	result.Amount = confirmed
	result.Valid = true
	return result, nil
}

// InitiateRequest carries everything the gateway needs to open a payment
// session. OrderID rides along in value_a because the callback schema has no
// dedicated field for the merchant's order id.
type InitiateRequest struct {
	TranID          string
	Amount          float64
	Currency        string
	OrderID         uint
	ProductName     string
	ProductCategory string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	CustomerCountry string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
}

type InitiateResponse struct {
	Status         string `json:"status"`
	GatewayPageURL string `json:"GatewayPageURL"`
	FailedReason   string `json:"failedreason"`
}

// InitiateSession opens a payment session and returns the URL the payer must
// be redirected to.
func (c *Client) InitiateSession(ctx context.Context, r InitiateRequest, creds Credentials) (*InitiateResponse, error) {
	form := url.Values{}
	form.Set("store_id", creds.StoreID)
	form.Set("store_passwd", creds.StorePassword)
	form.Set("tran_id", r.TranID)
	form.Set("total_amount", strconv.FormatFloat(r.Amount, 'f', 2, 64))
	form.Set("currency", r.Currency)
	form.Set("success_url", r.SuccessURL)
	form.Set("fail_url", r.FailURL)
	form.Set("cancel_url", r.CancelURL)
	form.Set("ipn_url", r.IPNURL)
	form.Set("product_name", r.ProductName)
	form.Set("product_category", r.ProductCategory)
	form.Set("product_profile", "non-physical-goods")
	form.Set("shipping_method", "NO")
	form.Set("emi_option", "0")
	form.Set("cus_name", r.CustomerName)
	form.Set("cus_email", r.CustomerEmail)
	form.Set("cus_phone", r.CustomerPhone)
	form.Set("cus_add1", r.CustomerAddress)
	form.Set("cus_city", r.CustomerCity)
	form.Set("cus_country", r.CustomerCountry)
	form.Set("value_a", strconv.FormatUint(uint64(r.OrderID), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+initiationPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building initiation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("initiation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("initiation returned HTTP %d", resp.StatusCode)
	}

	var body InitiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding initiation response: %w", err)
	}

	if !strings.EqualFold(body.Status, "SUCCESS") {
		return nil, fmt.Errorf("gateway rejected session: %s", body.FailedReason)
	}
	if body.GatewayPageURL == "" {
		return nil, fmt.Errorf("gateway returned no redirect URL")
	}

	return &body, nil
}
