package paymentControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultZiinaAPIURL = "https://api-v2.ziina.com/api/payment_intent/"

// paymentExpiry is how long the hosted payment page stays valid.
const paymentExpiry = 3 * time.Hour

// Gateway talks to the Ziina payment-intent endpoint.
type Gateway struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewGatewayFromEnv loads the secret key. The key never reaches any client;
// callers only ever see the relayed redirect URL.
func NewGatewayFromEnv() (*Gateway, error) {
	apiKey := os.Getenv("ZIINA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ziina configuration missing: ZIINA_API_KEY not set")
	}
	apiURL := os.Getenv("ZIINA_API_URL")
	if apiURL == "" {
		apiURL = defaultZiinaAPIURL
	}
	return &Gateway{apiKey: apiKey, apiURL: apiURL, client: &http.Client{}}, nil
}

// IntentRequest carries everything the gateway needs for one hosted-payment
// redirect. Metadata travels to Ziina for later reconciliation.
type IntentRequest struct {
	TotalPrice    float64
	SuccessURL    string
	FailureURL    string
	OrderID       string
	UserID        string
	CustomerEmail string
}

type ziinaResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// CreatePaymentIntent sends the intent and returns the hosted page URL.
// Amount is in minor currency units (fils); the cancel URL mirrors the
// failure URL; expiry is a millisecond timestamp three hours out.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, req IntentRequest) (string, error) {
	payload := map[string]interface{}{
		"amount":        minorUnits(req.TotalPrice),
		"currency_code": "AED",
		"message":       "",
		"success_url":   req.SuccessURL,
		"cancel_url":    req.FailureURL,
		"failure_url":   req.FailureURL,
		"test":          false,
		"expiry":        strconv.FormatInt(time.Now().Add(paymentExpiry).UnixMilli(), 10),
		"allow_tips":    false,
		"metadata": map[string]string{
			"order_id":       req.OrderID,
			"user_id":        req.UserID,
			"customer_email": req.CustomerEmail,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach ziina: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ziina API error (%d): %s", resp.StatusCode, string(body))
	}

	var ziinaResp ziinaResponse
	if err := json.Unmarshal(body, &ziinaResp); err != nil {
		return "", fmt.Errorf("failed to parse ziina response: %w", err)
	}

	redirectURL := strings.TrimSpace(ziinaResp.RedirectURL)
	if redirectURL == "" {
		return "", fmt.Errorf("ziina returned empty redirect URL")
	}
	return redirectURL, nil
}

// minorUnits converts an AED amount to fils without float drift.
func minorUnits(totalPrice float64) int64 {
	return decimal.NewFromFloat(totalPrice).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
