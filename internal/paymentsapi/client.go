// Package paymentsapi is the HTTP client for the SIRE backend payment
// endpoints the tracker consumes.
package paymentsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/SIRETECH254/sire-payment-tracker/internal/mpesa"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetPayment fetches the payment record by id.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	endpoint := fmt.Sprintf("%s/payments/%s", c.baseURL, url.PathEscape(paymentID))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	payment, err := unwrapPayment(body)
	if err != nil {
		return nil, err
	}
	if payment.ID == "" {
		payment.ID = paymentID
	}
	return payment, nil
}

// QueryMpesaStatus runs the synchronous gateway status query for a checkout
// request and returns the normalized result.
func (c *Client) QueryMpesaStatus(ctx context.Context, checkoutID string) (*models.MpesaStatusResult, error) {
	endpoint := fmt.Sprintf("%s/payments/mpesa-status/%s", c.baseURL, url.PathEscape(checkoutID))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope mpesaStatusEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("error decoding status response: %w", err)
	}

	result := &envelope.mpesaStatusBody
	if envelope.Data != nil {
		result = envelope.Data
	}
	return result.normalize(), nil
}

// unwrapPayment tolerates the backend's nested response shapes: the payment
// may sit at data.payment, payment, data, or the top level.
func unwrapPayment(body []byte) (*models.Payment, error) {
	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Payment json.RawMessage `json:"payment"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("error decoding payment response: %w", err)
	}

	candidates := make([]json.RawMessage, 0, 4)
	if len(envelope.Data) > 0 {
		var inner struct {
			Payment json.RawMessage `json:"payment"`
		}
		if err := json.Unmarshal(envelope.Data, &inner); err == nil && len(inner.Payment) > 0 {
			candidates = append(candidates, inner.Payment)
		}
	}
	if len(envelope.Payment) > 0 {
		candidates = append(candidates, envelope.Payment)
	}
	if len(envelope.Data) > 0 {
		candidates = append(candidates, envelope.Data)
	}
	candidates = append(candidates, body)

	for _, candidate := range candidates {
		var payment models.Payment
		if err := json.Unmarshal(candidate, &payment); err != nil {
			continue
		}
		if payment.ID != "" || payment.Status != "" {
			return &payment, nil
		}
	}

	// Nothing matched a payment shape; treat as an empty record rather than
	// an error so the tracker logs it as noise.
	return &models.Payment{}, nil
}

// mpesaStatusEnvelope tolerates the status-query response variants: the code
// may be numeric or string, under resultCode, raw.ResultCode or CODE, and
// the whole body may be wrapped in data.
type mpesaStatusEnvelope struct {
	Data *mpesaStatusBody `json:"data"`
	mpesaStatusBody
}

type mpesaStatusBody struct {
	ResultCode json.RawMessage `json:"resultCode"`
	CODE       json.RawMessage `json:"CODE"`
	ResultDesc string          `json:"resultDesc"`
	Message    string          `json:"message"`
	Raw        *struct {
		ResultCode json.RawMessage `json:"ResultCode"`
		ResultDesc string          `json:"ResultDesc"`
	} `json:"raw"`
}

func (b *mpesaStatusBody) normalize() *models.MpesaStatusResult {
	candidates := []json.RawMessage{b.ResultCode}
	if b.Raw != nil {
		candidates = append(candidates, b.Raw.ResultCode)
	}
	candidates = append(candidates, b.CODE)

	description := b.ResultDesc
	if description == "" && b.Raw != nil {
		description = b.Raw.ResultDesc
	}
	if description == "" {
		description = b.Message
	}

	return &models.MpesaStatusResult{
		Code:        mpesa.CodeFromJSON(candidates...),
		Description: description,
	}
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling payments API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payments API returned status %d", resp.StatusCode)
	}

	return body, nil
}
