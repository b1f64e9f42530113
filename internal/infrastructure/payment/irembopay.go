package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"content-manager-api/config"
	"content-manager-api/internal/application/ports"
)

const requestTimeout = 30 * time.Second

// Client initiates payments with the IremboPay gateway. Only initiation is
// implemented, settlement callbacks land on the configured callback URL and
// are handled by the provider dashboard.
type Client struct {
	logger *zap.Logger
	http   *http.Client

	endpoint string
	apiKey   string
}

func New(logger *zap.Logger, cfg config.Pay) *Client {
	return &Client{
		logger:   logger,
		http:     &http.Client{Timeout: requestTimeout},
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
	}
}

type (
	initiateRequest struct {
		Amount      string `json:"amount"`
		Email       string `json:"email,omitempty"`
		PhoneNumber string `json:"phoneNumber,omitempty"`
		CallbackURL string `json:"callbackUrl,omitempty"`
	}
	initiateResponse struct {
		Data struct {
			TransactionID string `json:"transactionId"`
			PaymentURL    string `json:"paymentUrl"`
		} `json:"data"`
	}
)

func (c *Client) Initiate(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentInitiation, error) {
	body, err := json.Marshal(initiateRequest{
		Amount:      req.Amount,
		Email:       req.Email,
		PhoneNumber: req.Phone,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.endpoint+"/payments/initiate",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("irembopay initiate: status %d: %s", resp.StatusCode, msg)
	}

	var out initiateResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Data.TransactionID == "" {
		return nil, fmt.Errorf("irembopay initiate: empty transaction id")
	}

	return &ports.PaymentInitiation{
		TransactionID: out.Data.TransactionID,
		PaymentURL:    out.Data.PaymentURL,
	}, nil
}
