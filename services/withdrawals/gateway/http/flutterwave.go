package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kasule/wagepay/internal/pkg/logger"
	"github.com/kasule/wagepay/internal/pkg/models"
)

// FlutterwaveClient wraps the disbursement provider's transfer API
type FlutterwaveClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewFlutterwaveClient creates a new disbursement gateway client
func NewFlutterwaveClient(cfg models.FlutterwaveConfig) *FlutterwaveClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &FlutterwaveClient{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		client:    &http.Client{Timeout: timeout},
	}
}

type accountResolveRequest struct {
	AccountNumber string `json:"account_number"`
	AccountBank   string `json:"account_bank"`
}

type accountResolveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AccountNumber string `json:"account_number"`
		AccountName   string `json:"account_name"`
	} `json:"data"`
}

type transferRequest struct {
	AccountBank   string `json:"account_bank"`
	AccountNumber string `json:"account_number"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
	Narration     string `json:"narration"`
}

type transferResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID        int64  `json:"id"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

// VerifyAccount resolves a bank account to its registered account name
func (c *FlutterwaveClient) VerifyAccount(ctx context.Context, accountNumber, bankCode string) (string, error) {
	reqBody, err := json.Marshal(accountResolveRequest{
		AccountNumber: accountNumber,
		AccountBank:   bankCode,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal account resolve request: %w", err)
	}

	var resp accountResolveResponse
	if err := c.post(ctx, "/v3/accounts/resolve", reqBody, &resp); err != nil {
		return "", err
	}

	if resp.Status != "success" {
		return "", fmt.Errorf("account verification failed: %s", resp.Message)
	}

	return resp.Data.AccountName, nil
}

// InitiateTransfer asks the provider to move the net amount to the
// destination. Any non-success status, error or timeout is reported as an
// unsuccessful result; the caller decides how to reconcile.
func (c *FlutterwaveClient) InitiateTransfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
	reqBody, err := json.Marshal(transferRequest{
		AccountBank:   req.BankCode,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Reference:     req.Reference,
		Narration:     req.Narration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	var resp transferResponse
	if err := c.post(ctx, "/v3/transfers", reqBody, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		logger.Warn("Transfer rejected by gateway",
			logger.String("reference", req.Reference),
			logger.String("message", resp.Message))

		return &models.TransferResult{
			Success: false,
			Message: resp.Message,
		}, nil
	}

	reference := resp.Data.Reference
	if reference == "" {
		reference = req.Reference
	}

	return &models.TransferResult{
		Success:   true,
		Reference: reference,
		Message:   resp.Message,
	}, nil
}

func (c *FlutterwaveClient) post(ctx context.Context, path string, body []byte, out interface{}) error {
	url := c.baseURL + path

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return nil
}
