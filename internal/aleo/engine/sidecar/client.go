// Package sidecar talks to a local process exposing the cryptographic
// primitives of the ledger library over HTTP JSON.
package sidecar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/engine"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"go.uber.org/zap"
)

// StatusError is a non-success answer of the sidecar. It means the sidecar
// rejected the request, as opposed to being unreachable.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sidecar returned status %d: %s", e.StatusCode, e.Message)
}

// Client implements engine.RecordCipher and engine.ExecutorFactory against a sidecar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var (
	_ engine.RecordCipher    = (*Client)(nil)
	_ engine.ExecutorFactory = (*Client)(nil)
)

// NewClient creates a sidecar client. A nil httpClient gets a client without
// timeout since proof generation may take minutes.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// AddressXCoordinate returns the x-coordinate of the address derived from viewKey.
func (c *Client) AddressXCoordinate(ctx context.Context, viewKey model.ViewKey) (string, error) {
	var resp struct {
		XCoordinate string `json:"x_coordinate"`
	}
	if err := c.call(ctx, "/view_key/address_x", map[string]any{"view_key": viewKey}, &resp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return "", fmt.Errorf("%w: %w", model.ErrInvalidViewKey, err)
		}
		return "", fmt.Errorf("address x-coordinate: %w", err)
	}
	if resp.XCoordinate == "" {
		return "", fmt.Errorf("address x-coordinate: empty response")
	}
	return resp.XCoordinate, nil
}

// IsOwner reports whether ciphertext belongs to the address with xCoordinate.
func (c *Client) IsOwner(ctx context.Context, ciphertext model.CiphertextRecord, viewKey model.ViewKey, xCoordinate string) (bool, error) {
	var resp struct {
		Owner bool `json:"owner"`
	}
	err := c.call(ctx, "/record/is_owner", map[string]any{
		"ciphertext":   ciphertext,
		"view_key":     viewKey,
		"x_coordinate": xCoordinate,
	}, &resp)
	if err != nil {
		return false, fmt.Errorf("ownership test: %w", err)
	}
	return resp.Owner, nil
}

// Decrypt decrypts an owned ciphertext record.
func (c *Client) Decrypt(ctx context.Context, ciphertext model.CiphertextRecord, viewKey model.ViewKey) (model.PlaintextRecord, error) {
	var resp struct {
		Plaintext string `json:"plaintext"`
	}
	err := c.call(ctx, "/record/decrypt", map[string]any{
		"ciphertext": ciphertext,
		"view_key":   viewKey,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrDecryptionFailed, err)
	}
	if resp.Plaintext == "" {
		return "", fmt.Errorf("%w: empty plaintext", model.ErrDecryptionFailed)
	}
	return model.PlaintextRecord(resp.Plaintext), nil
}

// SerialNumber derives the serial number of the record with commitment.
func (c *Client) SerialNumber(ctx context.Context, privateKey model.PrivateKey, commitment string) (model.SerialNumber, error) {
	var resp struct {
		SerialNumber string `json:"serial_number"`
	}
	err := c.call(ctx, "/record/serial_number", map[string]any{
		"private_key": privateKey,
		"commitment":  commitment,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("serial number: %w", err)
	}
	if resp.SerialNumber == "" {
		return "", fmt.Errorf("serial number: empty response")
	}
	return model.SerialNumber(resp.SerialNumber), nil
}

// New opens an executor for one transaction build.
func (c *Client) New() (engine.Executor, error) {
	return &executor{client: c}, nil
}

type executor struct {
	client *Client
	mu     sync.Mutex
	closed bool
}

// ExecuteTransfer asks the sidecar to build and prove credits.aleo/transfer.
func (e *executor) ExecuteTransfer(ctx context.Context, req model.TransferRequest, queryEndpoint string) (model.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return model.Transaction{}, fmt.Errorf("%w: executor closed", model.ErrTransactionBuildFailed)
	}

	var resp struct {
		ID          string          `json:"id"`
		Type        string          `json:"type"`
		Transaction json.RawMessage `json:"transaction"`
	}
	started := time.Now()
	err := e.client.call(ctx, "/transaction/transfer", map[string]any{
		"private_key": req.PrivateKey,
		"program":     model.TransferProgram,
		"function":    model.TransferFunction,
		"record":      req.Record,
		"recipient":   req.Recipient,
		"amount":      req.Amount,
		"query":       queryEndpoint,
	}, &resp)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %w", model.ErrTransactionBuildFailed, err)
	}
	if resp.ID == "" || len(resp.Transaction) == 0 {
		return model.Transaction{}, fmt.Errorf("%w: sidecar returned an incomplete transaction", model.ErrTransactionBuildFailed)
	}
	e.client.logger.Debug("transaction executed", zap.String("id", resp.ID), zap.Duration("elapsed", time.Since(started)))

	txType := model.TransactionType(resp.Type)
	if txType == "" {
		txType = model.TransactionExecute
	}
	return model.Transaction{
		ID:   model.TransactionID(resp.ID),
		Type: txType,
		Raw:  resp.Transaction,
	}, nil
}

func (e *executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (c *Client) call(ctx context.Context, path string, reqBody any, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseErrorResponse(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: errResp.Error}
}
