// Package node implements the REST client of an Aleo ledger node.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Client talks to the REST API of a ledger node for one network.
type Client struct {
	baseURL string
	doer    Doer
	metrics Metrics
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithMetrics sets the collector observing every node call.
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithRateLimit caps the number of requests per second. Zero or less disables the limit.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a client for {endpoint}/{network}. An empty network omits the path segment.
func NewClient(endpoint string, network model.Network, opts ...Option) (*Client, error) {
	base, err := ValidateEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if network != "" {
		base += "/" + url.PathEscape(string(network))
	}

	c := &Client{
		baseURL: base,
		doer:    &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewBroadcaster returns a client without a base URL. Only Broadcast may be called on it.
func NewBroadcaster(opts ...Option) *Client {
	c := &Client{
		doer:   &http.Client{Timeout: 30 * time.Second},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL and returns it without a trailing slash.
func ValidateEndpoint(endpoint string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("endpoint scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.New("endpoint missing host")
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

// BaseURL returns the network scoped base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LatestHeight returns the current chain height.
func (c *Client) LatestHeight(ctx context.Context) (height uint32, err error) {
	started := time.Now()
	defer func() {
		c.observe(opLatestHeight, err, started)
	}()

	status, body, err := c.do(ctx, http.MethodGet, c.baseURL+"/latest/height", nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrHeightQueryFailed, err)
	}
	if !success(status) {
		return 0, fmt.Errorf("%w: %w", model.ErrHeightQueryFailed, nodeError(opLatestHeight, status, body))
	}

	parsed, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse u32 from response %q", model.ErrHeightQueryFailed, truncate(body))
	}
	return uint32(parsed), nil
}

// Blocks returns the raw JSON of blocks in [start, end). The end height is exclusive.
func (c *Client) Blocks(ctx context.Context, start, end uint32) (blocks []json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.observe(opBlocks, err, started)
	}()

	u := fmt.Sprintf("%s/blocks?start=%d&end=%d", c.baseURL, start, end)
	status, body, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: blocks %d..%d: %w", model.ErrBlockFetchFailed, start, end, err)
	}
	if !success(status) {
		return nil, fmt.Errorf("%w: blocks %d..%d: %w", model.ErrBlockFetchFailed, start, end, nodeError(opBlocks, status, body))
	}

	if err := json.Unmarshal(body, &blocks); err != nil {
		return nil, fmt.Errorf("%w: blocks %d..%d: %w: %v", model.ErrBlockFetchFailed, start, end, model.ErrBlockParseFailed, err)
	}
	return blocks, nil
}

// FindTransitionID looks up the transition that consumed a serial number.
//
// Any success answer means the serial number was consumed, even when the
// body carries no id. Any other HTTP answer means the node has no match and
// yields model.ErrTransitionNotFound. Transport failures (DNS, refused
// connection, timeouts) are returned as-is so callers can tell them apart.
func (c *Client) FindTransitionID(ctx context.Context, serialNumber model.SerialNumber) (transitionID string, err error) {
	started := time.Now()
	defer func() {
		if errors.Is(err, model.ErrTransitionNotFound) {
			c.observe(opFindTransitionID, nil, started)
			return
		}
		c.observe(opFindTransitionID, err, started)
	}()

	u := c.baseURL + "/find/transitionID/" + url.PathEscape(string(serialNumber))
	status, body, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("find transition id: %w", err)
	}
	if !success(status) {
		return "", fmt.Errorf("%w: %w", model.ErrTransitionNotFound, nodeError(opFindTransitionID, status, body))
	}

	id := decodeJSONString(body)
	if id == "" {
		c.logger.Debug("transition found without id", zap.String("serial_number", string(serialNumber)))
	}
	return id, nil
}

// Broadcast posts a JSON encoded transaction to endpoint and returns the response body.
func (c *Client) Broadcast(ctx context.Context, endpoint string, payload []byte) (response string, err error) {
	started := time.Now()
	defer func() {
		c.observe(opBroadcast, err, started)
	}()

	status, body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrBroadcastFailed, err)
	}
	if !success(status) {
		return "", fmt.Errorf("%w: %w", model.ErrBroadcastFailed, nodeError(opBroadcast, status, body))
	}
	return string(body), nil
}

func (c *Client) do(ctx context.Context, method, u string, payload []byte) (int, []byte, error) {
	if c.limiter != nil {
		c.limiter.Take()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var body []byte
	if success(resp.StatusCode) {
		body, err = io.ReadAll(resp.Body)
	} else {
		body, err = io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	}
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("node request", zap.String("method", method), zap.String("url", u), zap.Int("status", resp.StatusCode))
	return resp.StatusCode, body, nil
}

func (c *Client) observe(operation string, err error, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(operation, err, started)
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func nodeError(operation string, status int, body []byte) error {
	return &model.NodeError{
		Operation:  operation,
		StatusCode: status,
		Body:       strings.TrimSpace(string(body)),
	}
}

// decodeJSONString returns body decoded as a JSON string, or the trimmed text when it is not one.
func decodeJSONString(body []byte) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(body))
}

func truncate(body []byte) string {
	const limit = 64
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
