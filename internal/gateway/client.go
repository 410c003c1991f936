package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Transport constants
const (
	DefaultTimeout    = 30 * time.Second
	MaxResponseBytes  = 16 << 20
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Options configures a Client
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the one fixed catalogue endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a gateway client for endpoint
func NewClient(endpoint string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger.Named("gateway"),
	}
}

// Endpoint returns the configured URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call POSTs {action, ...payload} and returns the decoded body. The action
// key always wins over a payload key of the same name.
func (c *Client) Call(ctx context.Context, action string, payload map[string]any) (Envelope, error) {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body[FieldAction] = action

	data, err := json.Marshal(body)
	if err != nil {
		return nil, &RemoteCallError{
			Action:  action,
			Message: fmt.Sprintf("could not encode request: %v", err),
			Err:     err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, newTransportError(action, err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)

	status, raw, err := c.do(req, action)
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil || env == nil {
		if err == nil {
			err = fmt.Errorf("response body is not a JSON object")
		}
		return nil, newDecodeError(action, status, err)
	}

	if !isSuccessStatus(status) || env.HasError() {
		callErr := newServerError(action, status, env)
		c.logger.Warn("Remote call failed",
			zap.String("action", action),
			zap.Int("status", status),
			zap.String("message", callErr.Message))
		return nil, callErr
	}

	return env, nil
}

// FetchAll GETs the full product list. Any failure is logged and degrades to
// an empty list.
func (c *Client) FetchAll(ctx context.Context) []model.Product {
	products, err := c.List(ctx)
	if err != nil {
		c.logger.Warn("Fetching products failed, using empty list", zap.Error(err))
		return []model.Product{}
	}
	return products
}

// List GETs the full product list and reports failures. FetchAll is the
// non-failing variant used by screens.
func (c *Client) List(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, newTransportError("", err)
	}

	status, raw, err := c.do(req, "")
	if err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		// Not a list: either an error object or garbage
		var env Envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env != nil {
			return nil, newServerError("", status, env)
		}
		return nil, newDecodeError("", status, err)
	}
	if !isSuccessStatus(status) {
		return nil, &RemoteCallError{Status: status, Message: FallbackMessage}
	}

	products := make([]model.Product, 0, len(rows))
	for i, row := range rows {
		var p model.Product
		if err := json.Unmarshal(row, &p); err != nil {
			c.logger.Debug("Skipping malformed product row", zap.Int("index", i), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// do executes req and reads the (bounded) body
func (c *Client) do(req *http.Request, action string) (int, []byte, error) {
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Remote request failed",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("action", action),
			zap.Error(err))
		return 0, nil, newTransportError(action, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, newTransportError(action, err)
	}

	c.logger.Debug("Remote request completed",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("action", action),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	return resp.StatusCode, raw, nil
}

// isSuccessStatus reports whether status is 2xx
func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
