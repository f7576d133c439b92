package comgate

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alovak/comgate-go/requests"
	"github.com/bytedance/sonic"
	"golang.org/x/exp/slog"
)

// Client issues requests against the Comgate gateway. One underlying HTTP
// connection pool is created per Client and reused for its lifetime. Each
// operation makes exactly one HTTP call; nothing is retried.
type Client struct {
	merchantID  string
	secret      string
	baseURL     string
	timeout     time.Duration
	openTimeout time.Duration

	cfg        *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option overrides a single Client setting resolved from the process-wide
// Configuration.
type Option func(*Client)

func WithMerchantID(id string) Option {
	return func(c *Client) { c.merchantID = id }
}

func WithSecret(secret string) Option {
	return func(c *Client) { c.secret = secret }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the overall request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithOpenTimeout sets the connect timeout.
func WithOpenTimeout(d time.Duration) Option {
	return func(c *Client) { c.openTimeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely; the timeout
// options are ignored when one is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithConfig uses cfg instead of the process-wide Configuration for both
// settings resolution and call-time defaulting (method, test mode).
func WithConfig(cfg *Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// NewClient resolves settings from options and the process-wide
// Configuration. Missing credentials fail here, once, with a
// ConfigurationError naming every missing field.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.cfg == nil {
		c.cfg = Configuration()
	}
	if c.merchantID == "" {
		c.merchantID = c.cfg.MerchantID
	}
	if c.secret == "" {
		c.secret = c.cfg.Secret
	}
	if c.baseURL == "" {
		c.baseURL = c.cfg.BaseURL
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout == 0 {
		c.timeout = c.cfg.Timeout
	}
	if c.openTimeout == 0 {
		c.openTimeout = c.cfg.OpenTimeout
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	var missing []string
	if strings.TrimSpace(c.merchantID) == "" {
		missing = append(missing, "merchant_id")
	}
	if strings.TrimSpace(c.secret) == "" {
		missing = append(missing, "secret")
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: c.openTimeout}).DialContext,
			},
		}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard))
	}
	return c, nil
}

// CreatePayment creates a payment and returns the parsed gateway response,
// which carries transId and the redirect URL for the payer.
func (c *Client) CreatePayment(ctx context.Context, attrs map[string]any) (map[string]any, error) {
	request, err := requests.NewCreatePayment(attrs)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	payload := request.Payload()
	if method, _ := payload["method"].(string); strings.TrimSpace(method) == "" {
		if strings.TrimSpace(c.cfg.Methods) != "" {
			payload["method"] = c.cfg.Methods
		}
	}
	if _, ok := payload["test"]; !ok && c.cfg.TestMode {
		// One-directional default: global test mode only ever switches test on.
		payload["test"] = true
	}

	var parsed map[string]any
	if err := c.do(ctx, http.MethodPost, "/v2.0/payment.json", nil, payload, &parsed); err != nil {
		return nil, err
	}
	if err := ValidateCreatePaymentResponse(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// PaymentStatus fetches the current state of a payment by transaction ID.
func (c *Client) PaymentStatus(ctx context.Context, attrs map[string]any) (map[string]any, error) {
	request, err := requests.NewPaymentStatus(attrs)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	path := "/v2.0/payment/transId/" + url.PathEscape(request.TransID) + ".json"
	var parsed map[string]any
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// CancelPayment cancels a pending payment by transaction ID.
func (c *Client) CancelPayment(ctx context.Context, attrs map[string]any) (map[string]any, error) {
	request, err := requests.NewCancelPayment(attrs)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	path := "/v2.0/payment/transId/" + url.PathEscape(request.TransID) + ".json"
	var parsed map[string]any
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// TransferList fetches the settlement transfers for a date.
func (c *Client) TransferList(ctx context.Context, attrs map[string]any) ([]map[string]any, error) {
	request, err := requests.NewTransferList(attrs)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if c.effectiveTest(request.Test) {
		query.Set("test", "true")
	}

	path := "/v2.0/transferList/date/" + url.PathEscape(request.Date) + ".json"
	var parsed []map[string]any
	if err := c.do(ctx, http.MethodGet, path, query, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// SingleTransfer fetches the detail rows of one transfer.
func (c *Client) SingleTransfer(ctx context.Context, attrs map[string]any) ([]map[string]any, error) {
	request, err := requests.NewSingleTransfer(attrs)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if c.effectiveTest(request.Test) {
		query.Set("test", "true")
	}

	path := "/v2.0/singleTransfer/transferId/" + url.PathEscape(request.TransferID) + ".json"
	var parsed []map[string]any
	if err := c.do(ctx, http.MethodGet, path, query, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// effectiveTest resolves the test flag for transfer queries: an explicit
// caller value wins, otherwise the configured test mode. Only a true result
// ever reaches the query string.
func (c *Client) effectiveTest(explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	return c.cfg.TestMode
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload map[string]any, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := sonic.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	token := base64.StdEncoding.EncodeToString([]byte(c.merchantID + ":" + c.secret))
	req.Header.Set("Authorization", "Basic "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sending gateway request",
		slog.String("method", method),
		slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug("gateway response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Body: string(raw)}
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return &ResponseValidationError{Message: "invalid JSON response: " + err.Error()}
	}
	return nil
}
