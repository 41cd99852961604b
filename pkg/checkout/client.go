package checkout

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

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseSize = 1 << 20

// ErrTransport wraps failures to reach the checkout service.
var ErrTransport = errors.New("checkout service unreachable")

// APIError is a non-2xx answer from the checkout service.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
	// Cause is the business rule code, e.g. "OutOfStock".
	Cause string
	// GatewayCode is set when the payment gateway refused a verification.
	GatewayCode int
	Fields      map[string]string
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return fmt.Sprintf("checkout: %d: %s", e.StatusCode, msg)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the checkout service over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken authenticates requests as a customer.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) RequestPayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	var res PaymentResponse
	err := c.do(ctx, http.MethodPost, "/api/zarinpal/request", req, &res)
	return res, err
}

// VerifyPayment settles authority. amount may be zero when the payment was
// requested with a cart.
func (c *Client) VerifyPayment(ctx context.Context, authority string, amount int64) (Verification, error) {
	body := struct {
		Authority string `json:"authority"`
		Amount    int64  `json:"amount,omitempty"`
	}{authority, amount}

	var res Verification
	err := c.do(ctx, http.MethodPost, "/api/zarinpal/verify", body, &res)
	return res, err
}

func (c *Client) GetPendingPayment(ctx context.Context, authority string) (PendingPayment, error) {
	var res PendingPayment
	err := c.do(ctx, http.MethodGet, "/api/zarinpal/pending/"+url.PathEscape(authority), nil, &res)
	return res, err
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderCreated, error) {
	var res OrderCreated
	err := c.do(ctx, http.MethodPost, "/api/zarinpal/create-order", req, &res)
	return res, err
}

func (c *Client) CreateCardIntent(ctx context.Context, req CardIntentRequest) (CardIntent, error) {
	var res CardIntent
	err := c.do(ctx, http.MethodPost, "/api/stripe/intent", req, &res)
	return res, err
}

func (c *Client) ConfirmCardOrder(ctx context.Context, req CardConfirmRequest) (OrderCreated, error) {
	var res OrderCreated
	err := c.do(ctx, http.MethodPost, "/api/stripe/confirm-order", req, &res)
	return res, err
}

func (c *Client) ListAddresses(ctx context.Context) ([]SavedAddress, error) {
	var res []SavedAddress
	err := c.do(ctx, http.MethodGet, "/api/addresses", nil, &res)
	return res, err
}

func (c *Client) GetCart(ctx context.Context, id int64) (Cart, error) {
	var res Cart
	err := c.do(ctx, http.MethodGet, "/api/carts/"+strconv.FormatInt(id, 10), nil, &res)
	return res, err
}

// errorBody covers both the generic error shape and a refused verification.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Cause   *struct {
		Code string `json:"code"`
	} `json:"cause"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("checkout: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("checkout: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Error
			apiErr.Details = eb.Details
			apiErr.Fields = eb.Fields
			if eb.Cause != nil {
				apiErr.Cause = eb.Cause.Code
			}
			if eb.Message != "" {
				apiErr.Message = eb.Message
				apiErr.GatewayCode = eb.Code
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("checkout: decode response: %w", err)
	}
	return nil
}
