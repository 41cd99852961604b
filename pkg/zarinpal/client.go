package zarinpal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	CodeSuccess         = 100
	CodeAlreadyVerified = 101

	CurrencyRial  = "IRR"
	CurrencyToman = "IRT"

	RialsPerToman = 10
	MinimumAmount = 10000
)

const (
	productionAPI      = "https://payment.zarinpal.com/pg/v4/payment"
	sandboxAPI         = "https://sandbox.zarinpal.com/pg/v4/payment"
	productionStartPay = "https://www.zarinpal.com/pg/StartPay"
	sandboxStartPay    = "https://sandbox.zarinpal.com/pg/StartPay"

	maxResponseSize = 1 << 20
)

// ErrUnavailable wraps transport failures, 5xx answers and an open breaker.
var ErrUnavailable = errors.New("zarinpal unavailable")

// Error is a non-success answer from the gateway.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("zarinpal: code %d: %s", e.Code, e.Message)
}

type Config struct {
	MerchantID  string
	Sandbox     bool
	AccessToken string
	// APIBaseURL and StartPayURL override the mode defaults.
	APIBaseURL  string
	StartPayURL string
	Timeout     time.Duration
}

type Client struct {
	merchantID  string
	accessToken string
	apiURL      string
	startPayURL string
	http        *http.Client
	breaker     *gobreaker.CircuitBreaker[[]byte]
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithBreakerSettings(st gobreaker.Settings) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker[[]byte](st)
	}
}

func New(cfg Config, opts ...Option) *Client {
	apiURL, startPay := productionAPI, productionStartPay
	if cfg.Sandbox {
		apiURL, startPay = sandboxAPI, sandboxStartPay
	}
	if cfg.APIBaseURL != "" {
		apiURL = cfg.APIBaseURL
	}
	if cfg.StartPayURL != "" {
		startPay = cfg.StartPayURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		merchantID:  cfg.MerchantID,
		accessToken: cfg.AccessToken,
		apiURL:      strings.TrimRight(apiURL, "/"),
		startPayURL: strings.TrimRight(startPay, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](defaultBreakerSettings()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "zarinpal",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
}

// StartPayURL is the page the customer is redirected to for authority.
func (c *Client) StartPayURL(authority string) string {
	return c.startPayURL + "/" + url.PathEscape(authority)
}

type metadata struct {
	Mobile string `json:"mobile,omitempty"`
	Email  string `json:"email,omitempty"`
}

type requestBody struct {
	MerchantID  string    `json:"merchant_id"`
	Amount      int64     `json:"amount"`
	CallbackURL string    `json:"callback_url"`
	Description string    `json:"description"`
	Currency    string    `json:"currency,omitempty"`
	Metadata    *metadata `json:"metadata,omitempty"`
}

type RequestParams struct {
	Amount      int64
	CallbackURL string
	Description string
	Currency    string
	Mobile      string
	Email       string
}

type RequestResult struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Authority string `json:"authority"`
	FeeType   string `json:"fee_type"`
	Fee       int64  `json:"fee"`
}

// Request creates a payment and returns its authority.
func (c *Client) Request(ctx context.Context, p RequestParams) (RequestResult, error) {
	body := requestBody{
		MerchantID:  c.merchantID,
		Amount:      p.Amount,
		CallbackURL: p.CallbackURL,
		Description: p.Description,
		Currency:    p.Currency,
	}
	if p.Mobile != "" || p.Email != "" {
		body.Metadata = &metadata{Mobile: p.Mobile, Email: p.Email}
	}

	var res RequestResult
	if err := c.post(ctx, "/request.json", body, &res); err != nil {
		return RequestResult{}, err
	}
	if res.Code != CodeSuccess || res.Authority == "" {
		return res, &Error{Code: res.Code, Message: res.Message}
	}
	return res, nil
}

type verifyBody struct {
	MerchantID string `json:"merchant_id"`
	Amount     int64  `json:"amount"`
	Authority  string `json:"authority"`
}

type VerifyResult struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	CardHash string `json:"card_hash"`
	CardPan  string `json:"card_pan"`
	RefID    int64  `json:"ref_id"`
	FeeType  string `json:"fee_type"`
	Fee      int64  `json:"fee"`
}

// Verify settles the payment identified by authority. Codes other than
// CodeSuccess and CodeAlreadyVerified come back as *Error.
func (c *Client) Verify(ctx context.Context, authority string, amount int64) (VerifyResult, error) {
	body := verifyBody{MerchantID: c.merchantID, Amount: amount, Authority: authority}

	var res VerifyResult
	if err := c.post(ctx, "/verify.json", body, &res); err != nil {
		return VerifyResult{}, err
	}
	if res.Code != CodeSuccess && res.Code != CodeAlreadyVerified {
		return res, &Error{Code: res.Code, Message: res.Message}
	}
	return res, nil
}

type inquiryBody struct {
	MerchantID string `json:"merchant_id"`
	Authority  string `json:"authority"`
}

type InquiryResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Inquire reports the gateway-side status of authority (PAID, VERIFIED, IN_BANK, ...).
func (c *Client) Inquire(ctx context.Context, authority string) (InquiryResult, error) {
	var res InquiryResult
	if err := c.post(ctx, "/inquiry.json", inquiryBody{MerchantID: c.merchantID, Authority: authority}, &res); err != nil {
		return InquiryResult{}, err
	}
	return res, nil
}

// envelope is the v4 response shape. Either member may be an empty array.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("zarinpal: encode request: %w", err)
	}

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.accessToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.accessToken)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return data, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("zarinpal: decode response: %w", err)
	}

	if isObject(env.Errors) {
		var gwErr Error
		if err := json.Unmarshal(env.Errors, &gwErr); err != nil {
			return fmt.Errorf("zarinpal: decode errors: %w", err)
		}
		if gwErr.Code != 0 {
			return &gwErr
		}
	}

	if !isObject(env.Data) {
		return fmt.Errorf("zarinpal: empty response data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("zarinpal: decode data: %w", err)
	}
	return nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
