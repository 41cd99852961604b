package cardgateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cardgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cardgateway.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return cardgateway.New("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestClient_CreateIntent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2599", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "7", r.PostForm.Get("metadata[cart_id]"))
		assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))
		assert.Equal(t, "a@b.com", r.PostForm.Get("receipt_email"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":2599,"currency":"usd",
			"client_secret":"pi_123_secret_abc","status":"requires_payment_method","metadata":{"cart_id":"7"}}`))
	})

	intent, err := client.CreateIntent(context.Background(), cardgateway.IntentParams{
		Amount:        2599,
		Currency:      "USD",
		CustomerEmail: "a@b.com",
		CartID:        7,
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "USD", intent.Currency)
	assert.EqualValues(t, 7, intent.CartID)
}

func TestClient_GetIntent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":2599,"currency":"usd",
			"status":"succeeded","customer":"cus_1","metadata":{"cart_id":"7"}}`))
	})

	intent, err := client.GetIntent(context.Background(), "pi_123")
	require.NoError(t, err)

	assert.Equal(t, cardgateway.StatusSucceeded, intent.Status)
	assert.Equal(t, "cus_1", intent.CustomerID)
}

func TestClient_GetIntent_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"resource_missing","message":"No such payment_intent","type":"invalid_request_error"}}`))
	})

	_, err := client.GetIntent(context.Background(), "pi_missing")
	assert.ErrorIs(t, err, cardgateway.ErrIntentNotFound)
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"unavailable","type":"api_error"}}`))
	})

	_, err := client.GetIntent(context.Background(), "pi_123")
	assert.ErrorIs(t, err, cardgateway.ErrUnavailable)
}
