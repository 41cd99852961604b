package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func whoami(w http.ResponseWriter, r *http.Request) {
	if id := middleware.CustomerID(r.Context()); id != nil {
		w.Write([]byte("customer"))
		return
	}
	w.Write([]byte("guest"))
}

func TestAuth(t *testing.T) {
	auth := middleware.NewAuth(secret)

	valid, err := auth.Sign(9, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)
	expired, err := auth.Sign(9, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	require.NoError(t, err)
	foreign, err := middleware.NewAuth("another-secret-value").Sign(9, nil)
	require.NoError(t, err)
	noCustomer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte(secret))
	require.NoError(t, err)

	testCases := []struct {
		name       string
		required   bool
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "guest allowed", wantStatus: http.StatusOK, wantBody: "guest"},
		{name: "customer", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "customer"},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
		{name: "no customer claim", header: "Bearer " + noCustomer, wantStatus: http.StatusUnauthorized},
		{name: "required without token", required: true, wantStatus: http.StatusUnauthorized},
		{name: "required with token", required: true, header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "customer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mw := auth.Optional
			if tc.required {
				mw = auth.Required
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			mw(http.HandlerFunc(whoami)).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(middleware.Metrics(reg, "/health"))
	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/orders/1", "/orders/2", "/health"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP checkout_service_http_requests_total Total number of HTTP requests processed.
# TYPE checkout_service_http_requests_total counter
checkout_service_http_requests_total{method="GET",route="/orders/{id}",status="404"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "checkout_service_http_requests_total"))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/zarinpal/request", nil))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=502")
	assert.Contains(t, buf.String(), "path=/api/zarinpal/request")
}
