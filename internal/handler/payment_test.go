package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(t *testing.T, r http.Handler, req *http.Request) (*http.Response, string) {
	t.Helper()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func serve(t *testing.T, r http.Handler, method, target, body string) (*http.Response, string) {
	t.Helper()
	return do(t, r, newJSONRequest(method, target, body))
}

func paymentRouter(svc handler.PaymentService) chi.Router {
	h := handler.NewPaymentHandler(discardLogger(), svc, "https://shop.example")
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestPaymentHandler_Request(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"amountInIRT": 50000, "description": "Cart 7", "cartId": 7, "mobile": "09121234567"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					RequestPayment(mock.Anything, mock.MatchedBy(func(req entities.PaymentRequest) bool {
						return req.AmountInIRT.Equal(decimal.NewFromInt(50000)) &&
							req.CartID != nil && *req.CartID == 7 && req.Mobile == "09121234567"
					})).
					Return(entities.PaymentIntent{
						Authority:  "A00000000000000000000000000000000123",
						PaymentURL: "https://sandbox.zarinpal.com/pg/StartPay/A00000000000000000000000000000000123",
						Amount:     500000,
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"paymentUrl":"https://sandbox.zarinpal.com/pg/StartPay/A00000000000000000000000000000000123"`,
		},
		{
			name: "description defaults to order number",
			body: `{"amountInUSD": 12.5, "orderId": "42"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					RequestPayment(mock.Anything, mock.MatchedBy(func(req entities.PaymentRequest) bool {
						return req.Description == "Order #42" && req.AmountInUSD.Equal(decimal.RequireFromString("12.5"))
					})).
					Return(entities.PaymentIntent{Authority: "A1", Amount: 6250000}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"amount":6250000`,
		},
		{
			name:         "missing description",
			body:         `{"amountInIRT": 50000}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"description"`,
		},
		{
			name:         "malformed body",
			body:         `{"amountInIRT":`,
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "below minimum",
			body: `{"amountInIRT": 100, "description": "tiny"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					RequestPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentIntent{}, entities.ErrAmountBelowMinimum).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"AmountBelowMinimum"`,
		},
		{
			name: "gateway rejected",
			body: `{"amountInIRT": 50000, "description": "Cart 7"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					RequestPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentIntent{}, &entities.GatewayError{
						Gateway: entities.GatewayZarinpal, Code: -9, Message: "validation error", Err: entities.ErrGatewayRejected,
					}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"failed to create payment request"`,
		},
		{
			name: "internal error",
			body: `{"amountInIRT": 50000, "description": "Cart 7"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					RequestPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentIntent{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, paymentRouter(svc), http.MethodPost, "/api/zarinpal/request", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestPaymentHandler_Verify(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		check        func(t *testing.T, body map[string]any)
	}{
		{
			name: "verified",
			body: `{"authority": "A123", "amount": 500000}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, entities.Verification{Authority: "A123", Amount: 500000}).
					Return(entities.VerificationResult{Authority: "A123", Code: 100, RefID: "201", CardPan: "6037****1234"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["verified"])
				assert.Equal(t, "201", body["refId"])
				assert.Nil(t, body["alreadyVerified"])
			},
		},
		{
			name: "already verified",
			body: `{"authority": "A123"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, entities.Verification{Authority: "A123"}).
					Return(entities.VerificationResult{Authority: "A123", Code: 101, RefID: "201", AlreadyVerified: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["alreadyVerified"])
				assert.Equal(t, "Payment already verified", body["message"])
			},
		},
		{
			name: "gateway refused",
			body: `{"authority": "A123", "amount": 500000}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, mock.Anything).
					Return(entities.VerificationResult{}, &entities.GatewayError{
						Gateway: entities.GatewayZarinpal, Code: -51, Message: "session is not valid", Err: entities.ErrPaymentNotVerified,
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, false, body["verified"])
				assert.Equal(t, float64(-51), body["code"])
				assert.Equal(t, "session is not valid", body["message"])
			},
		},
		{
			name: "in progress",
			body: `{"authority": "A123"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, mock.Anything).
					Return(entities.VerificationResult{}, entities.ErrVerificationInProgress).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "missing authority",
			body:         `{"amount": 500000}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			res, raw := serve(t, paymentRouter(svc), http.MethodPost, "/api/zarinpal/verify", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.check != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal([]byte(raw), &body))
				tc.check(t, body)
			}
		})
	}
}

func TestPaymentHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "numeric ref id",
			body: `{"cartId": 7, "authority": "A123", "refId": 201, "customerEmail": "guest@example.com"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, entities.CreateOrderRequest{
						CartID: ptr[int64](7), Authority: "A123", RefID: "201", CustomerEmail: "guest@example.com",
					}).
					Return(entities.FinalizeResult{OrderID: 11, TransactionID: 21}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"orderID":11,"transactionID":21}`,
		},
		{
			name: "cart already purchased",
			body: `{"cartId": 7, "authority": "A123", "refId": "201"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.FinalizeResult{}, entities.ErrCartAlreadyPurchased).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"cart already purchased"`,
		},
		{
			name: "cart not found",
			body: `{"cartId": 7, "authority": "A123", "refId": "201"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.FinalizeResult{}, entities.ErrCartNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "missing fields",
			body: `{"authority": "A123"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.FinalizeResult{}, entities.ErrInvalidRequest).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, paymentRouter(svc), http.MethodPost, "/api/zarinpal/create-order", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestPaymentHandler_Callback(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:  "completed for guest",
			query: "?Status=OK&Authority=A123",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CompleteRedirect(mock.Anything, entities.RedirectOK, "A123").
					Return(entities.RedirectOutcome{
						Kind: entities.OutcomeCompleted, OrderID: 11, CustomerEmail: "guest+1@example.com", Guest: true,
					}, nil).Once()
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "https://shop.example/orders/11?email=guest%2B1%40example.com",
		},
		{
			name:  "completed for customer",
			query: "?Status=OK&Authority=A123",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CompleteRedirect(mock.Anything, entities.RedirectOK, "A123").
					Return(entities.RedirectOutcome{Kind: entities.OutcomeCompleted, OrderID: 11, CustomerEmail: "c@example.com"}, nil).Once()
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "https://shop.example/orders/11",
		},
		{
			name:  "cancelled",
			query: "?Status=NOK&Authority=A123",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CompleteRedirect(mock.Anything, entities.RedirectNOK, "A123").
					Return(entities.RedirectOutcome{Kind: entities.OutcomeCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name:  "nothing to verify",
			query: "?Status=OK&Authority=A999",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CompleteRedirect(mock.Anything, entities.RedirectOK, "A999").
					Return(entities.RedirectOutcome{Kind: entities.OutcomeNothingToVerify}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"nothing_to_verify"`,
		},
		{
			name:  "invalid callback",
			query: "?Status=MAYBE",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CompleteRedirect(mock.Anything, entities.RedirectStatus("MAYBE"), "").
					Return(entities.RedirectOutcome{}, entities.ErrInvalidCallback).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, paymentRouter(svc), http.MethodGet, "/checkout/verify"+tc.query, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantLocation != "" {
				assert.Equal(t, tc.wantLocation, res.Header.Get("Location"))
			}
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestPaymentHandler_PendingAndInquiry(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	svc.EXPECT().
		GetPendingPayment(mock.Anything, "A123").
		Return(entities.PendingPayment{Authority: "A123", CartID: ptr[int64](7), Amount: 500000, Currency: "IRR", Status: entities.PendingVerified}, nil).Once()
	svc.EXPECT().
		GetPendingPayment(mock.Anything, "gone").
		Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound).Once()
	svc.EXPECT().
		InquirePayment(mock.Anything, "A123").
		Return(entities.Inquiry{Authority: "A123", Code: 100, Status: "VERIFIED"}, nil).Once()

	r := paymentRouter(svc)

	res, body := serve(t, r, http.MethodGet, "/api/zarinpal/pending/A123", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"verified"`)
	assert.Contains(t, body, `"cartId":7`)

	res, _ = serve(t, r, http.MethodGet, "/api/zarinpal/pending/gone", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = serve(t, r, http.MethodPost, "/api/zarinpal/inquiry", `{"authority":"A123"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"VERIFIED"`)
}
