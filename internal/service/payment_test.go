package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/lock"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/zarinpal"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var noopRelease = lock.ReleaseFunc(func(context.Context) error { return nil })

type paymentMocks struct {
	gateway   *mocks.MockRegionalGateway
	pending   *mocks.MockPendingRepo
	events    *mocks.MockEventWriter
	locker    *mocks.MockLocker
	finalizer *mocks.MockFinalizer
}

func newPaymentService(t *testing.T, currency string) (service.PaymentConfig, paymentMocks) {
	t.Helper()
	cfg := service.PaymentConfig{
		CallbackURL:   "https://shop.test/checkout/verify",
		Currency:      currency,
		USDToRial:     decimal.NewFromInt(500000),
		MinimumAmount: 10000,
		PendingTTL:    time.Hour,
		VerifyLockTTL: time.Minute,
	}
	return cfg, paymentMocks{
		gateway:   mocks.NewMockRegionalGateway(t),
		pending:   mocks.NewMockPendingRepo(t),
		events:    mocks.NewMockEventWriter(t),
		locker:    mocks.NewMockLocker(t),
		finalizer: mocks.NewMockFinalizer(t),
	}
}

func (m paymentMocks) build(cfg service.PaymentConfig) interface {
	RequestPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error)
	VerifyPayment(ctx context.Context, v entities.Verification) (entities.VerificationResult, error)
	InquirePayment(ctx context.Context, authority string) (entities.Inquiry, error)
	GetPendingPayment(ctx context.Context, authority string) (entities.PendingPayment, error)
	CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.FinalizeResult, error)
	CompleteRedirect(ctx context.Context, status entities.RedirectStatus, authority string) (entities.RedirectOutcome, error)
	ExpirePendingPayments(ctx context.Context) error
} {
	return service.NewPaymentService(discardLogger(), cfg, m.gateway, m.pending, m.events, m.locker, m.finalizer)
}

func TestAmountInRials(t *testing.T) {
	rate := decimal.NewFromInt(500000)

	testCases := []struct {
		name    string
		irt     decimal.Decimal
		usd     decimal.Decimal
		want    int64
		wantErr error
	}{
		{name: "tomans times ten", irt: decimal.NewFromInt(1000), want: 10000},
		{name: "dollars at rate", usd: decimal.RequireFromString("12.5"), want: 6250000},
		{name: "tomans preferred over dollars", irt: decimal.NewFromInt(50000), usd: decimal.NewFromInt(1), want: 500000},
		{name: "rounded to whole rials", usd: decimal.RequireFromString("0.0000011"), want: 1},
		{name: "nothing positive", wantErr: entities.ErrInvalidAmount},
		{name: "negative", irt: decimal.NewFromInt(-5), wantErr: entities.ErrInvalidAmount},
		{name: "rounds to zero", usd: decimal.RequireFromString("0.0000001"), wantErr: entities.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.AmountInRials(tc.irt, tc.usd, rate)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_RequestPayment(t *testing.T) {
	cartID := int64(7)
	address := &entities.Address{FirstName: "Sara", City: "Tehran"}

	testCases := []struct {
		name         string
		currency     string
		req          entities.PaymentRequest
		mockBehavior func(m paymentMocks)
		want         entities.PaymentIntent
		wantErr      error
	}{
		{
			name:     "OK with pending record",
			currency: zarinpal.CurrencyRial,
			req: entities.PaymentRequest{
				AmountInIRT:     decimal.NewFromInt(50000),
				Description:     "Order",
				Mobile:          "+98 912 345 6789",
				Email:           " a@b.com ",
				CartID:          &cartID,
				ShippingAddress: address,
			},
			mockBehavior: func(m paymentMocks) {
				m.gateway.EXPECT().Request(mock.Anything, zarinpal.RequestParams{
					Amount:      500000,
					CallbackURL: "https://shop.test/checkout/verify",
					Description: "Order",
					Currency:    zarinpal.CurrencyRial,
					Mobile:      "09123456789",
					Email:       "a@b.com",
				}).Return(zarinpal.RequestResult{Code: 100, Authority: "A123"}, nil)
				m.gateway.EXPECT().StartPayURL("A123").Return("https://sandbox.zarinpal.com/pg/StartPay/A123")
				m.pending.EXPECT().SavePending(mock.Anything, mock.MatchedBy(func(p entities.PendingPayment) bool {
					return p.Authority == "A123" && *p.CartID == cartID && p.Amount == 500000 &&
						p.Status == entities.PendingAwaiting && p.CustomerEmail == "a@b.com" &&
						p.ShippingAddress == address && p.ExpiresAt.Sub(p.CreatedAt) == time.Hour
				})).Return(nil)
			},
			want: entities.PaymentIntent{
				Authority:  "A123",
				PaymentURL: "https://sandbox.zarinpal.com/pg/StartPay/A123",
				Amount:     500000,
			},
		},
		{
			name:     "toman merchant gets tomans, no cart means no pending record",
			currency: zarinpal.CurrencyToman,
			req:      entities.PaymentRequest{AmountInIRT: decimal.NewFromInt(1000)},
			mockBehavior: func(m paymentMocks) {
				m.gateway.EXPECT().Request(mock.Anything, mock.MatchedBy(func(p zarinpal.RequestParams) bool {
					return p.Amount == 1000 && p.Currency == zarinpal.CurrencyToman
				})).Return(zarinpal.RequestResult{Code: 100, Authority: "A1"}, nil)
				m.gateway.EXPECT().StartPayURL("A1").Return("url/A1")
			},
			want: entities.PaymentIntent{Authority: "A1", PaymentURL: "url/A1", Amount: 1000},
		},
		{
			name:     "invalid mobile is omitted",
			currency: zarinpal.CurrencyRial,
			req:      entities.PaymentRequest{AmountInUSD: decimal.NewFromInt(1), Mobile: "12345"},
			mockBehavior: func(m paymentMocks) {
				m.gateway.EXPECT().Request(mock.Anything, mock.MatchedBy(func(p zarinpal.RequestParams) bool {
					return p.Mobile == "" && p.Amount == 500000
				})).Return(zarinpal.RequestResult{Code: 100, Authority: "A2"}, nil)
				m.gateway.EXPECT().StartPayURL("A2").Return("url/A2")
			},
			want: entities.PaymentIntent{Authority: "A2", PaymentURL: "url/A2", Amount: 500000},
		},
		{
			name:         "below minimum",
			currency:     zarinpal.CurrencyRial,
			req:          entities.PaymentRequest{AmountInIRT: decimal.NewFromInt(999)},
			mockBehavior: func(m paymentMocks) {},
			wantErr:      entities.ErrAmountBelowMinimum,
		},
		{
			name:         "no amount",
			currency:     zarinpal.CurrencyRial,
			req:          entities.PaymentRequest{Description: "x"},
			mockBehavior: func(m paymentMocks) {},
			wantErr:      entities.ErrInvalidAmount,
		},
		{
			name:     "gateway rejects",
			currency: zarinpal.CurrencyRial,
			req:      entities.PaymentRequest{AmountInIRT: decimal.NewFromInt(1000)},
			mockBehavior: func(m paymentMocks) {
				m.gateway.EXPECT().Request(mock.Anything, mock.Anything).
					Return(zarinpal.RequestResult{}, &zarinpal.Error{Code: -9, Message: "validation error"})
			},
			wantErr: entities.ErrGatewayRejected,
		},
		{
			name:     "gateway unreachable",
			currency: zarinpal.CurrencyRial,
			req:      entities.PaymentRequest{AmountInIRT: decimal.NewFromInt(1000)},
			mockBehavior: func(m paymentMocks) {
				m.gateway.EXPECT().Request(mock.Anything, mock.Anything).
					Return(zarinpal.RequestResult{}, zarinpal.ErrUnavailable)
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, m := newPaymentService(t, tc.currency)
			tc.mockBehavior(m)

			got, err := m.build(cfg).RequestPayment(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_RequestPayment_GatewayErrorCarriesCode(t *testing.T) {
	cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
	m.gateway.EXPECT().Request(mock.Anything, mock.Anything).
		Return(zarinpal.RequestResult{}, &zarinpal.Error{Code: -12, Message: "too many attempts"})

	_, err := m.build(cfg).RequestPayment(context.Background(), entities.PaymentRequest{AmountInIRT: decimal.NewFromInt(1000)})

	var gerr *entities.GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, -12, gerr.Code)
	assert.Equal(t, "too many attempts", gerr.Message)
	assert.Equal(t, entities.GatewayZarinpal, gerr.Gateway)
}

func livePending(status entities.PendingStatus) entities.PendingPayment {
	now := time.Now()
	return entities.PendingPayment{
		Authority:     "A123",
		CartID:        ptr(int64(7)),
		Amount:        500000,
		Currency:      zarinpal.CurrencyRial,
		CustomerEmail: "a@b.com",
		Status:        status,
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Hour),
	}
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	testCases := []struct {
		name         string
		in           entities.Verification
		mockBehavior func(m paymentMocks)
		want         entities.VerificationResult
		wantErr      error
	}{
		{
			name: "success records event and marks pending",
			in:   entities.Verification{Authority: "A123", Amount: 500000},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(livePending(entities.PendingAwaiting), nil)
				m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(noopRelease, nil)
				m.gateway.EXPECT().Verify(mock.Anything, "A123", int64(500000)).
					Return(zarinpal.VerifyResult{Code: 100, RefID: 201, CardPan: "6037**1234", Fee: 500}, nil)
				m.pending.EXPECT().MarkPendingVerified(mock.Anything, "A123", "201", "6037**1234").Return(nil)
				m.events.EXPECT().InsertEvent(mock.Anything, mock.MatchedBy(func(e entities.OutboxEvent) bool {
					return e.Type == entities.EventPaymentVerified && e.Key == "A123" && e.EventID != ""
				})).Return(nil)
			},
			want: entities.VerificationResult{Authority: "A123", Code: 100, RefID: "201", CardPan: "6037**1234", Fee: 500},
		},
		{
			name: "already verified, amount from pending",
			in:   entities.Verification{Authority: "A123"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(livePending(entities.PendingVerified), nil)
				m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(noopRelease, nil)
				m.gateway.EXPECT().Verify(mock.Anything, "A123", int64(500000)).
					Return(zarinpal.VerifyResult{Code: 101, RefID: 201}, nil)
				m.pending.EXPECT().MarkPendingVerified(mock.Anything, "A123", "201", "").Return(nil)
			},
			want: entities.VerificationResult{Authority: "A123", Code: 101, RefID: "201", AlreadyVerified: true},
		},
		{
			name: "gateway failure code",
			in:   entities.Verification{Authority: "A123", Amount: 500000},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
				m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(noopRelease, nil)
				m.gateway.EXPECT().Verify(mock.Anything, "A123", int64(500000)).
					Return(zarinpal.VerifyResult{Code: -51}, &zarinpal.Error{Code: -51, Message: "session is not valid"})
			},
			wantErr: entities.ErrPaymentNotVerified,
		},
		{
			name: "concurrent verification",
			in:   entities.Verification{Authority: "A123", Amount: 500000},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
				m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(nil, lock.ErrLocked)
			},
			wantErr: entities.ErrVerificationInProgress,
		},
		{
			name: "lock backend down still verifies",
			in:   entities.Verification{Authority: "A123", Amount: 500000},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
				m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(nil, errors.New("redis: connection refused"))
				m.gateway.EXPECT().Verify(mock.Anything, "A123", int64(500000)).Return(zarinpal.VerifyResult{Code: 101, RefID: 9}, nil)
			},
			want: entities.VerificationResult{Authority: "A123", Code: 101, RefID: "9", AlreadyVerified: true},
		},
		{
			name: "no amount and no pending record",
			in:   entities.Verification{Authority: "A123"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
			},
			wantErr: entities.ErrInvalidAmount,
		},
		{
			name:         "missing authority",
			in:           entities.Verification{Amount: 1},
			mockBehavior: func(m paymentMocks) {},
			wantErr:      entities.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
			tc.mockBehavior(m)

			got, err := m.build(cfg).VerifyPayment(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_VerifyPayment_ReleasesLock(t *testing.T) {
	cfg, m := newPaymentService(t, zarinpal.CurrencyRial)

	released := false
	release := lock.ReleaseFunc(func(context.Context) error {
		released = true
		return nil
	})
	m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
	m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(release, nil)
	m.gateway.EXPECT().Verify(mock.Anything, "A123", int64(10000)).
		Return(zarinpal.VerifyResult{}, &zarinpal.Error{Code: -50, Message: "amount mismatch"})

	_, err := m.build(cfg).VerifyPayment(context.Background(), entities.Verification{Authority: "A123", Amount: 10000})

	assert.ErrorIs(t, err, entities.ErrPaymentNotVerified)
	assert.True(t, released)
}

func TestPaymentService_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		req          entities.CreateOrderRequest
		mockBehavior func(m paymentMocks)
		want         entities.FinalizeResult
		wantErr      error
	}{
		{
			name: "fields filled from verified pending record",
			req:  entities.CreateOrderRequest{Authority: "A123"},
			mockBehavior: func(m paymentMocks) {
				p := livePending(entities.PendingVerified)
				p.RefID = "201"
				p.CardPan = "6037**1234"
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(p, nil)
				m.finalizer.EXPECT().Finalize(mock.Anything, entities.FinalizeInput{
					CartID:        7,
					Reference:     entities.ZarinpalRef("A123", "201", "6037**1234"),
					CustomerEmail: "a@b.com",
				}).Return(entities.FinalizeResult{OrderID: 11, TransactionID: 21}, nil)
			},
			want: entities.FinalizeResult{OrderID: 11, TransactionID: 21},
		},
		{
			name: "explicit fields without pending record",
			req:  entities.CreateOrderRequest{Authority: "A9", CartID: ptr(int64(3)), RefID: "55", CustomerEmail: "g@x.io"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A9").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
				m.finalizer.EXPECT().Finalize(mock.Anything, entities.FinalizeInput{
					CartID:        3,
					Reference:     entities.ZarinpalRef("A9", "55", ""),
					CustomerEmail: "g@x.io",
				}).Return(entities.FinalizeResult{OrderID: 4, TransactionID: 5}, nil)
			},
			want: entities.FinalizeResult{OrderID: 4, TransactionID: 5},
		},
		{
			name: "pending record not verified yet",
			req:  entities.CreateOrderRequest{Authority: "A123", CartID: ptr(int64(7)), RefID: "201"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(livePending(entities.PendingAwaiting), nil)
			},
			wantErr: entities.ErrPaymentNotVerified,
		},
		{
			name: "swept record never verified",
			req:  entities.CreateOrderRequest{Authority: "A123", CartID: ptr(int64(7)), RefID: "forged"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(livePending(entities.PendingExpired), nil)
			},
			wantErr: entities.ErrPaymentNotVerified,
		},
		{
			name: "record past its deadline never verified",
			req:  entities.CreateOrderRequest{Authority: "A123", CartID: ptr(int64(7)), RefID: "forged"},
			mockBehavior: func(m paymentMocks) {
				p := livePending(entities.PendingAwaiting)
				p.ExpiresAt = time.Now().Add(-time.Minute)
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(p, nil)
			},
			wantErr: entities.ErrPaymentNotVerified,
		},
		{
			name: "cancelled record",
			req:  entities.CreateOrderRequest{Authority: "A123", CartID: ptr(int64(7)), RefID: "forged"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(livePending(entities.PendingCancelled), nil)
			},
			wantErr: entities.ErrPaymentNotVerified,
		},
		{
			name: "missing ref id",
			req:  entities.CreateOrderRequest{Authority: "A9", CartID: ptr(int64(3))},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A9").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
			},
			wantErr: entities.ErrInvalidRequest,
		},
		{
			name: "cart not found",
			req:  entities.CreateOrderRequest{Authority: "A9", CartID: ptr(int64(3)), RefID: "1"},
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A9").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
				m.finalizer.EXPECT().Finalize(mock.Anything, mock.Anything).Return(entities.FinalizeResult{}, entities.ErrCartNotFound)
			},
			wantErr: entities.ErrCartNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
			tc.mockBehavior(m)

			got, err := m.build(cfg).CreateOrder(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_CompleteRedirect(t *testing.T) {
	testCases := []struct {
		name         string
		status       entities.RedirectStatus
		authority    string
		mockBehavior func(m paymentMocks)
		want         entities.RedirectOutcome
		wantErr      error
	}{
		{
			name:      "cancelled makes no gateway calls",
			status:    entities.RedirectNOK,
			authority: "A123",
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().MarkPendingCancelled(mock.Anything, "A123").Return(nil)
			},
			want: entities.RedirectOutcome{Kind: entities.OutcomeCancelled},
		},
		{
			name:      "cancelled without record",
			status:    entities.RedirectNOK,
			authority: "A123",
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().MarkPendingCancelled(mock.Anything, "A123").Return(entities.ErrPendingPaymentNotFound)
			},
			want: entities.RedirectOutcome{Kind: entities.OutcomeCancelled},
		},
		{
			name:      "no record is nothing to verify",
			status:    entities.RedirectOK,
			authority: "A123",
			mockBehavior: func(m paymentMocks) {
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(entities.PendingPayment{}, entities.ErrPendingPaymentNotFound)
			},
			want: entities.RedirectOutcome{Kind: entities.OutcomeNothingToVerify},
		},
		{
			name:      "expired record is nothing to verify",
			status:    entities.RedirectOK,
			authority: "A123",
			mockBehavior: func(m paymentMocks) {
				p := livePending(entities.PendingAwaiting)
				p.ExpiresAt = time.Now().Add(-time.Minute)
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(p, nil)
			},
			want: entities.RedirectOutcome{Kind: entities.OutcomeNothingToVerify},
		},
		{
			name:      "already finalized replays without verifying",
			status:    entities.RedirectOK,
			authority: "A123",
			mockBehavior: func(m paymentMocks) {
				p := livePending(entities.PendingFinalized)
				p.RefID = "201"
				p.OrderID = ptr(int64(11))
				p.TransactionID = ptr(int64(21))
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(p, nil)
				m.finalizer.EXPECT().Finalize(mock.Anything, mock.MatchedBy(func(in entities.FinalizeInput) bool {
					return in.CartID == 7 && in.Reference.Composite() == "zarinpal_201_A123"
				})).Return(entities.FinalizeResult{OrderID: 11, TransactionID: 21, CustomerEmail: "a@b.com", Replayed: true}, nil)
			},
			want: entities.RedirectOutcome{Kind: entities.OutcomeCompleted, OrderID: 11, TransactionID: 21, CustomerEmail: "a@b.com", Guest: true},
		},
		{
			name:      "verifies then finalizes guest order",
			status:    entities.RedirectOK,
			authority: "A123",
			mockBehavior: func(m paymentMocks) {
				verified := livePending(entities.PendingVerified)
				verified.RefID = "201"
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(livePending(entities.PendingAwaiting), nil).Twice()
				m.pending.EXPECT().GetPending(mock.Anything, "A123").Return(verified, nil).Once()
				m.locker.EXPECT().Acquire(mock.Anything, "verify:A123", time.Minute).Return(noopRelease, nil)
				m.gateway.EXPECT().Verify(mock.Anything, "A123", int64(500000)).Return(zarinpal.VerifyResult{Code: 100, RefID: 201}, nil)
				m.pending.EXPECT().MarkPendingVerified(mock.Anything, "A123", "201", "").Return(nil)
				m.events.EXPECT().InsertEvent(mock.Anything, mock.Anything).Return(nil)
				m.finalizer.EXPECT().Finalize(mock.Anything, mock.MatchedBy(func(in entities.FinalizeInput) bool {
					return in.CartID == 7 && in.Reference.IdempotencyKey() == "zarinpal:A123"
				})).Return(entities.FinalizeResult{OrderID: 11, TransactionID: 21, CustomerEmail: "a@b.com"}, nil)
			},
			want: entities.RedirectOutcome{Kind: entities.OutcomeCompleted, OrderID: 11, TransactionID: 21, CustomerEmail: "a@b.com", Guest: true},
		},
		{
			name:         "unknown status",
			status:       "MAYBE",
			authority:    "A123",
			mockBehavior: func(m paymentMocks) {},
			wantErr:      entities.ErrInvalidCallback,
		},
		{
			name:         "missing authority",
			status:       entities.RedirectOK,
			mockBehavior: func(m paymentMocks) {},
			wantErr:      entities.ErrInvalidCallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
			tc.mockBehavior(m)

			got, err := m.build(cfg).CompleteRedirect(context.Background(), tc.status, tc.authority)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_GetPendingPayment(t *testing.T) {
	cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
	expired := livePending(entities.PendingAwaiting)
	expired.ExpiresAt = time.Now().Add(-time.Second)

	m.pending.EXPECT().GetPending(mock.Anything, "A1").Return(livePending(entities.PendingAwaiting), nil)
	m.pending.EXPECT().GetPending(mock.Anything, "A2").Return(expired, nil)
	svc := m.build(cfg)

	p, err := svc.GetPendingPayment(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(500000), p.Amount)

	_, err = svc.GetPendingPayment(context.Background(), "A2")
	assert.ErrorIs(t, err, entities.ErrPendingPaymentNotFound)
}

func TestPaymentService_InquirePayment(t *testing.T) {
	cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
	m.gateway.EXPECT().Inquire(mock.Anything, "A123").Return(zarinpal.InquiryResult{Code: 100, Status: "PAID", Message: "Success"}, nil)

	got, err := m.build(cfg).InquirePayment(context.Background(), "A123")
	require.NoError(t, err)
	assert.Equal(t, entities.Inquiry{Authority: "A123", Code: 100, Status: "PAID", Message: "Success"}, got)
}

func TestPaymentService_ExpirePendingPayments(t *testing.T) {
	cfg, m := newPaymentService(t, zarinpal.CurrencyRial)
	m.pending.EXPECT().ExpirePending(mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	assert.NoError(t, m.build(cfg).ExpirePendingPayments(context.Background()))
}
