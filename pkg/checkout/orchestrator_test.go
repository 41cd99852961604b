package checkout

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// fakeAPI is an in-memory checkout service holding one cart.
type fakeAPI struct {
	cart    Cart
	saved   []SavedAddress
	pending map[string]PendingPayment
	orders  int64

	intentErr  error
	verifyErr  error
	requestErr error

	calls []string
	last  struct {
		payment PaymentRequest
		intent  CardIntentRequest
		verify  struct {
			authority string
			amount    int64
		}
		order CreateOrderRequest
		card  CardConfirmRequest
	}
}

func newFakeAPI(cart Cart) *fakeAPI {
	return &fakeAPI{cart: cart, pending: map[string]PendingPayment{}}
}

func (f *fakeAPI) RequestPayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	f.calls = append(f.calls, "request")
	f.last.payment = req
	if f.requestErr != nil {
		return PaymentResponse{}, f.requestErr
	}
	amount := int64(0)
	if req.AmountInIRT != nil {
		amount = req.AmountInIRT.IntPart() * 10
	}
	f.pending["A123"] = PendingPayment{Authority: "A123", CartID: req.CartID, Amount: amount, Status: "pending", CustomerEmail: req.Email}
	return PaymentResponse{
		Success:    true,
		Authority:  "A123",
		PaymentURL: "https://sandbox.zarinpal.com/pg/StartPay/A123",
		Amount:     amount,
	}, nil
}

func (f *fakeAPI) VerifyPayment(ctx context.Context, authority string, amount int64) (Verification, error) {
	f.calls = append(f.calls, "verify")
	f.last.verify.authority, f.last.verify.amount = authority, amount
	if f.verifyErr != nil {
		return Verification{}, f.verifyErr
	}
	return Verification{Success: true, Verified: true, RefID: "201", CardPan: "6037****1234"}, nil
}

func (f *fakeAPI) GetPendingPayment(ctx context.Context, authority string) (PendingPayment, error) {
	f.calls = append(f.calls, "pending")
	p, ok := f.pending[authority]
	if !ok {
		return PendingPayment{}, &APIError{StatusCode: http.StatusNotFound, Message: "pending payment not found"}
	}
	return p, nil
}

func (f *fakeAPI) purchase() OrderCreated {
	f.orders++
	f.cart.Items = nil
	f.cart.Status = "purchased"
	return OrderCreated{Success: true, OrderID: f.orders, TransactionID: 100 + f.orders}
}

func (f *fakeAPI) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderCreated, error) {
	f.calls = append(f.calls, "create-order")
	f.last.order = req
	return f.purchase(), nil
}

func (f *fakeAPI) CreateCardIntent(ctx context.Context, req CardIntentRequest) (CardIntent, error) {
	f.calls = append(f.calls, "intent")
	f.last.intent = req
	if f.intentErr != nil {
		return CardIntent{}, f.intentErr
	}
	return CardIntent{ClientSecret: "pi_1_secret", PaymentIntentID: "pi_1", Amount: f.cart.Subtotal, Currency: "usd"}, nil
}

func (f *fakeAPI) ConfirmCardOrder(ctx context.Context, req CardConfirmRequest) (OrderCreated, error) {
	f.calls = append(f.calls, "confirm")
	f.last.card = req
	return f.purchase(), nil
}

func (f *fakeAPI) ListAddresses(ctx context.Context) ([]SavedAddress, error) {
	f.calls = append(f.calls, "addresses")
	return f.saved, nil
}

var home = Address{FirstName: "Sara", AddressLine1: "1 Main St", City: "Tehran", Country: "IR", Phone: "09123456789"}

func testCart() Cart {
	return Cart{ID: 7, Items: []LineItem{{ProductID: 1, Quantity: 2}}, Subtotal: 4200, Currency: "USD", Status: "active"}
}

func TestOrchestrator_CanAdvanceFromAddress(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		authenticated := mask&1 != 0
		guestLocked := mask&2 != 0
		hasBilling := mask&4 != 0
		same := mask&8 != 0
		hasShipping := mask&16 != 0

		var opts []Option
		if authenticated {
			opts = append(opts, WithCustomer("c@example.com"))
		}
		o := New(newFakeAPI(testCart()), testCart(), opts...)
		if guestLocked && !authenticated {
			require.NoError(t, o.SetEmail("a@b.com"))
			require.NoError(t, o.ContinueAsGuest())
		}
		if hasBilling {
			require.NoError(t, o.SetBillingAddress(EmbedAddress(home)))
		}
		if hasShipping {
			require.NoError(t, o.SetShippingAddress(EmbedAddress(home)))
		}
		o.SetShippingSameAsBilling(same)

		want := (authenticated || guestLocked) && hasBilling && (same || hasShipping)
		assert.Equal(t, want, o.CanAdvance(), "mask %05b", mask)

		err := o.Next(context.Background())
		if want {
			assert.NoError(t, err)
			assert.Equal(t, StepPayment, o.Step())
		} else {
			var uerr *Error
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, CodeIncomplete, uerr.Code)
			assert.Equal(t, StepAddress, o.Step())
		}
	}
}

func TestOrchestrator_GuestScenario(t *testing.T) {
	api := newFakeAPI(testCart())
	o := New(api, testCart())

	require.NoError(t, o.SetEmail("a@b.com"))
	require.NoError(t, o.ContinueAsGuest())
	assert.True(t, o.EmailLocked())
	assert.False(t, o.CanAdvance(), "no address yet")

	var uerr *Error
	require.ErrorAs(t, o.SetEmail("other@b.com"), &uerr)
	assert.Equal(t, CodeEmailLocked, uerr.Code)

	require.ErrorAs(t, o.SetBillingAddress(RefAddress(3)), &uerr)
	assert.Equal(t, CodeLoginRequired, uerr.Code)

	require.NoError(t, o.SetBillingAddress(EmbedAddress(home)))
	require.NoError(t, o.Next(context.Background()))

	assert.False(t, o.CanAdvance(), "no method yet")
	require.NoError(t, o.SelectMethod(MethodRegional))
	require.NoError(t, o.Next(context.Background()))

	assert.Equal(t, StepConfirm, o.Step())
	assert.Empty(t, api.calls, "regional method defers the gateway call")
}

func TestOrchestrator_InvalidGuestEmail(t *testing.T) {
	o := New(newFakeAPI(testCart()), testCart())
	require.NoError(t, o.SetEmail("not-an-email"))

	var uerr *Error
	require.ErrorAs(t, o.ContinueAsGuest(), &uerr)
	assert.Equal(t, CodeInvalidEmail, uerr.Code)
	assert.False(t, o.EmailLocked())
}

func toPayment(t *testing.T, o *Orchestrator, m Method) {
	t.Helper()
	if !o.authenticated {
		require.NoError(t, o.SetEmail("a@b.com"))
		require.NoError(t, o.ContinueAsGuest())
	}
	require.NoError(t, o.SetBillingAddress(EmbedAddress(home)))
	require.NoError(t, o.Next(context.Background()))
	require.NoError(t, o.SelectMethod(m))
}

func TestOrchestrator_CardIntentFailureStaysOnPayment(t *testing.T) {
	api := newFakeAPI(testCart())
	api.intentErr = errors.Join(ErrTransport, errors.New("connection refused"))
	o := New(api, testCart(), WithLanguage(language.Persian))
	toPayment(t, o, MethodCard)

	err := o.Next(context.Background())

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, CodeNetwork, uerr.Code)
	assert.Equal(t, "ارتباط با سرور برقرار نشد. لطفاً دوباره تلاش کنید.", uerr.Message)
	assert.Equal(t, StepPayment, o.Step())
	assert.Empty(t, o.ClientSecret())

	api.intentErr = nil
	require.NoError(t, o.Next(context.Background()), "retry succeeds")
	assert.Equal(t, StepConfirm, o.Step())
	assert.Equal(t, "pi_1_secret", o.ClientSecret())
}

func TestOrchestrator_OutOfStockMessage(t *testing.T) {
	tests := []struct {
		name    string
		lang    language.Tag
		err     error
		code    Code
		message string
	}{
		{
			name:    "out of stock english",
			lang:    language.English,
			err:     &APIError{StatusCode: http.StatusConflict, Message: "out of stock", Cause: "OutOfStock"},
			code:    CodeOutOfStock,
			message: "Some items in your cart are out of stock.",
		},
		{
			name:    "out of stock farsi",
			lang:    language.Persian,
			err:     &APIError{StatusCode: http.StatusConflict, Message: "out of stock", Cause: "OutOfStock"},
			code:    CodeOutOfStock,
			message: "برخی از کالاهای سبد خرید شما موجود نیستند.",
		},
		{
			name:    "untranslated error shown verbatim",
			lang:    language.English,
			err:     &APIError{StatusCode: http.StatusInternalServerError, Message: "failed to create payment intent", Details: "card declined"},
			code:    CodeServer,
			message: "failed to create payment intent: card declined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(testCart())
			api.intentErr = tt.err
			o := New(api, testCart(), WithLanguage(tt.lang))
			toPayment(t, o, MethodCard)

			var uerr *Error
			require.ErrorAs(t, o.Next(context.Background()), &uerr)
			assert.Equal(t, tt.code, uerr.Code)
			assert.Equal(t, tt.message, uerr.Message)
			assert.ErrorIs(t, uerr, tt.err)
		})
	}
}

func TestOrchestrator_BelowMinimumMessage(t *testing.T) {
	api := newFakeAPI(testCart())
	api.requestErr = &APIError{StatusCode: http.StatusBadRequest, Message: "amount below gateway minimum", Cause: "AmountBelowMinimum"}
	o := New(api, testCart())
	toPayment(t, o, MethodRegional)
	require.NoError(t, o.Next(context.Background()))

	_, err := o.StartRegionalPayment(context.Background())

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, CodeAmountBelowMinimum, uerr.Code)
}

func TestOrchestrator_BackDiscardsClientSecret(t *testing.T) {
	api := newFakeAPI(testCart())
	o := New(api, testCart())
	toPayment(t, o, MethodCard)
	require.NoError(t, o.Next(context.Background()))
	require.Equal(t, "pi_1_secret", o.ClientSecret())

	o.Back()
	assert.Equal(t, StepPayment, o.Step())
	assert.Empty(t, o.ClientSecret())

	require.NoError(t, o.Next(context.Background()))
	o.BackToAddress()
	assert.Equal(t, StepAddress, o.Step())
	assert.Empty(t, o.ClientSecret())
	assert.Equal(t, []string{"intent", "intent"}, api.calls)
}

func TestOrchestrator_CardPayment(t *testing.T) {
	api := newFakeAPI(testCart())
	o := New(api, testCart(), WithOrderPageURL("https://shop.example/"))
	toPayment(t, o, MethodCard)
	require.NoError(t, o.SetShippingAddress(EmbedAddress(Address{FirstName: "Ali", AddressLine1: "2 Side St", City: "Shiraz", Country: "IR"})))
	require.NoError(t, o.Next(context.Background()))

	require.NotNil(t, api.last.intent.ShippingAddress)
	assert.Equal(t, "a@b.com", api.last.intent.CustomerEmail)

	outcome, err := o.CardPaymentSucceeded(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, outcome.Kind)
	assert.Equal(t, "https://shop.example/orders/1?email=a%40b.com", outcome.URL)
	assert.Equal(t, "pi_1", api.last.card.PaymentIntentID)
	assert.Equal(t, "Shiraz", api.last.card.ShippingAddress.City)
	assert.Equal(t, StepDone, o.Step())
}

func TestOrchestrator_CancelledReturnMakesNoCalls(t *testing.T) {
	api := newFakeAPI(testCart())
	o := New(api, testCart())

	outcome, err := o.HandleReturn(context.Background(), url.Values{"Status": {"NOK"}, "Authority": {"A123"}})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome.Kind)
	assert.Equal(t, "Payment was cancelled.", outcome.Message)
	assert.Empty(t, api.calls)
}

func TestOrchestrator_ReturnWithoutPendingPayment(t *testing.T) {
	api := newFakeAPI(testCart())
	o := New(api, testCart())

	outcome, err := o.HandleReturn(context.Background(), url.Values{"Status": {"OK"}, "Authority": {"A404"}})

	require.NoError(t, err)
	assert.Equal(t, OutcomeNothingToVerify, outcome.Kind)
	assert.Equal(t, []string{"pending"}, api.calls)
}

func TestOrchestrator_VerifyFailure(t *testing.T) {
	api := newFakeAPI(testCart())
	api.pending["A123"] = PendingPayment{Authority: "A123", CartID: ptr(int64(7)), Amount: 500000, Status: "pending"}
	api.verifyErr = &APIError{StatusCode: http.StatusBadRequest, Message: "session is not valid", GatewayCode: -51}
	o := New(api, testCart())

	_, err := o.HandleReturn(context.Background(), url.Values{"Status": {"OK"}, "Authority": {"A123"}})

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, CodeVerifyFailed, uerr.Code)
	assert.Equal(t, "Payment verification failed (code -51).", uerr.Message)
	assert.NotContains(t, api.calls, "create-order")
}

func ptr[T any](v T) *T { return &v }

func TestOrchestrator_EndToEndRegional(t *testing.T) {
	cart := testCart()
	cart.Subtotal = 500000
	cart.SubtotalIRT = 500000
	cart.Currency = "IRR"
	api := newFakeAPI(cart)
	ctx := context.Background()

	o := New(api, cart)
	toPayment(t, o, MethodRegional)
	require.NoError(t, o.Next(ctx))

	redirect, err := o.StartRegionalPayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRedirect, redirect.Kind)
	assert.True(t, strings.Contains(redirect.URL, "A123"))
	assert.True(t, api.last.payment.AmountInIRT.Equal(decimal.NewFromInt(500000)))
	assert.Nil(t, api.last.payment.AmountInUSD)
	assert.Equal(t, "09123456789", api.last.payment.Mobile)
	assert.Equal(t, "Tehran", api.last.payment.ShippingAddress.City)

	query, err := url.ParseQuery("Status=OK&Authority=A123")
	require.NoError(t, err)
	outcome, err := o.HandleReturn(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, outcome.Kind)
	assert.Equal(t, int64(1), outcome.OrderID)
	assert.Equal(t, int64(5000000), api.last.verify.amount)
	assert.Equal(t, "201", api.last.order.RefID)
	assert.Equal(t, "A123", api.last.order.Authority)
	assert.Empty(t, api.cart.Items)
	assert.Equal(t, "purchased", api.cart.Status)
	assert.Equal(t, StepDone, o.Step())

	again, err := o.HandleReturn(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, outcome, again)
	assert.Equal(t, []string{"request", "verify", "create-order"}, api.calls, "return is handled once")
}

func TestOrchestrator_USDAmount(t *testing.T) {
	api := newFakeAPI(testCart())
	o := New(api, testCart())
	toPayment(t, o, MethodRegional)
	require.NoError(t, o.Next(context.Background()))

	_, err := o.StartRegionalPayment(context.Background())
	require.NoError(t, err)

	require.NotNil(t, api.last.payment.AmountInUSD)
	assert.Equal(t, "42", api.last.payment.AmountInUSD.String())
	assert.Nil(t, api.last.payment.AmountInIRT)
}

func TestOrchestrator_SavedAddresses(t *testing.T) {
	api := newFakeAPI(testCart())
	api.saved = []SavedAddress{{ID: 3, Address: home}}
	o := New(api, testCart(), WithCustomer("c@example.com"))

	saved, err := o.LoadSavedAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)

	assert.True(t, o.CanAdvance(), "billing defaults to the first saved address")
	require.NoError(t, o.Next(context.Background()))
	require.NoError(t, o.SelectMethod(MethodCard))
	require.NoError(t, o.Next(context.Background()))

	assert.Equal(t, int64(3), api.last.intent.BillingAddress.ID)
	assert.Empty(t, api.last.intent.CustomerEmail)

	guest := New(api, testCart())
	_, err = guest.LoadSavedAddresses(context.Background())
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, CodeLoginRequired, uerr.Code)
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.Persian, MatchLanguage("fa-IR,en;q=0.8"))
	assert.Equal(t, language.English, MatchLanguage("en-US"))
	assert.Equal(t, language.English, MatchLanguage("de-DE"))
	assert.Equal(t, language.English, MatchLanguage(""))
}
