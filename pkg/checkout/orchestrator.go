package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// API is the part of the checkout service the orchestrator drives.
type API interface {
	RequestPayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error)
	VerifyPayment(ctx context.Context, authority string, amount int64) (Verification, error)
	GetPendingPayment(ctx context.Context, authority string) (PendingPayment, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderCreated, error)
	CreateCardIntent(ctx context.Context, req CardIntentRequest) (CardIntent, error)
	ConfirmCardOrder(ctx context.Context, req CardConfirmRequest) (OrderCreated, error)
	ListAddresses(ctx context.Context) ([]SavedAddress, error)
}

type Step int

const (
	StepAddress Step = iota + 1
	StepPayment
	StepConfirm
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirm"
	case StepDone:
		return "done"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

type Method string

const (
	MethodCard     Method = "stripe"
	MethodRegional Method = "zarinpal"
)

type OutcomeKind string

const (
	OutcomeRedirect        OutcomeKind = "redirect"
	OutcomeCancelled       OutcomeKind = "cancelled"
	OutcomeNothingToVerify OutcomeKind = "nothing_to_verify"
	OutcomeCompleted       OutcomeKind = "completed"
)

// Outcome tells the caller where the customer goes next.
type Outcome struct {
	Kind    OutcomeKind
	URL     string
	Message string
	OrderID int64
}

// Orchestrator walks one customer through checkout: address, payment method,
// confirmation. It is not safe for concurrent use apart from HandleReturn.
type Orchestrator struct {
	api      API
	lang     language.Tag
	validate *validator.Validate
	cart     Cart
	orderURL string

	authenticated bool
	email         string
	emailLocked   bool

	billing       AddressRef
	shipping      AddressRef
	sameAsBilling bool
	saved         []SavedAddress

	method Method
	step   Step

	clientSecret    string
	paymentIntentID string
	inflight        *PendingPayment

	returnOnce    sync.Once
	returnOutcome Outcome
	returnErr     error
}

type Option func(*Orchestrator)

// WithCustomer marks the checkout as authenticated; email is the account email.
func WithCustomer(email string) Option {
	return func(o *Orchestrator) {
		o.authenticated = true
		o.email = email
	}
}

func WithLanguage(tag language.Tag) Option {
	return func(o *Orchestrator) {
		o.lang = tag
	}
}

// WithOrderPageURL sets the storefront origin order pages live under.
func WithOrderPageURL(base string) Option {
	return func(o *Orchestrator) {
		o.orderURL = strings.TrimRight(base, "/")
	}
}

func New(api API, cart Cart, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		api:           api,
		lang:          language.English,
		validate:      validator.New(),
		cart:          cart,
		sameAsBilling: true,
		step:          StepAddress,
	}
	for _, opt := range opts {
		opt(o)
	}
	if _, ok := messages[o.lang]; !ok {
		o.lang = language.English
	}
	return o
}

func (o *Orchestrator) Step() Step {
	return o.step
}

func (o *Orchestrator) Method() Method {
	return o.method
}

// ClientSecret is set while a card payment is being confirmed.
func (o *Orchestrator) ClientSecret() string {
	return o.clientSecret
}

func (o *Orchestrator) EmailLocked() bool {
	return o.emailLocked
}

func (o *Orchestrator) userErr(code Code, err error, args ...any) *Error {
	return &Error{Code: code, Message: message(o.lang, code, args...), Err: err}
}

func (o *Orchestrator) SetEmail(email string) error {
	if o.emailLocked {
		return o.userErr(CodeEmailLocked, nil)
	}
	o.email = strings.TrimSpace(email)
	return nil
}

// ContinueAsGuest locks the email. It cannot be edited afterwards.
func (o *Orchestrator) ContinueAsGuest() error {
	if o.authenticated {
		return nil
	}
	if err := o.validate.Var(o.email, "required,email"); err != nil {
		return o.userErr(CodeInvalidEmail, err)
	}
	o.emailLocked = true
	return nil
}

func (o *Orchestrator) checkAddress(ref AddressRef) error {
	switch {
	case ref.IsZero():
		return o.userErr(CodeInvalidAddress, nil)
	case ref.Embedded == nil && !o.authenticated:
		return o.userErr(CodeLoginRequired, nil)
	case ref.Embedded != nil:
		a := ref.Embedded
		if a.FirstName == "" || a.AddressLine1 == "" || a.City == "" || len(a.Country) != 2 {
			return o.userErr(CodeInvalidAddress, nil)
		}
	}
	return nil
}

func (o *Orchestrator) SetBillingAddress(ref AddressRef) error {
	if err := o.checkAddress(ref); err != nil {
		return err
	}
	o.billing = ref
	return nil
}

func (o *Orchestrator) SetShippingAddress(ref AddressRef) error {
	if err := o.checkAddress(ref); err != nil {
		return err
	}
	o.shipping = ref
	o.sameAsBilling = false
	return nil
}

func (o *Orchestrator) SetShippingSameAsBilling(same bool) {
	o.sameAsBilling = same
}

// SelectMethod chooses the gateway. Switching discards a prepared card payment.
func (o *Orchestrator) SelectMethod(m Method) error {
	if m != MethodCard && m != MethodRegional {
		return o.userErr(CodeIncomplete, nil)
	}
	if o.step > StepPayment {
		return o.userErr(CodeWrongStep, nil)
	}
	if m != o.method {
		o.discardIntent()
	}
	o.method = m
	return nil
}

// LoadSavedAddresses fetches the customer's address book and defaults the
// billing address to its first entry.
func (o *Orchestrator) LoadSavedAddresses(ctx context.Context) ([]SavedAddress, error) {
	if !o.authenticated {
		return nil, o.userErr(CodeLoginRequired, nil)
	}
	saved, err := o.api.ListAddresses(ctx)
	if err != nil {
		return nil, o.translate(err)
	}
	o.saved = saved
	if o.billing.IsZero() && len(saved) > 0 {
		o.billing = RefAddress(saved[0].ID)
	}
	return saved, nil
}

// CanAdvance reports whether Next would move past the current step.
func (o *Orchestrator) CanAdvance() bool {
	switch o.step {
	case StepAddress:
		hasIdentity := o.authenticated || (o.emailLocked && o.email != "")
		hasShipping := o.sameAsBilling || !o.shipping.IsZero()
		return hasIdentity && !o.billing.IsZero() && hasShipping
	case StepPayment:
		return o.method != ""
	}
	return false
}

// Next advances one step. Leaving the payment step with the card method
// prepares a payment intent first; if that fails the step does not change.
func (o *Orchestrator) Next(ctx context.Context) error {
	if !o.CanAdvance() {
		if o.step >= StepConfirm {
			return o.userErr(CodeWrongStep, nil)
		}
		return o.userErr(CodeIncomplete, nil)
	}

	if o.step == StepPayment && o.method == MethodCard {
		req := CardIntentRequest{
			CartID:         o.cart.ID,
			CustomerEmail:  o.guestEmail(),
			BillingAddress: o.billing,
		}
		if !o.sameAsBilling {
			shipping := o.shipping
			req.ShippingAddress = &shipping
		}
		intent, err := o.api.CreateCardIntent(ctx, req)
		if err != nil {
			return o.translate(err)
		}
		o.clientSecret = intent.ClientSecret
		o.paymentIntentID = intent.PaymentIntentID
	}

	o.step++
	return nil
}

// Back returns to the previous step, discarding a prepared card payment.
func (o *Orchestrator) Back() {
	switch o.step {
	case StepConfirm:
		o.discardIntent()
		o.step = StepPayment
	case StepPayment:
		o.step = StepAddress
	}
}

func (o *Orchestrator) BackToAddress() {
	if o.step == StepDone {
		return
	}
	o.discardIntent()
	o.step = StepAddress
}

func (o *Orchestrator) discardIntent() {
	o.clientSecret = ""
	o.paymentIntentID = ""
}

// StartRegionalPayment creates the gateway payment and returns where to send
// the customer. The toman price is used when the cart has one.
func (o *Orchestrator) StartRegionalPayment(ctx context.Context) (Outcome, error) {
	if o.step != StepConfirm || o.method != MethodRegional {
		return Outcome{}, o.userErr(CodeWrongStep, nil)
	}

	cartID := o.cart.ID
	req := PaymentRequest{
		Description:     fmt.Sprintf("Cart %d", o.cart.ID),
		Email:           o.email,
		CartID:          &cartID,
		ShippingAddress: o.shippingAddress(),
	}
	if o.cart.SubtotalIRT > 0 {
		irt := decimal.NewFromInt(o.cart.SubtotalIRT)
		req.AmountInIRT = &irt
	} else {
		usd := decimal.New(o.cart.Subtotal, -2)
		req.AmountInUSD = &usd
	}
	if billing := o.resolve(o.billing); billing != nil {
		req.Mobile = billing.Phone
	}

	res, err := o.api.RequestPayment(ctx, req)
	if err != nil {
		return Outcome{}, o.translate(err)
	}

	o.inflight = &PendingPayment{
		Authority:       res.Authority,
		CartID:          &cartID,
		Amount:          res.Amount,
		CustomerEmail:   o.email,
		ShippingAddress: req.ShippingAddress,
		Status:          "pending",
	}
	return Outcome{Kind: OutcomeRedirect, URL: res.PaymentURL}, nil
}

// HandleReturn completes a regional payment from the gateway's return query
// (Status, Authority). It runs once; later calls repeat the first result.
func (o *Orchestrator) HandleReturn(ctx context.Context, query url.Values) (Outcome, error) {
	o.returnOnce.Do(func() {
		o.returnOutcome, o.returnErr = o.handleReturn(ctx, query)
	})
	return o.returnOutcome, o.returnErr
}

func (o *Orchestrator) handleReturn(ctx context.Context, query url.Values) (Outcome, error) {
	status := query.Get("Status")
	authority := query.Get("Authority")

	if status == "NOK" {
		o.inflight = nil
		return Outcome{Kind: OutcomeCancelled, Message: message(o.lang, CodeCancelled)}, nil
	}
	nothing := Outcome{Kind: OutcomeNothingToVerify, Message: message(o.lang, CodeNothingToVerify)}
	if status != "OK" || authority == "" {
		return nothing, nil
	}

	pending, err := o.pending(ctx, authority)
	if err != nil {
		if IsNotFound(err) {
			return nothing, nil
		}
		return Outcome{}, o.translate(err)
	}
	if pending.CartID == nil {
		return nothing, nil
	}
	if pending.Status == "finalized" && pending.OrderID != nil {
		return o.completed(*pending.OrderID, pending.CustomerEmail), nil
	}
	if pending.Status != "pending" && pending.Status != "verified" {
		return nothing, nil
	}

	verification, err := o.api.VerifyPayment(ctx, authority, pending.Amount)
	if err != nil {
		return Outcome{}, o.translate(err)
	}

	created, err := o.api.CreateOrder(ctx, CreateOrderRequest{
		CartID:          pending.CartID,
		Authority:       authority,
		RefID:           verification.RefID,
		CardPan:         verification.CardPan,
		CustomerEmail:   pending.CustomerEmail,
		ShippingAddress: pending.ShippingAddress,
	})
	if err != nil {
		return Outcome{}, o.translate(err)
	}

	o.inflight = nil
	o.step = StepDone
	return o.completed(created.OrderID, pending.CustomerEmail), nil
}

func (o *Orchestrator) pending(ctx context.Context, authority string) (PendingPayment, error) {
	if o.inflight != nil && o.inflight.Authority == authority {
		return *o.inflight, nil
	}
	return o.api.GetPendingPayment(ctx, authority)
}

// CardPaymentSucceeded finalizes the order once the hosted card element
// reports success.
func (o *Orchestrator) CardPaymentSucceeded(ctx context.Context, paymentIntentID string) (Outcome, error) {
	if o.step != StepConfirm || o.method != MethodCard {
		return Outcome{}, o.userErr(CodeWrongStep, nil)
	}
	if paymentIntentID == "" {
		paymentIntentID = o.paymentIntentID
	}

	created, err := o.api.ConfirmCardOrder(ctx, CardConfirmRequest{
		CartID:          o.cart.ID,
		PaymentIntentID: paymentIntentID,
		CustomerEmail:   o.guestEmail(),
		ShippingAddress: o.shippingAddress(),
	})
	if err != nil {
		return Outcome{}, o.translate(err)
	}

	o.discardIntent()
	o.step = StepDone
	return o.completed(created.OrderID, o.email), nil
}

func (o *Orchestrator) completed(orderID int64, email string) Outcome {
	u := fmt.Sprintf("%s/orders/%d", o.orderURL, orderID)
	if !o.authenticated && email != "" {
		u += "?email=" + url.QueryEscape(email)
	}
	return Outcome{Kind: OutcomeCompleted, URL: u, OrderID: orderID}
}

func (o *Orchestrator) guestEmail() string {
	if o.authenticated {
		return ""
	}
	return o.email
}

// resolve returns the full address for ref when it is known locally.
func (o *Orchestrator) resolve(ref AddressRef) *Address {
	if ref.Embedded != nil {
		return ref.Embedded
	}
	for _, s := range o.saved {
		if s.ID == ref.ID {
			a := s.Address
			return &a
		}
	}
	return nil
}

func (o *Orchestrator) shippingAddress() *Address {
	if o.sameAsBilling {
		return o.resolve(o.billing)
	}
	return o.resolve(o.shipping)
}

// translate turns an API failure into a customer-facing error. Known business
// rules get their own message; otherwise the server's text is shown.
func (o *Orchestrator) translate(err error) *Error {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		switch {
		case apiErr.Cause == "OutOfStock":
			return o.userErr(CodeOutOfStock, err)
		case apiErr.Cause == "AmountBelowMinimum":
			return o.userErr(CodeAmountBelowMinimum, err)
		case apiErr.GatewayCode != 0:
			return o.userErr(CodeVerifyFailed, err, apiErr.GatewayCode)
		}
		msg := apiErr.Message
		if apiErr.Details != "" {
			msg += ": " + apiErr.Details
		}
		return &Error{Code: CodeServer, Message: msg, Err: err}
	case errors.Is(err, ErrTransport):
		return o.userErr(CodeNetwork, err)
	}
	return o.userErr(CodeServer, err)
}
