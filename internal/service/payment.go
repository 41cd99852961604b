package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/lock"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/zarinpal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegionalGateway interface {
	Request(ctx context.Context, p zarinpal.RequestParams) (zarinpal.RequestResult, error)
	Verify(ctx context.Context, authority string, amount int64) (zarinpal.VerifyResult, error)
	Inquire(ctx context.Context, authority string) (zarinpal.InquiryResult, error)
	StartPayURL(authority string) string
}

type PendingRepo interface {
	SavePending(ctx context.Context, p entities.PendingPayment) error
	GetPending(ctx context.Context, authority string) (entities.PendingPayment, error)
	MarkPendingVerified(ctx context.Context, authority, refID, cardPan string) error
	MarkPendingCancelled(ctx context.Context, authority string) error
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}

type EventWriter interface {
	InsertEvent(ctx context.Context, e entities.OutboxEvent) error
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.ReleaseFunc, error)
}

type Finalizer interface {
	Finalize(ctx context.Context, in entities.FinalizeInput) (entities.FinalizeResult, error)
}

type PaymentConfig struct {
	CallbackURL string
	// Currency is the unit sent to the gateway: IRR or IRT.
	Currency      string
	USDToRial     decimal.Decimal
	MinimumAmount int64
	PendingTTL    time.Duration
	VerifyLockTTL time.Duration
}

type paymentService struct {
	logger    *slog.Logger
	cfg       PaymentConfig
	gateway   RegionalGateway
	pending   PendingRepo
	events    EventWriter
	locker    Locker
	finalizer Finalizer
	now       func() time.Time
}

func NewPaymentService(
	logger *slog.Logger,
	cfg PaymentConfig,
	gateway RegionalGateway,
	pending PendingRepo,
	events EventWriter,
	locker Locker,
	finalizer Finalizer,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		cfg:       cfg,
		gateway:   gateway,
		pending:   pending,
		events:    events,
		locker:    locker,
		finalizer: finalizer,
		now:       time.Now,
	}
}

var rialsPerToman = decimal.NewFromInt(zarinpal.RialsPerToman)

// AmountInRials converts a request amount to rials. A toman amount wins over
// a dollar amount; dollars are converted with usdToRial.
func AmountInRials(amountIRT, amountUSD, usdToRial decimal.Decimal) (int64, error) {
	var rials decimal.Decimal
	switch {
	case amountIRT.IsPositive():
		rials = amountIRT.Mul(rialsPerToman)
	case amountUSD.IsPositive():
		rials = amountUSD.Mul(usdToRial)
	default:
		return 0, entities.ErrInvalidAmount
	}
	rials = rials.Round(0)
	if !rials.IsPositive() {
		return 0, entities.ErrInvalidAmount
	}
	return rials.IntPart(), nil
}

// gatewayAmount converts rials to the unit the merchant account is set up with.
func (s *paymentService) gatewayAmount(rials int64) int64 {
	if s.cfg.Currency == zarinpal.CurrencyToman {
		return rials / zarinpal.RialsPerToman
	}
	return rials
}

func (s *paymentService) RequestPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error) {
	rials, err := AmountInRials(req.AmountInIRT, req.AmountInUSD, s.cfg.USDToRial)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if rials < s.cfg.MinimumAmount {
		return entities.PaymentIntent{}, fmt.Errorf("%w: %d < %d rials", entities.ErrAmountBelowMinimum, rials, s.cfg.MinimumAmount)
	}

	mobile := ""
	if req.Mobile != "" {
		normalized, ok := zarinpal.NormalizeMobile(req.Mobile)
		if ok {
			mobile = normalized
		} else {
			s.logger.WarnContext(ctx, "omitting invalid mobile number", slog.String("mobile", req.Mobile))
		}
	}

	amount := s.gatewayAmount(rials)
	res, err := s.gateway.Request(ctx, zarinpal.RequestParams{
		Amount:      amount,
		CallbackURL: s.cfg.CallbackURL,
		Description: req.Description,
		Currency:    s.cfg.Currency,
		Mobile:      mobile,
		Email:       strings.TrimSpace(req.Email),
	})
	if err != nil {
		return entities.PaymentIntent{}, gatewayErr(err, entities.ErrGatewayRejected)
	}

	if req.CartID != nil {
		now := s.now()
		err := s.pending.SavePending(ctx, entities.PendingPayment{
			Authority:       res.Authority,
			CartID:          req.CartID,
			Amount:          amount,
			Currency:        s.cfg.Currency,
			CustomerEmail:   strings.TrimSpace(req.Email),
			ShippingAddress: req.ShippingAddress,
			Status:          entities.PendingAwaiting,
			CreatedAt:       now,
			ExpiresAt:       now.Add(s.cfg.PendingTTL),
		})
		if err != nil {
			return entities.PaymentIntent{}, fmt.Errorf("failed to save pending payment: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "payment requested",
		slog.String("authority", res.Authority), slog.Int64("amount", amount))

	return entities.PaymentIntent{
		Authority:  res.Authority,
		PaymentURL: s.gateway.StartPayURL(res.Authority),
		Amount:     amount,
	}, nil
}

// VerifyPayment settles an authority at the gateway. At most one verification
// per authority runs at a time.
func (s *paymentService) VerifyPayment(ctx context.Context, v entities.Verification) (entities.VerificationResult, error) {
	if v.Authority == "" {
		return entities.VerificationResult{}, fmt.Errorf("%w: authority required", entities.ErrInvalidRequest)
	}

	pending, hasPending, err := s.lookupPending(ctx, v.Authority)
	if err != nil {
		return entities.VerificationResult{}, err
	}
	if v.Amount <= 0 {
		if !hasPending {
			return entities.VerificationResult{}, entities.ErrInvalidAmount
		}
		v.Amount = pending.Amount
	}

	release, err := s.locker.Acquire(ctx, "verify:"+v.Authority, s.cfg.VerifyLockTTL)
	switch {
	case errors.Is(err, lock.ErrLocked):
		return entities.VerificationResult{}, entities.ErrVerificationInProgress
	case err != nil:
		s.logger.WarnContext(ctx, "verification lock unavailable, verifying without it",
			slog.String("authority", v.Authority), slog.Any("error", err))
	default:
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.logger.WarnContext(ctx, "failed to release verification lock",
					slog.String("authority", v.Authority), slog.Any("error", err))
			}
		}()
	}

	res, err := s.gateway.Verify(ctx, v.Authority, v.Amount)
	if err != nil {
		return entities.VerificationResult{}, gatewayErr(err, entities.ErrPaymentNotVerified)
	}

	result := entities.VerificationResult{
		Authority:       v.Authority,
		Code:            res.Code,
		RefID:           strconv.FormatInt(res.RefID, 10),
		CardPan:         res.CardPan,
		CardHash:        res.CardHash,
		Fee:             res.Fee,
		FeeType:         res.FeeType,
		AlreadyVerified: res.Code == zarinpal.CodeAlreadyVerified,
	}

	if hasPending {
		err := s.pending.MarkPendingVerified(ctx, v.Authority, result.RefID, result.CardPan)
		if err != nil && !errors.Is(err, entities.ErrPendingPaymentNotFound) {
			return entities.VerificationResult{}, fmt.Errorf("failed to mark payment verified: %w", err)
		}
	}

	if !result.AlreadyVerified {
		s.recordVerified(ctx, v, result)
	}

	s.logger.InfoContext(ctx, "payment verified",
		slog.String("authority", v.Authority), slog.Int("code", res.Code), slog.String("ref_id", result.RefID))
	return result, nil
}

func (s *paymentService) recordVerified(ctx context.Context, v entities.Verification, res entities.VerificationResult) {
	payload, err := json.Marshal(map[string]any{
		"authority": v.Authority,
		"amount":    v.Amount,
		"refId":     res.RefID,
		"cardPan":   res.CardPan,
	})
	if err == nil {
		err = s.events.InsertEvent(ctx, entities.OutboxEvent{
			EventID:   uuid.NewString(),
			Type:      entities.EventPaymentVerified,
			Key:       v.Authority,
			Payload:   payload,
			CreatedAt: s.now(),
		})
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record verification event",
			slog.String("authority", v.Authority), slog.Any("error", err))
	}
}

func (s *paymentService) InquirePayment(ctx context.Context, authority string) (entities.Inquiry, error) {
	if authority == "" {
		return entities.Inquiry{}, fmt.Errorf("%w: authority required", entities.ErrInvalidRequest)
	}
	res, err := s.gateway.Inquire(ctx, authority)
	if err != nil {
		return entities.Inquiry{}, gatewayErr(err, entities.ErrGatewayRejected)
	}
	return entities.Inquiry{
		Authority: authority,
		Code:      res.Code,
		Status:    res.Status,
		Message:   res.Message,
	}, nil
}

// GetPendingPayment returns the live record for authority. Expired records
// read as absent.
func (s *paymentService) GetPendingPayment(ctx context.Context, authority string) (entities.PendingPayment, error) {
	p, ok, err := s.lookupPending(ctx, authority)
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if !ok {
		return entities.PendingPayment{}, entities.ErrPendingPaymentNotFound
	}
	return p, nil
}

// lookupPending returns the live record for authority.
func (s *paymentService) lookupPending(ctx context.Context, authority string) (entities.PendingPayment, bool, error) {
	p, ok, err := s.loadPending(ctx, authority)
	if err != nil || !ok || p.Expired(s.now()) {
		return entities.PendingPayment{}, false, err
	}
	return p, true, nil
}

// loadPending returns the record for authority in any status, expired included.
func (s *paymentService) loadPending(ctx context.Context, authority string) (entities.PendingPayment, bool, error) {
	p, err := s.pending.GetPending(ctx, authority)
	if errors.Is(err, entities.ErrPendingPaymentNotFound) {
		return entities.PendingPayment{}, false, nil
	}
	if err != nil {
		return entities.PendingPayment{}, false, fmt.Errorf("failed to load pending payment: %w", err)
	}
	return p, true, nil
}

// CreateOrder finalizes a verified regional payment. A recorded authority must
// have been verified, whatever its age; client supplied references are only
// accepted for authorities with no record at all.
func (s *paymentService) CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.FinalizeResult, error) {
	if req.Authority == "" {
		return entities.FinalizeResult{}, fmt.Errorf("%w: authority required", entities.ErrInvalidRequest)
	}

	pending, hasPending, err := s.loadPending(ctx, req.Authority)
	if err != nil {
		return entities.FinalizeResult{}, err
	}
	if hasPending {
		switch pending.Status {
		case entities.PendingVerified, entities.PendingFinalized:
		default:
			return entities.FinalizeResult{}, entities.ErrPaymentNotVerified
		}
		if req.CartID == nil {
			req.CartID = pending.CartID
		}
		if req.RefID == "" {
			req.RefID = pending.RefID
		}
		if req.CardPan == "" {
			req.CardPan = pending.CardPan
		}
		if req.CustomerEmail == "" {
			req.CustomerEmail = pending.CustomerEmail
		}
		if req.ShippingAddress == nil {
			req.ShippingAddress = pending.ShippingAddress
		}
	}

	if req.CartID == nil || req.RefID == "" {
		return entities.FinalizeResult{}, fmt.Errorf("%w: cartId and refId required", entities.ErrInvalidRequest)
	}

	return s.finalizer.Finalize(ctx, entities.FinalizeInput{
		CartID:          *req.CartID,
		Reference:       entities.ZarinpalRef(req.Authority, req.RefID, req.CardPan),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		ShippingAddress: req.ShippingAddress,
	})
}

// CompleteRedirect runs verification and finalization for a customer returning
// from the gateway, using the pending record saved at request time.
func (s *paymentService) CompleteRedirect(ctx context.Context, status entities.RedirectStatus, authority string) (entities.RedirectOutcome, error) {
	if authority == "" || (status != entities.RedirectOK && status != entities.RedirectNOK) {
		return entities.RedirectOutcome{}, entities.ErrInvalidCallback
	}

	if status == entities.RedirectNOK {
		err := s.pending.MarkPendingCancelled(ctx, authority)
		if err != nil && !errors.Is(err, entities.ErrPendingPaymentNotFound) {
			s.logger.ErrorContext(ctx, "failed to cancel pending payment",
				slog.String("authority", authority), slog.Any("error", err))
		}
		return entities.RedirectOutcome{Kind: entities.OutcomeCancelled}, nil
	}

	pending, ok, err := s.lookupPending(ctx, authority)
	if err != nil {
		return entities.RedirectOutcome{}, err
	}
	if !ok || pending.CartID == nil || pending.Status == entities.PendingCancelled {
		return entities.RedirectOutcome{Kind: entities.OutcomeNothingToVerify}, nil
	}

	refID, cardPan := pending.RefID, pending.CardPan
	// A finalized record replays through the finalizer without a second
	// gateway call.
	if pending.Status != entities.PendingFinalized {
		verified, err := s.VerifyPayment(ctx, entities.Verification{Authority: authority, Amount: pending.Amount})
		if err != nil {
			return entities.RedirectOutcome{}, err
		}
		refID, cardPan = verified.RefID, verified.CardPan
	}

	res, err := s.CreateOrder(ctx, entities.CreateOrderRequest{
		CartID:          pending.CartID,
		Authority:       authority,
		RefID:           refID,
		CardPan:         cardPan,
		CustomerEmail:   pending.CustomerEmail,
		ShippingAddress: pending.ShippingAddress,
	})
	if err != nil {
		return entities.RedirectOutcome{}, err
	}

	return entities.RedirectOutcome{
		Kind:          entities.OutcomeCompleted,
		OrderID:       res.OrderID,
		TransactionID: res.TransactionID,
		CustomerEmail: res.CustomerEmail,
		Guest:         res.CustomerID == nil,
	}, nil
}

func (s *paymentService) ExpirePendingPayments(ctx context.Context) error {
	n, err := s.pending.ExpirePending(ctx, s.now())
	if err != nil {
		return fmt.Errorf("failed to expire pending payments: %w", err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "pending payments expired", slog.Int64("count", n))
	}
	return nil
}

// gatewayErr classifies a regional gateway failure. Non-success codes become
// a GatewayError wrapping kind; transport failures wrap ErrGatewayUnavailable.
func gatewayErr(err error, kind error) error {
	var zerr *zarinpal.Error
	if errors.As(err, &zerr) {
		return &entities.GatewayError{
			Gateway: entities.GatewayZarinpal,
			Code:    zerr.Code,
			Message: zerr.Message,
			Err:     kind,
		}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", entities.ErrGatewayUnavailable, err)
}
