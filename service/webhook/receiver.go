package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/archive"
	"github.com/QuangTung97/donation-ledger/pkg/metrics"
	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/service/ledger"
	"github.com/stripe/stripe-go/v82"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrInvalidSignature when the payload is not signed with the shared secret
var ErrInvalidSignature = errors.New("invalid signature")

// ErrMalformedEvent when a verified event can not be turned into a donation
var ErrMalformedEvent = errors.New("malformed event")

// Result of handling one delivery, every result is acknowledged
type Result int

const (
	// ResultIgnored for events not acted on
	ResultIgnored Result = iota + 1

	// ResultRecorded when the donation was recorded for the first time
	ResultRecorded

	// ResultDuplicate when the session had already been recorded
	ResultDuplicate
)

func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultRecorded:
		return "recorded"
	case ResultDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

var tracer = otel.Tracer("github.com/QuangTung97/donation-ledger/service/webhook")

// Receiver is the entry point for payment gateway deliveries
type Receiver struct {
	secret   string
	recorder ledger.IRecorder
	archive  archive.Archive
	now      func() time.Time

	archiveTimeout time.Duration
}

// ReceiverOption ...
type ReceiverOption func(r *Receiver)

// WithArchiveTimeout bounds the time spent archiving a payload before the event is processed
func WithArchiveTimeout(d time.Duration) ReceiverOption {
	return func(r *Receiver) {
		if d > 0 {
			r.archiveTimeout = d
		}
	}
}

const defaultArchiveTimeout = 2 * time.Second

// NewReceiver ...
func NewReceiver(
	secret string, recorder ledger.IRecorder, eventArchive archive.Archive,
	options ...ReceiverOption,
) *Receiver {
	r := &Receiver{
		secret:   secret,
		recorder: recorder,
		archive:  eventArchive,
		now:      time.Now,

		archiveTimeout: defaultArchiveTimeout,
	}
	for _, o := range options {
		o(r)
	}
	return r
}

func isSignatureError(err error) bool {
	return errors.Is(err, stripewebhook.ErrNotSigned) ||
		errors.Is(err, stripewebhook.ErrInvalidHeader) ||
		errors.Is(err, stripewebhook.ErrNoValidSignature) ||
		errors.Is(err, stripewebhook.ErrTooOld)
}

func (r *Receiver) constructEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := stripewebhook.ConstructEventWithOptions(payload, signatureHeader, r.secret,
		stripewebhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		if isSignatureError(err) {
			return stripe.Event{}, fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
		}
		return stripe.Event{}, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
	}
	return event, nil
}

func (r *Receiver) archivePayload(ctx context.Context, event stripe.Event, payload []byte) {
	ctx, cancel := context.WithTimeout(ctx, r.archiveTimeout)
	defer cancel()

	err := r.archive.Store(ctx, event.ID, r.now(), payload)
	if err != nil {
		otellib.Extract(ctx).Warn("Archive webhook payload failed",
			zap.String("event.id", event.ID), zap.Error(err))
	}
}

func customerDetails(s stripe.CheckoutSession) (email string, name string) {
	email = s.CustomerEmail
	if s.CustomerDetails != nil {
		if s.CustomerDetails.Email != "" {
			email = s.CustomerDetails.Email
		}
		name = s.CustomerDetails.Name
	}
	return email, name
}

func (r *Receiver) handleCompleted(ctx context.Context, event stripe.Event) (Result, error) {
	if event.Data == nil {
		return 0, fmt.Errorf("%w: missing data", ErrMalformedEvent)
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
	}

	logger := otellib.Extract(ctx).With(zap.String("event.id", event.ID), zap.String("session.id", s.ID))

	if s.Metadata[model.MetadataType] == model.MetadataTypeCampaignFee {
		logger.Info("Campaign fee session completed")
		return ResultIgnored, nil
	}

	meta, err := model.ParseDonationMetadata(s.Metadata)
	if err != nil {
		logger.Error("Completed session with unusable metadata", zap.Error(err))
		return 0, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
	}

	email, name := customerDetails(s)
	result, err := r.recorder.Record(ctx, ledger.CheckoutCompleted{
		SessionID:     s.ID,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: email,
		CustomerName:  name,
		Metadata:      meta,
	})
	if errors.Is(err, ledger.ErrInvalidCheckout) {
		logger.Error("Completed session can not be recorded", zap.Error(err))
		return 0, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
	}
	if err != nil {
		return 0, err
	}

	if result.Duplicate {
		return ResultDuplicate, nil
	}
	return ResultRecorded, nil
}

// Handle verifies and processes one delivery.
// A nil error means the delivery must be acknowledged, otherwise the gateway retries.
func (r *Receiver) Handle(ctx context.Context, payload []byte, signatureHeader string) (Result, error) {
	ctx, span := tracer.Start(ctx, "Receiver.Handle")
	defer span.End()

	result, err := r.handle(ctx, payload, signatureHeader)
	if err != nil {
		label := "error"
		switch {
		case errors.Is(err, ErrInvalidSignature):
			label = "invalid_signature"
		case errors.Is(err, ErrMalformedEvent):
			label = "malformed"
		}
		metrics.WebhookEvents.WithLabelValues(label).Inc()
		return 0, err
	}

	span.SetAttributes(attribute.String("webhook.result", result.String()))
	metrics.WebhookEvents.WithLabelValues(result.String()).Inc()
	return result, nil
}

func (r *Receiver) handle(ctx context.Context, payload []byte, signatureHeader string) (Result, error) {
	event, err := r.constructEvent(payload, signatureHeader)
	if err != nil {
		return 0, err
	}

	r.archivePayload(ctx, event, payload)

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		otellib.Extract(ctx).Debug("Webhook event ignored",
			zap.String("event.id", event.ID), zap.String("event.type", string(event.Type)))
		return ResultIgnored, nil
	}
	return r.handleCompleted(ctx, event)
}
