package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/gateway"
	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrInvalidInput ...
var ErrInvalidInput = errors.New("invalid checkout input")

// ErrGatewayRejected when the payment gateway refused to create the session
var ErrGatewayRejected = errors.New("payment gateway rejected the request")

const (
	// IntervalDay ...
	IntervalDay = "day"
	// IntervalWeek ...
	IntervalWeek = "week"
	// IntervalMonth ...
	IntervalMonth = "month"
	// IntervalQuarterly is billed every 3 months
	IntervalQuarterly = "quarterly"
	// IntervalYear ...
	IntervalYear = "year"
)

const qrCodeSize = 256

var maxTipPercentage = decimal.NewFromInt(100)

var tracer = otel.Tracer("github.com/QuangTung97/donation-ledger/service/checkout")

// DonationInput ...
type DonationInput struct {
	CampaignID int64  `json:"campaign_id"`
	ItemID     int64  `json:"item_id"`
	DonorID    string `json:"donor_id"`
	DonorEmail string `json:"donor_email"`

	// Amount is what the donor pays, tip included
	Amount        decimal.Decimal `json:"amount"`
	TipPercentage decimal.Decimal `json:"tip_percentage"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurringInterval string `json:"recurring_interval"`

	CampaignTitle string `json:"campaign_title"`
	NgoName       string `json:"ngo_name"`
	Currency      string `json:"currency"`

	WithQRCode bool `json:"with_qr_code"`
}

// FeeInput ...
type FeeInput struct {
	NgoUserID     string `json:"ngo_user_id"`
	CampaignTitle string `json:"campaign_title"`
	Email         string `json:"email"`
}

// Session is a created hosted checkout session
type Session struct {
	ID     string `json:"session_id"`
	URL    string `json:"url"`
	QRCode []byte `json:"qr_code,omitempty"`
}

// FeeVerification ...
type FeeVerification struct {
	SessionID     string          `json:"session_id"`
	Paid          bool            `json:"paid"`
	NgoUserID     string          `json:"ngo_user_id"`
	CampaignTitle string          `json:"campaign_title"`
	Amount        decimal.Decimal `json:"amount"`
}

// Builder creates checkout sessions with the reconciliation metadata the webhook needs later
type Builder struct {
	client gateway.Client
	conf   config.StripeConfig
}

// NewBuilder ...
func NewBuilder(client gateway.Client, conf config.StripeConfig) *Builder {
	return &Builder{
		client: client,
		conf:   conf,
	}
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateDonation(input DonationInput) error {
	if input.CampaignID <= 0 {
		return invalidInput("campaign_id is required")
	}
	if strings.TrimSpace(input.CampaignTitle) == "" {
		return invalidInput("campaign_title is required")
	}
	if strings.TrimSpace(input.NgoName) == "" {
		return invalidInput("ngo_name is required")
	}
	if !input.Amount.IsPositive() {
		return invalidInput("amount must be positive")
	}
	if !input.Amount.Equal(input.Amount.Round(2)) {
		return invalidInput("amount has more than 2 decimal places")
	}
	if input.TipPercentage.IsNegative() || input.TipPercentage.GreaterThan(maxTipPercentage) {
		return invalidInput("tip_percentage must be in [0, 100]")
	}
	if input.Amount.GreaterThan(model.MaxAmount) {
		return invalidInput("amount must be at most %s", model.MaxAmount.String())
	}
	if utf8.RuneCountInString(input.DonorID) > model.MaxDonorIDLength {
		return invalidInput("donor_id must be at most %d characters", model.MaxDonorIDLength)
	}
	if input.ItemID < 0 {
		return invalidInput("item_id must not be negative")
	}
	if input.IsRecurring {
		if _, _, ok := recurringInterval(input.RecurringInterval); !ok {
			return invalidInput("unsupported recurring_interval %q", input.RecurringInterval)
		}
	}
	return nil
}

// recurringInterval maps the donor facing interval to the gateway interval and count
func recurringInterval(interval string) (string, int64, bool) {
	switch interval {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
		return interval, 1, true
	case IntervalQuarterly:
		return IntervalMonth, 3, true
	default:
		return "", 0, false
	}
}

func (b *Builder) currency(currency string) string {
	if currency != "" {
		return strings.ToLower(currency)
	}
	return strings.ToLower(b.conf.Currency)
}

func lineItem(
	name string, amount decimal.Decimal, currency string,
	recurring *stripe.CheckoutSessionLineItemPriceDataRecurringParams,
) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
			UnitAmount: stripe.Int64(model.ToMinorUnits(amount)),
			Recurring:  recurring,
		},
		Quantity: stripe.Int64(1),
	}
}

func (b *Builder) donationParams(input DonationInput) *stripe.CheckoutSessionParams {
	base, tip := model.SplitTip(input.Amount, input.TipPercentage)
	currency := b.currency(input.Currency)

	var recurring *stripe.CheckoutSessionLineItemPriceDataRecurringParams
	mode := stripe.CheckoutSessionModePayment
	recurringIntervalValue := ""
	if input.IsRecurring {
		interval, count, _ := recurringInterval(input.RecurringInterval)
		recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval:      stripe.String(interval),
			IntervalCount: stripe.Int64(count),
		}
		mode = stripe.CheckoutSessionModeSubscription
		recurringIntervalValue = input.RecurringInterval
	}

	lineItems := []*stripe.CheckoutSessionLineItemParams{
		lineItem(fmt.Sprintf("Donation to %s", input.CampaignTitle), base, currency, recurring),
	}
	if tip.IsPositive() {
		lineItems = append(lineItems, lineItem(fmt.Sprintf("Tip for %s", input.NgoName), tip, currency, recurring))
	}

	metadata := model.DonationMetadata{
		CampaignID:        input.CampaignID,
		ItemID:            input.ItemID,
		DonorID:           input.DonorID,
		TipPercentage:     decimal.NewNullDecimal(input.TipPercentage),
		IsRecurring:       input.IsRecurring,
		RecurringInterval: recurringIntervalValue,
		CampaignTitle:     input.CampaignTitle,
		NgoName:           input.NgoName,
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(mode)),
		LineItems:  lineItems,
		Metadata:   metadata.ToMap(),
		SuccessURL: stripe.String(b.conf.SuccessURL),
		CancelURL:  stripe.String(b.conf.CancelURL),
	}
	if input.DonorEmail != "" {
		params.CustomerEmail = stripe.String(input.DonorEmail)
	}
	if !input.IsRecurring {
		params.SubmitType = stripe.String(string(stripe.CheckoutSessionSubmitTypeDonate))
	}
	return params
}

func (b *Builder) createSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s, err := b.client.CreateCheckoutSession(ctx, params)
	if err != nil {
		var rejected *gateway.RejectedError
		if errors.As(err, &rejected) {
			return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, rejected.Message)
		}
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return s, nil
}

// CreateDonationSession creates a hosted checkout session, nothing is written locally
func (b *Builder) CreateDonationSession(ctx context.Context, input DonationInput) (Session, error) {
	ctx, span := tracer.Start(ctx, "Builder.CreateDonationSession")
	defer span.End()

	span.SetAttributes(attribute.Int64("campaign.id", input.CampaignID))

	if err := validateDonation(input); err != nil {
		return Session{}, err
	}

	s, err := b.createSession(ctx, b.donationParams(input))
	if err != nil {
		otellib.Extract(ctx).Warn("Create donation session failed",
			zap.Int64("campaign.id", input.CampaignID), zap.Error(err))
		return Session{}, err
	}

	result := Session{
		ID:  s.ID,
		URL: s.URL,
	}
	if input.WithQRCode && s.URL != "" {
		png, err := qrcode.Encode(s.URL, qrcode.Medium, qrCodeSize)
		if err != nil {
			return Session{}, fmt.Errorf("encode qr code: %w", err)
		}
		result.QRCode = png
	}
	return result, nil
}

// CreateCampaignFeeSession creates the session paying the campaign creation fee
func (b *Builder) CreateCampaignFeeSession(ctx context.Context, input FeeInput) (Session, error) {
	ctx, span := tracer.Start(ctx, "Builder.CreateCampaignFeeSession")
	defer span.End()

	if strings.TrimSpace(input.NgoUserID) == "" {
		return Session{}, invalidInput("ngo_user_id is required")
	}
	if strings.TrimSpace(input.CampaignTitle) == "" {
		return Session{}, invalidInput("campaign_title is required")
	}

	fee := b.conf.CampaignFeeAmount()
	if !fee.IsPositive() {
		return Session{}, invalidInput("campaign fee is not configured")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			lineItem(fmt.Sprintf("Campaign creation fee: %s", input.CampaignTitle),
				fee, b.currency(""), nil),
		},
		Metadata: map[string]string{
			model.MetadataType:          model.MetadataTypeCampaignFee,
			model.MetadataNgoUserID:     input.NgoUserID,
			model.MetadataCampaignTitle: input.CampaignTitle,
		},
		SuccessURL: stripe.String(b.conf.SuccessURL),
		CancelURL:  stripe.String(b.conf.CancelURL),
	}
	if input.Email != "" {
		params.CustomerEmail = stripe.String(input.Email)
	}

	s, err := b.createSession(ctx, params)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

// VerifyCampaignFee checks that the session is a paid campaign creation fee
func (b *Builder) VerifyCampaignFee(ctx context.Context, sessionID string) (FeeVerification, error) {
	ctx, span := tracer.Start(ctx, "Builder.VerifyCampaignFee")
	defer span.End()

	if sessionID == "" {
		return FeeVerification{}, invalidInput("session_id is required")
	}

	s, err := b.client.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if gateway.IsRejected(err) {
			return FeeVerification{}, fmt.Errorf("%w: %s", ErrGatewayRejected, err.Error())
		}
		return FeeVerification{}, fmt.Errorf("get checkout session: %w", err)
	}

	result := FeeVerification{
		SessionID:     s.ID,
		NgoUserID:     s.Metadata[model.MetadataNgoUserID],
		CampaignTitle: s.Metadata[model.MetadataCampaignTitle],
		Amount:        model.FromMinorUnits(s.AmountTotal),
	}
	result.Paid = s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid &&
		s.Metadata[model.MetadataType] == model.MetadataTypeCampaignFee
	return result, nil
}
