package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/metrics"
	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate otelwrap --out service_wrappers.go . IRecorder
//go:generate moq -out ledger_mocks.go . IRecorder Notifier Invalidator

// ErrCampaignNotFound when a completed checkout references a campaign that does not exist
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrInvalidCheckout when the completed checkout can not be turned into a donation
var ErrInvalidCheckout = errors.New("invalid completed checkout")

// CheckoutCompleted is the verified content of a completed checkout session
type CheckoutCompleted struct {
	SessionID   string
	AmountTotal int64 // minor units
	Currency    string

	CustomerEmail string
	CustomerName  string

	Metadata model.DonationMetadata
}

// RecordResult ...
type RecordResult struct {
	Donation model.Donation

	// Duplicate is true when the session was already recorded, nothing was applied
	Duplicate  bool
	Allocation Allocation

	// Raised and Donors are the campaign totals after this donation
	Raised decimal.Decimal
	Donors int64
}

// IRecorder ...
type IRecorder interface {
	Record(ctx context.Context, checkout CheckoutCompleted) (RecordResult, error)
	Reconcile(ctx context.Context, campaignID int64) (ReconcileResult, error)
}

// Notifier receives donations after their recording transaction committed
type Notifier interface {
	PublishDonation(event model.DonationEvent)
}

// Invalidator drops cached read models of a campaign
type Invalidator interface {
	Invalidate(ctx context.Context, campaignID int64)
}

// Recorder turns completed checkouts into ledger entries, exactly once per session id
type Recorder struct {
	provider repository.Provider

	campaignRepo repository.Campaign
	itemRepo     repository.CampaignItem
	donationRepo repository.Donation

	engine *Engine
	opts   recorderOptions
}

var _ IRecorder = &Recorder{}

// NewRecorder ...
func NewRecorder(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	itemRepo repository.CampaignItem,
	donationRepo repository.Donation,
	options ...RecorderOption,
) *Recorder {
	return &Recorder{
		provider: provider,

		campaignRepo: campaignRepo,
		itemRepo:     itemRepo,
		donationRepo: donationRepo,

		engine: NewEngine(campaignRepo, itemRepo, donationRepo),
		opts:   newRecorderOptions(options...),
	}
}

func (r *Recorder) newDonation(checkout CheckoutCompleted) (model.Donation, error) {
	if checkout.SessionID == "" {
		return model.Donation{}, fmt.Errorf("%w: empty session id", ErrInvalidCheckout)
	}
	if checkout.AmountTotal <= 0 {
		return model.Donation{}, fmt.Errorf("%w: amount_total %d", ErrInvalidCheckout, checkout.AmountTotal)
	}

	meta := checkout.Metadata
	total := model.FromMinorUnits(checkout.AmountTotal)
	amount, tip := model.SplitTip(total, meta.TipPercentage.Decimal)

	now := r.opts.now().UTC()

	donation := model.Donation{
		ID:          checkout.SessionID,
		CampaignID:  meta.CampaignID,
		DonorName:   model.TruncateRunes(checkout.CustomerName, model.MaxDonorNameLength),
		DonorEmail:  model.TruncateRunes(strings.TrimSpace(checkout.CustomerEmail), model.MaxDonorEmailLength),
		Amount:      amount,
		TipAmount:   tip,
		TotalAmount: total,
		Currency:    strings.ToLower(checkout.Currency),

		IsRecurring:       meta.IsRecurring,
		RecurringInterval: meta.RecurringInterval,

		Status:        model.DonationStatusCompleted,
		ReceiptNumber: model.ReceiptNumber(checkout.SessionID, now),
		CreatedAt:     now,
	}
	if meta.DonorID != "" {
		donation.DonorID = sql.NullString{Valid: true, String: meta.DonorID}
	}
	if meta.ItemID > 0 {
		donation.ItemID = sql.NullInt64{Valid: true, Int64: meta.ItemID}
	}
	return donation, nil
}

// resolveItem falls back to the general pool when the targeted item can not receive the donation.
// The payment is already captured so the donation must be recorded anyway.
func (r *Recorder) resolveItem(ctx context.Context, donation *model.Donation) error {
	if !donation.ItemID.Valid {
		return nil
	}

	item, err := r.itemRepo.GetItem(ctx, donation.ItemID.Int64)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	reason := ""
	switch {
	case !item.Valid:
		reason = "item not found"
	case item.Item.CampaignID != donation.CampaignID:
		reason = "item belongs to another campaign"
	case !item.Item.IsActive:
		reason = "item is not active"
	}
	if reason == "" {
		return nil
	}

	otellib.Extract(ctx).Warn("Donation attributed to general pool",
		zap.String("session.id", donation.ID),
		zap.Int64("campaign.id", donation.CampaignID),
		zap.Int64("item.id", donation.ItemID.Int64),
		zap.String("reason", reason),
	)
	donation.ItemID = sql.NullInt64{}
	return nil
}

func (r *Recorder) recordInTx(ctx context.Context, donation model.Donation) (RecordResult, error) {
	var result RecordResult
	err := r.provider.Transact(ctx, func(ctx context.Context) error {
		campaign, err := r.campaignRepo.LockCampaign(ctx, donation.CampaignID)
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}
		if !campaign.Valid {
			return fmt.Errorf("%w: %d", ErrCampaignNotFound, donation.CampaignID)
		}

		if err := r.resolveItem(ctx, &donation); err != nil {
			return err
		}

		inserted, err := r.donationRepo.InsertDonation(ctx, donation)
		if err != nil {
			return fmt.Errorf("insert donation: %w", err)
		}
		if !inserted {
			stored, err := r.donationRepo.GetDonation(ctx, donation.ID)
			if err != nil {
				return fmt.Errorf("get donation: %w", err)
			}
			if !stored.Valid {
				return fmt.Errorf("duplicate donation %s not found", donation.ID)
			}
			result = RecordResult{Donation: stored.Donation, Duplicate: true}
			return nil
		}

		allocation, err := r.engine.Apply(ctx, donation)
		if err != nil {
			return err
		}

		result = RecordResult{
			Donation:   donation,
			Allocation: allocation,
		}
		result.Raised = campaign.Campaign.Raised.Add(allocation.RaisedDelta)
		result.Donors = campaign.Campaign.Donors + allocation.DonorsDelta
		return nil
	})
	return result, err
}

// Record inserts the donation and applies its allocation in the same transaction.
// A session id already recorded is a successful no-op.
func (r *Recorder) Record(ctx context.Context, checkout CheckoutCompleted) (RecordResult, error) {
	timer := prometheus.NewTimer(metrics.RecordDuration)
	defer timer.ObserveDuration()

	donation, err := r.newDonation(checkout)
	if err != nil {
		return RecordResult{}, err
	}

	var result RecordResult
	for attempt := 1; ; attempt++ {
		result, err = r.recordInTx(ctx, donation)
		if err == nil || !repository.IsRetryable(err) || attempt >= r.opts.maxAttempts {
			break
		}

		metrics.RecordRetries.Inc()
		otellib.Extract(ctx).Warn("Retry recording transaction",
			zap.String("session.id", donation.ID), zap.Int("attempt", attempt), zap.Error(err))
	}
	if err != nil {
		return RecordResult{}, err
	}

	if result.Duplicate {
		otellib.Extract(ctx).Info("Duplicate checkout session ignored", zap.String("session.id", donation.ID))
		return result, nil
	}

	r.afterCommit(ctx, result)
	return result, nil
}

func (r *Recorder) afterCommit(ctx context.Context, result RecordResult) {
	donation := result.Donation

	target := "general"
	if donation.ItemID.Valid {
		target = "item"
	}
	metrics.DonationsRecorded.WithLabelValues(target).Inc()
	metrics.AmountRaised.WithLabelValues(donation.Currency).Add(donation.TotalAmount.InexactFloat64())

	otellib.Extract(ctx).Info("Donation recorded",
		zap.String("session.id", donation.ID),
		zap.Int64("campaign.id", donation.CampaignID),
		zap.String("total_amount", donation.TotalAmount.String()),
		zap.String("receipt_number", donation.ReceiptNumber),
	)

	r.opts.invalidator.Invalidate(ctx, donation.CampaignID)

	donorName := donation.DonorName
	if donorName == "" || !donation.DonorID.Valid || donation.DonorID.String == model.AnonymousDonorID {
		donorName = "Anonymous"
	}

	r.opts.notifier.PublishDonation(model.DonationEvent{
		CampaignID: donation.CampaignID,
		ItemID:     donation.ItemID.Int64,
		DonorName:  donorName,
		Amount:     donation.TotalAmount,
		Raised:     result.Raised,
		Donors:     result.Donors,
		CreatedAt:  donation.CreatedAt,
	})
}

// Reconcile recomputes the aggregates of a campaign from the ledger
func (r *Recorder) Reconcile(ctx context.Context, campaignID int64) (ReconcileResult, error) {
	var result ReconcileResult
	err := r.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		result, err = r.engine.Reconcile(ctx, campaignID)
		return err
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	r.opts.invalidator.Invalidate(ctx, campaignID)
	return result, nil
}

type recorderOptions struct {
	maxAttempts int
	now         func() time.Time
	notifier    Notifier
	invalidator Invalidator
}

type nopNotifier struct{}

func (nopNotifier) PublishDonation(model.DonationEvent) {}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(context.Context, int64) {}

func newRecorderOptions(options ...RecorderOption) recorderOptions {
	opts := recorderOptions{
		maxAttempts: 3,
		now:         time.Now,
		notifier:    nopNotifier{},
		invalidator: nopInvalidator{},
	}
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// RecorderOption ...
type RecorderOption func(opts *recorderOptions)

// WithMaxAttempts of the recording transaction on deadlocks
func WithMaxAttempts(n int) RecorderOption {
	return func(opts *recorderOptions) {
		opts.maxAttempts = n
	}
}

// WithNowFunc ...
func WithNowFunc(now func() time.Time) RecorderOption {
	return func(opts *recorderOptions) {
		opts.now = now
	}
}

// WithNotifier ...
func WithNotifier(n Notifier) RecorderOption {
	return func(opts *recorderOptions) {
		opts.notifier = n
	}
}

// WithInvalidator ...
func WithInvalidator(inv Invalidator) RecorderOption {
	return func(opts *recorderOptions) {
		opts.invalidator = inv
	}
}
