package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/repository"
	"github.com/shopspring/decimal"
)

// Allocation is the aggregate change applied for one donation
type Allocation struct {
	CampaignID int64
	ItemID     int64 // zero for the general pool

	RaisedDelta decimal.Decimal
	DonorsDelta int64
	ItemDelta   decimal.Decimal
}

// Engine maintains the derived aggregates of campaigns and items.
// Every mutation is a relative increment scoped by row id, never a read-modify-write.
type Engine struct {
	campaignRepo repository.Campaign
	itemRepo     repository.CampaignItem
	donationRepo repository.Donation
}

// NewEngine ...
func NewEngine(
	campaignRepo repository.Campaign,
	itemRepo repository.CampaignItem,
	donationRepo repository.Donation,
) *Engine {
	return &Engine{
		campaignRepo: campaignRepo,
		itemRepo:     itemRepo,
		donationRepo: donationRepo,
	}
}

// Apply must run inside the transaction that inserted the donation.
// Lock order is campaign then item, the same as the allocation validator.
func (e *Engine) Apply(ctx context.Context, donation model.Donation) (Allocation, error) {
	inserted, err := e.donationRepo.InsertDonor(ctx, model.CampaignDonor{
		CampaignID: donation.CampaignID,
		DonorKey:   donation.DonorKey(),
		CreatedAt:  donation.CreatedAt,
	})
	if err != nil {
		return Allocation{}, fmt.Errorf("insert donor: %w", err)
	}

	result := Allocation{
		CampaignID:  donation.CampaignID,
		RaisedDelta: donation.TotalAmount,
	}
	if inserted {
		result.DonorsDelta = 1
	}

	err = e.campaignRepo.IncreaseAggregates(ctx, donation.CampaignID, result.RaisedDelta, result.DonorsDelta)
	if err != nil {
		return Allocation{}, fmt.Errorf("increase campaign aggregates: %w", err)
	}

	if donation.ItemID.Valid {
		result.ItemID = donation.ItemID.Int64
		result.ItemDelta = donation.Amount

		err = e.itemRepo.IncreaseCurrentAmount(ctx, result.ItemID, result.ItemDelta)
		if err != nil {
			return Allocation{}, fmt.Errorf("increase item current amount: %w", err)
		}
	}

	return result, nil
}

// ReconcileResult ...
type ReconcileResult struct {
	CampaignID int64

	RaisedBefore decimal.Decimal
	RaisedAfter  decimal.Decimal
	DonorsBefore int64
	DonorsAfter  int64

	// ItemsChanged are the items whose current_amount did not match the ledger
	ItemsChanged []int64
}

// Reconcile recomputes the aggregates of a campaign from its completed donations.
// Used to repair aggregates after a crash between the ledger write and the aggregate update.
func (e *Engine) Reconcile(ctx context.Context, campaignID int64) (ReconcileResult, error) {
	campaign, err := e.campaignRepo.LockCampaign(ctx, campaignID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("lock campaign: %w", err)
	}
	if !campaign.Valid {
		return ReconcileResult{}, fmt.Errorf("%w: %d", ErrCampaignNotFound, campaignID)
	}

	donations, err := e.donationRepo.ListCompletedByCampaign(ctx, campaignID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("list donations: %w", err)
	}

	items, err := e.itemRepo.ListItemsByCampaign(ctx, campaignID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("list items: %w", err)
	}

	raised := decimal.Zero
	itemAmounts := map[int64]decimal.Decimal{}
	donorKeys := map[string]time.Time{}
	var keyOrder []string

	for _, d := range donations {
		raised = raised.Add(d.TotalAmount)
		if d.ItemID.Valid {
			itemAmounts[d.ItemID.Int64] = itemAmounts[d.ItemID.Int64].Add(d.Amount)
		}

		key := d.DonorKey()
		if _, existed := donorKeys[key]; !existed {
			donorKeys[key] = d.CreatedAt
			keyOrder = append(keyOrder, key)
		}
	}

	for _, key := range keyOrder {
		_, err := e.donationRepo.InsertDonor(ctx, model.CampaignDonor{
			CampaignID: campaignID,
			DonorKey:   key,
			CreatedAt:  donorKeys[key],
		})
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("insert donor: %w", err)
		}
	}

	result := ReconcileResult{
		CampaignID:   campaignID,
		RaisedBefore: campaign.Campaign.Raised,
		RaisedAfter:  raised,
		DonorsBefore: campaign.Campaign.Donors,
		DonorsAfter:  int64(len(keyOrder)),
	}

	for _, item := range items {
		expected := itemAmounts[item.ID]
		if item.CurrentAmount.Equal(expected) {
			continue
		}

		err := e.itemRepo.SetCurrentAmount(ctx, item.ID, expected)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("set item current amount: %w", err)
		}
		result.ItemsChanged = append(result.ItemsChanged, item.ID)
	}

	err = e.campaignRepo.SetAggregates(ctx, campaignID, result.RaisedAfter, result.DonorsAfter)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("set campaign aggregates: %w", err)
	}

	return result, nil
}
