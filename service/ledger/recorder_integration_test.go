//go:build integration

package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/integration"
	"github.com/QuangTung97/donation-ledger/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type recorderIntegrationTest struct {
	tc       *integration.TestCase
	provider repository.Provider

	campaignRepo repository.Campaign
	itemRepo     repository.CampaignItem
	donationRepo repository.Donation

	recorder *Recorder
	itemID   int64
}

func newRecorderIntegrationTest(t *testing.T) *recorderIntegrationTest {
	tc := integration.NewTestCase()
	tc.Truncate("campaign", "campaign_item", "donation", "campaign_donor")

	r := &recorderIntegrationTest{
		tc:       tc,
		provider: repository.NewProvider(tc.DB),

		campaignRepo: repository.NewCampaign(),
		itemRepo:     repository.NewCampaignItem(),
		donationRepo: repository.NewDonation(),
	}
	r.recorder = NewRecorder(r.provider, r.campaignRepo, r.itemRepo, r.donationRepo, WithMaxAttempts(5))

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		err := r.campaignRepo.UpsertCampaign(ctx, model.Campaign{
			ID:        11,
			NgoUserID: "ngo-user-01",
			Title:     "Clean Water",
			NgoName:   "Water NGO",
			Goal:      newDecimal("1000.00"),
		})
		if err != nil {
			return err
		}

		r.itemID, err = r.itemRepo.InsertItem(ctx, model.CampaignItem{
			CampaignID:   11,
			Name:         "Water Filter",
			TargetAmount: newDecimal("500.00"),
			Priority:     model.ItemPriorityHigh,
			IsActive:     true,
			CreatedAt:    newTime("2024-03-01T10:00:00Z"),
			UpdatedAt:    newTime("2024-03-01T10:00:00Z"),
		})
		return err
	})
	assert.Equal(t, nil, err)
	return r
}

func (r *recorderIntegrationTest) getCampaign(t *testing.T) model.Campaign {
	campaign, err := r.campaignRepo.GetCampaign(r.provider.Readonly(newContext()), 11)
	assert.Equal(t, nil, err)
	return campaign.Campaign
}

func (r *recorderIntegrationTest) getItem(t *testing.T, id int64) model.CampaignItem {
	item, err := r.itemRepo.GetItem(r.provider.Readonly(newContext()), id)
	assert.Equal(t, nil, err)
	return item.Item
}

func TestRecorderIntegration_Idempotent(t *testing.T) {
	r := newRecorderIntegrationTest(t)

	for i := 0; i < 3; i++ {
		result, err := r.recorder.Record(newContext(), completedCheckout())
		assert.Equal(t, nil, err)
		assert.Equal(t, i > 0, result.Duplicate)
	}

	campaign := r.getCampaign(t)
	assert.Equal(t, "110", campaign.Raised.String())
	assert.Equal(t, int64(1), campaign.Donors)

	donation, err := r.donationRepo.GetDonation(r.provider.Readonly(newContext()), "cs_test_123")
	assert.Equal(t, nil, err)
	assert.Equal(t, "100", donation.Donation.Amount.String())
	assert.Equal(t, "10", donation.Donation.TipAmount.String())
	assert.Equal(t, model.DonationStatusCompleted, donation.Donation.Status)
}

func TestRecorderIntegration_Concurrent_Item_Donations(t *testing.T) {
	r := newRecorderIntegrationTest(t)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		checkout := completedCheckout()
		checkout.SessionID = fmt.Sprintf("cs_race_%d", i)
		checkout.AmountTotal = 5000
		checkout.Metadata.TipPercentage = decimal.NullDecimal{}
		checkout.Metadata.ItemID = r.itemID
		checkout.Metadata.DonorID = fmt.Sprintf("user-%d", i)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.recorder.Record(newContext(), checkout)
			assert.Equal(t, nil, err)
		}()
	}
	wg.Wait()

	item := r.getItem(t, r.itemID)
	assert.Equal(t, "100", item.CurrentAmount.String())

	campaign := r.getCampaign(t)
	assert.Equal(t, "100", campaign.Raised.String())
	assert.Equal(t, int64(2), campaign.Donors)
}

func TestRecorderIntegration_Aggregates_Match_Ledger(t *testing.T) {
	r := newRecorderIntegrationTest(t)

	amounts := []int64{11000, 2500, 999, 5000}
	for i, amount := range amounts {
		checkout := completedCheckout()
		checkout.SessionID = fmt.Sprintf("cs_sum_%d", i)
		checkout.AmountTotal = amount
		if i%2 == 0 {
			checkout.Metadata.ItemID = r.itemID
		}
		_, err := r.recorder.Record(newContext(), checkout)
		assert.Equal(t, nil, err)
	}

	campaign := r.getCampaign(t)
	assert.Equal(t, "194.99", campaign.Raised.String())

	// break the aggregates then repair them from the ledger
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		err := r.campaignRepo.SetAggregates(ctx, 11, decimal.Zero, 0)
		if err != nil {
			return err
		}
		return r.itemRepo.SetCurrentAmount(ctx, r.itemID, decimal.Zero)
	})
	assert.Equal(t, nil, err)

	result, err := r.recorder.Reconcile(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{r.itemID}, result.ItemsChanged)

	campaign = r.getCampaign(t)
	assert.Equal(t, "194.99", campaign.Raised.String())
	assert.Equal(t, int64(1), campaign.Donors)

	// 11000 and 999 minor units with a 10% tip
	item := r.getItem(t, r.itemID)
	assert.Equal(t, "109.08", item.CurrentAmount.String())
}
