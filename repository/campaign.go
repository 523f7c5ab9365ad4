package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/shopspring/decimal"
)

// Campaign ...
type Campaign interface {
	GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error)

	// LockCampaign must be called inside a transaction
	LockCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error)

	// IncreaseAggregates adds to raised and donors atomically in the database
	IncreaseAggregates(ctx context.Context, campaignID int64, raised decimal.Decimal, donors int64) error

	// SetAggregates overwrites raised and donors, for reconciliation from the ledger only
	SetAggregates(ctx context.Context, campaignID int64, raised decimal.Decimal, donors int64) error

	UpsertCampaign(ctx context.Context, campaign model.Campaign) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const selectCampaign = `
SELECT id, ngo_user_id, title, ngo_name, goal, raised, donors, created_at, updated_at
FROM campaign
`

func nullCampaign(campaign model.Campaign, err error) (model.NullCampaign, error) {
	if isNoRows(err) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{Valid: true, Campaign: campaign}, nil
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	query := selectCampaign + `WHERE id = ?`

	var campaign model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &campaign, query, campaignID)
	return nullCampaign(campaign, err)
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	query := selectCampaign + `WHERE id = ? FOR UPDATE`

	var campaign model.Campaign
	err := GetTx(ctx).GetContext(ctx, &campaign, query, campaignID)
	return nullCampaign(campaign, err)
}

// IncreaseAggregates ...
func (c *campaignImpl) IncreaseAggregates(
	ctx context.Context, campaignID int64, raised decimal.Decimal, donors int64,
) error {
	query := `
UPDATE campaign
SET raised = raised + ?, donors = donors + ?, updated_at = ?
WHERE id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, raised, donors, time.Now().UTC(), campaignID)
	return err
}

// SetAggregates ...
func (c *campaignImpl) SetAggregates(
	ctx context.Context, campaignID int64, raised decimal.Decimal, donors int64,
) error {
	query := `
UPDATE campaign
SET raised = ?, donors = ?, updated_at = ?
WHERE id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, raised, donors, time.Now().UTC(), campaignID)
	return err
}

// UpsertCampaign ...
func (c *campaignImpl) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, ngo_user_id, title, ngo_name, goal, raised, donors
) VALUES (
	:id, :ngo_user_id, :title, :ngo_name, :goal, :raised, :donors
) AS NEW
ON DUPLICATE KEY UPDATE
	ngo_user_id = NEW.ngo_user_id,
	title = NEW.title,
	ngo_name = NEW.ngo_name,
	goal = NEW.goal
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}
