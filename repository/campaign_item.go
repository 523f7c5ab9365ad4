package repository

import (
	"context"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/shopspring/decimal"
)

// CampaignItem ...
type CampaignItem interface {
	GetItem(ctx context.Context, itemID int64) (model.NullCampaignItem, error)

	// LockItem must be called inside a transaction, after locking the campaign of the item
	LockItem(ctx context.Context, itemID int64) (model.NullCampaignItem, error)

	ListItemsByCampaign(ctx context.Context, campaignID int64) ([]model.CampaignItem, error)

	// SumOtherActiveTargets sums target_amount over active items of the campaign, except excludedItemID
	SumOtherActiveTargets(ctx context.Context, campaignID int64, excludedItemID int64) (decimal.Decimal, error)

	// IncreaseCurrentAmount adds to current_amount atomically in the database
	IncreaseCurrentAmount(ctx context.Context, itemID int64, amount decimal.Decimal) error

	// SetCurrentAmount overwrites current_amount, for reconciliation from the ledger only
	SetCurrentAmount(ctx context.Context, itemID int64, amount decimal.Decimal) error

	InsertItem(ctx context.Context, item model.CampaignItem) (int64, error)

	// UpdateItem writes the editable fields and updated_at, never current_amount
	UpdateItem(ctx context.Context, item model.CampaignItem) error
}

type campaignItemImpl struct {
}

// NewCampaignItem ...
func NewCampaignItem() CampaignItem {
	return &campaignItemImpl{}
}

const selectCampaignItem = `
SELECT id, campaign_id, name, description, target_amount, current_amount,
	quantity, unit_cost, priority, category, image_url, display_order, is_active,
	created_at, updated_at
FROM campaign_item
`

func nullCampaignItem(item model.CampaignItem, err error) (model.NullCampaignItem, error) {
	if isNoRows(err) {
		return model.NullCampaignItem{}, nil
	}
	if err != nil {
		return model.NullCampaignItem{}, err
	}
	return model.NullCampaignItem{Valid: true, Item: item}, nil
}

// GetItem ...
func (r *campaignItemImpl) GetItem(ctx context.Context, itemID int64) (model.NullCampaignItem, error) {
	query := selectCampaignItem + `WHERE id = ?`

	var item model.CampaignItem
	err := GetReadonly(ctx).GetContext(ctx, &item, query, itemID)
	return nullCampaignItem(item, err)
}

// LockItem ...
func (r *campaignItemImpl) LockItem(ctx context.Context, itemID int64) (model.NullCampaignItem, error) {
	query := selectCampaignItem + `WHERE id = ? FOR UPDATE`

	var item model.CampaignItem
	err := GetTx(ctx).GetContext(ctx, &item, query, itemID)
	return nullCampaignItem(item, err)
}

// ListItemsByCampaign ...
func (r *campaignItemImpl) ListItemsByCampaign(ctx context.Context, campaignID int64) ([]model.CampaignItem, error) {
	query := selectCampaignItem + `WHERE campaign_id = ? ORDER BY display_order, id`

	var result []model.CampaignItem
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// SumOtherActiveTargets ...
func (r *campaignItemImpl) SumOtherActiveTargets(
	ctx context.Context, campaignID int64, excludedItemID int64,
) (decimal.Decimal, error) {
	query := `
SELECT COALESCE(SUM(target_amount), 0)
FROM campaign_item
WHERE campaign_id = ? AND is_active = TRUE AND id <> ?
`
	var total decimal.Decimal
	err := GetReadonly(ctx).GetContext(ctx, &total, query, campaignID, excludedItemID)
	return total, err
}

// IncreaseCurrentAmount ...
func (r *campaignItemImpl) IncreaseCurrentAmount(ctx context.Context, itemID int64, amount decimal.Decimal) error {
	query := `UPDATE campaign_item SET current_amount = current_amount + ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, amount, itemID)
	return err
}

// SetCurrentAmount ...
func (r *campaignItemImpl) SetCurrentAmount(ctx context.Context, itemID int64, amount decimal.Decimal) error {
	query := `UPDATE campaign_item SET current_amount = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, amount, itemID)
	return err
}

// InsertItem ...
func (r *campaignItemImpl) InsertItem(ctx context.Context, item model.CampaignItem) (int64, error) {
	query := `
INSERT INTO campaign_item (
	campaign_id, name, description, target_amount, current_amount,
	quantity, unit_cost, priority, category, image_url, display_order, is_active,
	created_at, updated_at
) VALUES (
	:campaign_id, :name, :description, :target_amount, :current_amount,
	:quantity, :unit_cost, :priority, :category, :image_url, :display_order, :is_active,
	:created_at, :updated_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, item)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateItem ...
func (r *campaignItemImpl) UpdateItem(ctx context.Context, item model.CampaignItem) error {
	query := `
UPDATE campaign_item SET
	name = :name,
	description = :description,
	target_amount = :target_amount,
	quantity = :quantity,
	unit_cost = :unit_cost,
	priority = :priority,
	category = :category,
	image_url = :image_url,
	display_order = :display_order,
	is_active = :is_active,
	updated_at = :updated_at
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, item)
	return err
}
