package repository

import (
	"context"

	"github.com/QuangTung97/donation-ledger/model"
)

// Donation is the append-only ledger and the distinct donors derived from it
type Donation interface {
	// InsertDonation returns false without error when a donation with the same id already exists
	InsertDonation(ctx context.Context, donation model.Donation) (bool, error)

	GetDonation(ctx context.Context, id string) (model.NullDonation, error)

	ListCompletedByCampaign(ctx context.Context, campaignID int64) ([]model.Donation, error)

	// InsertDonor returns false without error when the donor is already counted for the campaign
	InsertDonor(ctx context.Context, donor model.CampaignDonor) (bool, error)
}

type donationImpl struct {
}

// NewDonation ...
func NewDonation() Donation {
	return &donationImpl{}
}

const selectDonation = `
SELECT id, campaign_id, item_id, donor_id, donor_name, donor_email,
	amount, tip_amount, total_amount, currency,
	is_recurring, recurring_interval, status, receipt_number, created_at
FROM donation
`

// InsertDonation ...
func (r *donationImpl) InsertDonation(ctx context.Context, donation model.Donation) (bool, error) {
	query := `
INSERT INTO donation (
	id, campaign_id, item_id, donor_id, donor_name, donor_email,
	amount, tip_amount, total_amount, currency,
	is_recurring, recurring_interval, status, receipt_number, created_at
) VALUES (
	:id, :campaign_id, :item_id, :donor_id, :donor_name, :donor_email,
	:amount, :tip_amount, :total_amount, :currency,
	:is_recurring, :recurring_interval, :status, :receipt_number, :created_at
)
ON DUPLICATE KEY UPDATE id = id
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, donation)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// GetDonation ...
func (r *donationImpl) GetDonation(ctx context.Context, id string) (model.NullDonation, error) {
	query := selectDonation + `WHERE id = ?`

	var donation model.Donation
	err := GetReadonly(ctx).GetContext(ctx, &donation, query, id)
	if isNoRows(err) {
		return model.NullDonation{}, nil
	}
	if err != nil {
		return model.NullDonation{}, err
	}
	return model.NullDonation{Valid: true, Donation: donation}, nil
}

// ListCompletedByCampaign ...
func (r *donationImpl) ListCompletedByCampaign(ctx context.Context, campaignID int64) ([]model.Donation, error) {
	query := selectDonation + `WHERE campaign_id = ? AND status = ? ORDER BY created_at, id`

	var result []model.Donation
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, model.DonationStatusCompleted)
	return result, err
}

// InsertDonor ...
func (r *donationImpl) InsertDonor(ctx context.Context, donor model.CampaignDonor) (bool, error) {
	query := `
INSERT INTO campaign_donor (campaign_id, donor_key, created_at)
VALUES (:campaign_id, :donor_key, :created_at)
ON DUPLICATE KEY UPDATE donor_key = donor_key
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, donor)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
