package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignProgress is the read model of a campaign's aggregates
type CampaignProgress struct {
	CampaignID int64           `json:"campaign_id"`
	Title      string          `json:"title"`
	NgoName    string          `json:"ngo_name"`
	Goal       decimal.Decimal `json:"goal"`
	Raised     decimal.Decimal `json:"raised"`
	Donors     int64           `json:"donors"`
	Percent    decimal.Decimal `json:"percent"`

	Items []ItemProgress `json:"items"`
}

// ItemProgress ...
type ItemProgress struct {
	ItemID        int64           `json:"item_id"`
	Name          string          `json:"name"`
	Priority      ItemPriority    `json:"priority"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Percent       decimal.Decimal `json:"percent"`
}

// ProgressPercent returns raised / goal * 100 rounded to 2 places, 0 when goal is not positive
func ProgressPercent(raised decimal.Decimal, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	return raised.Mul(hundred).DivRound(goal, 2)
}

// DonationEvent is published to live feed subscribers after a donation is recorded
type DonationEvent struct {
	CampaignID int64           `json:"campaign_id"`
	ItemID     int64           `json:"item_id,omitempty"`
	DonorName  string          `json:"donor_name"`
	Amount     decimal.Decimal `json:"amount"`
	Raised     decimal.Decimal `json:"raised"`
	Donors     int64           `json:"donors"`
	CreatedAt  time.Time       `json:"created_at"`
}
