package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign ...
type Campaign struct {
	ID        int64  `db:"id" json:"id"`
	NgoUserID string `db:"ngo_user_id" json:"ngo_user_id"`
	Title     string `db:"title" json:"title"`
	NgoName   string `db:"ngo_name" json:"ngo_name"`

	Goal   decimal.Decimal `db:"goal" json:"goal"`
	Raised decimal.Decimal `db:"raised" json:"raised"`
	Donors int64           `db:"donors" json:"donors"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignDonor is one distinct donor identity of a campaign
type CampaignDonor struct {
	CampaignID int64  `db:"campaign_id"`
	DonorKey   string `db:"donor_key"`

	CreatedAt time.Time `db:"created_at"`
}
