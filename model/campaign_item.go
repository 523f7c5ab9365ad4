package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignItem is a fundraising sub-goal of a campaign
type CampaignItem struct {
	ID         int64  `db:"id" json:"id"`
	CampaignID int64  `db:"campaign_id" json:"campaign_id"`
	Name       string `db:"name" json:"name"`

	Description string `db:"description" json:"description"`

	TargetAmount  decimal.Decimal `db:"target_amount" json:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount" json:"current_amount"`

	Quantity     int64           `db:"quantity" json:"quantity"`
	UnitCost     decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	Priority     ItemPriority    `db:"priority" json:"priority"`
	Category     string          `db:"category" json:"category"`
	ImageURL     string          `db:"image_url" json:"image_url"`
	DisplayOrder int64           `db:"display_order" json:"display_order"`
	IsActive     bool            `db:"is_active" json:"is_active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NullCampaignItem ...
type NullCampaignItem struct {
	Valid bool
	Item  CampaignItem
}

// ItemPriority is informational only
type ItemPriority string

const (
	// ItemPriorityCritical ...
	ItemPriorityCritical ItemPriority = "critical"

	// ItemPriorityHigh ...
	ItemPriorityHigh ItemPriority = "high"

	// ItemPriorityMedium ...
	ItemPriorityMedium ItemPriority = "medium"

	// ItemPriorityLow ...
	ItemPriorityLow ItemPriority = "low"
)

// Valid ...
func (p ItemPriority) Valid() bool {
	switch p {
	case ItemPriorityCritical, ItemPriorityHigh, ItemPriorityMedium, ItemPriorityLow:
		return true
	default:
		return false
	}
}
