package model

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Donation is one entry of the ledger, ID is the checkout session id of the payment gateway
type Donation struct {
	ID         string        `db:"id"`
	CampaignID int64         `db:"campaign_id"`
	ItemID     sql.NullInt64 `db:"item_id"`

	DonorID    sql.NullString `db:"donor_id"`
	DonorName  string         `db:"donor_name"`
	DonorEmail string         `db:"donor_email"`

	Amount      decimal.Decimal `db:"amount"`
	TipAmount   decimal.Decimal `db:"tip_amount"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Currency    string          `db:"currency"`

	IsRecurring       bool   `db:"is_recurring"`
	RecurringInterval string `db:"recurring_interval"`

	Status        DonationStatus `db:"status"`
	ReceiptNumber string         `db:"receipt_number"`

	CreatedAt time.Time `db:"created_at"`
}

// NullDonation ...
type NullDonation struct {
	Valid    bool
	Donation Donation
}

// DonationStatus ...
type DonationStatus string

const (
	// DonationStatusPending ...
	DonationStatusPending DonationStatus = "pending"

	// DonationStatusCompleted ...
	DonationStatusCompleted DonationStatus = "completed"

	// DonationStatusFailed ...
	DonationStatusFailed DonationStatus = "failed"
)

// AnonymousDonorID is the donor id placed in checkout metadata for donors without an account
const AnonymousDonorID = "anonymous"

const receiptSuffixLen = 8

// column widths of the donation table
const (
	MaxDonorIDLength    = 64
	MaxDonorNameLength  = 255
	MaxDonorEmailLength = 255
)

// MaxAmount is the largest value a DECIMAL(14,2) money column holds
var MaxAmount = decimal.RequireFromString("999999999999.99")

// TruncateRunes cuts s to at most n characters
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ReceiptNumber is deterministic in the session id and the year of processing
func ReceiptNumber(sessionID string, processedAt time.Time) string {
	suffix := sessionID
	if len(suffix) > receiptSuffixLen {
		suffix = suffix[len(suffix)-receiptSuffixLen:]
	}
	return fmt.Sprintf("RCP-%d-%s", processedAt.Year(), strings.ToUpper(suffix))
}

// DonorKey identifies a distinct donor of a campaign
func (d Donation) DonorKey() string {
	if d.DonorID.Valid && d.DonorID.String != "" && d.DonorID.String != AnonymousDonorID {
		return "id:" + d.DonorID.String
	}
	email := strings.ToLower(strings.TrimSpace(d.DonorEmail))
	if email != "" {
		return "email:" + email
	}
	return "session:" + d.ID
}

var hundred = decimal.NewFromInt(100)

// SplitTip splits an amount that already includes the tip into the base donation and the tip.
// base = round(amount / (1 + tipPercentage/100), 2), tip = amount - base
func SplitTip(amount decimal.Decimal, tipPercentage decimal.Decimal) (base decimal.Decimal, tip decimal.Decimal) {
	if !tipPercentage.IsPositive() {
		return amount, decimal.Zero
	}
	divisor := decimal.NewFromInt(1).Add(tipPercentage.Div(hundred))
	base = amount.DivRound(divisor, 2)
	return base, amount.Sub(base)
}

// FromMinorUnits converts an amount in minor units (cents) to the major unit
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// ToMinorUnits converts to minor units (cents)
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}
