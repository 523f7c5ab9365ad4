package model

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitTip(t *testing.T) {
	base, tip := SplitTip(newDecimal("110"), newDecimal("10"))
	assert.Equal(t, "100", base.String())
	assert.Equal(t, "10", tip.String())

	base, tip = SplitTip(newDecimal("100"), newDecimal("0"))
	assert.Equal(t, "100", base.String())
	assert.Equal(t, "0", tip.String())

	base, tip = SplitTip(newDecimal("50"), newDecimal("15"))
	assert.Equal(t, "43.48", base.String())
	assert.Equal(t, "6.52", tip.String())
	assert.True(t, base.Add(tip).Equal(newDecimal("50")))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, "110", FromMinorUnits(11000).String())
	assert.Equal(t, "0.99", FromMinorUnits(99).String())
	assert.Equal(t, int64(4348), ToMinorUnits(newDecimal("43.48")))
	assert.Equal(t, int64(10000), ToMinorUnits(newDecimal("100")))
}

func TestReceiptNumber(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "RCP-2026-TEST_123", ReceiptNumber("cs_test_123", now))
	assert.Equal(t, "RCP-2026-ABCDEFGH", ReceiptNumber("cs_live_a1abcdefgh", now))
	assert.Equal(t, "RCP-2026-CS_1", ReceiptNumber("cs_1", now))

	// deterministic across retries
	assert.Equal(t, ReceiptNumber("cs_live_a1abcdefgh", now), ReceiptNumber("cs_live_a1abcdefgh", now.Add(time.Hour)))
}

func TestDonation_DonorKey(t *testing.T) {
	d := Donation{
		ID:         "cs_01",
		DonorID:    sql.NullString{Valid: true, String: "user-7"},
		DonorEmail: "a@example.com",
	}
	assert.Equal(t, "id:user-7", d.DonorKey())

	d.DonorID = sql.NullString{Valid: true, String: AnonymousDonorID}
	assert.Equal(t, "email:a@example.com", d.DonorKey())

	d.DonorID = sql.NullString{}
	d.DonorEmail = "  A@Example.com "
	assert.Equal(t, "email:a@example.com", d.DonorKey())

	d.DonorEmail = ""
	assert.Equal(t, "session:cs_01", d.DonorKey())
}

func TestDonationMetadata_Round_Trip(t *testing.T) {
	m := DonationMetadata{
		CampaignID:        12,
		ItemID:            5,
		TipPercentage:     decimal.NewNullDecimal(newDecimal("10")),
		IsRecurring:       true,
		RecurringInterval: "quarterly",
		CampaignTitle:     "Clean Water",
		NgoName:           "Water NGO",
	}

	data := m.ToMap()
	assert.Equal(t, map[string]string{
		"campaignId":        "12",
		"itemId":            "5",
		"donorId":           "anonymous",
		"tipPercentage":     "10",
		"isRecurring":       "true",
		"recurringInterval": "quarterly",
		"campaignTitle":     "Clean Water",
		"ngoName":           "Water NGO",
	}, data)

	parsed, err := ParseDonationMetadata(data)
	assert.Equal(t, nil, err)

	m.DonorID = AnonymousDonorID
	assert.Equal(t, m.CampaignID, parsed.CampaignID)
	assert.Equal(t, m.ItemID, parsed.ItemID)
	assert.Equal(t, m.DonorID, parsed.DonorID)
	assert.True(t, parsed.TipPercentage.Valid)
	assert.True(t, m.TipPercentage.Decimal.Equal(parsed.TipPercentage.Decimal))
	assert.Equal(t, m.IsRecurring, parsed.IsRecurring)
	assert.Equal(t, m.RecurringInterval, parsed.RecurringInterval)
	assert.Equal(t, m.CampaignTitle, parsed.CampaignTitle)
	assert.Equal(t, m.NgoName, parsed.NgoName)
}

func TestParseDonationMetadata__Missing_Required(t *testing.T) {
	full := map[string]string{
		"campaignId":    "12",
		"campaignTitle": "Clean Water",
		"ngoName":       "Water NGO",
	}

	for _, key := range []string{"campaignId", "campaignTitle", "ngoName"} {
		data := map[string]string{}
		for k, v := range full {
			if k != key {
				data[k] = v
			}
		}
		_, err := ParseDonationMetadata(data)
		assert.True(t, errors.Is(err, ErrMissingMetadata), key)
	}
}

func TestParseDonationMetadata__Invalid_Values(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{
			"campaignId":    "12",
			"campaignTitle": "Clean Water",
			"ngoName":       "Water NGO",
		}
	}

	data := base()
	data["campaignId"] = "abc"
	_, err := ParseDonationMetadata(data)
	assert.True(t, errors.Is(err, ErrInvalidMetadata))

	data = base()
	data["tipPercentage"] = "-5"
	_, err = ParseDonationMetadata(data)
	assert.True(t, errors.Is(err, ErrInvalidMetadata))

	data = base()
	data["isRecurring"] = "maybe"
	_, err = ParseDonationMetadata(data)
	assert.True(t, errors.Is(err, ErrInvalidMetadata))

	// unparsable item id falls back to the general pool
	data = base()
	data["itemId"] = "x"
	m, err := ParseDonationMetadata(data)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), m.ItemID)
	assert.False(t, m.TipPercentage.Valid)
}

func TestParseDonationMetadata__Donor_ID_Too_Long(t *testing.T) {
	data := map[string]string{
		"campaignId":    "12",
		"campaignTitle": "Clean Water",
		"ngoName":       "Water NGO",
		"donorId":       strings.Repeat("d", 65),
	}
	_, err := ParseDonationMetadata(data)
	assert.True(t, errors.Is(err, ErrInvalidMetadata))

	data["donorId"] = strings.Repeat("d", 64)
	m, err := ParseDonationMetadata(data)
	assert.Equal(t, nil, err)
	assert.Equal(t, strings.Repeat("d", 64), m.DonorID)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "Nguyễn", TruncateRunes("Nguyễn Văn", 6))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, "11", ProgressPercent(newDecimal("110"), newDecimal("1000")).String())
	assert.Equal(t, "33.33", ProgressPercent(newDecimal("1"), newDecimal("3")).String())
	assert.Equal(t, "0", ProgressPercent(newDecimal("1"), decimal.Zero).String())
}
