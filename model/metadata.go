package model

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Checkout session metadata keys, they must survive the round trip through the gateway unmodified
const (
	MetadataCampaignID        = "campaignId"
	MetadataItemID            = "itemId"
	MetadataDonorID           = "donorId"
	MetadataTipPercentage     = "tipPercentage"
	MetadataIsRecurring       = "isRecurring"
	MetadataRecurringInterval = "recurringInterval"
	MetadataCampaignTitle     = "campaignTitle"
	MetadataNgoName           = "ngoName"

	MetadataType      = "type"
	MetadataNgoUserID = "ngoUserId"
)

// MetadataTypeCampaignFee marks checkout sessions paying the campaign creation fee
const MetadataTypeCampaignFee = "campaign_creation_fee"

// ErrMissingMetadata when a required metadata field is absent
var ErrMissingMetadata = errors.New("missing required metadata")

// ErrInvalidMetadata when a metadata field can not be parsed
var ErrInvalidMetadata = errors.New("invalid metadata")

// DonationMetadata is the reconciliation context embedded into a donation checkout session
type DonationMetadata struct {
	CampaignID        int64
	ItemID            int64 // zero means the general pool
	DonorID           string
	TipPercentage     decimal.NullDecimal
	IsRecurring       bool
	RecurringInterval string
	CampaignTitle     string
	NgoName           string
}

// ToMap encodes the metadata for the gateway
func (m DonationMetadata) ToMap() map[string]string {
	donorID := m.DonorID
	if donorID == "" {
		donorID = AnonymousDonorID
	}

	tip := "0"
	if m.TipPercentage.Valid {
		tip = m.TipPercentage.Decimal.String()
	}

	result := map[string]string{
		MetadataCampaignID:        strconv.FormatInt(m.CampaignID, 10),
		MetadataDonorID:           donorID,
		MetadataTipPercentage:     tip,
		MetadataIsRecurring:       strconv.FormatBool(m.IsRecurring),
		MetadataRecurringInterval: m.RecurringInterval,
		MetadataCampaignTitle:     m.CampaignTitle,
		MetadataNgoName:           m.NgoName,
	}
	if m.ItemID > 0 {
		result[MetadataItemID] = strconv.FormatInt(m.ItemID, 10)
	}
	return result
}

func missing(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingMetadata, key)
}

func invalid(key string, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidMetadata, key, value)
}

// ParseDonationMetadata decodes metadata delivered back by the gateway.
// campaignId, campaignTitle and ngoName are required, an unparsable itemId is dropped (general pool).
func ParseDonationMetadata(data map[string]string) (DonationMetadata, error) {
	campaignIDStr := data[MetadataCampaignID]
	if campaignIDStr == "" {
		return DonationMetadata{}, missing(MetadataCampaignID)
	}
	if data[MetadataCampaignTitle] == "" {
		return DonationMetadata{}, missing(MetadataCampaignTitle)
	}
	if data[MetadataNgoName] == "" {
		return DonationMetadata{}, missing(MetadataNgoName)
	}

	campaignID, err := strconv.ParseInt(campaignIDStr, 10, 64)
	if err != nil || campaignID <= 0 {
		return DonationMetadata{}, invalid(MetadataCampaignID, campaignIDStr)
	}

	if donorID := data[MetadataDonorID]; utf8.RuneCountInString(donorID) > MaxDonorIDLength {
		return DonationMetadata{}, invalid(MetadataDonorID, donorID)
	}

	result := DonationMetadata{
		CampaignID:        campaignID,
		DonorID:           data[MetadataDonorID],
		RecurringInterval: data[MetadataRecurringInterval],
		CampaignTitle:     data[MetadataCampaignTitle],
		NgoName:           data[MetadataNgoName],
	}

	if s := data[MetadataItemID]; s != "" {
		itemID, err := strconv.ParseInt(s, 10, 64)
		if err == nil && itemID > 0 {
			result.ItemID = itemID
		}
	}

	if s := data[MetadataTipPercentage]; s != "" {
		tip, err := decimal.NewFromString(s)
		if err != nil || tip.IsNegative() {
			return DonationMetadata{}, invalid(MetadataTipPercentage, s)
		}
		result.TipPercentage = decimal.NewNullDecimal(tip)
	}

	if s := data[MetadataIsRecurring]; s != "" {
		recurring, err := strconv.ParseBool(s)
		if err != nil {
			return DonationMetadata{}, invalid(MetadataIsRecurring, s)
		}
		result.IsRecurring = recurring
	}

	return result, nil
}
