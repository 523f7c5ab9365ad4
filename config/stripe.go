package config

import "github.com/shopspring/decimal"

// StripeConfig for the payment gateway
type StripeConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	SuccessURL    string `mapstructure:"success_url"`
	CancelURL     string `mapstructure:"cancel_url"`
	Currency      string `mapstructure:"currency"`
	CampaignFee   string `mapstructure:"campaign_fee"`
}

// CampaignFeeAmount parses the campaign creation fee, zero when not configured
func (c StripeConfig) CampaignFeeAmount() decimal.Decimal {
	if c.CampaignFee == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(c.CampaignFee)
	if err != nil {
		panic(err)
	}
	return d
}
