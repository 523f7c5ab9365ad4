package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/gateway"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type builderTest struct {
	client  *gateway.ClientMock
	builder *Builder
}

func newBuilderTest() *builderTest {
	client := &gateway.ClientMock{}
	return &builderTest{
		client: client,
		builder: NewBuilder(client, config.StripeConfig{
			SuccessURL:  "https://example.org/success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:   "https://example.org/cancel",
			Currency:    "USD",
			CampaignFee: "25.00",
		}),
	}
}

func (b *builderTest) stubCreate() {
	b.client.CreateCheckoutSessionFunc = func(
		ctx context.Context, params *stripe.CheckoutSessionParams,
	) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{
			ID:  "cs_test_123",
			URL: "https://checkout.stripe.com/c/pay/cs_test_123",
		}, nil
	}
}

func validInput() DonationInput {
	return DonationInput{
		CampaignID:    11,
		DonorID:       "user-01",
		DonorEmail:    "alice@example.com",
		Amount:        newDecimal("110.00"),
		TipPercentage: newDecimal("10"),
		CampaignTitle: "Clean Water",
		NgoName:       "Water NGO",
	}
}

func TestCreateDonationSession_OneTime(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	session, err := b.builder.CreateDonationSession(newContext(), validInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, Session{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.com/c/pay/cs_test_123",
	}, session)

	calls := b.client.CreateCheckoutSessionCalls()
	assert.Equal(t, 1, len(calls))

	params := calls[0].Params
	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "donate", *params.SubmitType)
	assert.Equal(t, "alice@example.com", *params.CustomerEmail)

	assert.Equal(t, 2, len(params.LineItems))
	assert.Equal(t, int64(10000), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "usd", *params.LineItems[0].PriceData.Currency)
	assert.Equal(t, "Donation to Clean Water", *params.LineItems[0].PriceData.ProductData.Name)
	assert.Nil(t, params.LineItems[0].PriceData.Recurring)
	assert.Equal(t, int64(1000), *params.LineItems[1].PriceData.UnitAmount)

	assert.Equal(t, map[string]string{
		"campaignId":        "11",
		"donorId":           "user-01",
		"tipPercentage":     "10",
		"isRecurring":       "false",
		"recurringInterval": "",
		"campaignTitle":     "Clean Water",
		"ngoName":           "Water NGO",
	}, params.Metadata)
}

func TestCreateDonationSession_Item_Anonymous_No_Tip(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	input := validInput()
	input.ItemID = 21
	input.DonorID = ""
	input.DonorEmail = ""
	input.TipPercentage = decimal.Zero
	input.Amount = newDecimal("50")

	_, err := b.builder.CreateDonationSession(newContext(), input)
	assert.Equal(t, nil, err)

	params := b.client.CreateCheckoutSessionCalls()[0].Params
	assert.Equal(t, 1, len(params.LineItems))
	assert.Equal(t, int64(5000), *params.LineItems[0].PriceData.UnitAmount)
	assert.Nil(t, params.CustomerEmail)
	assert.Equal(t, "21", params.Metadata[model.MetadataItemID])
	assert.Equal(t, "anonymous", params.Metadata[model.MetadataDonorID])
	assert.Equal(t, "0", params.Metadata[model.MetadataTipPercentage])
}

func TestCreateDonationSession_Recurring_Quarterly(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	input := validInput()
	input.IsRecurring = true
	input.RecurringInterval = IntervalQuarterly

	_, err := b.builder.CreateDonationSession(newContext(), input)
	assert.Equal(t, nil, err)

	params := b.client.CreateCheckoutSessionCalls()[0].Params
	assert.Equal(t, "subscription", *params.Mode)
	assert.Nil(t, params.SubmitType)
	for _, item := range params.LineItems {
		assert.Equal(t, "month", *item.PriceData.Recurring.Interval)
		assert.Equal(t, int64(3), *item.PriceData.Recurring.IntervalCount)
	}
	assert.Equal(t, "true", params.Metadata[model.MetadataIsRecurring])
	assert.Equal(t, "quarterly", params.Metadata[model.MetadataRecurringInterval])
}

func TestCreateDonationSession_Recurring_Year(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	input := validInput()
	input.IsRecurring = true
	input.RecurringInterval = IntervalYear

	_, err := b.builder.CreateDonationSession(newContext(), input)
	assert.Equal(t, nil, err)

	params := b.client.CreateCheckoutSessionCalls()[0].Params
	assert.Equal(t, "year", *params.LineItems[0].PriceData.Recurring.Interval)
	assert.Equal(t, int64(1), *params.LineItems[0].PriceData.Recurring.IntervalCount)
}

func TestCreateDonationSession_QRCode(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	input := validInput()
	input.WithQRCode = true

	session, err := b.builder.CreateDonationSession(newContext(), input)
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte("\x89PNG"), session.QRCode[:4])
}

func TestCreateDonationSession_Invalid_Input(t *testing.T) {
	table := []struct {
		name  string
		input func(input *DonationInput)
	}{
		{name: "zero amount", input: func(input *DonationInput) { input.Amount = decimal.Zero }},
		{name: "negative amount", input: func(input *DonationInput) { input.Amount = newDecimal("-1") }},
		{name: "too many decimals", input: func(input *DonationInput) { input.Amount = newDecimal("1.005") }},
		{name: "tip above 100", input: func(input *DonationInput) { input.TipPercentage = newDecimal("101") }},
		{name: "negative tip", input: func(input *DonationInput) { input.TipPercentage = newDecimal("-1") }},
		{name: "missing campaign", input: func(input *DonationInput) { input.CampaignID = 0 }},
		{name: "missing title", input: func(input *DonationInput) { input.CampaignTitle = " " }},
		{name: "missing ngo name", input: func(input *DonationInput) { input.NgoName = "" }},
		{name: "amount above column", input: func(input *DonationInput) { input.Amount = newDecimal("1000000000000") }},
		{name: "donor id too long", input: func(input *DonationInput) { input.DonorID = strings.Repeat("d", 65) }},
		{name: "bad interval", input: func(input *DonationInput) {
			input.IsRecurring = true
			input.RecurringInterval = "fortnight"
		}},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			b := newBuilderTest()

			input := validInput()
			e.input(&input)

			_, err := b.builder.CreateDonationSession(newContext(), input)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, 0, len(b.client.CreateCheckoutSessionCalls()))
		})
	}
}

func TestCreateDonationSession_Donor_ID_At_Column_Width(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	input := validInput()
	input.DonorID = strings.Repeat("d", 64)

	_, err := b.builder.CreateDonationSession(newContext(), input)
	assert.Equal(t, nil, err)

	calls := b.client.CreateCheckoutSessionCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, strings.Repeat("d", 64), calls[0].Params.Metadata[model.MetadataDonorID])
}

func TestCreateDonationSession_Gateway_Rejected(t *testing.T) {
	b := newBuilderTest()
	b.client.CreateCheckoutSessionFunc = func(
		ctx context.Context, params *stripe.CheckoutSessionParams,
	) (*stripe.CheckoutSession, error) {
		return nil, &gateway.RejectedError{Message: "Invalid currency"}
	}

	_, err := b.builder.CreateDonationSession(newContext(), validInput())
	assert.True(t, errors.Is(err, ErrGatewayRejected))
	assert.Equal(t, "payment gateway rejected the request: Invalid currency", err.Error())
}

func TestCreateDonationSession_Gateway_Unavailable(t *testing.T) {
	b := newBuilderTest()
	b.client.CreateCheckoutSessionFunc = func(
		ctx context.Context, params *stripe.CheckoutSessionParams,
	) (*stripe.CheckoutSession, error) {
		return nil, errors.New("dial timeout")
	}

	_, err := b.builder.CreateDonationSession(newContext(), validInput())
	assert.False(t, errors.Is(err, ErrGatewayRejected))
	assert.Equal(t, "create checkout session: dial timeout", err.Error())
}

func TestCreateCampaignFeeSession(t *testing.T) {
	b := newBuilderTest()
	b.stubCreate()

	session, err := b.builder.CreateCampaignFeeSession(newContext(), FeeInput{
		NgoUserID:     "ngo-user-01",
		CampaignTitle: "Clean Water",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, "cs_test_123", session.ID)

	params := b.client.CreateCheckoutSessionCalls()[0].Params
	assert.Equal(t, int64(2500), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, map[string]string{
		"type":          "campaign_creation_fee",
		"ngoUserId":     "ngo-user-01",
		"campaignTitle": "Clean Water",
	}, params.Metadata)
}

func TestVerifyCampaignFee(t *testing.T) {
	table := []struct {
		name     string
		status   stripe.CheckoutSessionPaymentStatus
		typ      string
		expected bool
	}{
		{name: "paid fee", status: stripe.CheckoutSessionPaymentStatusPaid, typ: model.MetadataTypeCampaignFee, expected: true},
		{name: "unpaid fee", status: stripe.CheckoutSessionPaymentStatusUnpaid, typ: model.MetadataTypeCampaignFee},
		{name: "paid donation", status: stripe.CheckoutSessionPaymentStatusPaid, typ: ""},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			b := newBuilderTest()
			b.client.GetCheckoutSessionFunc = func(
				ctx context.Context, sessionID string,
			) (*stripe.CheckoutSession, error) {
				return &stripe.CheckoutSession{
					ID:            sessionID,
					AmountTotal:   2500,
					PaymentStatus: e.status,
					Metadata: map[string]string{
						model.MetadataType:          e.typ,
						model.MetadataNgoUserID:     "ngo-user-01",
						model.MetadataCampaignTitle: "Clean Water",
					},
				}, nil
			}

			result, err := b.builder.VerifyCampaignFee(newContext(), "cs_fee_01")
			assert.Equal(t, nil, err)
			assert.Equal(t, e.expected, result.Paid)
			assert.Equal(t, "cs_fee_01", result.SessionID)
			assert.Equal(t, "ngo-user-01", result.NgoUserID)
			assert.Equal(t, "25", result.Amount.String())
		})
	}
}
