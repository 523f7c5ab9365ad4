package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/QuangTung97/donation-ledger/pkg/archive"
	"github.com/QuangTung97/donation-ledger/service/ledger"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
	"github.com/stretchr/testify/assert"
)

const testSecret = "whsec_test_secret"

func newContext() context.Context {
	return context.Background()
}

type receiverTest struct {
	recorder *ledger.IRecorderMock
	archive  *archive.ArchiveMock
	receiver *Receiver
}

func newReceiverTest(options ...ReceiverOption) *receiverTest {
	r := &receiverTest{
		recorder: &ledger.IRecorderMock{
			RecordFunc: func(ctx context.Context, checkout ledger.CheckoutCompleted) (ledger.RecordResult, error) {
				return ledger.RecordResult{}, nil
			},
		},
		archive: &archive.ArchiveMock{
			StoreFunc: func(ctx context.Context, eventID string, receivedAt time.Time, payload []byte) error {
				return nil
			},
		},
	}
	r.receiver = NewReceiver(testSecret, r.recorder, r.archive, options...)
	r.receiver.now = func() time.Time {
		return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	}
	return r
}

func eventPayload(eventType string, metadata map[string]string) []byte {
	event := map[string]interface{}{
		"id":          "evt_123",
		"object":      "event",
		"api_version": "2020-08-27",
		"type":        eventType,
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":             "cs_test_123",
				"object":         "checkout.session",
				"amount_total":   11000,
				"currency":       "usd",
				"customer_email": "alice@example.com",
				"customer_details": map[string]interface{}{
					"email": "alice.details@example.com",
					"name":  "Alice",
				},
				"payment_status": "paid",
				"metadata":       metadata,
			},
		},
	}
	data, err := json.Marshal(event)
	if err != nil {
		panic(err)
	}
	return data
}

func donationMetadata() map[string]string {
	return map[string]string{
		"campaignId":        "11",
		"itemId":            "21",
		"donorId":           "user-01",
		"tipPercentage":     "10",
		"isRecurring":       "false",
		"recurringInterval": "",
		"campaignTitle":     "Clean Water",
		"ngoName":           "Water NGO",
	}
}

func sign(payload []byte) string {
	signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func TestHandle_Recorded(t *testing.T) {
	r := newReceiverTest()

	payload := eventPayload("checkout.session.completed", donationMetadata())
	result, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, nil, err)
	assert.Equal(t, ResultRecorded, result)

	calls := r.recorder.RecordCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "cs_test_123", calls[0].Checkout.SessionID)
	assert.Equal(t, "usd", calls[0].Checkout.Currency)
	assert.Equal(t, int64(11), calls[0].Checkout.Metadata.CampaignID)
	assert.Equal(t, "user-01", calls[0].Checkout.Metadata.DonorID)
	assert.Equal(t, "10", calls[0].Checkout.Metadata.TipPercentage.Decimal.String())
	assert.Equal(t, int64(21), calls[0].Checkout.Metadata.ItemID)
	assert.Equal(t, "alice.details@example.com", calls[0].Checkout.CustomerEmail)
	assert.Equal(t, "Alice", calls[0].Checkout.CustomerName)
	assert.Equal(t, int64(11000), calls[0].Checkout.AmountTotal)

	archived := r.archive.StoreCalls()
	assert.Equal(t, 1, len(archived))
	assert.Equal(t, "evt_123", archived[0].EventID)
	assert.Equal(t, payload, archived[0].Payload)
}

func TestHandle_Duplicate(t *testing.T) {
	r := newReceiverTest()
	r.recorder.RecordFunc = func(ctx context.Context, checkout ledger.CheckoutCompleted) (ledger.RecordResult, error) {
		return ledger.RecordResult{Duplicate: true}, nil
	}

	payload := eventPayload("checkout.session.completed", donationMetadata())
	result, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, nil, err)
	assert.Equal(t, ResultDuplicate, result)
}

func TestHandle_Invalid_Signature(t *testing.T) {
	r := newReceiverTest()

	payload := eventPayload("checkout.session.completed", donationMetadata())

	signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   payload,
		Secret:    "whsec_other_secret",
		Timestamp: time.Now(),
	})

	for _, header := range []string{"", "t=123", signed.Header} {
		_, err := r.receiver.Handle(newContext(), payload, header)
		assert.True(t, errors.Is(err, ErrInvalidSignature), header)
	}

	assert.Equal(t, 0, len(r.recorder.RecordCalls()))
	assert.Equal(t, 0, len(r.archive.StoreCalls()))
}

func TestHandle_Tampered_Payload(t *testing.T) {
	r := newReceiverTest()

	payload := eventPayload("checkout.session.completed", donationMetadata())
	header := sign(payload)

	tampered := eventPayload("checkout.session.completed", map[string]string{
		"campaignId":    "12",
		"campaignTitle": "Other",
		"ngoName":       "Other NGO",
	})

	_, err := r.receiver.Handle(newContext(), tampered, header)
	assert.True(t, errors.Is(err, ErrInvalidSignature))
	assert.Equal(t, 0, len(r.recorder.RecordCalls()))
}

func TestHandle_Other_Event_Ignored(t *testing.T) {
	r := newReceiverTest()

	payload := eventPayload("checkout.session.expired", donationMetadata())
	result, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, nil, err)
	assert.Equal(t, ResultIgnored, result)
	assert.Equal(t, 0, len(r.recorder.RecordCalls()))
	assert.Equal(t, 1, len(r.archive.StoreCalls()))
}

func TestHandle_Campaign_Fee_Ignored(t *testing.T) {
	r := newReceiverTest()

	payload := eventPayload("checkout.session.completed", map[string]string{
		"type":          "campaign_creation_fee",
		"ngoUserId":     "ngo-user-01",
		"campaignTitle": "Clean Water",
	})
	result, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, nil, err)
	assert.Equal(t, ResultIgnored, result)
	assert.Equal(t, 0, len(r.recorder.RecordCalls()))
}

func TestHandle_Missing_Metadata(t *testing.T) {
	r := newReceiverTest()

	metadata := donationMetadata()
	delete(metadata, "campaignId")

	payload := eventPayload("checkout.session.completed", metadata)
	_, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.True(t, errors.Is(err, ErrMalformedEvent))
	assert.Equal(t, 0, len(r.recorder.RecordCalls()))
}

func TestHandle_Recorder_Error_Not_Acknowledged(t *testing.T) {
	r := newReceiverTest()
	r.recorder.RecordFunc = func(ctx context.Context, checkout ledger.CheckoutCompleted) (ledger.RecordResult, error) {
		return ledger.RecordResult{}, errors.New("connection refused")
	}

	payload := eventPayload("checkout.session.completed", donationMetadata())
	_, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, errors.New("connection refused"), err)
	assert.False(t, errors.Is(err, ErrMalformedEvent))
}

func TestHandle_Archive_Failure_Still_Recorded(t *testing.T) {
	r := newReceiverTest()
	r.archive.StoreFunc = func(ctx context.Context, eventID string, receivedAt time.Time, payload []byte) error {
		return errors.New("access denied")
	}

	payload := eventPayload("checkout.session.completed", donationMetadata())
	result, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, nil, err)
	assert.Equal(t, ResultRecorded, result)
}

func TestHandle_Donor_ID_Too_Long_Malformed(t *testing.T) {
	r := newReceiverTest()

	metadata := donationMetadata()
	metadata["donorId"] = strings.Repeat("d", 100)

	payload := eventPayload("checkout.session.completed", metadata)
	_, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.True(t, errors.Is(err, ErrMalformedEvent))
	assert.Equal(t, 0, len(r.recorder.RecordCalls()))
}

func TestHandle_Slow_Archive_Bounded(t *testing.T) {
	r := newReceiverTest(WithArchiveTimeout(20 * time.Millisecond))

	var deadlineSet bool
	r.archive.StoreFunc = func(ctx context.Context, eventID string, receivedAt time.Time, payload []byte) error {
		_, deadlineSet = ctx.Deadline()
		<-ctx.Done()
		return ctx.Err()
	}

	payload := eventPayload("checkout.session.completed", donationMetadata())

	start := time.Now()
	result, err := r.receiver.Handle(newContext(), payload, sign(payload))
	assert.Equal(t, nil, err)
	assert.Equal(t, ResultRecorded, result)
	assert.True(t, deadlineSet)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, len(r.recorder.RecordCalls()))
}

func TestNewReceiver_Default_Archive_Timeout(t *testing.T) {
	r := newReceiverTest()
	assert.Equal(t, 2*time.Second, r.receiver.archiveTimeout)
}
