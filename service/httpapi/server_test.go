package httpapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/service/allocation"
	"github.com/QuangTung97/donation-ledger/service/checkout"
	"github.com/QuangTung97/donation-ledger/service/progress"
	"github.com/QuangTung97/donation-ledger/service/webhook"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type serverTest struct {
	builder   *CheckoutBuilderMock
	receiver  *WebhookReceiverMock
	validator *allocation.IValidatorMock
	progress  *progress.IServiceMock
	verifier  *TokenVerifierMock
	feed      *FeedServerMock

	router *gin.Engine
}

func newServerTest(options ...Option) *serverTest {
	gin.SetMode(gin.TestMode)

	s := &serverTest{
		builder:   &CheckoutBuilderMock{},
		receiver:  &WebhookReceiverMock{},
		validator: &allocation.IValidatorMock{},
		progress:  &progress.IServiceMock{},
		verifier: &TokenVerifierMock{
			VerifyFunc: func(tokenString string) (string, error) {
				if tokenString == "good-token" {
					return "ngo-1", nil
				}
				return "", errors.New("bad token")
			},
		},
		feed: &FeedServerMock{},
	}

	server := NewServer(zap.NewNop(), s.builder, s.receiver, s.validator, s.progress, s.verifier, s.feed, options...)
	s.router = server.Router()
	return s
}

func (s *serverTest) do(method string, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer good-token"}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

//--------------------------------
// Webhook
//--------------------------------

func TestWebhook_Results(t *testing.T) {
	table := []struct {
		name   string
		result webhook.Result
		err    error
		status int
		body   map[string]interface{}
	}{
		{
			name:   "recorded",
			result: webhook.ResultRecorded,
			status: http.StatusOK,
			body:   map[string]interface{}{"received": true, "result": "recorded"},
		},
		{
			name:   "duplicate",
			result: webhook.ResultDuplicate,
			status: http.StatusOK,
			body:   map[string]interface{}{"received": true, "result": "duplicate"},
		},
		{
			name:   "ignored",
			result: webhook.ResultIgnored,
			status: http.StatusOK,
			body:   map[string]interface{}{"received": true, "result": "ignored"},
		},
		{
			name:   "invalid-signature",
			err:    fmt.Errorf("%w: no valid signature", webhook.ErrInvalidSignature),
			status: http.StatusBadRequest,
			body:   map[string]interface{}{"error": "invalid signature"},
		},
		{
			name:   "malformed",
			err:    fmt.Errorf("%w: missing campaignId", webhook.ErrMalformedEvent),
			status: http.StatusBadRequest,
			body:   map[string]interface{}{"error": "malformed event: missing campaignId"},
		},
		{
			name:   "storage-failure",
			err:    errors.New("lock campaign: driver: bad connection"),
			status: http.StatusInternalServerError,
			body:   map[string]interface{}{"error": "internal error"},
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServerTest()
			s.receiver.HandleFunc = func(ctx context.Context, payload []byte, signatureHeader string) (webhook.Result, error) {
				return e.result, e.err
			}

			w := s.do(http.MethodPost, "/webhooks/stripe", `{"id":"evt_1"}`, map[string]string{
				"Stripe-Signature": "t=1,v1=abc",
			})

			assert.Equal(t, e.status, w.Code)
			assert.Equal(t, e.body, decodeBody(t, w))

			calls := s.receiver.HandleCalls()
			assert.Equal(t, 1, len(calls))
			assert.Equal(t, `{"id":"evt_1"}`, string(calls[0].Payload))
			assert.Equal(t, "t=1,v1=abc", calls[0].SignatureHeader)
		})
	}
}

func TestWebhook_PayloadTooLarge(t *testing.T) {
	s := newServerTest(WithMaxWebhookBytes(16))

	w := s.do(http.MethodPost, "/webhooks/stripe", strings.Repeat("x", 100), nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, len(s.receiver.HandleCalls()))
}

//--------------------------------
// Checkout
//--------------------------------

func TestCreateDonationSession(t *testing.T) {
	s := newServerTest()
	s.builder.CreateDonationSessionFunc = func(ctx context.Context, input checkout.DonationInput) (checkout.Session, error) {
		return checkout.Session{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil
	}

	w := s.do(http.MethodPost, "/checkout/donations", `{
		"campaign_id": 11,
		"item_id": 21,
		"amount": 110,
		"tip_percentage": "10",
		"campaign_title": "Clean Water",
		"ngo_name": "Water First"
	}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{
		"session_id": "cs_test_123",
		"url":        "https://checkout.stripe.com/c/pay/cs_test_123",
	}, decodeBody(t, w))

	calls := s.builder.CreateDonationSessionCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(11), calls[0].Input.CampaignID)
	assert.Equal(t, int64(21), calls[0].Input.ItemID)
	assert.Equal(t, "110", calls[0].Input.Amount.String())
	assert.Equal(t, "10", calls[0].Input.TipPercentage.String())
}

func TestCreateDonationSession_Errors(t *testing.T) {
	table := []struct {
		name   string
		body   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "bad-json",
			body:   `{"campaign_id":`,
			status: http.StatusBadRequest,
			msg:    "invalid request body",
		},
		{
			name:   "invalid-input",
			body:   `{"campaign_id": 11}`,
			err:    fmt.Errorf("%w: amount must be positive", checkout.ErrInvalidInput),
			status: http.StatusBadRequest,
			msg:    "invalid checkout input: amount must be positive",
		},
		{
			name:   "gateway-rejected",
			body:   `{"campaign_id": 11}`,
			err:    fmt.Errorf("%w: Invalid currency", checkout.ErrGatewayRejected),
			status: http.StatusBadRequest,
			msg:    "payment gateway rejected the request: Invalid currency",
		},
		{
			name:   "gateway-down",
			body:   `{"campaign_id": 11}`,
			err:    errors.New("create checkout session: timeout"),
			status: http.StatusInternalServerError,
			msg:    "internal error",
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServerTest()
			s.builder.CreateDonationSessionFunc = func(ctx context.Context, input checkout.DonationInput) (checkout.Session, error) {
				return checkout.Session{}, e.err
			}

			w := s.do(http.MethodPost, "/checkout/donations", e.body, nil)
			assert.Equal(t, e.status, w.Code)
			assert.Equal(t, e.msg, decodeBody(t, w)["error"])
		})
	}
}

func TestCampaignFee(t *testing.T) {
	s := newServerTest()
	s.builder.CreateCampaignFeeSessionFunc = func(ctx context.Context, input checkout.FeeInput) (checkout.Session, error) {
		return checkout.Session{ID: "cs_fee_1", URL: "https://pay/cs_fee_1"}, nil
	}
	s.builder.VerifyCampaignFeeFunc = func(ctx context.Context, sessionID string) (checkout.FeeVerification, error) {
		return checkout.FeeVerification{
			SessionID:     sessionID,
			Paid:          true,
			NgoUserID:     "ngo-1",
			CampaignTitle: "Clean Water",
			Amount:        decimal.NewFromInt(50),
		}, nil
	}

	w := s.do(http.MethodPost, "/checkout/campaign-fee",
		`{"ngo_user_id": "ngo-1", "campaign_title": "Clean Water"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_fee_1", decodeBody(t, w)["session_id"])
	assert.Equal(t, "ngo-1", s.builder.CreateCampaignFeeSessionCalls()[0].Input.NgoUserID)

	w = s.do(http.MethodGet, "/checkout/campaign-fee/cs_fee_1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{
		"session_id":     "cs_fee_1",
		"paid":           true,
		"ngo_user_id":    "ngo-1",
		"campaign_title": "Clean Water",
		"amount":         "50",
	}, decodeBody(t, w))
	assert.Equal(t, "cs_fee_1", s.builder.VerifyCampaignFeeCalls()[0].SessionID)
}

//--------------------------------
// Items
//--------------------------------

func TestUpdateItem_Auth(t *testing.T) {
	s := newServerTest()

	w := s.do(http.MethodPatch, "/items/21", `{"target_amount": 400}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing bearer token", decodeBody(t, w)["error"])

	w = s.do(http.MethodPatch, "/items/21", `{"target_amount": 400}`, map[string]string{
		"Authorization": "Bearer forged",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", decodeBody(t, w)["error"])

	assert.Equal(t, 0, len(s.validator.UpdateItemCalls()))
}

func TestUpdateItem_OK(t *testing.T) {
	s := newServerTest()
	s.validator.UpdateItemFunc = func(
		ctx context.Context, callerUserID string, itemID int64, raw map[string]interface{},
	) (model.CampaignItem, error) {
		return model.CampaignItem{ID: itemID, CampaignID: 11, TargetAmount: decimal.NewFromInt(300)}, nil
	}

	w := s.do(http.MethodPatch, "/items/21", `{"target_amount": 300.10, "owner": "x"}`, bearer())
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(21), body["id"])
	assert.Equal(t, "300", body["target_amount"])

	calls := s.validator.UpdateItemCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "ngo-1", calls[0].CallerUserID)
	assert.Equal(t, int64(21), calls[0].ItemID)
	assert.Equal(t, map[string]interface{}{
		"target_amount": json.Number("300.10"),
		"owner":         "x",
	}, calls[0].Raw)
}

func TestUpdateItem_Errors(t *testing.T) {
	table := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
		resp   map[string]interface{}
	}{
		{
			name:   "goal-exceeded",
			path:   "/items/21",
			body:   `{"target_amount": 400}`,
			status: http.StatusBadRequest,
			err: fmt.Errorf("wrapped: %w", &allocation.GoalExceededError{
				CurrentOtherItems: decimal.NewFromInt(700),
				NewTotal:          decimal.NewFromInt(1100),
				CampaignGoal:      decimal.NewFromInt(1000),
				MaxAllowed:        decimal.NewFromInt(300),
			}),
			resp: map[string]interface{}{
				"error":               "would exceed campaign goal",
				"current_other_items": "700",
				"new_total":           "1100",
				"campaign_goal":       "1000",
				"max_allowed":         "300",
			},
		},
		{
			name:   "below-current",
			path:   "/items/21",
			body:   `{"target_amount": 200}`,
			err:    fmt.Errorf("%w: target 200, current 250", allocation.ErrTargetBelowCurrent),
			status: http.StatusBadRequest,
			resp:   map[string]interface{}{"error": "target below current amount"},
		},
		{
			name:   "forbidden",
			path:   "/items/21",
			body:   `{"name": "x"}`,
			err:    allocation.ErrForbidden,
			status: http.StatusForbidden,
			resp:   map[string]interface{}{"error": "forbidden"},
		},
		{
			name:   "not-found",
			path:   "/items/21",
			body:   `{"name": "x"}`,
			err:    fmt.Errorf("%w: item 21", allocation.ErrNotFound),
			status: http.StatusNotFound,
			resp:   map[string]interface{}{"error": "not found: item 21"},
		},
		{
			name:   "invalid-input",
			path:   "/items/21",
			body:   `{"quantity": "abc"}`,
			err:    fmt.Errorf("%w: invalid quantity", allocation.ErrInvalidInput),
			status: http.StatusBadRequest,
			resp:   map[string]interface{}{"error": "invalid input: invalid quantity"},
		},
		{
			name:   "invalid-id",
			path:   "/items/abc",
			body:   `{"name": "x"}`,
			status: http.StatusBadRequest,
			resp:   map[string]interface{}{"error": "invalid item_id"},
		},
		{
			name:   "not-an-object",
			path:   "/items/21",
			body:   `[1, 2]`,
			status: http.StatusBadRequest,
			resp:   map[string]interface{}{"error": "request body must be a JSON object"},
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServerTest()
			s.validator.UpdateItemFunc = func(
				ctx context.Context, callerUserID string, itemID int64, raw map[string]interface{},
			) (model.CampaignItem, error) {
				return model.CampaignItem{}, e.err
			}

			w := s.do(http.MethodPatch, e.path, e.body, bearer())
			assert.Equal(t, e.status, w.Code)
			assert.Equal(t, e.resp, decodeBody(t, w))
		})
	}
}

func TestCreateItem(t *testing.T) {
	s := newServerTest()
	s.validator.CreateItemFunc = func(
		ctx context.Context, callerUserID string, campaignID int64, raw map[string]interface{},
	) (model.CampaignItem, error) {
		return model.CampaignItem{ID: 31, CampaignID: campaignID, Name: "Pump"}, nil
	}

	w := s.do(http.MethodPost, "/campaigns/11/items", `{"name": "Pump", "target_amount": "250"}`, bearer())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(31), decodeBody(t, w)["id"])

	calls := s.validator.CreateItemCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "ngo-1", calls[0].CallerUserID)
	assert.Equal(t, int64(11), calls[0].CampaignID)
}

//--------------------------------
// Progress and feed
//--------------------------------

func TestGetProgress_Gzip(t *testing.T) {
	s := newServerTest()
	s.progress.GetFunc = func(ctx context.Context, campaignID int64) (model.CampaignProgress, error) {
		return model.CampaignProgress{
			CampaignID: campaignID,
			Goal:       decimal.NewFromInt(1000),
			Raised:     decimal.NewFromInt(250),
			Percent:    decimal.NewFromInt(25),
			Donors:     3,
			Items:      []model.ItemProgress{},
		}, nil
	}

	w := s.do(http.MethodGet, "/campaigns/11/progress", "", map[string]string{
		"Accept-Encoding": "gzip",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	assert.Equal(t, nil, err)
	data, err := io.ReadAll(reader)
	assert.Equal(t, nil, err)

	var body map[string]interface{}
	assert.Equal(t, nil, json.Unmarshal(data, &body))
	assert.Equal(t, float64(11), body["campaign_id"])
	assert.Equal(t, "250", body["raised"])
	assert.Equal(t, "25", body["percent"])
}

func TestGetProgress_NotFound(t *testing.T) {
	s := newServerTest()
	s.progress.GetFunc = func(ctx context.Context, campaignID int64) (model.CampaignProgress, error) {
		return model.CampaignProgress{}, fmt.Errorf("%w: 99", progress.ErrNotFound)
	}

	w := s.do(http.MethodGet, "/campaigns/99/progress", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "campaign not found: 99", decodeBody(t, w)["error"])
}

func TestFeed(t *testing.T) {
	s := newServerTest()
	s.feed.ServeWSFunc = func(w http.ResponseWriter, r *http.Request, campaignID int64) {
		_, _ = w.Write([]byte("streamed"))
	}

	w := s.do(http.MethodGet, "/campaigns/11/feed", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "streamed", w.Body.String())

	calls := s.feed.ServeWSCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(11), calls[0].CampaignID)
}
