package httpapi

import (
	"errors"
	"net/http"

	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/service/allocation"
	"github.com/QuangTung97/donation-ledger/service/checkout"
	"github.com/QuangTung97/donation-ledger/service/progress"
	"github.com/QuangTung97/donation-ledger/service/webhook"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Error string `json:"error"`
}

type goalExceededResponse struct {
	Error             string          `json:"error"`
	CurrentOtherItems decimal.Decimal `json:"current_other_items"`
	NewTotal          decimal.Decimal `json:"new_total"`
	CampaignGoal      decimal.Decimal `json:"campaign_goal"`
	MaxAllowed        decimal.Decimal `json:"max_allowed"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// writeError maps service errors to status codes, unknown errors never leak their message
func writeError(c *gin.Context, err error) {
	var goalErr *allocation.GoalExceededError
	if errors.As(err, &goalErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, goalExceededResponse{
			Error:             "would exceed campaign goal",
			CurrentOtherItems: goalErr.CurrentOtherItems,
			NewTotal:          goalErr.NewTotal,
			CampaignGoal:      goalErr.CampaignGoal,
			MaxAllowed:        goalErr.MaxAllowed,
		})
		return
	}

	switch {
	case errors.Is(err, webhook.ErrInvalidSignature):
		abortWithError(c, http.StatusBadRequest, "invalid signature")

	case errors.Is(err, allocation.ErrTargetBelowCurrent):
		abortWithError(c, http.StatusBadRequest, "target below current amount")

	case errors.Is(err, webhook.ErrMalformedEvent),
		errors.Is(err, allocation.ErrInvalidInput),
		errors.Is(err, checkout.ErrInvalidInput),
		errors.Is(err, checkout.ErrGatewayRejected):
		abortWithError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, allocation.ErrForbidden):
		abortWithError(c, http.StatusForbidden, "forbidden")

	case errors.Is(err, allocation.ErrNotFound), errors.Is(err, progress.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())

	default:
		otellib.WrapError(c.Request.Context(), err)
		abortWithError(c, http.StatusInternalServerError, "internal error")
	}
}
