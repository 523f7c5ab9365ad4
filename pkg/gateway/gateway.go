package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

//go:generate moq -out gateway_mocks.go . Client

// Client is the subset of the payment gateway used for hosted checkout
type Client interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}

// RejectedError is returned when the gateway answered with an API error
type RejectedError struct {
	Code    string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("gateway rejected: %s", e.Message)
	}
	return fmt.Sprintf("gateway rejected: %s (%s)", e.Message, e.Code)
}

// IsRejected reports whether err is a gateway rejection, as opposed to a transport failure
func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}

type stripeClient struct {
	sessions *session.Client
}

// NewStripeClient ...
func NewStripeClient(secretKey string) Client {
	return &stripeClient{
		sessions: &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: secretKey,
		},
	}
}

// isRejection is true when the request itself was refused, auth, rate limit and server errors are not
func isRejection(e *stripe.Error) bool {
	switch e.HTTPStatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return false
	}
	switch e.Type {
	case stripe.ErrorTypeInvalidRequest, stripe.ErrorTypeCard:
		return true
	}
	return e.HTTPStatusCode >= 400 && e.HTTPStatusCode < 500
}

func convertError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && isRejection(stripeErr) {
		return &RejectedError{
			Code:    string(stripeErr.Code),
			Message: stripeErr.Msg,
		}
	}
	return err
}

// CreateCheckoutSession ...
func (c *stripeClient) CreateCheckoutSession(
	ctx context.Context, params *stripe.CheckoutSessionParams,
) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	s, err := c.sessions.New(params)
	if err != nil {
		return nil, convertError(err)
	}
	return s, nil
}

// GetCheckoutSession ...
func (c *stripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := c.sessions.Get(sessionID, params)
	if err != nil {
		return nil, convertError(err)
	}
	return s, nil
}
