package httpapi

import (
	"context"
	"net/http"

	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/service/allocation"
	"github.com/QuangTung97/donation-ledger/service/checkout"
	"github.com/QuangTung97/donation-ledger/service/progress"
	"github.com/QuangTung97/donation-ledger/service/webhook"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate moq -out httpapi_mocks.go . CheckoutBuilder WebhookReceiver TokenVerifier FeedServer

// CheckoutBuilder ...
type CheckoutBuilder interface {
	CreateDonationSession(ctx context.Context, input checkout.DonationInput) (checkout.Session, error)
	CreateCampaignFeeSession(ctx context.Context, input checkout.FeeInput) (checkout.Session, error)
	VerifyCampaignFee(ctx context.Context, sessionID string) (checkout.FeeVerification, error)
}

// WebhookReceiver ...
type WebhookReceiver interface {
	Handle(ctx context.Context, payload []byte, signatureHeader string) (webhook.Result, error)
}

// TokenVerifier returns the user id of a bearer token
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// FeedServer streams live donation events of a campaign
type FeedServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, campaignID int64)
}

var _ CheckoutBuilder = &checkout.Builder{}
var _ WebhookReceiver = &webhook.Receiver{}

// Server exposes the ledger over HTTP
type Server struct {
	logger *zap.Logger

	builder   CheckoutBuilder
	receiver  WebhookReceiver
	validator allocation.IValidator
	progress  progress.IService
	verifier  TokenVerifier
	feed      FeedServer

	opts serverOptions
}

// NewServer ...
func NewServer(
	logger *zap.Logger,
	builder CheckoutBuilder,
	receiver WebhookReceiver,
	validator allocation.IValidator,
	progressService progress.IService,
	verifier TokenVerifier,
	feed FeedServer,
	options ...Option,
) *Server {
	return &Server{
		logger: logger,

		builder:   builder,
		receiver:  receiver,
		validator: validator,
		progress:  progressService,
		verifier:  verifier,
		feed:      feed,

		opts: newServerOptions(options...),
	}
}

// Router builds the gin engine with every route registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otellib.GinMiddleware(s.logger, s.opts.tracerProvider, propagation.TraceContext{}))

	router.POST("/webhooks/stripe", s.handleWebhook)

	checkoutGroup := router.Group("/checkout")
	{
		checkoutGroup.POST("/donations", s.handleCreateDonationSession)
		checkoutGroup.POST("/campaign-fee", s.handleCreateCampaignFeeSession)
		checkoutGroup.GET("/campaign-fee/:session_id", s.handleVerifyCampaignFee)
	}

	operator := router.Group("/", RequireOperator(s.verifier))
	{
		operator.PATCH("/items/:item_id", s.handleUpdateItem)
		operator.POST("/campaigns/:campaign_id/items", s.handleCreateItem)
	}

	router.GET("/campaigns/:campaign_id/progress", gzip.Gzip(gzip.DefaultCompression), s.handleGetProgress)
	router.GET("/campaigns/:campaign_id/feed", s.handleFeed)

	return router
}

type serverOptions struct {
	maxWebhookBytes int64
	tracerProvider  trace.TracerProvider
}

// Option ...
type Option func(opts *serverOptions)

func newServerOptions(options ...Option) serverOptions {
	opts := serverOptions{
		maxWebhookBytes: 64 * 1024,
		tracerProvider:  trace.NewNoopTracerProvider(),
	}
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// WithMaxWebhookBytes limits the size of a webhook payload
func WithMaxWebhookBytes(n int64) Option {
	return func(opts *serverOptions) {
		opts.maxWebhookBytes = n
	}
}

// WithTracerProvider ...
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(opts *serverOptions) {
		opts.tracerProvider = tp
	}
}
