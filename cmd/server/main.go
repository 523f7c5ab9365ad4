package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/QuangTung97/donation-ledger/pkg/archive"
	"github.com/QuangTung97/donation-ledger/pkg/auth"
	"github.com/QuangTung97/donation-ledger/pkg/cacheclient"
	"github.com/QuangTung97/donation-ledger/pkg/gateway"
	"github.com/QuangTung97/donation-ledger/pkg/grpclib"
	"github.com/QuangTung97/donation-ledger/pkg/livefeed"
	"github.com/QuangTung97/donation-ledger/pkg/memtable"
	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/repository"
	"github.com/QuangTung97/donation-ledger/service/allocation"
	"github.com/QuangTung97/donation-ledger/service/checkout"
	"github.com/QuangTung97/donation-ledger/service/httpapi"
	"github.com/QuangTung97/donation-ledger/service/ledger"
	"github.com/QuangTung97/donation-ledger/service/progress"
	"github.com/QuangTung97/donation-ledger/service/webhook"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	_ "github.com/go-sql-driver/mysql"
)

const serviceName = "donation-ledger"

type application struct {
	conf   config.Config
	logger *zap.Logger

	tracerProvider *tracesdk.TracerProvider

	recorder ledger.IRecorder
	progress *progress.Service
	hub      *livefeed.Hub

	httpHandler http.Handler
	closers     []func()
}

func newApplication(conf config.Config, logger *zap.Logger, tp *tracesdk.TracerProvider) *application {
	db := conf.MySQL.MustConnect(logger)

	provider := repository.NewProvider(db)
	campaignRepo := repository.NewCampaign()
	itemRepo := repository.NewCampaignItem()
	donationRepo := repository.NewDonation()

	app := &application{
		conf:           conf,
		logger:         logger,
		tracerProvider: tp,
	}
	app.closers = append(app.closers, func() { _ = db.Close() })

	var remote cacheclient.CacheClient
	if conf.Memcache.Enabled() {
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
		app.closers = append(app.closers, func() { _ = client.Close() })
		remote = client
	}

	app.progress = progress.NewService(
		provider, campaignRepo, itemRepo,
		memtable.New(conf.Cache.LocalSizeBytes), remote,
		progress.WithLocalTTL(conf.Cache.LocalTTLSeconds),
		progress.WithRemoteTTL(conf.Cache.RemoteTTL),
	)

	app.hub = livefeed.NewHub(logger)
	app.closers = append(app.closers, app.hub.Close)

	recorder := ledger.NewRecorder(provider, campaignRepo, itemRepo, donationRepo,
		ledger.WithNotifier(app.hub),
		ledger.WithInvalidator(app.progress),
	)
	app.recorder = ledger.NewIRecorderWrapper(recorder, tp.Tracer("ledger"), "ledger::")

	validator := allocation.NewIValidatorWrapper(
		allocation.NewValidator(provider, campaignRepo, itemRepo, app.progress),
		tp.Tracer("allocation"), "allocation::",
	)

	eventArchive, err := archive.New(context.Background(), conf.Archive)
	if err != nil {
		panic(err)
	}

	receiver := webhook.NewReceiver(conf.Stripe.WebhookSecret, app.recorder, eventArchive,
		webhook.WithArchiveTimeout(time.Duration(conf.Archive.TimeoutMillis)*time.Millisecond),
	)
	builder := checkout.NewBuilder(gateway.NewStripeClient(conf.Stripe.SecretKey), conf.Stripe)

	server := httpapi.NewServer(
		logger, builder, receiver, validator, app.progress,
		auth.NewVerifier(conf.Auth), app.hub,
		httpapi.WithTracerProvider(tp),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", server.Router())
	app.httpHandler = mux

	return app
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func initTracing(conf config.Config) (*tracesdk.TracerProvider, func()) {
	tp, shutdown := otellib.InitOtel(serviceName, conf.Env, conf.Jaeger)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp, shutdown
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	if !conf.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, shutdown := initTracing(conf)
	defer shutdown()

	app := newApplication(conf, logger, tp)
	defer app.close()

	grpcServer, healthServer := grpclib.NewServer(logger, tp)

	startHTTPAndGRPCServers(conf, logger, app.httpHandler, grpcServer, healthServer)
}

func startHTTPAndGRPCServers(
	conf config.Config, logger *zap.Logger, handler http.Handler,
	grpcServer *grpc.Server, healthServer *health.Server,
) {
	logger.Info("Listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func reconcileCommand() *cobra.Command {
	var campaignID int64

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "recompute the aggregates of a campaign from its completed donations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if campaignID <= 0 {
				return fmt.Errorf("--campaign is required")
			}

			conf := config.Load()
			logger := config.NewLogger(conf.Log)
			defer func() { _ = logger.Sync() }()

			tp, shutdown := initTracing(conf)
			defer shutdown()

			app := newApplication(conf, logger, tp)
			defer app.close()

			ctx := otellib.ToContext(context.Background(), logger)
			result, err := app.recorder.Reconcile(ctx, campaignID)
			if err != nil {
				return err
			}

			logger.Info("Campaign reconciled",
				zap.Int64("campaign.id", result.CampaignID),
				zap.String("raised.before", result.RaisedBefore.String()),
				zap.String("raised.after", result.RaisedAfter.String()),
				zap.Int64("donors.before", result.DonorsBefore),
				zap.Int64("donors.after", result.DonorsAfter),
				zap.Int64s("items.changed", result.ItemsChanged),
			)
			return nil
		},
	}
	cmd.Flags().Int64Var(&campaignID, "campaign", 0, "campaign id")
	return cmd
}

func tokenCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "issue an operator bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			token, err := auth.NewIssuer(conf.Auth).Issue(userID)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "NGO user id")
	return cmd
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		reconcileCommand(),
		tokenCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
