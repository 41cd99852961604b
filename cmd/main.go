package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-checkout/docs"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/app"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/events"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cardgateway"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/lock"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/zarinpal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// @title           Storefront Checkout API
// @version         1.0
// @description     Payment and order finalization for the storefront
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	defer redisClient.Close()

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRU[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	locker := lock.NewRedisLocker(redisClient, "checkout:")
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	regional := zarinpal.New(zarinpal.Config{
		MerchantID:  conf.Zarinpal.MerchantID,
		Sandbox:     conf.Zarinpal.Sandbox,
		AccessToken: conf.Zarinpal.AccessToken,
		APIBaseURL:  conf.Zarinpal.APIBaseURL,
		Timeout:     conf.Zarinpal.Timeout,
	})

	finalizer := service.NewOrderFinalizer(logger, txManager, storeRepo)
	storeService := service.NewStoreService(logger, storeRepo)
	orderService := service.NewOrderService(logger, storeRepo, orderCache)
	paymentService := service.NewPaymentService(logger, service.PaymentConfig{
		CallbackURL:   conf.Zarinpal.CallbackURL,
		Currency:      conf.Zarinpal.Currency,
		USDToRial:     decimal.RequireFromString(conf.Zarinpal.USDToRial),
		MinimumAmount: conf.Zarinpal.MinimumAmount,
		PendingTTL:    conf.Pending.TTL,
		VerifyLockTTL: conf.Redis.VerifyLockTTL,
	}, regional, storeRepo, storeRepo, locker, finalizer)

	var cardGateway service.CardGateway
	if conf.StripeEnabled() {
		cardGateway = cardgateway.New(conf.Stripe.SecretKey, nil)
	} else {
		logger.Warn("card gateway disabled: STRIPE_SECRET_KEY is not set")
	}
	cardService := service.NewCardService(logger, conf.Stripe.Currency, cardGateway, storeRepo, storeService, finalizer)

	relay := service.NewOutboxRelay(logger, storeRepo, publisher, conf.Outbox.BatchSize)

	auth := middleware.NewAuth(conf.Auth.JWTSecret)
	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	paymentHandler := handler.NewPaymentHandler(logger, paymentService, conf.Http.PublicURL)
	cardHandler := handler.NewCardHandler(logger, cardService, handler.CardConfig{
		Enabled:        conf.StripeEnabled(),
		PublishableKey: conf.Stripe.PublishableKey,
		Currency:       conf.Stripe.Currency,
	})
	storeHandler := handler.NewStoreHandler(logger, orderService, storeService, auth)

	app := app.New(logger, conf, auth)

	app.SetHTTPHandlers(paymentHandler, cardHandler, storeHandler)
	app.SetStarters(orderCache)
	app.SetWorkers(
		service.NewPeriodic(logger, "outbox-relay", conf.Outbox.PollInterval, relay.Relay),
		service.NewPeriodic(logger, "pending-sweeper", conf.Pending.SweepInterval, paymentService.ExpirePendingPayments),
	)
	app.SetClosers(publisher)
	app.SetPingers(storeRepo, locker)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case <-app.Done():
		logger.Error("application exited unexpectedly")
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
