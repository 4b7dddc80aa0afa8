//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	geocodeGateway "helpflow/internal/gateway/geocode"
	paymentGateway "helpflow/internal/gateway/payment"
	order_cancel_post "helpflow/internal/handlers/rest/order_cancel_post"
	order_claim_post "helpflow/internal/handlers/rest/order_claim_post"
	order_deliver_post "helpflow/internal/handlers/rest/order_deliver_post"
	order_get "helpflow/internal/handlers/rest/order_get"
	order_post "helpflow/internal/handlers/rest/order_post"
	order_publish_post "helpflow/internal/handlers/rest/order_publish_post"
	order_quote_post "helpflow/internal/handlers/rest/order_quote_post"
	order_start_post "helpflow/internal/handlers/rest/order_start_post"
	order_unclaim_post "helpflow/internal/handlers/rest/order_unclaim_post"
	orders_available_get "helpflow/internal/handlers/rest/orders_available_get"
	orders_get "helpflow/internal/handlers/rest/orders_get"
	"helpflow/internal/handlers/tasks/draft_cleanup"
	"helpflow/internal/pkg/config"

	orderRepo "helpflow/internal/repository/order"
	orderService "helpflow/internal/service/order"
	"helpflow/internal/service/pricing"

	"helpflow/pkg/background"
	"helpflow/pkg/logger"
	"helpflow/pkg/querier"
	"helpflow/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	DraftTTL        time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	orders_available_get.Service
	order_quote_post.Service
	order_publish_post.Service
	order_claim_post.Service
	order_start_post.Service
	order_deliver_post.Service
	order_unclaim_post.Service
	order_cancel_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideDraftTTL,

		provideOrderRepository,
		providePaymentGateway,
		provideGeocodeGateway,
		pricing.New,

		provideOrderService,

		provideDraftCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(orderService.GeoGateway), new(*geocodeGateway.Gateway)),
		wire.Bind(new(orderService.PriceCalculator), new(*pricing.Calculator)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(draft_cleanup.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDraftTTL,

		provideOrderRepository,
		providePaymentGateway,
		provideGeocodeGateway,
		pricing.New,

		provideOrderService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(orderService.GeoGateway), new(*geocodeGateway.Gateway)),
		wire.Bind(new(orderService.PriceCalculator), new(*pricing.Calculator)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.Gateway {
	return paymentGateway.New(cfg.Payment.BaseURL, cfg.Payment.APIKey)
}

func provideGeocodeGateway(cfg *config.Config) *geocodeGateway.Gateway {
	return geocodeGateway.New(cfg.Geocoder.BaseURL, nil)
}

func provideOrderService(
	repository orderService.Repository,
	payments orderService.PaymentGateway,
	geocoder orderService.GeoGateway,
	priceCalculator orderService.PriceCalculator,
	txManager orderService.TxManager,
	draftTTL DraftTTL,
) *orderService.Service {
	return orderService.New(
		repository,
		payments,
		geocoder,
		priceCalculator,
		txManager,
		time.Duration(draftTTL),
	)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.DraftCleanupInterval)
}

func provideDraftTTL(cfg *config.Config) DraftTTL {
	return DraftTTL(cfg.Tasks.DraftTTL)
}

func provideDraftCleanupTask(
	log logger.Logger,
	orderService draft_cleanup.Service,
	interval CleanupInterval,
) *draft_cleanup.DraftCleanup {
	return draft_cleanup.NewDraftCleanup(log, orderService, time.Duration(interval))
}

func provideTaskList(
	draftCleanupTask *draft_cleanup.DraftCleanup,
) []background.Task {
	return []background.Task{
		draftCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
