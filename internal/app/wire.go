//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"tiffin/internal/handlers/rest/address_delete"
	"tiffin/internal/handlers/rest/address_post"
	"tiffin/internal/handlers/rest/address_put"
	"tiffin/internal/handlers/rest/addresses_get"
	"tiffin/internal/handlers/rest/checkout_post"
	"tiffin/internal/handlers/rest/coupon_validate_post"
	"tiffin/internal/handlers/rest/coupons_get"
	"tiffin/internal/handlers/rest/menu_get"
	"tiffin/internal/handlers/rest/menu_post"
	"tiffin/internal/handlers/rest/order_cancel_post"
	"tiffin/internal/handlers/rest/order_get"
	"tiffin/internal/handlers/rest/order_status_put"
	"tiffin/internal/handlers/rest/orders_get"
	"tiffin/internal/handlers/rest/profile_get"
	"tiffin/internal/handlers/rest/review_post"
	"tiffin/internal/handlers/rest/reviews_get"
	"tiffin/internal/handlers/tasks/order_sweep"
	"tiffin/internal/pkg/config"
	"tiffin/internal/pkg/factory/notification_message"
	"tiffin/internal/pkg/factory/order_schedule"
	"tiffin/internal/pkg/payment"

	addressRepo "tiffin/internal/repository/address"
	menuRepo "tiffin/internal/repository/menu"
	orderRepo "tiffin/internal/repository/order"
	reviewRepo "tiffin/internal/repository/review"
	addressService "tiffin/internal/service/address"
	couponService "tiffin/internal/service/coupon"
	menuService "tiffin/internal/service/menu"
	notificationService "tiffin/internal/service/notification"
	orderService "tiffin/internal/service/order"
	reviewService "tiffin/internal/service/review"

	"tiffin/pkg/background"
	"tiffin/pkg/cache"
	"tiffin/pkg/delayed"
	"tiffin/pkg/logger"
	"tiffin/pkg/querier"
	"tiffin/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceAddress    ServiceAddress
	ServiceMenu       ServiceMenu
	ServiceReview     ServiceReview
	ServiceCoupon     ServiceCoupon
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	checkout_post.Service
	orders_get.Service
	order_get.Service
	order_cancel_post.Service
	order_status_put.Service
}

type ServiceAddress interface {
	addresses_get.Service
	address_post.Service
	address_put.Service
	address_delete.Service
	profile_get.AddressService
}

type ServiceMenu interface {
	menu_get.Service
	menu_post.Service
}

type ServiceReview interface {
	reviews_get.Service
	review_post.Service
}

type ServiceCoupon interface {
	coupons_get.Service
	coupon_validate_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	backend cache.Backend,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCache,
		provideScheduler,
		provideScheduleFactory,
		providePaymentGateway,

		provideOrderRepository,
		provideAddressRepository,
		provideMenuRepository,
		provideReviewRepository,

		provideServiceOrder,
		provideServiceAddress,
		provideServiceMenu,
		provideServiceReview,
		couponService.New,

		provideOrderSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Orders)),
		wire.Bind(new(ServiceAddress), new(*addressService.Addresses)),
		wire.Bind(new(ServiceMenu), new(*menuService.Menu)),
		wire.Bind(new(ServiceReview), new(*reviewService.Reviews)),
		wire.Bind(new(ServiceCoupon), new(*couponService.Coupons)),
	)
	return &Application{}, nil
}

type NotificationWorkerApp struct {
	NotificationService *notificationService.Service
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeNotificationWorkerApp(
	log logger.Logger,
) (*NotificationWorkerApp, error) {
	wire.Build(
		notification_message.NewMessageFactory,
		provideNotificationService,

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCache(log logger.Logger, backend cache.Backend, cfg *config.Config) *cache.Cache {
	return cache.New(log, backend, cfg.Cache.TTL)
}

func provideScheduler(ctx context.Context, log logger.Logger) *delayed.Scheduler {
	return delayed.New(ctx, log)
}

func provideScheduleFactory(cfg *config.Config) *order_schedule.ScheduleFactory {
	return order_schedule.New(cfg.Orders.PreparingAfter, cfg.Orders.DeliveredAfter)
}

func providePaymentGateway(log logger.Logger) *payment.DummyGateway {
	return payment.NewDummyGateway(log)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideMenuRepository(querier *querier.Querier) *menuRepo.Repository {
	return menuRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideServiceOrder(
	log logger.Logger,
	repository *orderRepo.Repository,
	txManager *tx.Manager,
	gateway *payment.DummyGateway,
	publisher orderService.EventPublisher,
	scheduler *delayed.Scheduler,
	schedule *order_schedule.ScheduleFactory,
	cfg *config.Config,
) *orderService.Orders {
	return orderService.New(
		log,
		repository,
		txManager,
		gateway,
		publisher,
		scheduler,
		schedule,
		cfg.Orders.RecomputeTotal,
	)
}

func provideServiceAddress(
	log logger.Logger,
	repository *addressRepo.Repository,
	txManager *tx.Manager,
	cacheFacade *cache.Cache,
) *addressService.Addresses {
	return addressService.New(log, repository, txManager, cacheFacade)
}

func provideServiceMenu(
	log logger.Logger,
	repository *menuRepo.Repository,
	txManager *tx.Manager,
	cacheFacade *cache.Cache,
) *menuService.Menu {
	return menuService.New(log, repository, txManager, cacheFacade)
}

func provideServiceReview(
	log logger.Logger,
	repository *reviewRepo.Repository,
	txManager *tx.Manager,
	cacheFacade *cache.Cache,
) *reviewService.Reviews {
	return reviewService.New(log, repository, txManager, cacheFacade)
}

func provideNotificationService(
	log logger.Logger,
	messageFactory *notification_message.MessageFactory,
) *notificationService.Service {
	return notificationService.New(log, messageFactory)
}

func provideOrderSweepTask(
	log logger.Logger,
	orders *orderService.Orders,
	cfg *config.Config,
) *order_sweep.OrderSweep {
	return order_sweep.NewOrderSweep(log, orders, cfg.Orders.SweepInterval, cfg.Orders.SweepLimit)
}

func provideTaskList(
	orderSweepTask *order_sweep.OrderSweep,
) []background.Task {
	return []background.Task{
		orderSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
