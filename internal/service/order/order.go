package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

const createMaxAttempts = 3

type Orders struct {
	log            handlerLogger
	repository     Repository
	txManager      TxManager
	gateway        PaymentGateway
	publisher      EventPublisher
	scheduler      Scheduler
	schedule       ScheduleFactory
	recomputeTotal bool
}

func New(
	log handlerLogger,
	repository Repository,
	txManager TxManager,
	gateway PaymentGateway,
	publisher EventPublisher,
	scheduler Scheduler,
	schedule ScheduleFactory,
	recomputeTotal bool,
) *Orders {
	return &Orders{
		log:            log,
		repository:     repository,
		txManager:      txManager,
		gateway:        gateway,
		publisher:      publisher,
		scheduler:      scheduler,
		schedule:       schedule,
		recomputeTotal: recomputeTotal,
	}
}

// Checkout проводит оплату и создает заказ. Заказы создаются только здесь.
func (s *Orders) Checkout(ctx context.Context, owner string, checkout entities.OrderCheckout) (*entities.OrderReceipt, error) {
	if len(checkout.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range checkout.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidItem)
		}
		if item.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrInvalidItem)
		}
	}
	if checkout.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	method := checkout.PaymentMethod
	if method == "" {
		method = entities.DefaultPaymentMethod
	}
	if !isValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	if s.recomputeTotal {
		var sum float64
		for _, item := range checkout.Items {
			sum += item.Price * float64(item.Quantity)
		}
		if roundMoney(sum) != roundMoney(checkout.TotalAmount) {
			return nil, ErrAmountMismatch
		}
	}

	if err := s.gateway.Charge(ctx, checkout.TotalAmount, method); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPaymentDeclined, err)
	}

	// снапшот позиций: дальнейшие правки меню не должны менять историю
	items := make([]entities.OrderItem, len(checkout.Items))
	copy(items, checkout.Items)

	now := time.Now().UTC()
	orderEntity := entities.Order{
		Owner:         owner,
		Items:         items,
		TotalAmount:   checkout.TotalAmount,
		PaymentMethod: method,
		Status:        entities.OrderPlaced,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// коллизия сгенерированного id крайне маловероятна, но уникальность
	// гарантирует БД, поэтому на конфликт отвечаем новой попыткой
	var createErr error
	for attempt := 0; attempt < createMaxAttempts; attempt++ {
		orderID, err := newOrderID()
		if err != nil {
			return nil, fmt.Errorf("generate order id: %w", err)
		}
		orderEntity.OrderID = orderID

		createErr = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repository.Create(ctx, orderEntity)
		})
		if createErr == nil {
			break
		}
		if !errors.Is(createErr, ErrOrderIDConflict) {
			return nil, fmt.Errorf("create order: %w", createErr)
		}
	}
	if createErr != nil {
		return nil, fmt.Errorf("create order: %w", createErr)
	}

	ordersCreatedTotal.Inc()
	s.scheduleProgression(orderEntity.OrderID, orderEntity.Owner)
	s.publishStatus(ctx, orderEntity.OrderID, orderEntity.Owner, entities.OrderPlaced)

	return &entities.OrderReceipt{
		OrderID: orderEntity.OrderID,
		Status:  orderEntity.Status,
	}, nil
}

// Cancel отменяет заказ владельца. Допустим только из PLACED: гонка с
// автопрогрессией разрешается условным обновлением на стороне БД.
func (s *Orders) Cancel(ctx context.Context, orderID, owner, reason string) error {
	if !isValidCancelReason(reason) {
		return ErrEmptyCancelReason
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cancelled, err := s.repository.CancelIfPlaced(ctx, orderID, owner, strings.TrimSpace(reason))
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		if cancelled {
			return nil
		}

		// условие не сошлось: различаем "нет такого заказа" и "уже не PLACED"
		current, err := s.repository.GetByOrderIDForOwner(ctx, orderID, owner)
		if err != nil {
			return fmt.Errorf("get order after failed cancel: %w", err)
		}
		return fmt.Errorf("%w: order is %s", ErrInvalidTransition, current.Status)
	})
	if err != nil {
		return err
	}

	orderTransitionsTotal.WithLabelValues(
		entities.OrderPlaced.String(),
		entities.OrderCancelled.String(),
		"cancel",
	).Inc()
	s.publishStatus(ctx, orderID, owner, entities.OrderCancelled)
	return nil
}

// SetStatus административный перевод статуса без проверки текущего.
// Ослабленная валидация здесь намеренная: это ручная коррекция
// доверенным вызовом, а не оптимистическая конкуренция планировщика.
func (s *Orders) SetStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	if !isValidOverrideStatus(status) {
		return ErrInvalidStatus
	}

	current, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	updated, err := s.repository.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	if !updated {
		return ErrOrderNotFound
	}

	orderTransitionsTotal.WithLabelValues(
		current.Status.String(),
		status.String(),
		"admin",
	).Inc()
	s.publishStatus(ctx, orderID, current.Owner, status)
	return nil
}

func (s *Orders) GetOrder(ctx context.Context, orderID, owner string) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByOrderIDForOwner(ctx, orderID, owner)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Orders) ListOrders(ctx context.Context, owner string) ([]entities.Order, error) {
	orders, err := s.repository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Advance условный переход from->to. Несошедшийся предикат это штатный
// исход (заказ уже ушел дальше или отменен), не ошибка и не повод
// для ретрая.
func (s *Orders) Advance(ctx context.Context, orderID, owner string, from, to entities.OrderStatusType, trigger string) error {
	applied, err := s.repository.UpdateStatusIfCurrent(ctx, orderID, from, to)
	if err != nil {
		return fmt.Errorf("advance order %s %s->%s: %w", orderID, from, to, err)
	}

	if !applied {
		orderTransitionsSkippedTotal.WithLabelValues(from.String(), to.String()).Inc()
		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("from", from.String()),
			logger.NewField("to", to.String()),
		).Info("scheduled transition skipped, status predicate no longer holds")
		return nil
	}

	orderTransitionsTotal.WithLabelValues(from.String(), to.String(), trigger).Inc()
	s.publishStatus(ctx, orderID, owner, to)
	return nil
}

// SweepStale дожимает автопрогрессию заказов, чьи отложенные переходы
// пропали вместе с памятью процесса (рестарт). Благодаря условным
// обновлениям безопасно пересекается с живым расписанием.
func (s *Orders) SweepStale(ctx context.Context, limit int64) (int64, error) {
	var advanced int64

	for _, step := range s.schedule.Steps() {
		stale, err := s.repository.ListStale(ctx, step.From, time.Now().UTC().Add(-step.Hold), limit)
		if err != nil {
			return advanced, fmt.Errorf("list stale %s orders: %w", step.From, err)
		}

		for _, staleOrder := range stale {
			if err := s.Advance(ctx, staleOrder.OrderID, staleOrder.Owner, step.From, step.To, "sweep"); err != nil {
				return advanced, err
			}
			advanced++
		}
	}

	return advanced, nil
}

// scheduleProgression ставит оба отложенных перехода относительно
// момента создания. Чекаут возвращается сразу, ожидание живет в
// планировщике, а не в горутине-обработчике запроса.
func (s *Orders) scheduleProgression(orderID, owner string) {
	for _, step := range s.schedule.Steps() {
		step := step
		name := fmt.Sprintf("order %s %s->%s", orderID, step.From, step.To)

		s.scheduler.Schedule(step.After, name, func(ctx context.Context) {
			if err := s.Advance(ctx, orderID, owner, step.From, step.To, "scheduler"); err != nil {
				s.log.With(
					logger.NewField("order", orderID),
					logger.NewField("error", err),
				).Error("scheduled transition failed")
			}
		})
	}
}

func (s *Orders) publishStatus(ctx context.Context, orderID, owner string, status entities.OrderStatusType) {
	if s.publisher == nil {
		return
	}

	event := entities.OrderStatusEvent{
		OrderID:    orderID,
		Owner:      owner,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		).Warn("failed to publish order status event")
	}
}

func newOrderID() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(b[:])), nil
}
