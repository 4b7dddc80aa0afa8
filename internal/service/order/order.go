package order

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"helpflow/internal/entities"
)

// Service - контроллер жизненного цикла заказа. Все операции stateless и
// получают актора явным аргументом; никакого ambient-состояния авторизации.
type Service struct {
	repository Repository
	payments   PaymentGateway
	geocoder   GeoGateway
	pricing    PriceCalculator
	txManager  TxManager
	draftTTL   time.Duration
}

func New(
	repository Repository,
	payments PaymentGateway,
	geocoder GeoGateway,
	pricing PriceCalculator,
	txManager TxManager,
	draftTTL time.Duration,
) *Service {
	return &Service{
		repository: repository,
		payments:   payments,
		geocoder:   geocoder,
		pricing:    pricing,
		txManager:  txManager,
		draftTTL:   draftTTL,
	}
}

// QuoteInput - запрос котировки: либо готовая дистанция, либо адреса,
// по которым дистанцию посчитает геокодер.
type QuoteInput struct {
	Pickup        entities.Location
	Dropoff       entities.Location
	DistanceKm    float64
	ProposedPrice *float64
}

func (s *Service) Quote(ctx context.Context, input QuoteInput) (*entities.PriceQuote, error) {
	distanceKm := input.DistanceKm
	if distanceKm <= 0 {
		if !isValidLocation(input.Pickup) || !isValidLocation(input.Dropoff) {
			return nil, ErrMissingRequiredFields
		}

		var err error
		distanceKm, err = s.geocoder.RouteDistanceKm(ctx, input.Pickup, input.Dropoff)
		if err != nil {
			return nil, fmt.Errorf("resolve route distance: %w", err)
		}
	}

	quote := s.pricing.Quote(distanceKm, input.ProposedPrice)
	return &quote, nil
}

// CreateOrder считает котировку и сохраняет заказ в статусе DRAFT.
func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, draft entities.OrderInput) (*entities.Order, error) {
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}
	if actor.Role != entities.RoleClient {
		return nil, ErrForbidden
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	distanceKm := draft.DistanceKm
	if distanceKm <= 0 {
		var err error
		distanceKm, err = s.geocoder.RouteDistanceKm(ctx, draft.Pickup, draft.Dropoff)
		if err != nil {
			return nil, fmt.Errorf("resolve route distance: %w", err)
		}
	}

	quote := s.pricing.Quote(distanceKm, draft.ProposedPrice)

	orderEntity := entities.Order{
		ID:       uuid.NewString(),
		ClientID: actor.ID,

		Pickup:     draft.Pickup,
		Dropoff:    draft.Dropoff,
		DistanceKm: quote.BilledKm,

		Parcel:  draft.Parcel,
		Pricing: quote,

		Status:      entities.OrderDraft,
		ScheduledAt: draft.ScheduledAt,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repository.Insert(ctx, orderEntity)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !canSee(actor, orderEntity) {
		return nil, ErrForbidden
	}
	return orderEntity, nil
}

// canSee: владелец и админ видят заказ всегда, курьер - свой назначенный
// либо любой опубликованный (пул доступных заказов читается без ограничений).
func canSee(actor entities.Actor, o *entities.Order) bool {
	switch {
	case actor.Role == entities.RoleAdmin:
		return true
	case o.ClientID == actor.ID:
		return true
	case o.CourierID != nil && *o.CourierID == actor.ID:
		return true
	case actor.Role == entities.RoleCourier && o.Status == entities.OrderPublished:
		return true
	default:
		return false
	}
}

func (s *Service) ListAvailableOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}
	if actor.Role != entities.RoleCourier && actor.Role != entities.RoleAdmin {
		return nil, ErrForbidden
	}

	orders, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}
	return orders, nil
}

func (s *Service) ListClientOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	orders, err := s.repository.ListByClient(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list client orders: %w", err)
	}
	return orders, nil
}

func (s *Service) ListCourierOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}
	if actor.Role != entities.RoleCourier {
		return nil, ErrForbidden
	}

	orders, err := s.repository.ListByCourier(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list courier orders: %w", err)
	}
	return orders, nil
}

// Publish переводит черновик владельца в пул доступных заказов и выдает
// код подтверждения доставки.
func (s *Service) Publish(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	now := time.Now().UTC()
	newStatus := entities.OrderPublished
	code, err := newDeliveryCode()
	if err != nil {
		return nil, fmt.Errorf("generate delivery code: %w", err)
	}

	predicate := entities.TransitionPredicate{
		OrderID:          orderID,
		ExpectedStatuses: []entities.OrderStatusType{entities.OrderDraft},
		ClientID:         &actor.ID,
	}
	patch := entities.OrderModify{
		Status:       &newStatus,
		PublishedAt:  &now,
		DeliveryCode: &code,
	}

	rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
	if err != nil {
		return nil, fmt.Errorf("publish order: %w", err)
	}
	if rowsAffected == 0 {
		return nil, s.explainOwnerConflict(ctx, actor, orderID)
	}

	return s.repository.GetByID(ctx, orderID)
}

// Claim - единственная по-настоящему конкурентная операция: назначение
// курьера выполняется одним атомарным условным UPDATE. Проигравший гонку
// получает ErrOrderTaken, никаких ретраев на этом уровне.
func (s *Service) Claim(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}
	if actor.Role != entities.RoleCourier {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	newStatus := entities.OrderAssigned

	predicate := entities.TransitionPredicate{
		OrderID:          orderID,
		ExpectedStatuses: []entities.OrderStatusType{entities.OrderPublished},
		CourierIsNull:    true,
	}
	patch := entities.OrderModify{
		Status:     &newStatus,
		CourierID:  &actor.ID,
		AssignedAt: &now,
	}

	rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
	if err != nil {
		return nil, fmt.Errorf("claim order: %w", err)
	}
	if rowsAffected == 0 {
		// заказ существует, но уже не PUBLISHED/без курьера - взят другим
		if _, getErr := s.repository.GetByID(ctx, orderID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrOrderTaken
	}

	return s.repository.GetByID(ctx, orderID)
}

// Start - назначенный курьер начинает доставку.
func (s *Service) Start(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	now := time.Now().UTC()
	newStatus := entities.OrderInProgress

	predicate := entities.TransitionPredicate{
		OrderID:          orderID,
		ExpectedStatuses: []entities.OrderStatusType{entities.OrderAssigned},
		CourierID:        &actor.ID,
	}
	patch := entities.OrderModify{
		Status:    &newStatus,
		StartedAt: &now,
	}

	rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
	if err != nil {
		return nil, fmt.Errorf("start delivery: %w", err)
	}
	if rowsAffected == 0 {
		return nil, s.explainCourierConflict(ctx, actor, orderID)
	}

	return s.repository.GetByID(ctx, orderID)
}

// Deliver завершает доставку. Если заказу был выдан код подтверждения,
// курьер обязан предъявить его.
func (s *Service) Deliver(ctx context.Context, actor entities.Actor, orderID, confirmationCode string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	var delivered *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if orderEntity.CourierID == nil || *orderEntity.CourierID != actor.ID {
			return ErrForbidden
		}
		if orderEntity.Status != entities.OrderInProgress {
			return ErrStatusConflict
		}
		if orderEntity.DeliveryCode != nil && *orderEntity.DeliveryCode != confirmationCode {
			return ErrInvalidDeliveryCode
		}

		now := time.Now().UTC()
		newStatus := entities.OrderDelivered

		predicate := entities.TransitionPredicate{
			OrderID:          orderID,
			ExpectedStatuses: []entities.OrderStatusType{entities.OrderInProgress},
			CourierID:        &actor.ID,
		}
		patch := entities.OrderModify{
			Status:      &newStatus,
			DeliveredAt: &now,
		}

		rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
		if err != nil {
			return fmt.Errorf("complete delivery: %w", err)
		}
		if rowsAffected == 0 {
			return ErrStatusConflict
		}

		delivered, err = s.repository.GetByID(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return delivered, nil
}

// Unclaim снимает курьера с заказа и возвращает заказ в пул доступных.
func (s *Service) Unclaim(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	newStatus := entities.OrderPublished

	predicate := entities.TransitionPredicate{
		OrderID: orderID,
		ExpectedStatuses: []entities.OrderStatusType{
			entities.OrderAssigned,
			entities.OrderInProgress,
		},
		CourierID: &actor.ID,
	}
	patch := entities.OrderModify{
		Status:          &newStatus,
		ClearCourier:    true,
		ClearAssignedAt: true,
		ClearStartedAt:  true,
	}

	rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
	if err != nil {
		return nil, fmt.Errorf("unclaim order: %w", err)
	}
	if rowsAffected == 0 {
		return nil, s.explainCourierConflict(ctx, actor, orderID)
	}

	return s.repository.GetByID(ctx, orderID)
}

// Cancel отменяет неконечный заказ. Для оплаченного заказа сначала
// выполняется возврат средств: если refund не прошел, переход не
// записывается и заказ остается в прежнем статусе.
func (s *Service) Cancel(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	var canceled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if actor.Role != entities.RoleAdmin && orderEntity.ClientID != actor.ID {
			return ErrForbidden
		}
		if orderEntity.Status.Terminal() {
			return ErrStatusConflict
		}

		if orderEntity.Paid() {
			if err := s.payments.Refund(ctx, *orderEntity.PaymentRef); err != nil {
				return fmt.Errorf("%w: %s", ErrRefundFailed, err)
			}
		}

		now := time.Now().UTC()
		newStatus := entities.OrderCanceled

		predicate := entities.TransitionPredicate{
			OrderID:          orderID,
			ExpectedStatuses: []entities.OrderStatusType{orderEntity.Status},
		}
		patch := entities.OrderModify{
			Status:     &newStatus,
			CanceledAt: &now,
		}

		rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		if rowsAffected == 0 {
			return ErrStatusConflict
		}

		canceled, err = s.repository.GetByID(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return canceled, nil
}

// MarkOrderPaid записывает факт захвата оплаты. Идемпотентна относительно
// повторной доставки события с тем же payment reference.
func (s *Service) MarkOrderPaid(ctx context.Context, orderID, paymentRef string, paidAt time.Time) error {
	if !isValidOrderID(orderID) || paymentRef == "" {
		return ErrMissingRequiredFields
	}

	predicate := entities.TransitionPredicate{
		OrderID: orderID,
		ExpectedStatuses: []entities.OrderStatusType{
			entities.OrderDraft,
			entities.OrderPublished,
			entities.OrderAssigned,
			entities.OrderInProgress,
		},
		UnpaidOnly: true,
	}
	patch := entities.OrderModify{
		PaymentRef: &paymentRef,
		PaidAt:     &paidAt,
	}

	rowsAffected, err := s.repository.Transition(ctx, predicate, patch)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if rowsAffected == 0 {
		orderEntity, getErr := s.repository.GetByID(ctx, orderID)
		if getErr != nil {
			return getErr
		}
		if orderEntity.Paid() && *orderEntity.PaymentRef == paymentRef {
			// повторная доставка того же события
			return nil
		}
		return ErrStatusConflict
	}
	return nil
}

// CleanupAbandonedDrafts отменяет черновики старше draftTTL (брошенные
// корзины). Вызывается фоновой задачей.
func (s *Service) CleanupAbandonedDrafts(ctx context.Context) (int64, error) {
	olderThan := time.Now().UTC().Add(-s.draftTTL)

	rowsAffected, err := s.repository.CancelAbandonedDrafts(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("cleanup abandoned drafts: %w", err)
	}
	return rowsAffected, nil
}

// explainOwnerConflict уточняет причину нулевого результата условного
// UPDATE для операций владельца: чужой заказ либо ушедший статус.
func (s *Service) explainOwnerConflict(ctx context.Context, actor entities.Actor, orderID string) error {
	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if orderEntity.ClientID != actor.ID {
		return ErrForbidden
	}
	return ErrStatusConflict
}

func (s *Service) explainCourierConflict(ctx context.Context, actor entities.Actor, orderID string) error {
	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if orderEntity.CourierID == nil || *orderEntity.CourierID != actor.ID {
		return ErrForbidden
	}
	return ErrStatusConflict
}

const deliveryCodeDigits = 6

func newDeliveryCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < deliveryCodeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", deliveryCodeDigits, n), nil
}
