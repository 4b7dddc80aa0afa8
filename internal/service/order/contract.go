//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"helpflow/internal/entities"
)

type Repository interface {
	Insert(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// Transition - единственная точка мутации заказа: условный UPDATE,
	// применяющийся только при совпадении предиката. Возвращает число
	// затронутых строк; ноль - штатный исход проигранной гонки.
	Transition(ctx context.Context, predicate entities.TransitionPredicate, patch entities.OrderModify) (int64, error)

	ListAvailable(ctx context.Context) ([]entities.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Order, error)
	ListByCourier(ctx context.Context, courierID string) ([]entities.Order, error)

	CancelAbandonedDrafts(ctx context.Context, olderThan time.Time) (int64, error)
}

type PaymentGateway interface {
	Refund(ctx context.Context, paymentRef string) error
}

type GeoGateway interface {
	RouteDistanceKm(ctx context.Context, pickup, dropoff entities.Location) (float64, error)
}

type PriceCalculator interface {
	Quote(distanceKm float64, proposedPrice *float64) entities.PriceQuote
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
