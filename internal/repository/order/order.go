package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"helpflow/internal/entities"
	"helpflow/internal/repository"
	orderservice "helpflow/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, client_id, courier_id,
	pickup_address, pickup_city, pickup_postcode,
	dropoff_address, dropoff_city, dropoff_postcode,
	distance_km,
	parcel_weight_kg, parcel_bag_count, parcel_type, parcel_note,
	standard_price_cents, proposed_price_cents, final_price_cents,
	platform_fee_cents, courier_earnings_cents, pricing_mode,
	status, scheduled_at, delivery_code, payment_ref, paid_at,
	created_at, published_at, assigned_at, started_at, delivered_at, canceled_at`

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderDB := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, client_id,
			pickup_address, pickup_city, pickup_postcode,
			dropoff_address, dropoff_city, dropoff_postcode,
			distance_km,
			parcel_weight_kg, parcel_bag_count, parcel_type, parcel_note,
			standard_price_cents, proposed_price_cents, final_price_cents,
			platform_fee_cents, courier_earnings_cents, pricing_mode,
			status, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderDB.ID,
		orderDB.ClientID,
		orderDB.PickupAddress,
		orderDB.PickupCity,
		orderDB.PickupPostcode,
		orderDB.DropoffAddress,
		orderDB.DropoffCity,
		orderDB.DropoffPostcode,
		orderDB.DistanceKm,
		orderDB.ParcelWeightKg,
		orderDB.ParcelBagCount,
		orderDB.ParcelType,
		orderDB.ParcelNote,
		orderDB.StandardPriceCents,
		orderDB.ProposedPriceCents,
		orderDB.FinalPriceCents,
		orderDB.PlatformFeeCents,
		orderDB.CourierEarningsCents,
		orderDB.PricingMode,
		orderDB.Status,
		orderDB.ScheduledAt,
		orderDB.CreatedAt,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order %s already exists: %w", orderEntity.ID, err)
		}
		return nil, fmt.Errorf("unexpected order repository insert error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	row := r.querier.QueryRow(ctx, query, orderID)

	orderDB, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// Transition - именованный условный переход: UPDATE применяется только
// если заказ все еще удовлетворяет предикату. Возвращает число затронутых
// строк; ноль строк - проигранная гонка, решение за вызывающим слоем.
func (r *Repository) Transition(ctx context.Context, predicate entities.TransitionPredicate, patch entities.OrderModify) (int64, error) {
	builder := qb.Update("orders")

	// опциональные поля патча
	if patch.Status != nil {
		builder = builder.Set("status", patch.Status.String())
	}
	if patch.CourierID != nil {
		builder = builder.Set("courier_id", *patch.CourierID)
	}
	if patch.ClearCourier {
		builder = builder.Set("courier_id", nil)
	}
	if patch.PaymentRef != nil {
		builder = builder.Set("payment_ref", *patch.PaymentRef)
	}
	if patch.PaidAt != nil {
		builder = builder.Set("paid_at", *patch.PaidAt)
	}
	if patch.DeliveryCode != nil {
		builder = builder.Set("delivery_code", *patch.DeliveryCode)
	}
	if patch.PublishedAt != nil {
		builder = builder.Set("published_at", *patch.PublishedAt)
	}
	if patch.AssignedAt != nil {
		builder = builder.Set("assigned_at", *patch.AssignedAt)
	}
	if patch.ClearAssignedAt {
		builder = builder.Set("assigned_at", nil)
	}
	if patch.StartedAt != nil {
		builder = builder.Set("started_at", *patch.StartedAt)
	}
	if patch.ClearStartedAt {
		builder = builder.Set("started_at", nil)
	}
	if patch.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *patch.DeliveredAt)
	}
	if patch.CanceledAt != nil {
		builder = builder.Set("canceled_at", *patch.CanceledAt)
	}

	builder = builder.Where(sq.Eq{"id": predicate.OrderID})

	if len(predicate.ExpectedStatuses) > 0 {
		statuses := make([]string, 0, len(predicate.ExpectedStatuses))
		for _, s := range predicate.ExpectedStatuses {
			statuses = append(statuses, s.String())
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}

	if predicate.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *predicate.ClientID})
	}
	if predicate.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *predicate.CourierID})
	}
	if predicate.CourierIsNull {
		builder = builder.Where(sq.Eq{"courier_id": nil})
	}
	if predicate.UnpaidOnly {
		builder = builder.Where(sq.Eq{"payment_ref": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build transition query: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = 'PUBLISHED' AND courier_id IS NULL
		ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE client_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, clientID)
}

func (r *Repository) ListByCourier(ctx context.Context, courierID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, courierID)
}

// CancelAbandonedDrafts массово отменяет неоплаченные черновики,
// созданные раньше olderThan.
func (r *Repository) CancelAbandonedDrafts(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		UPDATE orders
		SET status = 'CANCELED',
			canceled_at = NOW()
		WHERE status = 'DRAFT'
		  AND payment_ref IS NULL
		  AND created_at < $1`

	result, err := r.querier.Exec(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.CourierID,
		&o.PickupAddress,
		&o.PickupCity,
		&o.PickupPostcode,
		&o.DropoffAddress,
		&o.DropoffCity,
		&o.DropoffPostcode,
		&o.DistanceKm,
		&o.ParcelWeightKg,
		&o.ParcelBagCount,
		&o.ParcelType,
		&o.ParcelNote,
		&o.StandardPriceCents,
		&o.ProposedPriceCents,
		&o.FinalPriceCents,
		&o.PlatformFeeCents,
		&o.CourierEarningsCents,
		&o.PricingMode,
		&o.Status,
		&o.ScheduledAt,
		&o.DeliveryCode,
		&o.PaymentRef,
		&o.PaidAt,
		&o.CreatedAt,
		&o.PublishedAt,
		&o.AssignedAt,
		&o.StartedAt,
		&o.DeliveredAt,
		&o.CanceledAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
