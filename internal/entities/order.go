package entities

import "time"

// Order - центральная сущность: заявка клиента на доставку посылки,
// проходящая жизненный цикл от черновика до доставки или отмены.
type Order struct {
	ID        string
	ClientID  string
	CourierID *string

	Pickup     Location
	Dropoff    Location
	DistanceKm int64

	Parcel Parcel

	Pricing PriceQuote

	Status      OrderStatusType
	ScheduledAt *time.Time

	// Код подтверждения доставки, выдается при публикации.
	// Клиент передает его курьеру при вручении.
	DeliveryCode *string

	// Факт оплаты учитывается отдельно от статуса.
	PaymentRef *string
	PaidAt     *time.Time

	CreatedAt   time.Time
	PublishedAt *time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	DeliveredAt *time.Time
	CanceledAt  *time.Time
}

// Paid сообщает, была ли по заказу захвачена оплата.
// Отмена оплаченного заказа требует возврата средств.
func (o *Order) Paid() bool {
	return o.PaymentRef != nil
}

type Location struct {
	Address  string
	City     string
	Postcode string
}

type Parcel struct {
	WeightKg float64
	BagCount int64
	Type     string
	Note     string
}

type OrderStatusType string

const (
	OrderDraft      OrderStatusType = "DRAFT"
	OrderPublished  OrderStatusType = "PUBLISHED"
	OrderAssigned   OrderStatusType = "ASSIGNED"
	OrderInProgress OrderStatusType = "IN_PROGRESS"
	OrderDelivered  OrderStatusType = "DELIVERED"
	OrderCanceled   OrderStatusType = "CANCELED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal: из DELIVERED и CANCELED переходов нет.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCanceled
}

// Claimed: статусы, в которых у заказа обязан быть назначенный курьер.
// Инвариант: courier_id != NULL <=> статус из этого набора (либо DELIVERED).
func (s OrderStatusType) Claimed() bool {
	return s == OrderAssigned || s == OrderInProgress || s == OrderDelivered
}

func IsValidOrderStatus(s string) bool {
	switch OrderStatusType(s) {
	case OrderDraft, OrderPublished, OrderAssigned, OrderInProgress, OrderDelivered, OrderCanceled:
		return true
	default:
		return false
	}
}

// OrderModify - частичное обновление заказа, nil-поля не трогаются.
type OrderModify struct {
	Status       *OrderStatusType
	CourierID    *string
	ClearCourier bool

	PaymentRef *string
	PaidAt     *time.Time

	DeliveryCode *string

	PublishedAt *time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	DeliveredAt *time.Time
	CanceledAt  *time.Time

	ClearAssignedAt bool
	ClearStartedAt  bool
}

// OrderInput - входные данные на создание заказа.
type OrderInput struct {
	Pickup  Location
	Dropoff Location

	// Дистанция в км, если уже посчитана выше по стеку.
	// При нуле маршрут геокодируется и дистанция считается по haversine.
	DistanceKm float64

	Parcel Parcel

	// Предложение клиента в евро, опционально.
	ProposedPrice *float64

	ScheduledAt *time.Time
}

// TransitionPredicate описывает предикат условного UPDATE:
// переход применяется только если заказ все еще в ожидаемом состоянии.
// Ноль затронутых строк - штатный исход гонки, а не сбой.
type TransitionPredicate struct {
	OrderID          string
	ExpectedStatuses []OrderStatusType

	// Охрана по актору: ровно одно из полей, в зависимости от операции.
	ClientID  *string
	CourierID *string

	// true — заказ еще никем не взят (courier_id IS NULL).
	CourierIsNull bool

	// true — по заказу не захвачена оплата (payment_ref IS NULL).
	UnpaidOnly bool
}
