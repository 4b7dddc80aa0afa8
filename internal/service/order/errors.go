package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidActor          = errors.New("invalid actor")
	ErrInvalidDistance       = errors.New("invalid distance")

	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("actor is not allowed to perform this operation")

	// ErrOrderTaken - заказ уже взял другой курьер; условный UPDATE не
	// затронул ни одной строки. Штатный исход гонки claim, а не сбой.
	ErrOrderTaken = errors.New("order is no longer available")

	// ErrStatusConflict - заказ ушел из ожидаемого статуса между чтением
	// и переходом. Вызывающий должен перечитать состояние, а не повторять запись.
	ErrStatusConflict = errors.New("order status has changed")

	ErrInvalidDeliveryCode = errors.New("invalid delivery confirmation code")

	// ErrRefundFailed - возврат средств не прошел, отмена не записана.
	ErrRefundFailed = errors.New("payment refund failed")
)
