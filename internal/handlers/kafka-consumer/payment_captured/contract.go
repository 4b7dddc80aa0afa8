package payment_captured

import (
	"context"
	"time"

	"helpflow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkOrderPaid(ctx context.Context, orderID, paymentRef string, paidAt time.Time) error
}
