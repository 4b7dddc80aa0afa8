//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_deliver_post_test
package order_deliver_post

import (
	"context"

	"helpflow/internal/entities"
	"helpflow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Deliver(ctx context.Context, actor entities.Actor, orderID, confirmationCode string) (*entities.Order, error)
}
