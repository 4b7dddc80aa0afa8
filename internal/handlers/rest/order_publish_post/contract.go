//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_publish_post_test
package order_publish_post

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
	Publish(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error)
}
