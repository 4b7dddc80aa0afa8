package payment_captured

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	orderservice "helpflow/internal/service/order"
	"helpflow/pkg/logger"
)

// capturedEvent - событие платежного провайдера о захвате оплаты заказа.
type capturedEvent struct {
	OrderID    string    `json:"order_id"`
	PaymentRef string    `json:"payment_ref"`
	PaidAt     time.Time `json:"paid_at"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.captured: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.captured: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event capturedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.captured handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("payment_ref", event.PaymentRef),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.captured processing")

	paidAt := event.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	err = h.orderService.MarkOrderPaid(ctx, event.OrderID, event.PaymentRef, paidAt)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler unknown order")

		case errors.Is(err, orderservice.ErrStatusConflict):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler payment ref conflict for order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.captured: processed")

	sess.MarkMessage(message, "")
	return false
}
