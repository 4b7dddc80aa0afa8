package payment

import "errors"

var (
	// ErrRefundRejected - процессинг отказал в возврате (4xx), ретраи бессмысленны.
	ErrRefundRejected = errors.New("refund rejected by payment provider")

	// ErrUnavailable - процессинг недоступен либо отвечает 5xx/429;
	// операция безопасна для повтора после backoff.
	ErrUnavailable = errors.New("payment provider unavailable")
)
