package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	retrierconfig "helpflow/pkg/retrier"
	"helpflow/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	requestTimeout = 10 * time.Second
)

// Gateway - клиент процессинга платежей. Жизненному циклу заказа из него
// нужен только возврат ранее захваченного платежа по его reference.
type Gateway struct {
	baseURL string
	apiKey  string
	client  httpDoer
	retrier retrier
}

func New(baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
		retrier: backoff_adapter.New(retryConfig),
	}
}

type refundRequest struct {
	PaymentRef string `json:"payment_ref"`
}

// Refund инициирует возврат захваченного платежа.
func (g *Gateway) Refund(ctx context.Context, paymentRef string) error {
	body, err := json.Marshal(refundRequest{PaymentRef: paymentRef})
	if err != nil {
		return fmt.Errorf("marshal refund request: %w", err)
	}

	err = g.executeWithMetrics(ctx, "Refund", func(ctx context.Context) error {
		return g.doRefund(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("gateway payment, refund %s: %w", paymentRef, err)
	}
	return nil
}

func (g *Gateway) doRefund(ctx context.Context, body []byte) error {
	url := fmt.Sprintf("%s/refunds", g.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d, body: %s", ErrRefundRejected, resp.StatusCode, respBody)
	}
}

// 4xx - постоянный отказ, ретраим только недоступность.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrRefundRejected)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := resultCode(err)
	GatewayRequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(method, strconv.FormatUint(attempt, 10)).Inc()
	}

	return err
}

func resultCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRefundRejected):
		return "rejected"
	default:
		return "unavailable"
	}
}
