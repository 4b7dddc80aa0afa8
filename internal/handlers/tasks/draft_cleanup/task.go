package draft_cleanup

import (
	"context"
	"time"

	"helpflow/pkg/logger"
)

type Service interface {
	CleanupAbandonedDrafts(ctx context.Context) (int64, error)
}

// DraftCleanup периодически отменяет брошенные черновики:
// заказы в DRAFT без оплаты, засидевшиеся дольше TTL.
type DraftCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDraftCleanup(log logger.Logger, service Service, interval time.Duration) *DraftCleanup {
	return &DraftCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DraftCleanup) TTL() time.Duration {
	return d.interval
}

func (d *DraftCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.CleanupAbandonedDrafts(ctxWithTimeout)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("canceled_drafts", rowsAffected),
		).Info("draft cleanup")
	}

	return err
}

func (d *DraftCleanup) Info() string {
	return "draft cleanup"
}
