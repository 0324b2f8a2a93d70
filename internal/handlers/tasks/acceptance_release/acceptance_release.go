package acceptance_release

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	ReleaseExpiredAcceptances(ctx context.Context) (int64, error)
}

// AcceptanceRelease возвращает в pending заявки, которые приняли,
// но так и не начали до наступления окна вывоза.
type AcceptanceRelease struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAcceptanceRelease(log logger.Logger, service Service, interval time.Duration) *AcceptanceRelease {
	return &AcceptanceRelease{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AcceptanceRelease) TTL() time.Duration {
	return a.interval
}

func (a *AcceptanceRelease) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReleaseExpiredAcceptances(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released_pickups", rowsAffected),
		).Info("acceptance release")
	}

	return err
}

func (a *AcceptanceRelease) Info() string {
	return "acceptance release"
}
