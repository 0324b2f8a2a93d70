//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_unaccept_post_test
package pickup_unaccept_post

import (
	"context"

	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelAcceptance(ctx context.Context, uid, pickupID string) error
}
