//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_put_test
package pickup_put

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateBulk(ctx context.Context, uid, pickupID string, updates map[string]interface{}) (*entities.Pickup, error)
}
