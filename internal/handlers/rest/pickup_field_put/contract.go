//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_field_put_test
package pickup_field_put

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
	UpdateField(ctx context.Context, uid, pickupID, field string, value interface{}, op entities.FieldOpType) (*entities.Pickup, error)
}
