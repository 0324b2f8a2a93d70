package pickup_event

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
	Accept(ctx context.Context, uid, pickupID string) error
	Start(ctx context.Context, uid, pickupID string) error
	CancelAcceptance(ctx context.Context, uid, pickupID string) error
	Complete(ctx context.Context, uid, pickupID string, materials []entities.MaterialEntry) error
}
