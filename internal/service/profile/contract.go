//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetByUID(ctx context.Context, uid string) (*entities.Profile, error)
	AddPickupID(ctx context.Context, uid, pickupID string) error
	RemovePickupID(ctx context.Context, uid, pickupID string) error
	ApplyStatsDelta(ctx context.Context, uid string, delta entities.StatsDelta) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
