//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_test
package pickup

import (
	"context"

	"service/internal/entities"
	"service/internal/pkg/factory/material_catalog"
)

type Repository interface {
	Create(ctx context.Context, pickupEntity entities.Pickup) (*entities.Pickup, error)
	GetByID(ctx context.Context, id string) (*entities.Pickup, error)
	List(ctx context.Context, filter entities.PickupFilter) ([]entities.Pickup, error)
	Update(ctx context.Context, pickupModify entities.PickupModify) (*entities.Pickup, error)
	AppendMaterial(ctx context.Context, id string, entry entities.MaterialEntry) (*entities.Pickup, error)
	RemoveMaterial(ctx context.Context, id string, entry entities.MaterialEntry) (*entities.Pickup, error)
	Delete(ctx context.Context, id string) error

	CountActiveByCreator(ctx context.Context, uid string) (int64, error)
	CountInProgressByAssignee(ctx context.Context, uid string) (int64, error)

	// Conditional single-statement transition writes. Each succeeds only if
	// the row still satisfies the transition guard at commit time.
	SetAccepted(ctx context.Context, id string, assignee entities.PartyRef) error
	SetInProgress(ctx context.Context, id string, assigneeID string) error
	SetPending(ctx context.Context, id string, assigneeID string) error
	SetCompleted(ctx context.Context, id string, materials []entities.MaterialEntry) error

	UpdatePendingWhereAcceptanceExpired(ctx context.Context) (int64, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, uid string) (*entities.Profile, error)
	AppendPickupID(ctx context.Context, uid, pickupID string) error
	RemovePickupID(ctx context.Context, uid, pickupID string) error
	ApplyCompletion(ctx context.Context, uid string, materials []entities.MaterialEntry) error
}

type Catalog interface {
	Lookup(kind string) (material_catalog.MaterialSpec, bool)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
