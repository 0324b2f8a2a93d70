package pickup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
)

// maxActivePickups caps how many pickups a creator may hold in
// {pending, accepted} at the same time.
const maxActivePickups = 2

type Pickup struct {
	repository     Repository
	profileService ProfileService
	catalog        Catalog
	txManager      TxManager
}

func New(
	repository Repository,
	profileService ProfileService,
	catalog Catalog,
	txManager TxManager,
) *Pickup {
	return &Pickup{
		repository:     repository,
		profileService: profileService,
		catalog:        catalog,
		txManager:      txManager,
	}
}

// Create validates the payload and persists a new pending pickup together
// with the membership reference in the creator's profile, as one unit.
func (s *Pickup) Create(ctx context.Context, uid string, payload entities.PickupCreate) (*entities.Pickup, error) {
	if !isValidUID(uid) {
		return nil, fmt.Errorf("%w: creator uid is required", ErrValidation)
	}
	if err := validateAddress(payload.AddressData); err != nil {
		return nil, err
	}
	if err := validateSchedule(payload.PickupDate, payload.PickupTime, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.validateCreateMaterials(payload.Materials, payload.DisclaimerAccepted); err != nil {
		return nil, err
	}

	var created *entities.Pickup
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		profile, err := s.profileService.GetProfile(ctx, uid)
		if err != nil {
			return fmt.Errorf("get creator profile: %w", err)
		}

		active, err := s.repository.CountActiveByCreator(ctx, uid)
		if err != nil {
			return fmt.Errorf("count active pickups: %w", err)
		}
		if active >= maxActivePickups {
			return fmt.Errorf("%w: creator already has %d active pickups", ErrQuotaExceeded, active)
		}

		now := time.Now().UTC()
		pickupEntity := entities.Pickup{
			ID:                 uuid.NewString(),
			Status:             entities.PickupPending,
			CreatedBy:          profile.Ref(),
			AddressData:        payload.AddressData,
			PickupDate:         payload.PickupDate,
			PickupTime:         payload.PickupTime,
			PickupNote:         payload.PickupNote,
			Materials:          payload.Materials,
			DisclaimerAccepted: payload.DisclaimerAccepted,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		created, err = s.repository.Create(ctx, pickupEntity)
		if err != nil {
			return fmt.Errorf("create pickup: %w", err)
		}

		if err := s.profileService.AppendPickupID(ctx, uid, created.ID); err != nil {
			return fmt.Errorf("append profile membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Pickup) Get(ctx context.Context, id string) (*entities.Pickup, error) {
	if !isValidPickupID(id) {
		return nil, fmt.Errorf("%w: pickup id is required", ErrValidation)
	}

	pickupEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pickup: %w", err)
	}
	return pickupEntity, nil
}

func (s *Pickup) List(ctx context.Context, filter entities.PickupFilter) ([]entities.Pickup, error) {
	pickups, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pickups: %w", err)
	}
	return pickups, nil
}

// Accept assigns the calling driver to a pending pickup. The write is a
// single conditional statement: losing a race returns ErrConflict and the
// caller must re-fetch before retrying.
func (s *Pickup) Accept(ctx context.Context, uid, pickupID string) error {
	if !isValidUID(uid) {
		return fmt.Errorf("%w: caller uid is required", ErrValidation)
	}
	if !isValidPickupID(pickupID) {
		return fmt.Errorf("%w: pickup id is required", ErrValidation)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		profile, err := s.profileService.GetProfile(ctx, uid)
		if err != nil {
			return fmt.Errorf("get driver profile: %w", err)
		}
		if profile.AccountType != entities.AccountDriver {
			return fmt.Errorf("%w: only drivers accept pickups", ErrUnauthorized)
		}

		pickupEntity, err := s.repository.GetByID(ctx, pickupID)
		if err != nil {
			return fmt.Errorf("get pickup: %w", err)
		}
		if pickupEntity.CreatedBy.UserID == uid {
			return fmt.Errorf("%w: drivers cannot accept their own pickup", ErrUnauthorized)
		}

		if err := s.repository.SetAccepted(ctx, pickupID, profile.Ref()); err != nil {
			return fmt.Errorf("accept pickup: %w", err)
		}
		return nil
	})
}

// Start moves an accepted pickup to inProgress. A driver works at most one
// pickup at a time.
func (s *Pickup) Start(ctx context.Context, uid, pickupID string) error {
	if !isValidUID(uid) {
		return fmt.Errorf("%w: caller uid is required", ErrValidation)
	}
	if !isValidPickupID(pickupID) {
		return fmt.Errorf("%w: pickup id is required", ErrValidation)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		inProgress, err := s.repository.CountInProgressByAssignee(ctx, uid)
		if err != nil {
			return fmt.Errorf("count driver pickups in progress: %w", err)
		}
		if inProgress > 0 {
			return fmt.Errorf("%w: driver already has a pickup in progress", ErrConflict)
		}

		if err := s.repository.SetInProgress(ctx, pickupID, uid); err != nil {
			return fmt.Errorf("start pickup: %w", err)
		}
		return nil
	})
}

// CancelAcceptance returns an accepted pickup to the open pool, clearing
// the assignee. An empty uid is the system actor.
func (s *Pickup) CancelAcceptance(ctx context.Context, uid, pickupID string) error {
	if !isValidPickupID(pickupID) {
		return fmt.Errorf("%w: pickup id is required", ErrValidation)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.SetPending(ctx, pickupID, uid); err != nil {
			return fmt.Errorf("cancel acceptance: %w", err)
		}
		return nil
	})
}

// Complete marks an inProgress pickup completed, overwrites its materials
// with the measured weights and folds the stats for both parties. The
// conditional write guarantees stats are applied exactly once: a second
// call fails ErrInvalidState before any aggregation runs. An empty uid is
// the system actor; otherwise the caller must be the assignee.
func (s *Pickup) Complete(ctx context.Context, uid, pickupID string, materials []entities.MaterialEntry) error {
	if !isValidPickupID(pickupID) {
		return fmt.Errorf("%w: pickup id is required", ErrValidation)
	}
	if err := s.validateCompletionMaterials(materials); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		pickupEntity, err := s.repository.GetByID(ctx, pickupID)
		if err != nil {
			return fmt.Errorf("get pickup: %w", err)
		}

		if pickupEntity.Status == entities.PickupCompleted {
			return fmt.Errorf("%w: pickup is already completed", ErrInvalidState)
		}
		if uid != "" && (pickupEntity.AcceptedBy == nil || pickupEntity.AcceptedBy.UserID != uid) {
			return fmt.Errorf("%w: only the assigned driver completes a pickup", ErrUnauthorized)
		}

		if err := s.repository.SetCompleted(ctx, pickupID, materials); err != nil {
			return fmt.Errorf("complete pickup: %w", err)
		}

		if err := s.profileService.ApplyCompletion(ctx, pickupEntity.CreatedBy.UserID, materials); err != nil {
			return fmt.Errorf("apply creator stats: %w", err)
		}
		if err := s.profileService.ApplyCompletion(ctx, pickupEntity.AcceptedBy.UserID, materials); err != nil {
			return fmt.Errorf("apply driver stats: %w", err)
		}
		return nil
	})
}

// UpdateField is the generic single-field mutation. Status and assignee
// writes are dispatched onto the lifecycle transitions so the state
// machine stays the single source of truth.
func (s *Pickup) UpdateField(ctx context.Context, uid, pickupID, field string, value interface{}, op entities.FieldOpType) (*entities.Pickup, error) {
	if !isValidUID(uid) {
		return nil, fmt.Errorf("%w: caller uid is required", ErrValidation)
	}
	if !isValidPickupID(pickupID) {
		return nil, fmt.Errorf("%w: pickup id is required", ErrValidation)
	}
	switch op {
	case entities.FieldOpUpdate, entities.FieldOpSet, entities.FieldOpAddToArray, entities.FieldOpRemoveFromArray:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}

	var updated *entities.Pickup
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pickupEntity, role, err := s.resolveCaller(ctx, uid, pickupID)
		if err != nil {
			return err
		}

		if !IsKnownField(field) {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		if !FieldAllowed(role, field) {
			return fmt.Errorf("%w: role %s cannot write %s", ErrUnauthorized, role, field)
		}
		if pickupEntity.Status.IsTerminal() {
			return fmt.Errorf("%w: pickup is %s", ErrInvalidState, pickupEntity.Status)
		}

		switch field {
		case FieldStatus, FieldAcceptedBy:
			if err := s.applyLifecycleField(ctx, uid, pickupEntity, field, value); err != nil {
				return err
			}
		case FieldMaterials:
			if op == entities.FieldOpAddToArray || op == entities.FieldOpRemoveFromArray {
				entry, err := coerceMaterialEntry(value)
				if err != nil {
					return err
				}
				if op == entities.FieldOpAddToArray {
					if err := s.validateMaterialEntry(entry, pickupEntity.DisclaimerAccepted); err != nil {
						return err
					}
					updated, err = s.repository.AppendMaterial(ctx, pickupID, entry)
				} else {
					if wouldEmptyMaterials(pickupEntity.Materials, entry) {
						return fmt.Errorf("%w: materials cannot be emptied", ErrValidation)
					}
					updated, err = s.repository.RemoveMaterial(ctx, pickupID, entry)
				}
				if err != nil {
					return fmt.Errorf("update materials: %w", err)
				}
				return nil
			}
			fallthrough
		default:
			if op == entities.FieldOpAddToArray || op == entities.FieldOpRemoveFromArray {
				return fmt.Errorf("%w: %s is not an array field", ErrValidation, field)
			}
			modify := entities.PickupModify{ID: &pickupID}
			if err := setModifyField(&modify, field, value); err != nil {
				return err
			}
			if err := s.validatePatchedMaterials(pickupEntity, modify); err != nil {
				return err
			}
			updated, err = s.repository.Update(ctx, modify)
			if err != nil {
				return fmt.Errorf("update pickup: %w", err)
			}
			return nil
		}

		updated, err = s.repository.GetByID(ctx, pickupID)
		if err != nil {
			return fmt.Errorf("reload pickup: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateBulk applies a patch of content fields under the same field-level
// authorization as UpdateField; the whole patch is rejected if any field
// is outside the caller's set.
func (s *Pickup) UpdateBulk(ctx context.Context, uid, pickupID string, updates map[string]interface{}) (*entities.Pickup, error) {
	if !isValidUID(uid) {
		return nil, fmt.Errorf("%w: caller uid is required", ErrValidation)
	}
	if !isValidPickupID(pickupID) {
		return nil, fmt.Errorf("%w: pickup id is required", ErrValidation)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: empty patch", ErrValidation)
	}

	var updated *entities.Pickup
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pickupEntity, role, err := s.resolveCaller(ctx, uid, pickupID)
		if err != nil {
			return err
		}
		if pickupEntity.Status.IsTerminal() {
			return fmt.Errorf("%w: pickup is %s", ErrInvalidState, pickupEntity.Status)
		}

		modify := entities.PickupModify{ID: &pickupID}
		for field, value := range updates {
			if !IsKnownField(field) {
				return fmt.Errorf("%w: %q", ErrUnknownField, field)
			}
			if !FieldAllowed(role, field) {
				return fmt.Errorf("%w: role %s cannot write %s", ErrUnauthorized, role, field)
			}
			if field == FieldStatus || field == FieldAcceptedBy {
				return fmt.Errorf("%w: %s changes only through transitions", ErrValidation, field)
			}
			if err := setModifyField(&modify, field, value); err != nil {
				return err
			}
		}

		if err := s.validatePatchedMaterials(pickupEntity, modify); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update pickup: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a pickup and prunes the creator's membership reference,
// together or not at all. Creator-only; terminal pickups are retained.
func (s *Pickup) Delete(ctx context.Context, uid, pickupID string) error {
	if !isValidUID(uid) {
		return fmt.Errorf("%w: caller uid is required", ErrValidation)
	}
	if !isValidPickupID(pickupID) {
		return fmt.Errorf("%w: pickup id is required", ErrValidation)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		pickupEntity, err := s.repository.GetByID(ctx, pickupID)
		if err != nil {
			return fmt.Errorf("get pickup: %w", err)
		}
		if pickupEntity.CreatedBy.UserID != uid {
			return fmt.Errorf("%w: only the creator deletes a pickup", ErrUnauthorized)
		}
		if pickupEntity.Status.IsTerminal() {
			return fmt.Errorf("%w: pickup is %s", ErrInvalidState, pickupEntity.Status)
		}

		if err := s.repository.Delete(ctx, pickupID); err != nil {
			return fmt.Errorf("delete pickup: %w", err)
		}
		if err := s.profileService.RemovePickupID(ctx, uid, pickupID); err != nil {
			return fmt.Errorf("remove profile membership: %w", err)
		}
		return nil
	})
}

// ReleaseExpiredAcceptances is the system actor's cancel-acceptance: any
// pickup still accepted after its scheduled slot goes back to the pool.
func (s *Pickup) ReleaseExpiredAcceptances(ctx context.Context) (int64, error) {
	released, err := s.repository.UpdatePendingWhereAcceptanceExpired(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("acceptance release timed out: %w", err)
		}
		return 0, fmt.Errorf("acceptance release: %w", err)
	}
	return released, nil
}

func (s *Pickup) resolveCaller(ctx context.Context, uid, pickupID string) (*entities.Pickup, RoleType, error) {
	pickupEntity, err := s.repository.GetByID(ctx, pickupID)
	if err != nil {
		return nil, RoleNone, fmt.Errorf("get pickup: %w", err)
	}

	profile, err := s.profileService.GetProfile(ctx, uid)
	if err != nil {
		return nil, RoleNone, fmt.Errorf("get caller profile: %w", err)
	}

	role := ResolveRole(uid, pickupEntity, profile.AccountType)
	if role == RoleNone {
		return nil, RoleNone, fmt.Errorf("%w: caller is neither creator nor driver", ErrUnauthorized)
	}
	return pickupEntity, role, nil
}

// applyLifecycleField maps legacy generic writes of status/acceptedBy onto
// the corresponding transitions.
func (s *Pickup) applyLifecycleField(ctx context.Context, uid string, pickupEntity *entities.Pickup, field string, value interface{}) error {
	switch field {
	case FieldStatus:
		status, err := coerceString(field, value)
		if err != nil {
			return err
		}
		switch entities.PickupStatusType(status) {
		case entities.PickupAccepted:
			profile, err := s.profileService.GetProfile(ctx, uid)
			if err != nil {
				return fmt.Errorf("get driver profile: %w", err)
			}
			if err := s.repository.SetAccepted(ctx, pickupEntity.ID, profile.Ref()); err != nil {
				return fmt.Errorf("accept pickup: %w", err)
			}
		case entities.PickupInProgress:
			if err := s.repository.SetInProgress(ctx, pickupEntity.ID, uid); err != nil {
				return fmt.Errorf("start pickup: %w", err)
			}
		case entities.PickupPending:
			if err := s.repository.SetPending(ctx, pickupEntity.ID, uid); err != nil {
				return fmt.Errorf("cancel acceptance: %w", err)
			}
		case entities.PickupCompleted:
			return fmt.Errorf("%w: completion requires measured materials", ErrValidation)
		default:
			return fmt.Errorf("%w: status %q", ErrValidation, status)
		}
		return nil

	case FieldAcceptedBy:
		if value == nil {
			if err := s.repository.SetPending(ctx, pickupEntity.ID, uid); err != nil {
				return fmt.Errorf("cancel acceptance: %w", err)
			}
			return nil
		}
		assignee, err := coerceString(field, value)
		if err != nil {
			return err
		}
		if assignee != uid {
			return fmt.Errorf("%w: drivers assign only themselves", ErrUnauthorized)
		}
		profile, err := s.profileService.GetProfile(ctx, uid)
		if err != nil {
			return fmt.Errorf("get driver profile: %w", err)
		}
		if err := s.repository.SetAccepted(ctx, pickupEntity.ID, profile.Ref()); err != nil {
			return fmt.Errorf("accept pickup: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}
