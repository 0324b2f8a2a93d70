package profile

import (
	"context"
	"fmt"
	"strings"

	"service/internal/entities"
)

type Profile struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Profile {
	return &Profile{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Profile) GetProfile(ctx context.Context, uid string) (*entities.Profile, error) {
	if !isValidUID(uid) {
		return nil, ErrInvalidUID
	}

	profileEntity, err := s.repository.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profileEntity, nil
}

func (s *Profile) AppendPickupID(ctx context.Context, uid, pickupID string) error {
	if !isValidUID(uid) {
		return ErrInvalidUID
	}

	if err := s.repository.AddPickupID(ctx, uid, pickupID); err != nil {
		return fmt.Errorf("add pickup membership: %w", err)
	}
	return nil
}

func (s *Profile) RemovePickupID(ctx context.Context, uid, pickupID string) error {
	if !isValidUID(uid) {
		return ErrInvalidUID
	}

	if err := s.repository.RemovePickupID(ctx, uid, pickupID); err != nil {
		return fmt.Errorf("remove pickup membership: %w", err)
	}
	return nil
}

// ApplyCompletion folds one completed pickup's measured weights into the
// account's running stats. The caller is responsible for invoking it
// exactly once per party per completion; the store does not deduplicate.
func (s *Profile) ApplyCompletion(ctx context.Context, uid string, materials []entities.MaterialEntry) error {
	if !isValidUID(uid) {
		return ErrInvalidUID
	}
	if len(materials) == 0 {
		return ErrNoMaterials
	}

	delta := entities.StatsDelta{
		Materials: make(map[string]float64, len(materials)),
	}
	for _, entry := range materials {
		delta.TotalWeight += entry.Weight
		delta.Materials[entry.Type] += entry.Weight
	}

	if err := s.repository.ApplyStatsDelta(ctx, uid, delta); err != nil {
		return fmt.Errorf("apply stats delta: %w", err)
	}
	return nil
}

func isValidUID(uid string) bool {
	return strings.TrimSpace(uid) != ""
}
