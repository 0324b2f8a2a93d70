package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/profile"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByUID(ctx context.Context, uid string) (*entities.Profile, error) {
	query := `
		SELECT p.uid, p.display_name, p.email, p.photo_url, p.account_type,
			p.total_weight, p.completed_pickups, p.material_stats,
			COALESCE(array_agg(pp.pickup_id ORDER BY pp.added_at) FILTER (WHERE pp.pickup_id IS NOT NULL), '{}'),
			p.created_at, p.updated_at
		FROM profiles p
		LEFT JOIN profile_pickups pp ON pp.profile_uid = p.uid
		WHERE p.uid = $1
		GROUP BY p.uid
	`

	var model ProfileDB
	err := r.querier.QueryRow(ctx, query, uid).Scan(
		&model.UID,
		&model.DisplayName,
		&model.Email,
		&model.PhotoURL,
		&model.AccountType,
		&model.TotalWeight,
		&model.CompletedPickups,
		&model.MaterialStats,
		&model.Pickups,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository getbyuid error: %w", err)
	}

	profileDomain, err := ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository getbyuid error: %w", err)
	}
	return profileDomain, nil
}

func (r *Repository) AddPickupID(ctx context.Context, uid, pickupID string) error {
	query := `
		INSERT INTO profile_pickups (profile_uid, pickup_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (profile_uid, pickup_id) DO NOTHING
	`

	_, err := r.querier.Exec(ctx, query, uid, pickupID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return profile.ErrProfileNotFound
		}
		return fmt.Errorf("unexpected profile repository add pickup error: %w", err)
	}
	return nil
}

func (r *Repository) RemovePickupID(ctx context.Context, uid, pickupID string) error {
	query := `DELETE FROM profile_pickups WHERE profile_uid = $1 AND pickup_id = $2`

	_, err := r.querier.Exec(ctx, query, uid, pickupID)
	if err != nil {
		return fmt.Errorf("unexpected profile repository remove pickup error: %w", err)
	}
	return nil
}

// ApplyStatsDelta folds one completion into the running totals. The stats
// map merge happens in Go under the caller's serializable transaction, so
// concurrent completions cannot lose increments.
func (r *Repository) ApplyStatsDelta(ctx context.Context, uid string, delta entities.StatsDelta) error {
	var raw []byte
	err := r.querier.QueryRow(ctx, `SELECT material_stats FROM profiles WHERE uid = $1 FOR UPDATE`, uid).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.ErrProfileNotFound
		}
		return fmt.Errorf("unexpected profile repository apply stats error: %w", err)
	}

	materialStats := make(map[string]float64)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &materialStats); err != nil {
			return fmt.Errorf("unexpected profile repository apply stats error: %w", err)
		}
	}
	for materialType, weight := range delta.Materials {
		materialStats[materialType] += weight
	}

	merged, err := json.Marshal(materialStats)
	if err != nil {
		return fmt.Errorf("unexpected profile repository apply stats error: %w", err)
	}

	query := `
		UPDATE profiles
		SET total_weight = total_weight + $2,
			completed_pickups = completed_pickups + 1,
			material_stats = $3,
			updated_at = NOW()
		WHERE uid = $1
	`

	result, err := r.querier.Exec(ctx, query, uid, delta.TotalWeight, merged)
	if err != nil {
		return fmt.Errorf("unexpected profile repository apply stats error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}
