package pickup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/pickup"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const pickupColumns = `id, status,
	created_by_id, created_by_name, created_by_email, created_by_photo_url,
	accepted_by_id, accepted_by_name, accepted_by_email, accepted_by_photo_url,
	address_data, pickup_date, pickup_time, pickup_note,
	materials, disclaimer_accepted, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, pickupEntity entities.Pickup) (*entities.Pickup, error) {
	materials, err := materialsFromDomain(pickupEntity.Materials)
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository create error: %w", err)
	}

	query := `INSERT INTO pickups (id, status,
			created_by_id, created_by_name, created_by_email, created_by_photo_url,
			address_data, pickup_date, pickup_time, pickup_note,
			materials, disclaimer_accepted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + pickupColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		pickupEntity.ID,
		pickupEntity.Status.String(),
		pickupEntity.CreatedBy.UserID,
		pickupEntity.CreatedBy.DisplayName,
		pickupEntity.CreatedBy.Email,
		pickupEntity.CreatedBy.PhotoURL,
		pickupEntity.AddressData,
		pickupEntity.PickupDate,
		pickupEntity.PickupTime,
		pickupEntity.PickupNote,
		materials,
		pickupEntity.DisclaimerAccepted,
		pickupEntity.CreatedAt,
		pickupEntity.UpdatedAt,
	)

	created, err := scanPickup(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, pickup.ErrConflict
		}
		return nil, fmt.Errorf("unexpected pickup repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Pickup, error) {
	query := `SELECT ` + pickupColumns + ` FROM pickups WHERE id = $1`

	found, err := scanPickup(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrPickupNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository getbyid error: %w", err)
	}
	return found, nil
}

func (r *Repository) List(ctx context.Context, filter entities.PickupFilter) ([]entities.Pickup, error) {
	builder := qb.
		Select(pickupColumns).
		From("pickups").
		OrderBy("created_at DESC")

	if filter.CreatedBy != nil {
		builder = builder.Where(sq.Eq{"created_by_id": *filter.CreatedBy})
	}
	if filter.AcceptedBy != nil {
		builder = builder.Where(sq.Eq{"accepted_by_id": *filter.AcceptedBy})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository list error: %w", err)
	}
	defer rows.Close()

	pickups := make([]entities.Pickup, 0, 8)
	for rows.Next() {
		found, err := scanPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected pickup repository list error: %w", err)
		}
		pickups = append(pickups, *found)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected pickup repository list error: %w", err)
	}
	return pickups, nil
}

func (r *Repository) Update(ctx context.Context, pickupModify entities.PickupModify) (*entities.Pickup, error) {
	builder := qb.
		Update("pickups")

	// только контентные поля; статусные переходы идут отдельными запросами
	if pickupModify.AddressData != nil {
		builder = builder.Set("address_data", *pickupModify.AddressData)
	}
	if pickupModify.PickupDate != nil {
		builder = builder.Set("pickup_date", *pickupModify.PickupDate)
	}
	if pickupModify.PickupTime != nil {
		builder = builder.Set("pickup_time", *pickupModify.PickupTime)
	}
	if pickupModify.PickupNote != nil {
		builder = builder.Set("pickup_note", *pickupModify.PickupNote)
	}
	if pickupModify.DisclaimerAccepted != nil {
		builder = builder.Set("disclaimer_accepted", *pickupModify.DisclaimerAccepted)
	}
	if pickupModify.Materials != nil {
		materials, err := materialsFromDomain(*pickupModify.Materials)
		if err != nil {
			return nil, fmt.Errorf("unexpected pickup repository update error: %w", err)
		}
		builder = builder.Set("materials", materials)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": *pickupModify.ID}).
		Suffix("RETURNING " + pickupColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository update error: %w", err)
	}

	updated, err := scanPickup(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrPickupNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository update error: %w", err)
	}
	return updated, nil
}

func (r *Repository) AppendMaterial(ctx context.Context, id string, entry entities.MaterialEntry) (*entities.Pickup, error) {
	element, err := materialFromDomain(entry)
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository append material error: %w", err)
	}

	query := `UPDATE pickups
		SET materials = materials || $2::jsonb,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + pickupColumns

	updated, err := scanPickup(r.querier.QueryRow(ctx, query, id, element))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrPickupNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository append material error: %w", err)
	}
	return updated, nil
}

func (r *Repository) RemoveMaterial(ctx context.Context, id string, entry entities.MaterialEntry) (*entities.Pickup, error) {
	element, err := materialFromDomain(entry)
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository remove material error: %w", err)
	}

	// The EXISTS guard refuses a removal that would leave the list empty.
	query := `UPDATE pickups
		SET materials = (SELECT jsonb_agg(e) FROM jsonb_array_elements(materials) e WHERE e <> $2::jsonb),
			updated_at = NOW()
		WHERE id = $1
		  AND EXISTS (SELECT 1 FROM jsonb_array_elements(materials) e WHERE e <> $2::jsonb)
		RETURNING ` + pickupColumns

	updated, err := scanPickup(r.querier.QueryRow(ctx, query, id, element))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, _, _, probeErr := r.probeState(ctx, id); probeErr != nil {
				return nil, probeErr
			}
			return nil, pickup.ErrValidation
		}
		return nil, fmt.Errorf("unexpected pickup repository remove material error: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM pickups WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected pickup repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pickup.ErrPickupNotFound
	}
	return nil
}

func (r *Repository) CountActiveByCreator(ctx context.Context, uid string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM pickups
		WHERE created_by_id = $1
		  AND status IN ('pending', 'accepted')`

	var count int64
	err := r.querier.QueryRow(ctx, query, uid).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected pickup repository count active error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountInProgressByAssignee(ctx context.Context, uid string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM pickups
		WHERE accepted_by_id = $1
		  AND status = 'inProgress'`

	var count int64
	err := r.querier.QueryRow(ctx, query, uid).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected pickup repository count in progress error: %w", err)
	}
	return count, nil
}

// SetAccepted is the race-deciding write: it commits only while the row is
// still pending with no assignee, so exactly one of two concurrent accepts
// wins and the other maps to ErrConflict.
func (r *Repository) SetAccepted(ctx context.Context, id string, assignee entities.PartyRef) error {
	query := `UPDATE pickups
		SET status = 'accepted',
			accepted_by_id = $2,
			accepted_by_name = $3,
			accepted_by_email = $4,
			accepted_by_photo_url = $5,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		  AND accepted_by_id IS NULL`

	result, err := r.querier.Exec(ctx, query, id, assignee.UserID, assignee.DisplayName, assignee.Email, assignee.PhotoURL)
	if err != nil {
		return fmt.Errorf("unexpected pickup repository set accepted error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	status, acceptedByID, _, err := r.probeState(ctx, id)
	if err != nil {
		return err
	}
	if acceptedByID != "" || status == entities.PickupAccepted.String() || status == entities.PickupInProgress.String() {
		return pickup.ErrConflict
	}
	return pickup.ErrInvalidState
}

func (r *Repository) SetInProgress(ctx context.Context, id string, assigneeID string) error {
	query := `UPDATE pickups
		SET status = 'inProgress',
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'accepted'
		  AND accepted_by_id = $2`

	result, err := r.querier.Exec(ctx, query, id, assigneeID)
	if err != nil {
		return fmt.Errorf("unexpected pickup repository set in progress error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	status, acceptedByID, _, err := r.probeState(ctx, id)
	if err != nil {
		return err
	}
	if status == entities.PickupAccepted.String() && acceptedByID != assigneeID {
		return pickup.ErrUnauthorized
	}
	return pickup.ErrInvalidState
}

// SetPending clears the assignee and returns the pickup to the open pool.
// An empty assigneeID is the system actor and matches any assignee.
func (r *Repository) SetPending(ctx context.Context, id string, assigneeID string) error {
	query := `UPDATE pickups
		SET status = 'pending',
			accepted_by_id = NULL,
			accepted_by_name = NULL,
			accepted_by_email = NULL,
			accepted_by_photo_url = NULL,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'accepted'
		  AND ($2 = '' OR accepted_by_id = $2)`

	result, err := r.querier.Exec(ctx, query, id, assigneeID)
	if err != nil {
		return fmt.Errorf("unexpected pickup repository set pending error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	status, acceptedByID, _, err := r.probeState(ctx, id)
	if err != nil {
		return err
	}
	if status == entities.PickupAccepted.String() && acceptedByID != assigneeID {
		return pickup.ErrUnauthorized
	}
	return pickup.ErrInvalidState
}

func (r *Repository) SetCompleted(ctx context.Context, id string, materials []entities.MaterialEntry) error {
	measured, err := materialsFromDomain(materials)
	if err != nil {
		return fmt.Errorf("unexpected pickup repository set completed error: %w", err)
	}

	query := `UPDATE pickups
		SET status = 'completed',
			materials = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'inProgress'`

	result, err := r.querier.Exec(ctx, query, id, measured)
	if err != nil {
		return fmt.Errorf("unexpected pickup repository set completed error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	if _, _, _, err := r.probeState(ctx, id); err != nil {
		return err
	}
	return pickup.ErrInvalidState
}

func (r *Repository) UpdatePendingWhereAcceptanceExpired(ctx context.Context) (int64, error) {
	query := `UPDATE pickups
		SET status = 'pending',
			accepted_by_id = NULL,
			accepted_by_name = NULL,
			accepted_by_email = NULL,
			accepted_by_photo_url = NULL,
			updated_at = NOW()
		WHERE status = 'accepted'
		  AND to_timestamp(pickup_date || ' ' || pickup_time, 'YYYY-MM-DD HH24:MI') < NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected pickup repository release expired acceptances error: %w", err)
	}
	return result.RowsAffected(), nil
}

// probeState classifies a failed conditional write: gone vs. changed.
func (r *Repository) probeState(ctx context.Context, id string) (status, acceptedByID, createdByID string, err error) {
	query := `SELECT status, accepted_by_id, created_by_id FROM pickups WHERE id = $1`

	var acceptedBy sql.NullString
	err = r.querier.QueryRow(ctx, query, id).Scan(&status, &acceptedBy, &createdByID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", "", pickup.ErrPickupNotFound
		}
		return "", "", "", fmt.Errorf("unexpected pickup repository probe error: %w", err)
	}
	return status, acceptedBy.String, createdByID, nil
}

func scanPickup(row pgx.Row) (*entities.Pickup, error) {
	var model PickupDB
	err := row.Scan(
		&model.ID,
		&model.Status,
		&model.CreatedByID,
		&model.CreatedByName,
		&model.CreatedByEmail,
		&model.CreatedByPhotoURL,
		&model.AcceptedByID,
		&model.AcceptedByName,
		&model.AcceptedByEmail,
		&model.AcceptedByPhotoURL,
		&model.AddressData,
		&model.PickupDate,
		&model.PickupTime,
		&model.PickupNote,
		&model.Materials,
		&model.DisclaimerAccepted,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&model)
}
