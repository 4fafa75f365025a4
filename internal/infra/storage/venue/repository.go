package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с площадками и залами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"city",
		"manager_ids",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		pq.Array(&venue.ManagerIDs),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}

// GetSpace получает зал по ID вместе с именем площадки
func (r *Repository) GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.venue_id",
		"v.name AS venue_name",
		"s.name",
		"s.capacity",
		"s.created_at",
		"s.updated_at",
	).
		From("spaces s").
		Join("venues v ON v.id = s.venue_id").
		Where(squirrel.Eq{"s.id": spaceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpace - build select query: %v", ErrBuildQuery, err)
	}

	var space domain.Space
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&space.VenueID,
		&space.VenueName,
		&space.Name,
		&space.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpace - scan space: %v", ErrScanRow, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// ListSpaces получает все залы площадки
func (r *Repository) ListSpaces(ctx context.Context, venueID int64) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.venue_id",
		"v.name AS venue_name",
		"s.name",
		"s.capacity",
		"s.created_at",
		"s.updated_at",
	).
		From("spaces s").
		Join("venues v ON v.id = s.venue_id").
		Where(squirrel.Eq{"s.venue_id": venueID}).
		OrderBy("s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		var space domain.Space
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&space.ID,
			&space.VenueID,
			&space.VenueName,
			&space.Name,
			&space.Capacity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSpaces - scan space row: %v", ErrScanRow, err)
		}

		space.CreatedAt = createdAt.Time
		space.UpdatedAt = updatedAt.Time
		spaces = append(spaces, &space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - iterate rows: %v", ErrScanRow, err)
	}

	return spaces, nil
}
