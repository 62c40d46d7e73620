package venue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/pkg/dbmetrics"
	"github.com/venuebook/VB-BookingService/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"address",
	"city",
	"capacity",
	"price_per_day",
	"images",
	"amenities",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	images, err := json.Marshal(venue.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal images: %v", ErrEncode, err)
	}

	venue.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("venues").
		Columns(
			"id",
			"owner_id",
			"name",
			"description",
			"address",
			"city",
			"capacity",
			"price_per_day",
			"images",
			"amenities",
		).
		Values(
			venue.ID,
			venue.OwnerID,
			venue.Name,
			venue.Description,
			venue.Address,
			venue.City,
			venue.Capacity,
			venue.PricePerDay,
			images,
			pq.Array(venue.Amenities),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return venue, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	venue, err := r.scanVenue(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %w", ErrScanRow, err)
	}

	return venue, nil
}

// GetByOwnerID получает площадки владельца, новые первыми
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVenues(rows)
}

// GetByCity получает площадки города (регистронезависимо), новые первыми
func (r *Repository) GetByCity(ctx context.Context, city string) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Expr("LOWER(city) = LOWER(?)", city)).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCity - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVenues(rows)
}

// Delete удаляет площадку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanVenue(row rowScanner) (*domain.Venue, error) {
	var venue domain.Venue
	var images []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&venue.ID,
		&venue.OwnerID,
		&venue.Name,
		&venue.Description,
		&venue.Address,
		&venue.City,
		&venue.Capacity,
		&venue.PricePerDay,
		&images,
		pq.Array(&venue.Amenities),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &venue.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %v", err)
		}
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}

func (r *Repository) scanVenues(rows *sql.Rows) ([]*domain.Venue, error) {
	venues := make([]*domain.Venue, 0)

	for rows.Next() {
		venue, err := r.scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVenues - scan row: %w", ErrScanRow, err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVenues - rows error: %w", ErrScanRow, err)
	}

	return venues, nil
}
