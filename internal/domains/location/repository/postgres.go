package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creator-portal-backend/internal/domains/location/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const locationColumns = `id, name, is_predefined, is_active, created_by, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entry *model.LocationEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO locations (id, name, is_predefined, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Name, entry.IsPredefined, entry.IsActive,
		entry.CreatedBy, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique violation trên LOWER(name) index
		// Hai request tạo cùng tên đồng thời: constraint đóng race,
		// caller bắt ErrLocationExists và re-fetch entry thắng cuộc
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrLocationExists
		}
		return fmt.Errorf("failed to insert location: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LocationEntry, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	entry, err := scanLocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return entry, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.LocationEntry, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE LOWER(name) = LOWER($1)`

	entry, err := scanLocation(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to find location by name: %w", err)
	}
	return entry, nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.LocationEntry, error) {
	query := `SELECT ` + locationColumns + `
		FROM locations
		WHERE is_active = true
		ORDER BY is_predefined DESC, name ASC`

	return r.queryLocations(ctx, query)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.LocationEntry, error) {
	query := `SELECT ` + locationColumns + `
		FROM locations
		ORDER BY name ASC`

	return r.queryLocations(ctx, query)
}

func (r *postgresRepository) ListPredefined(ctx context.Context) ([]model.LocationEntry, error) {
	query := `SELECT ` + locationColumns + `
		FROM locations
		WHERE is_predefined = true AND is_active = true
		ORDER BY name ASC`

	return r.queryLocations(ctx, query)
}

func (r *postgresRepository) Update(ctx context.Context, entry *model.LocationEntry) error {
	entry.UpdatedAt = time.Now()

	query := `
		UPDATE locations SET
			name = $2, is_predefined = $3, is_active = $4,
			created_by = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Name, entry.IsPredefined, entry.IsActive,
		entry.CreatedBy, entry.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrLocationExists
		}
		return fmt.Errorf("failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLocationNotFound
	}
	return nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE locations SET is_active = false, updated_at = $2 WHERE id = $1",
		id, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to soft delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLocationNotFound
	}
	return nil
}

func (r *postgresRepository) queryLocations(ctx context.Context, query string) ([]model.LocationEntry, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var entries []model.LocationEntry
	for rows.Next() {
		entry, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func scanLocation(row pgx.Row) (*model.LocationEntry, error) {
	var e model.LocationEntry
	err := row.Scan(
		&e.ID, &e.Name, &e.IsPredefined, &e.IsActive,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
