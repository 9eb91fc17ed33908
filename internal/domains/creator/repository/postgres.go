package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"creator-portal-backend/internal/domains/creator/model"
	"creator-portal-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// creatorColumns - thứ tự cố định dùng chung cho SELECT/scan
const creatorColumns = `
	id, name, genre, platform, social_link, avatar, avatar_key,
	location_name, phone_number, media_kit, bio,
	followers, total_views, average_views, reels, media,
	created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates creator repository trên pgx pool
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, creator *model.Creator) error {
	if creator.ID == uuid.Nil {
		creator.ID = uuid.New()
	}
	now := time.Now()
	creator.CreatedAt = now
	creator.UpdatedAt = now

	mediaJSON, err := json.Marshal(creator.Details.Media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}

	query := `
		INSERT INTO creators (
			id, name, genre, platform, social_link, avatar, avatar_key,
			location_name, phone_number, media_kit, bio,
			followers, total_views, average_views, reels, media,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18
		)`

	_, err = r.pool.Exec(ctx, query,
		creator.ID, creator.Name, creator.Genre, creator.Platform,
		creator.SocialLink, creator.Avatar, creator.AvatarKey,
		creator.LocationName, creator.PhoneNumber, creator.MediaKit,
		creator.Details.Bio,
		creator.Details.Analytics.Followers,
		creator.Details.Analytics.TotalViews,
		creator.Details.Analytics.AverageViews,
		pq.Array(creator.Details.Reels), mediaJSON,
		creator.CreatedAt, creator.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert creator: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	creator, err := scanCreator(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	return creator, nil
}

// sortColumns map API sort fields -> DB columns (whitelist, tránh SQL injection)
var sortColumns = map[string]string{
	model.SortByName:       "name",
	model.SortByFollowers:  "followers",
	model.SortByTotalViews: "total_views",
	model.SortByCreatedAt:  "created_at",
}

func (r *postgresRepository) List(ctx context.Context, req model.ListCreatorsRequest) ([]model.Creator, int, error) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if req.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR genre ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+req.Query+"%")
		argIdx++
	}
	if req.Platform != "" {
		conditions = append(conditions, fmt.Sprintf("platform = $%d", argIdx))
		args = append(args, req.Platform)
		argIdx++
	}
	if req.Location != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(location_name) = LOWER($%d)", argIdx))
		args = append(args, req.Location)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total (cho pagination meta)
	var total int
	countQuery := "SELECT COUNT(*) FROM creators" + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count creators: %w", err)
	}

	sortCol := sortColumns[req.SortBy]
	if sortCol == "" {
		sortCol = "created_at"
	}
	sortDir := "DESC"
	if req.SortOrder == "asc" {
		sortDir = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM creators%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		creatorColumns, whereClause, sortCol, sortDir, argIdx, argIdx+1,
	)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list creators: %w", err)
	}
	defer rows.Close()

	var creators []model.Creator
	for rows.Next() {
		creator, err := scanCreator(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan creator: %w", err)
		}
		creators = append(creators, *creator)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate creators: %w", err)
	}

	return creators, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, creator *model.Creator) error {
	creator.UpdatedAt = time.Now()

	mediaJSON, err := json.Marshal(creator.Details.Media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}

	query := `
		UPDATE creators SET
			name = $2, genre = $3, platform = $4, social_link = $5,
			avatar = $6, avatar_key = $7, location_name = $8,
			phone_number = $9, media_kit = $10, bio = $11,
			followers = $12, total_views = $13, average_views = $14,
			reels = $15, media = $16, updated_at = $17
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		creator.ID, creator.Name, creator.Genre, creator.Platform,
		creator.SocialLink, creator.Avatar, creator.AvatarKey,
		creator.LocationName, creator.PhoneNumber, creator.MediaKit,
		creator.Details.Bio,
		creator.Details.Analytics.Followers,
		creator.Details.Analytics.TotalViews,
		creator.Details.Analytics.AverageViews,
		pq.Array(creator.Details.Reels), mediaJSON,
		creator.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update creator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCreatorNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM creators WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete creator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCreatorNotFound
	}
	return nil
}

// MutateMedia lock row bằng FOR UPDATE, áp mutation rồi persist media
// trong cùng transaction
func (r *postgresRepository) MutateMedia(ctx context.Context, id uuid.UUID, fn func(*model.Creator) error) (*model.Creator, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Creator, error) {
		query := `SELECT ` + creatorColumns + ` FROM creators WHERE id = $1 FOR UPDATE`

		creator, err := scanCreator(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrCreatorNotFound
			}
			return nil, fmt.Errorf("failed to lock creator: %w", err)
		}

		if err := fn(creator); err != nil {
			return nil, err
		}

		mediaJSON, err := json.Marshal(creator.Details.Media)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal media: %w", err)
		}

		creator.UpdatedAt = time.Now()
		_, err = tx.Exec(ctx,
			"UPDATE creators SET media = $2, updated_at = $3 WHERE id = $1",
			id, mediaJSON, creator.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update media: %w", err)
		}

		return creator, nil
	})
}

func (r *postgresRepository) DistinctLocations(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT DISTINCT location_name FROM creators WHERE location_name <> '' ORDER BY location_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct locations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *postgresRepository) CountByPlatform(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT platform, COUNT(*) FROM creators GROUP BY platform")
	if err != nil {
		return nil, fmt.Errorf("failed to count by platform: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var platform string
		var count int64
		if err := rows.Scan(&platform, &count); err != nil {
			return nil, fmt.Errorf("failed to scan platform count: %w", err)
		}
		counts[platform] = count
	}
	return counts, rows.Err()
}

func (r *postgresRepository) AnalyticsTotals(ctx context.Context) (model.AnalyticsTotals, error) {
	var totals model.AnalyticsTotals
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(followers), 0), COALESCE(SUM(total_views), 0) FROM creators",
	).Scan(&totals.Creators, &totals.SumFollowers, &totals.SumTotalViews)
	if err != nil {
		return totals, fmt.Errorf("failed to query analytics totals: %w", err)
	}
	return totals, nil
}

// scanCreator scan một row theo creatorColumns order
func scanCreator(row pgx.Row) (*model.Creator, error) {
	var c model.Creator
	var mediaJSON []byte

	err := row.Scan(
		&c.ID, &c.Name, &c.Genre, &c.Platform, &c.SocialLink,
		&c.Avatar, &c.AvatarKey, &c.LocationName, &c.PhoneNumber,
		&c.MediaKit, &c.Details.Bio,
		&c.Details.Analytics.Followers,
		&c.Details.Analytics.TotalViews,
		&c.Details.Analytics.AverageViews,
		pq.Array(&c.Details.Reels), &mediaJSON,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(mediaJSON) > 0 {
		if err := json.Unmarshal(mediaJSON, &c.Details.Media); err != nil {
			return nil, fmt.Errorf("failed to unmarshal media: %w", err)
		}
	}
	if c.Details.Media == nil {
		c.Details.Media = []model.MediaItem{}
	}
	if c.Details.Reels == nil {
		c.Details.Reels = []string{}
	}

	return &c, nil
}
