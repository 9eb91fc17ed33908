package repository

import (
	"context"

	"creator-portal-backend/internal/domains/creator/model"

	"github.com/google/uuid"
)

// RepositoryInterface defines creator data access
// Persistence collaborator contract: CRUD by id + các queries cho
// listing, distinct locations và admin stats
type RepositoryInterface interface {
	Create(ctx context.Context, creator *model.Creator) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Creator, error)
	List(ctx context.Context, req model.ListCreatorsRequest) ([]model.Creator, int, error)
	Update(ctx context.Context, creator *model.Creator) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MutateMedia chạy read-modify-write trên media sequence (embedded
	// jsonb) trong một transaction với row lock; hai writes đồng thời
	// không ghi đè nhau
	MutateMedia(ctx context.Context, id uuid.UUID, fn func(*model.Creator) error) (*model.Creator, error)

	// DistinctLocations - distinct-values query trên creator location field
	DistinctLocations(ctx context.Context) ([]string, error)

	// Stats queries
	CountByPlatform(ctx context.Context) (map[string]int64, error)
	AnalyticsTotals(ctx context.Context) (model.AnalyticsTotals, error)
}
