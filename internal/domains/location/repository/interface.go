package repository

import (
	"context"

	"creator-portal-backend/internal/domains/location/model"

	"github.com/google/uuid"
)

// RepositoryInterface defines location registry data access
type RepositoryInterface interface {
	// Create insert entry mới; tên trùng (case-insensitive) -> ErrLocationExists
	Create(ctx context.Context, entry *model.LocationEntry) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.LocationEntry, error)

	// FindByName lookup case-insensitive, không match -> ErrLocationNotFound
	FindByName(ctx context.Context, name string) (*model.LocationEntry, error)

	// ListActive returns active entries, predefined trước rồi alphabetical
	ListActive(ctx context.Context) ([]model.LocationEntry, error)

	// ListAll returns mọi entry kể cả đã deactivate
	ListAll(ctx context.Context) ([]model.LocationEntry, error)

	ListPredefined(ctx context.Context) ([]model.LocationEntry, error)

	Update(ctx context.Context, entry *model.LocationEntry) error

	// SoftDelete set is_active = false, entry vẫn giữ cho creators đang reference
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
