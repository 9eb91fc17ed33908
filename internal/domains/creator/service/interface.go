package service

import (
	"context"
	"io"

	"creator-portal-backend/internal/domains/creator/model"

	"github.com/google/uuid"
)

// ServiceInterface defines creator business logic
type ServiceInterface interface {
	// Directory CRUD
	Create(ctx context.Context, req model.CreateCreatorRequest) (*model.Creator, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Creator, error)
	List(ctx context.Context, req model.ListCreatorsRequest) (*model.ListCreatorsResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateCreatorRequest) (*model.Creator, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Admin dashboard
	Stats(ctx context.Context) (*model.StatsResponse, error)

	// Bulk import/export pipeline
	Import(ctx context.Context, filename, contentType string, size int64, file io.Reader) (*model.ImportSummary, error)
	Template() string
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportXLSX(ctx context.Context) ([]byte, error)

	// Media gallery
	UploadAvatar(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (*model.Creator, error)
	AddMedia(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType, caption string) (*model.Creator, error)
	RemoveMedia(ctx context.Context, id uuid.UUID, mediaID string) error
}
