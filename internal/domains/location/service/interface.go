package service

import (
	"context"

	"creator-portal-backend/internal/domains/location/model"

	"github.com/google/uuid"
)

// CreatorLocationSource cung cấp location values đang được creators sử dụng
// (creator repository implement sẵn, wire ở container)
type CreatorLocationSource interface {
	DistinctLocations(ctx context.Context) ([]string, error)
}

// ServiceInterface defines location registry business logic
type ServiceInterface interface {
	// EnsureLocation idempotent find-or-create theo tên (case-insensitive)
	// Tên rỗng sau khi trim -> no-op, trả nil entry
	EnsureLocation(ctx context.Context, name string) (*model.LocationEntry, error)

	// Reconcile đồng bộ seed list vào registry lúc startup; seed wins
	Reconcile(ctx context.Context) error

	ListActive(ctx context.Context) ([]model.LocationEntry, error)
	ListPredefined(ctx context.Context) ([]model.LocationEntry, error)

	// ListDistinct union tên registry đang active với locations thực tế
	// trên creators (giá trị import cũ có thể chưa có trong registry)
	ListDistinct(ctx context.Context) ([]string, error)

	Create(ctx context.Context, req model.CreateLocationRequest) (*model.LocationEntry, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateLocationRequest) (*model.LocationEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
