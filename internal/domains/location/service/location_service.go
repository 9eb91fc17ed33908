package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"creator-portal-backend/internal/domains/location/model"
	"creator-portal-backend/internal/domains/location/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type locationService struct {
	repo     repository.RepositoryInterface
	creators CreatorLocationSource
}

func NewLocationService(repo repository.RepositoryInterface, creators CreatorLocationSource) ServiceInterface {
	return &locationService{
		repo:     repo,
		creators: creators,
	}
}

// EnsureLocation - find-or-create theo tên, case-insensitive
// Mọi write path đi qua đây (admin form, CSV import) nên registry
// không bao giờ chứa hai entry chỉ khác nhau về casing
func (s *locationService) EnsureLocation(ctx context.Context, name string) (*model.LocationEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	entry, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, model.ErrLocationNotFound) {
		return nil, err
	}

	// Giữ nguyên casing của lần xuất hiện đầu tiên
	newEntry := &model.LocationEntry{
		Name:         name,
		IsPredefined: false,
		IsActive:     true,
		CreatedBy:    model.CreatedByAdmin,
	}

	if err := s.repo.Create(ctx, newEntry); err != nil {
		// Thua race với một write cùng tên: re-fetch entry đã thắng
		if errors.Is(err, model.ErrLocationExists) {
			return s.repo.FindByName(ctx, name)
		}
		return nil, err
	}

	return newEntry, nil
}

// Reconcile chạy lúc API startup: đảm bảo mọi seed name có mặt trong
// registry với đúng flags. Entry trùng tên do admin tạo trước đó bị
// force về predefined/system - seed wins.
func (s *locationService) Reconcile(ctx context.Context) error {
	for _, name := range model.PredefinedLocations {
		entry, err := s.repo.FindByName(ctx, name)
		if err != nil {
			if !errors.Is(err, model.ErrLocationNotFound) {
				return fmt.Errorf("reconcile %q: %w", name, err)
			}

			seeded := &model.LocationEntry{
				Name:         name,
				IsPredefined: true,
				IsActive:     true,
				CreatedBy:    model.CreatedBySystem,
			}
			if err := s.repo.Create(ctx, seeded); err != nil {
				if errors.Is(err, model.ErrLocationExists) {
					continue // ai đó vừa tạo, lần reconcile sau sẽ sửa flags
				}
				return fmt.Errorf("reconcile %q: %w", name, err)
			}
			log.Debug().Str("location", name).Msg("Seeded predefined location")
			continue
		}

		if entry.IsPredefined && entry.IsActive && entry.CreatedBy == model.CreatedBySystem {
			continue
		}

		entry.IsPredefined = true
		entry.IsActive = true
		entry.CreatedBy = model.CreatedBySystem
		if err := s.repo.Update(ctx, entry); err != nil {
			return fmt.Errorf("reconcile %q: %w", name, err)
		}
		log.Debug().Str("location", name).Msg("Reclaimed location entry as predefined")
	}

	log.Info().Int("seed_count", len(model.PredefinedLocations)).Msg("✅ Location registry reconciled")
	return nil
}

func (s *locationService) ListActive(ctx context.Context) ([]model.LocationEntry, error) {
	return s.repo.ListActive(ctx)
}

func (s *locationService) ListPredefined(ctx context.Context) ([]model.LocationEntry, error) {
	return s.repo.ListPredefined(ctx)
}

// ListDistinct union tên registry (kể cả entry đã deactivate) với
// location values đang dùng trên creators - deactivate một entry không
// được làm filter dropdown mất giá trị mà creators vẫn mang
func (s *locationService) ListDistinct(ctx context.Context) ([]string, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	inUse, err := s.creators.DistinctLocations(ctx)
	if err != nil {
		return nil, err
	}

	// Union case-insensitive, registry casing thắng
	seen := make(map[string]string, len(entries)+len(inUse))
	for _, e := range entries {
		seen[strings.ToLower(e.Name)] = e.Name
	}
	for _, name := range inUse {
		key := strings.ToLower(name)
		if _, ok := seen[key]; !ok {
			seen[key] = name
		}
	}

	names := make([]string, 0, len(seen))
	for _, name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Create thêm một predefined location mới vào dropdown
// (khác EnsureLocation: tên trùng là conflict, không phải find)
func (s *locationService) Create(ctx context.Context, req model.CreateLocationRequest) (*model.LocationEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &model.LocationEntry{
		Name:         strings.TrimSpace(req.Name),
		IsPredefined: true,
		IsActive:     true,
		CreatedBy:    model.CreatedByAdmin,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, req model.UpdateLocationRequest) (*model.LocationEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) != "" {
		entry.Name = strings.TrimSpace(req.Name)
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete deactivate một entry theo id (predefined lẫn custom)
// Soft delete: entry vẫn còn cho creators đang reference; reconcile
// lần sau sẽ reactivate các seed names
func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
