package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"creator-portal-backend/internal/domains/creator/model"
	"creator-portal-backend/internal/domains/creator/repository"
	locationservice "creator-portal-backend/internal/domains/location/service"
	"creator-portal-backend/internal/infrastructure/queue"
	"creator-portal-backend/internal/infrastructure/storage"
	pkgcache "creator-portal-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Cache config
const (
	listCacheTTL    = 5 * time.Minute
	detailCacheTTL  = 10 * time.Minute
	listCachePrefix = "creators:list:"
	detailCacheKey  = "creators:detail:%s"
)

type creatorService struct {
	repo      repository.RepositoryInterface
	locations locationservice.ServiceInterface
	cache     pkgcache.Cache
	storage   ObjectStore
	images    *storage.ImageProcessor
	queue     *queue.Client
}

// NewCreatorService wires creator business logic với các collaborators
func NewCreatorService(
	repo repository.RepositoryInterface,
	locations locationservice.ServiceInterface,
	cache pkgcache.Cache,
	store ObjectStore,
	images *storage.ImageProcessor,
	queueClient *queue.Client,
) ServiceInterface {
	return &creatorService{
		repo:      repo,
		locations: locations,
		cache:     cache,
		storage:   store,
		images:    images,
		queue:     queueClient,
	}
}

// Create là single write path cho mọi nguồn: admin form và CSV import
// đều đi qua đây nên validation + location side effect nhất quán
func (s *creatorService) Create(ctx context.Context, req model.CreateCreatorRequest) (*model.Creator, error) {
	req.ApplyDefaults()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Registry side effect trước khi persist: location của creator
	// luôn có entry tương ứng (find-or-create, case-insensitive)
	if _, err := s.locations.EnsureLocation(ctx, req.Location); err != nil {
		return nil, fmt.Errorf("failed to ensure location: %w", err)
	}

	creator := &model.Creator{
		ID:           uuid.New(),
		Name:         req.Name,
		Genre:        req.Genre,
		Platform:     req.Platform,
		SocialLink:   req.SocialLink,
		LocationName: req.Location,
		PhoneNumber:  req.PhoneNumber,
		MediaKit:     req.MediaKit,
		Details: model.CreatorDetails{
			Bio: req.Bio,
			Analytics: model.Analytics{
				Followers:    req.Followers,
				TotalViews:   req.TotalViews,
				AverageViews: req.AverageViews,
			},
			Reels: req.Reels,
			Media: []model.MediaItem{},
		},
	}
	creator.SetAvatar(req.Avatar)

	if creator.Details.Reels == nil {
		creator.Details.Reels = []string{}
	}

	if err := s.repo.Create(ctx, creator); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	log.Info().
		Str("creator_id", creator.ID.String()).
		Str("name", creator.Name).
		Msg("Creator created")

	return creator, nil
}

func (s *creatorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Creator, error) {
	cacheKey := fmt.Sprintf(detailCacheKey, id)

	var cached model.Creator
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache get failed")
	} else if found {
		return &cached, nil
	}

	creator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, creator, detailCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache set failed")
	}

	return creator, nil
}

func (s *creatorService) List(ctx context.Context, req model.ListCreatorsRequest) (*model.ListCreatorsResponse, error) {
	req.Normalize()

	cacheKey := listCacheKey(req)

	var cached model.ListCreatorsResponse
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache get failed")
	} else if found {
		return &cached, nil
	}

	creators, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	if creators == nil {
		creators = []model.Creator{}
	}

	resp := &model.ListCreatorsResponse{
		Creators: creators,
		Total:    total,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	if err := s.cache.Set(ctx, cacheKey, resp, listCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache set failed")
	}

	return resp, nil
}

func (s *creatorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateCreatorRequest) (*model.Creator, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	creator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.locations.EnsureLocation(ctx, req.Location); err != nil {
		return nil, fmt.Errorf("failed to ensure location: %w", err)
	}

	creator.Name = req.Name
	creator.Genre = req.Genre
	creator.Platform = req.Platform
	creator.SocialLink = req.SocialLink
	creator.LocationName = req.Location
	creator.PhoneNumber = req.PhoneNumber
	creator.MediaKit = req.MediaKit
	creator.Details.Bio = req.Bio
	creator.Details.Analytics.Followers = req.Followers
	creator.Details.Analytics.TotalViews = req.TotalViews
	creator.Details.Analytics.AverageViews = req.AverageViews
	creator.SetAvatar(req.Avatar)

	if req.Reels != nil {
		creator.Details.Reels = req.Reels
	}

	if err := s.repo.Update(ctx, creator); err != nil {
		return nil, err
	}

	s.invalidateCreatorCache(ctx, id)

	return creator, nil
}

func (s *creatorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCreatorCache(ctx, id)

	// Remote cleanup là best-effort qua worker; DB đã là source of truth.
	// Enqueue fail chỉ log - orphan reaper sẽ dọn phần còn sót.
	if err := s.queue.EnqueuePurgeCreatorMedia(id.String()); err != nil {
		log.Error().Err(err).Str("creator_id", id.String()).Msg("Failed to enqueue media purge")
	}

	log.Info().Str("creator_id", id.String()).Msg("Creator deleted")
	return nil
}

func (s *creatorService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	totals, err := s.repo.AnalyticsTotals(ctx)
	if err != nil {
		return nil, err
	}

	byPlatform, err := s.repo.CountByPlatform(ctx)
	if err != nil {
		return nil, err
	}
	if byPlatform == nil {
		byPlatform = map[string]int64{}
	}

	resp := &model.StatsResponse{
		TotalCreators:     totals.Creators,
		ByPlatform:        byPlatform,
		AverageFollowers:  decimal.Zero,
		AverageTotalViews: decimal.Zero,
	}

	if totals.Creators > 0 {
		n := decimal.NewFromInt(totals.Creators)
		resp.AverageFollowers = decimal.NewFromInt(totals.SumFollowers).Div(n).Round(2)
		resp.AverageTotalViews = decimal.NewFromInt(totals.SumTotalViews).Div(n).Round(2)
	}

	return resp, nil
}

// listCacheKey hash query params thành cache key ổn định
func listCacheKey(req model.ListCreatorsRequest) string {
	raw := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d",
		req.Query, req.Platform, req.Location,
		req.SortBy, req.SortOrder, req.Page, req.Limit,
	)
	sum := md5.Sum([]byte(raw))
	return listCachePrefix + hex.EncodeToString(sum[:])
}

func (s *creatorService) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCachePrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate list cache")
	}
}

func (s *creatorService) invalidateCreatorCache(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, fmt.Sprintf(detailCacheKey, id)); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate detail cache")
	}
	s.invalidateListCache(ctx)
}
