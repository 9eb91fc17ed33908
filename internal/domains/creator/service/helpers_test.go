package service

import (
	"context"
	"strings"
	"time"

	"creator-portal-backend/internal/domains/creator/model"
	locmodel "creator-portal-backend/internal/domains/location/model"
	"creator-portal-backend/internal/infrastructure/storage"

	"github.com/google/uuid"
)

// fakeRepo - in-memory creator repository cho service tests
type fakeRepo struct {
	created []model.Creator

	// mutateErr giả lập persist failure trong MutateMedia
	mutateErr error
}

func (f *fakeRepo) Create(_ context.Context, creator *model.Creator) error {
	creator.CreatedAt = time.Now()
	creator.UpdatedAt = creator.CreatedAt
	f.created = append(f.created, *creator)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Creator, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			c := f.created[i]
			return &c, nil
		}
	}
	return nil, model.ErrCreatorNotFound
}

func (f *fakeRepo) List(_ context.Context, req model.ListCreatorsRequest) ([]model.Creator, int, error) {
	total := len(f.created)
	start := (req.Page - 1) * req.Limit
	if start >= total {
		return nil, total, nil
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	return append([]model.Creator(nil), f.created[start:end]...), total, nil
}

func (f *fakeRepo) Update(_ context.Context, creator *model.Creator) error {
	for i := range f.created {
		if f.created[i].ID == creator.ID {
			f.created[i] = *creator
			return nil
		}
	}
	return model.ErrCreatorNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return model.ErrCreatorNotFound
}

func (f *fakeRepo) MutateMedia(ctx context.Context, id uuid.UUID, fn func(*model.Creator) error) (*model.Creator, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for i := range f.created {
		if f.created[i].ID == id {
			if err := fn(&f.created[i]); err != nil {
				return nil, err
			}
			c := f.created[i]
			return &c, nil
		}
	}
	return nil, model.ErrCreatorNotFound
}

func (f *fakeRepo) DistinctLocations(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, c := range f.created {
		if c.LocationName != "" && !seen[c.LocationName] {
			seen[c.LocationName] = true
			names = append(names, c.LocationName)
		}
	}
	return names, nil
}

func (f *fakeRepo) CountByPlatform(context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, c := range f.created {
		counts[c.Platform]++
	}
	return counts, nil
}

func (f *fakeRepo) AnalyticsTotals(context.Context) (model.AnalyticsTotals, error) {
	var totals model.AnalyticsTotals
	totals.Creators = int64(len(f.created))
	for _, c := range f.created {
		totals.SumFollowers += c.Details.Analytics.Followers
		totals.SumTotalViews += c.Details.Analytics.TotalViews
	}
	return totals, nil
}

// fakeLocations - location service ghi lại các EnsureLocation calls
type fakeLocations struct {
	ensured []string
}

func (f *fakeLocations) EnsureLocation(_ context.Context, name string) (*locmodel.LocationEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	f.ensured = append(f.ensured, name)
	return &locmodel.LocationEntry{Name: name, IsActive: true}, nil
}

func (f *fakeLocations) Reconcile(context.Context) error { return nil }
func (f *fakeLocations) ListActive(context.Context) ([]locmodel.LocationEntry, error) {
	return nil, nil
}
func (f *fakeLocations) ListPredefined(context.Context) ([]locmodel.LocationEntry, error) {
	return nil, nil
}
func (f *fakeLocations) ListDistinct(context.Context) ([]string, error) { return nil, nil }
func (f *fakeLocations) Create(context.Context, locmodel.CreateLocationRequest) (*locmodel.LocationEntry, error) {
	return nil, nil
}
func (f *fakeLocations) Update(context.Context, uuid.UUID, locmodel.UpdateLocationRequest) (*locmodel.LocationEntry, error) {
	return nil, nil
}
func (f *fakeLocations) Delete(context.Context, uuid.UUID) error { return nil }

// fakeCache - luôn miss, mọi write là no-op
type fakeCache struct{}

func (fakeCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (fakeCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (fakeCache) Delete(context.Context, ...string) error       { return nil }
func (fakeCache) DeletePattern(context.Context, string) error   { return nil }
func (fakeCache) Ping(context.Context) error                    { return nil }

// fakeStore - in-memory ObjectStore ghi lại mọi call
type fakeStore struct {
	uploads  []string
	promotes [][2]string // {staging key, final key}
	deletes  []string

	promoteErr error
}

func (f *fakeStore) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "http://minio.local/creator-portal/" + key, nil
}

func (f *fakeStore) Promote(_ context.Context, srcKey, dstKey string) (string, error) {
	if f.promoteErr != nil {
		return "", f.promoteErr
	}
	f.promotes = append(f.promotes, [2]string{srcKey, dstKey})
	return "http://minio.local/creator-portal/" + dstKey, nil
}

func (f *fakeStore) DeleteObject(_ context.Context, key string) storage.DeleteResult {
	f.deletes = append(f.deletes, key)
	return storage.DeleteResult{Outcome: storage.DeleteOutcomeDeleted}
}

// newTestService - creator service với fakes; storage/queue nil vì
// các test này không đụng tới media/delete paths
func newTestService(repo *fakeRepo, locations *fakeLocations) *creatorService {
	return &creatorService{
		repo:      repo,
		locations: locations,
		cache:     fakeCache{},
	}
}
