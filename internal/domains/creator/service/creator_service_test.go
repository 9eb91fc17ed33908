package service

import (
	"context"
	"testing"

	"creator-portal-backend/internal/domains/creator/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnsuresLocation(t *testing.T) {
	repo := &fakeRepo{}
	locations := &fakeLocations{}
	svc := newTestService(repo, locations)

	_, err := svc.Create(context.Background(), model.CreateCreatorRequest{
		Name:       "Aarav",
		Platform:   model.PlatformInstagram,
		SocialLink: "https://instagram.com/aarav",
		Location:   "Mumbai",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Mumbai"}, locations.ensured)
}

func TestCreateDerivesAvatarKey(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	created, err := svc.Create(context.Background(), model.CreateCreatorRequest{
		Name:       "Aarav",
		Platform:   model.PlatformInstagram,
		SocialLink: "https://instagram.com/aarav",
		Avatar:     "http://localhost:9000/creator-portal/creators/abc/avatar.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc/avatar", created.AvatarKey)
}

func TestCreateRejectsInvalidPlatform(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	_, err := svc.Create(context.Background(), model.CreateCreatorRequest{
		Name:       "Aarav",
		Platform:   "Friendster",
		SocialLink: "https://instagram.com/aarav",
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestListPagination(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeLocations{})
	seedCreators(t, svc, "One", "Two", "Three")

	resp, err := svc.List(context.Background(), model.ListCreatorsRequest{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Creators, 2)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.Limit)

	resp2, err := svc.List(context.Background(), model.ListCreatorsRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp2.Creators, 1)
}

func TestStats(t *testing.T) {
	t.Run("averages rounded to 2 places", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeLocations{})
		seedCreators(t, svc, "One", "Two", "Three")

		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(3), stats.TotalCreators)
		assert.Equal(t, int64(3), stats.ByPlatform[model.PlatformInstagram])
		assert.True(t, stats.AverageFollowers.Equal(decimal.NewFromInt(1000)))
		assert.True(t, stats.AverageTotalViews.Equal(decimal.NewFromInt(50000)))
	})

	t.Run("empty directory does not divide by zero", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &fakeLocations{})

		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(0), stats.TotalCreators)
		assert.True(t, stats.AverageFollowers.IsZero())
		assert.True(t, stats.AverageTotalViews.IsZero())
	})
}

func TestListCacheKeyStable(t *testing.T) {
	a := model.ListCreatorsRequest{Query: "tech", Page: 1, Limit: 20}
	b := model.ListCreatorsRequest{Query: "tech", Page: 1, Limit: 20}
	c := model.ListCreatorsRequest{Query: "tech", Page: 2, Limit: 20}

	assert.Equal(t, listCacheKey(a), listCacheKey(b))
	assert.NotEqual(t, listCacheKey(a), listCacheKey(c))
	assert.Contains(t, listCacheKey(a), listCachePrefix)
}
