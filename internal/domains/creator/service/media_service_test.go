package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"creator-portal-backend/internal/domains/creator/model"
	"creator-portal-backend/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCreator(repo *fakeRepo) uuid.UUID {
	id := uuid.New()
	repo.created = append(repo.created, model.Creator{
		ID:       id,
		Name:     "Test Creator",
		Platform: "Instagram",
		Details: model.CreatorDetails{
			Media: []model.MediaItem{},
			Reels: []string{},
		},
	})
	return id
}

func newMediaTestService(repo *fakeRepo, store *fakeStore) *creatorService {
	svc := newTestService(repo, &fakeLocations{})
	svc.storage = store
	return svc
}

func TestAddMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("stages under temp prefix then promotes to final key", func(t *testing.T) {
		repo := &fakeRepo{}
		store := &fakeStore{}
		id := seedCreator(repo)
		svc := newMediaTestService(repo, store)

		creator, err := svc.AddMedia(ctx, id, "clip.mp4", []byte("mp4-bytes"), "video/mp4", "tour vlog")
		require.NoError(t, err)

		// Upload không bao giờ ghi thẳng vào creators/ - luôn qua staging
		require.Len(t, store.uploads, 1)
		assert.True(t, strings.HasPrefix(store.uploads[0], storage.StagingPrefix))

		require.Len(t, store.promotes, 1)
		assert.Equal(t, store.uploads[0], store.promotes[0][0])
		assert.True(t, strings.HasPrefix(store.promotes[0][1], fmt.Sprintf("creators/%s/media/", id)))

		require.Len(t, creator.Details.Media, 1)
		item := creator.Details.Media[0]
		assert.Equal(t, store.promotes[0][1], item.ID)
		assert.Contains(t, item.URL, store.promotes[0][1])
		assert.Equal(t, "video", item.Type)
		assert.Empty(t, store.deletes)
	})

	t.Run("reclaims promoted object when persist fails", func(t *testing.T) {
		repo := &fakeRepo{mutateErr: errors.New("connection reset")}
		store := &fakeStore{}
		id := seedCreator(repo)
		svc := newMediaTestService(repo, store)

		_, err := svc.AddMedia(ctx, id, "clip.mp4", []byte("mp4-bytes"), "video/mp4", "")
		require.Error(t, err)

		// Final key đã promote nên phải thu hồi ngay
		require.Len(t, store.promotes, 1)
		require.Len(t, store.deletes, 1)
		assert.Equal(t, store.promotes[0][1], store.deletes[0])
	})

	t.Run("promote failure leaves the staged object for the sweep", func(t *testing.T) {
		repo := &fakeRepo{}
		store := &fakeStore{promoteErr: errors.New("copy timeout")}
		id := seedCreator(repo)
		svc := newMediaTestService(repo, store)

		_, err := svc.AddMedia(ctx, id, "clip.mp4", []byte("mp4-bytes"), "video/mp4", "")
		require.Error(t, err)

		// Staging object nằm lại tmp/ - scheduled reaper sẽ dọn theo tuổi
		require.Len(t, store.uploads, 1)
		assert.True(t, strings.HasPrefix(store.uploads[0], storage.StagingPrefix))
		assert.Empty(t, store.deletes)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, got.Details.Media)
	})
}

func TestRemoveMedia(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{}
	store := &fakeStore{}
	id := seedCreator(repo)
	repo.created[0].Details.Media = []model.MediaItem{
		{ID: fmt.Sprintf("creators/%s/media/1.jpg", id), Type: "image", URL: "http://minio.local/x/1.jpg"},
	}
	svc := newMediaTestService(repo, store)

	mediaID := repo.created[0].Details.Media[0].ID
	require.NoError(t, svc.RemoveMedia(ctx, id, mediaID))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Details.Media)

	require.Len(t, store.deletes, 1)
	assert.Equal(t, mediaID, store.deletes[0])

	// Item không tồn tại -> ErrMediaNotFound, không gọi remote delete
	err = svc.RemoveMedia(ctx, id, "creators/nope/media/9.jpg")
	assert.ErrorIs(t, err, model.ErrMediaNotFound)
	assert.Len(t, store.deletes, 1)
}
