package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		url         string
		want        string
	}{
		{"video mime", "video/mp4", "http://host/b/creators/x/media/1.mp4", MediaTypeVideo},
		{"video url segment", "", "http://host/video/upload/abc.mov", MediaTypeVideo},
		{"image mime", "image/jpeg", "http://host/b/creators/x/media/1.jpg", MediaTypeImage},
		{"unknown defaults to image", "application/octet-stream", "http://host/b/file.bin", MediaTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaTypeFor(tt.contentType, tt.url))
		})
	}
}

func TestThumbnailFor(t *testing.T) {
	t.Run("image thumbnail is the url itself", func(t *testing.T) {
		url := "http://host/b/creators/x/media/1.jpg"
		assert.Equal(t, url, ThumbnailFor(MediaTypeImage, url))
	})

	t.Run("video swaps extension to jpg", func(t *testing.T) {
		got := ThumbnailFor(MediaTypeVideo, "http://host/b/creators/x/media/1.mp4")
		assert.Equal(t, "http://host/b/creators/x/media/1.jpg", got)
	})

	t.Run("video without extension appends jpg", func(t *testing.T) {
		got := ThumbnailFor(MediaTypeVideo, "http://host/b/creators/x/media/clip")
		assert.Equal(t, "http://host/b/creators/x/media/clip.jpg", got)
	})
}

func TestDeriveAssetKey(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"two segments minus extension", "http://localhost:9000/bucket/creators/abc/avatar.jpg", "abc/avatar"},
		{"single segment", "http://host/avatar.png", "avatar"},
		{"empty url", "", ""},
		{"blank url", "   ", ""},
		{"no extension", "http://host/folder/avatar", "folder/avatar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAssetKey(tt.url))
		})
	}
}

func TestSetAvatarRecomputesKey(t *testing.T) {
	var c Creator
	c.SetAvatar("http://localhost:9000/bucket/creators/xyz/avatar-123.jpg")
	assert.Equal(t, "xyz/avatar-123", c.AvatarKey)

	c.SetAvatar("")
	assert.Empty(t, c.AvatarKey)
}

func TestCreatorMediaSequence(t *testing.T) {
	c := Creator{}
	first := MediaItem{ID: "creators/x/media/1.jpg", Type: MediaTypeImage, CreatedAt: time.Now()}
	second := MediaItem{ID: "creators/x/media/2.mp4", Type: MediaTypeVideo, CreatedAt: time.Now()}

	require.NoError(t, c.AddMedia(first))
	require.NoError(t, c.AddMedia(second))

	t.Run("duplicate id rejected", func(t *testing.T) {
		err := c.AddMedia(MediaItem{ID: first.ID})
		assert.ErrorIs(t, err, ErrDuplicateMediaID)
		assert.Len(t, c.Details.Media, 2)
	})

	t.Run("find by id", func(t *testing.T) {
		got, found := c.FindMedia(second.ID)
		require.True(t, found)
		assert.Equal(t, MediaTypeVideo, got.Type)
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		removed, found := c.RemoveMedia(first.ID)
		require.True(t, found)
		assert.Equal(t, first.ID, removed.ID)
		require.Len(t, c.Details.Media, 1)
		assert.Equal(t, second.ID, c.Details.Media[0].ID)
	})

	t.Run("remove unknown id", func(t *testing.T) {
		_, found := c.RemoveMedia("creators/x/media/ghost.jpg")
		assert.False(t, found)
	})
}
