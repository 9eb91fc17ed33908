package model

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Media types
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem thuộc sở hữu của đúng một Creator (embedded, không addressable riêng)
// ID là public identifier từ asset store, hoặc timestamp fallback
type MediaItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // image | video
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MediaTypeFor xác định type từ MIME type hoặc URL path segment
func MediaTypeFor(contentType, mediaURL string) string {
	if strings.HasPrefix(contentType, "video/") || strings.Contains(mediaURL, "/video/upload/") {
		return MediaTypeVideo
	}
	return MediaTypeImage
}

// ThumbnailFor derive thumbnail URL:
// video -> swap extension sang .jpg, image -> chính URL đó
func ThumbnailFor(mediaType, mediaURL string) string {
	if mediaType != MediaTypeVideo {
		return mediaURL
	}

	ext := path.Ext(mediaURL)
	if ext == "" {
		return mediaURL + ".jpg"
	}
	return strings.TrimSuffix(mediaURL, ext) + ".jpg"
}

// FallbackMediaID - dùng khi asset store không trả identifier
func FallbackMediaID() string {
	return fmt.Sprintf("media-%d", time.Now().UnixMilli())
}

// FindMedia tìm media item theo ID trong sequence của creator
func (c *Creator) FindMedia(mediaID string) (MediaItem, bool) {
	for _, m := range c.Details.Media {
		if m.ID == mediaID {
			return m, true
		}
	}
	return MediaItem{}, false
}

// AddMedia append item vào media sequence
// Invariant: ID unique trong phạm vi một creator
func (c *Creator) AddMedia(item MediaItem) error {
	if _, exists := c.FindMedia(item.ID); exists {
		return ErrDuplicateMediaID
	}
	c.Details.Media = append(c.Details.Media, item)
	return nil
}

// RemoveMedia xóa item theo ID, returns item đã xóa
func (c *Creator) RemoveMedia(mediaID string) (MediaItem, bool) {
	for i, m := range c.Details.Media {
		if m.ID == mediaID {
			c.Details.Media = append(c.Details.Media[:i], c.Details.Media[i+1:]...)
			return m, true
		}
	}
	return MediaItem{}, false
}
