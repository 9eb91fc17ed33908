package model

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Platform enum values
const (
	PlatformInstagram = "Instagram"
	PlatformYouTube   = "YouTube"
	PlatformTikTok    = "TikTok"
	PlatformTwitter   = "Twitter"
	PlatformOther     = "Other"
)

// Platforms - danh sách hợp lệ, dùng cho ozzo validation.In
var Platforms = []interface{}{
	PlatformInstagram,
	PlatformYouTube,
	PlatformTikTok,
	PlatformTwitter,
	PlatformOther,
}

// Defaults áp dụng khi admin form / CSV import bỏ trống field
const (
	DefaultPlatform  = PlatformInstagram
	DefaultGenre     = "Other"
	DefaultLocation  = "Other"
	DefaultAvatarURL = "https://ui-avatars.com/api/?name=Creator&background=random"
)

// Creator là đơn vị chính của directory
//
// DATABASE MAPPING: creators table
//   id (UUID) PK, name, genre, platform (CHECK enum), social_link,
//   avatar, avatar_key, location_name, phone_number, media_kit,
//   bio, followers, total_views, average_views, reels (text[]),
//   media (jsonb), created_at, updated_at
type Creator struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Genre        string         `json:"genre"`
	Platform     string         `json:"platform"`
	SocialLink   string         `json:"socialLink"`
	Avatar       string         `json:"avatar,omitempty"`
	AvatarKey    string         `json:"avatarKey,omitempty"` // derived, not settable
	LocationName string         `json:"locationName"`
	PhoneNumber  string         `json:"phoneNumber,omitempty"`
	MediaKit     string         `json:"mediaKit,omitempty"`
	Details      CreatorDetails `json:"details"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// CreatorDetails - nested aggregate (bio + analytics + reels + media)
type CreatorDetails struct {
	Bio       string         `json:"bio,omitempty"`
	Analytics Analytics      `json:"analytics"`
	Reels     pq.StringArray `json:"reels"`
	Media     []MediaItem    `json:"media"`
}

// Analytics - số liệu của creator trên platform
type Analytics struct {
	Followers    int64  `json:"followers"`
	TotalViews   int64  `json:"totalViews"`
	AverageViews *int64 `json:"averageViews,omitempty"`
}

// SetAvatar cập nhật avatar và recompute derived key
// AvatarKey không bao giờ được set trực tiếp từ ngoài
func (c *Creator) SetAvatar(avatarURL string) {
	c.Avatar = avatarURL
	c.AvatarKey = DeriveAssetKey(avatarURL)
}

// DeriveAssetKey tính public identifier của asset store từ avatar URL:
// hai path segments cuối, bỏ extension
// Vd: "http://host/bucket/creators/abc/avatar.jpg" -> "abc/avatar"
func DeriveAssetKey(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return ""
	}

	last := segments[len(segments)-1]
	last = strings.TrimSuffix(last, path.Ext(last))

	if len(segments) < 2 {
		return last
	}
	return segments[len(segments)-2] + "/" + last
}
