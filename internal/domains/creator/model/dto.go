package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ========================================
// CREATOR DTOs
// ========================================

// CreateCreatorRequest - admin form submission hoặc một CSV row đã normalize
// Schema-level constraints (URL shape, platform enum) sống ở đây;
// CSV import dùng cùng một create path nên bị reject cùng một chỗ
type CreateCreatorRequest struct {
	Name         string   `json:"name" binding:"required"`
	Genre        string   `json:"genre"`
	Platform     string   `json:"platform"`
	SocialLink   string   `json:"socialLink" binding:"required"`
	Avatar       string   `json:"avatar"`
	Location     string   `json:"location"`
	PhoneNumber  string   `json:"phoneNumber"`
	MediaKit     string   `json:"mediaKit"`
	Bio          string   `json:"bio"`
	Followers    int64    `json:"followers"`
	TotalViews   int64    `json:"totalViews"`
	AverageViews *int64   `json:"averageViews"`
	Reels        []string `json:"reels"`
}

func (r CreateCreatorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Platform,
			validation.Required.Error("platform is required"),
			validation.In(Platforms...).Error("platform must be one of: Instagram, YouTube, TikTok, Twitter, Other"),
		),
		validation.Field(&r.SocialLink,
			validation.Required.Error("social link is required"),
			is.URL.Error("social link must be a valid URL"),
		),
		validation.Field(&r.Avatar,
			validation.When(r.Avatar != "", is.URL.Error("avatar must be a valid URL")),
		),
		validation.Field(&r.MediaKit,
			validation.When(r.MediaKit != "", is.URL.Error("media kit must be a valid URL")),
		),
		validation.Field(&r.Followers, validation.Min(int64(0)).Error("followers must be non-negative")),
		validation.Field(&r.TotalViews, validation.Min(int64(0)).Error("total views must be non-negative")),
		validation.Field(&r.AverageViews, validation.Min(int64(0)).Error("average views must be non-negative")),
	)
}

// ApplyDefaults điền defaults cho các field bỏ trống
// Giữ cùng semantics với CSV row normalizer
func (r *CreateCreatorRequest) ApplyDefaults() {
	if strings.TrimSpace(r.Platform) == "" {
		r.Platform = DefaultPlatform
	}
	if strings.TrimSpace(r.Genre) == "" {
		r.Genre = DefaultGenre
	}
	if strings.TrimSpace(r.Location) == "" {
		r.Location = DefaultLocation
	}
	if strings.TrimSpace(r.Avatar) == "" {
		r.Avatar = DefaultAvatarURL
	}
}

// UpdateCreatorRequest - full update qua admin edit form
type UpdateCreatorRequest struct {
	Name         string   `json:"name" binding:"required"`
	Genre        string   `json:"genre"`
	Platform     string   `json:"platform"`
	SocialLink   string   `json:"socialLink" binding:"required"`
	Avatar       string   `json:"avatar"`
	Location     string   `json:"location"`
	PhoneNumber  string   `json:"phoneNumber"`
	MediaKit     string   `json:"mediaKit"`
	Bio          string   `json:"bio"`
	Followers    int64    `json:"followers"`
	TotalViews   int64    `json:"totalViews"`
	AverageViews *int64   `json:"averageViews"`
	Reels        []string `json:"reels"`
}

func (r UpdateCreatorRequest) Validate() error {
	return CreateCreatorRequest(r).Validate()
}

// ========================================
// LISTING / FILTERING
// ========================================

// Sort fields cho public listing
const (
	SortByName       = "name"
	SortByFollowers  = "followers"
	SortByTotalViews = "totalViews"
	SortByCreatedAt  = "createdAt"
)

// ListCreatorsRequest - query params của public browsing endpoint
type ListCreatorsRequest struct {
	Query     string `form:"q"`
	Platform  string `form:"platform"`
	Location  string `form:"location"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"` // asc | desc
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// Normalize ép bounds và defaults cho pagination/sorting
func (r *ListCreatorsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}

	switch r.SortBy {
	case SortByName, SortByFollowers, SortByTotalViews, SortByCreatedAt:
	default:
		r.SortBy = SortByCreatedAt
	}

	if r.SortOrder != "asc" && r.SortOrder != "desc" {
		r.SortOrder = "desc"
	}
}

// ListCreatorsResponse - page của directory
type ListCreatorsResponse struct {
	Creators []Creator `json:"creators"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// ========================================
// ADMIN STATS
// ========================================

// StatsResponse - admin dashboard numbers
type StatsResponse struct {
	TotalCreators     int64            `json:"totalCreators"`
	ByPlatform        map[string]int64 `json:"byPlatform"`
	AverageFollowers  decimal.Decimal  `json:"averageFollowers"`
	AverageTotalViews decimal.Decimal  `json:"averageTotalViews"`
}

// AnalyticsTotals - raw sums từ repository, service chia ra averages
type AnalyticsTotals struct {
	Creators      int64
	SumFollowers  int64
	SumTotalViews int64
}

// ========================================
// MEDIA DTOs
// ========================================

// AddMediaRequest - multipart form fields đi kèm file upload
type AddMediaRequest struct {
	Caption string `form:"caption"`
}
