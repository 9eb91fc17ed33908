package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ========================================
// CSV COLUMN RESOLUTION
// ========================================

// columnAliases map canonical field name -> ordered list các header spellings
// được chấp nhận. Match case-sensitive với header text y nguyên trong file
// (không lowercase), thứ tự = độ ưu tiên. Spelling đầu tiên là primary name
// và cũng là header của template. Thêm alias mới = thêm vào list, không
// cần sửa resolver.
var columnAliases = map[string][]string{
	"name":         {"name", "Name", "creator_name", "Creator Name"},
	"genre":        {"genre", "Genre", "category", "Category"},
	"avatar":       {"avatar", "Avatar", "avatar_url", "Avatar URL", "image", "Image"},
	"platform":     {"platform", "Platform"},
	"socialLink":   {"socialLink", "social_link", "Social Link", "link", "Link"},
	"location":     {"location", "Location", "city", "City"},
	"phoneNumber":  {"phoneNumber", "phone_number", "Phone Number", "phone", "Phone"},
	"mediaKit":     {"mediaKit", "media_kit", "Media Kit"},
	"bio":          {"bio", "Bio", "description", "Description", "about", "About"},
	"followers":    {"followers", "Followers", "follower_count", "Follower Count"},
	"totalViews":   {"totalViews", "total_views", "Total Views", "views", "Views"},
	"averageViews": {"averageViews", "average_views", "Average Views", "avg_views"},
}

// ColumnAliases exposes bảng alias (read-only dùng cho docs/tests)
func ColumnAliases(field string) []string {
	return columnAliases[field]
}

// ResolveColumn thử từng candidate key theo thứ tự, trả về value của key
// đầu tiên có mặt trong row; không key nào match -> fallback.
// Pure function, không bao giờ fail.
func ResolveColumn(row map[string]string, candidates []string, fallback string) string {
	for _, key := range candidates {
		if value, ok := row[key]; ok {
			return value
		}
	}
	return fallback
}

// ========================================
// CSV ROW MODEL
// ========================================

// CreatorCSVRow represents một row đã normalize từ CSV file
// Row field track data-row number (1-based, không tính header) cho error reporting
type CreatorCSVRow struct {
	Row          int      `json:"row"`
	Name         string   `json:"name"`
	Genre        string   `json:"genre"`
	Avatar       string   `json:"avatar"`
	Platform     string   `json:"platform"`
	SocialLink   string   `json:"socialLink"`
	Location     string   `json:"location"`
	PhoneNumber  string   `json:"phoneNumber"`
	MediaKit     string   `json:"mediaKit"`
	Bio          string   `json:"bio"`
	Followers    int64    `json:"followers"`
	TotalViews   int64    `json:"totalViews"`
	AverageViews int64    `json:"averageViews"`
	Reels        []string `json:"reels"`
}

// NormalizeRow converts một raw row (header -> cell) thành CreatorCSVRow,
// resolve alias cho từng field, áp defaults và coerce numeric cells
func NormalizeRow(rowIndex int, row map[string]string) CreatorCSVRow {
	resolve := func(field, fallback string) string {
		return ResolveColumn(row, columnAliases[field], fallback)
	}

	r := CreatorCSVRow{
		Row:          rowIndex,
		Name:         resolve("name", ""),
		Genre:        resolve("genre", ""),
		Avatar:       resolve("avatar", ""),
		Platform:     resolve("platform", ""),
		SocialLink:   resolve("socialLink", ""),
		Location:     resolve("location", ""),
		PhoneNumber:  resolve("phoneNumber", ""),
		MediaKit:     resolve("mediaKit", ""),
		Bio:          resolve("bio", ""),
		Followers:    parseCount(resolve("followers", "")),
		TotalViews:   parseCount(resolve("totalViews", "")),
		AverageViews: parseCount(resolve("averageViews", "")),
		Reels:        []string{}, // CSV import không bao giờ populate reels
	}

	// Field-specific defaults cho cells bỏ trống
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

	return r
}

// parseCount coerce một numeric cell về int64
// Cell rỗng hoặc không parse được -> 0, không phải error
// (giữ behavior gốc: malformed numbers không reject row;
// nếu muốn strict hơn thì chuyển thành validation rule thứ 3)
func parseCount(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Validate enforce required fields trên một normalized row
// Rules check theo thứ tự, first failure wins; nil = row hợp lệ
func (r CreatorCSVRow) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("Row %d: Name is required", r.Row)
	}
	if strings.TrimSpace(r.SocialLink) == "" {
		return fmt.Errorf("Row %d: Social link is required", r.Row)
	}
	return nil
}

// ToCreateRequest converts row thành request cho creator create path
// Mọi constraint còn lại (URL shape, platform enum) do create path reject
func (r CreatorCSVRow) ToCreateRequest() CreateCreatorRequest {
	req := CreateCreatorRequest{
		Name:        strings.TrimSpace(r.Name),
		Genre:       r.Genre,
		Platform:    r.Platform,
		SocialLink:  strings.TrimSpace(r.SocialLink),
		Avatar:      r.Avatar,
		Location:    r.Location,
		PhoneNumber: r.PhoneNumber,
		MediaKit:    r.MediaKit,
		Bio:         r.Bio,
		Followers:   r.Followers,
		TotalViews:  r.TotalViews,
		Reels:       r.Reels,
	}
	if r.AverageViews > 0 {
		avg := r.AverageViews
		req.AverageViews = &avg
	}
	return req
}

// ========================================
// IMPORT SUMMARY (Response)
// ========================================

// ImportSummary là response trả về sau khi import
// Shape: {message, success, created, errors, data:{createdCreators, errors}}
type ImportSummary struct {
	Message    string     `json:"message"`
	Success    bool       `json:"success"`
	Created    int        `json:"created"`
	ErrorCount int        `json:"errors"`
	Data       ImportData `json:"data"`
}

type ImportData struct {
	CreatedCreators []Creator `json:"createdCreators"`
	Errors          []string  `json:"errors"`
}

// ========================================
// TEMPLATE
// ========================================

// TemplateHeader - 12 canonical field names theo đúng thứ tự documented
var TemplateHeader = []string{
	"name", "genre", "avatar", "platform", "socialLink", "location",
	"phoneNumber", "mediaKit", "bio", "followers", "totalViews", "averageViews",
}

// GenerateTemplate emit example CSV cho users điền vào:
// header row + đúng hai example rows. Pure, không phụ thuộc live data.
func GenerateTemplate() string {
	var b strings.Builder

	b.WriteString(strings.Join(TemplateHeader, ","))
	b.WriteString("\n")
	b.WriteString("Aarav Sharma,Fashion,https://example.com/avatars/aarav.jpg,Instagram,https://instagram.com/aaravsharma,Mumbai,+91 98765 43210,https://example.com/kits/aarav.pdf,Fashion and lifestyle creator,120000,4500000,85000\n")
	b.WriteString("Meera Iyer,Tech,,YouTube,https://youtube.com/@meeraiyer,Bangalore,,,Tech reviews and tutorials,98000,2100000,60000\n")

	return b.String()
}
