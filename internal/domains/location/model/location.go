package model

import (
	"time"

	"github.com/google/uuid"
)

// Nguồn tạo ra một location entry
const (
	CreatedBySystem = "system"
	CreatedByAdmin  = "admin"
)

// PredefinedLocations - seed list, reconcile vào registry lúc startup
// Seed luôn thắng: entry trùng tên sẽ bị force về predefined/system
var PredefinedLocations = []string{
	"Mumbai",
	"Delhi",
	"Bangalore",
	"Hyderabad",
	"Chennai",
	"Kolkata",
	"Pune",
	"Ahmedabad",
	"Jaipur",
	"Lucknow",
	"Other",
}

// LocationEntry là một record trong location registry
//
// DATABASE MAPPING: locations table
//   id (UUID) PK, name (unique trên LOWER(name)), is_predefined,
//   is_active, created_by, created_at, updated_at
type LocationEntry struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	IsPredefined bool      `json:"isPredefined"`
	IsActive     bool      `json:"isActive"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
