package models

import "rolecrm/internal/access"

// User represents a directory entry that can sign in to the CRM.
type User struct {
	Base
	Username          string      `gorm:"uniqueIndex;not null" json:"username"`
	Password          string      `gorm:"not null" json:"-"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Role              access.Role `gorm:"not null" json:"role"`
	AllowedCategories []string    `gorm:"serializer:json" json:"allowed_categories"`
	IsActive          bool        `gorm:"default:true" json:"is_active"`
}

// Identity returns the session identity for u.
func (u *User) Identity() access.Identity {
	categories := make([]string, len(u.AllowedCategories))
	copy(categories, u.AllowedCategories)
	return access.Identity{
		ID:                u.ID,
		Username:          u.Username,
		Name:              u.Name,
		Role:              u.Role,
		AllowedCategories: categories,
	}
}
