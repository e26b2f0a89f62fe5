package entity

import (
	"time"
)

// User is the identity record for a shop employee. Username and email are
// unique across all users regardless of IsActive; a deactivated user is
// excluded from default listings but stays retrievable by id.
type User struct {
	ID           string `gorm:"primaryKey"`
	ShopID       string `gorm:"not null;index"`
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	FullName     string
	Phone        string
	Role         string     `gorm:"not null;default:STAFF"`
	Permissions  []string   `gorm:"serializer:json"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// UserFilter is the explicit query predicate the repository translates
// into SQL. Search matches username, email or full name, case-insensitive.
type UserFilter struct {
	ActiveOnly bool
	Search     string
}
