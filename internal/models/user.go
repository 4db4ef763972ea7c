package models

import "time"

// User is an account that owns research projects. Accounts are created by
// the initdb bootstrap, never through the public API, and never deleted.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string     `gorm:"not null" json:"-"`
	FullName       string     `gorm:"size:255" json:"full_name"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	Researches     []Research `gorm:"foreignKey:OwnerID" json:"-"`
}
