package models

import "gorm.io/gorm"

// User is an account that can sign in and keep a shopping list.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Password string `gorm:"size:255;not null"            json:"-"` // bcrypt hash, never serialised
}
