package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Email     string    `gorm:"unique;not null"          json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credential keeps the password digest and role apart from the profile.
// It is never serialized to a client.
type Credential struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID       uint   `gorm:"uniqueIndex;not null"     json:"-"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:user"    json:"-"`
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null"      json:"name"`
	Description string    `gorm:"not null"             json:"description"`
}

type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Name       string    `gorm:"unique;not null"          json:"name"`
	Image      string    `json:"image"`
	Price      string    `gorm:"not null"                 json:"price"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"categoryId"`
}
