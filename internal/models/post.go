package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"type:varchar(100);not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	UserID    uint64         `gorm:"not null" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author User `gorm:"foreignKey:UserID" json:"author,omitempty"`
}
