package model

import "time"

type BlogPost struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"` // HTML
	AuthorID    string    `gorm:"type:varchar(36);not null;index" json:"author_id"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// Profile is the public side of an account; blog posts resolve their author through it.
type Profile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(255)" json:"full_name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
