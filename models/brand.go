package models

import "time"

// Brand is a logo shown on the brands page. Logos are uploaded by admins and
// served from the uploads directory.
type Brand struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	LogoURL   string `json:"logo_url"`
	CreatedAt time.Time
}
