package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	EName         string  `gorm:"not null" json:"e_name"` // English name
	ARName        string  `json:"ar_name"`                // Arabic name
	ECategory     string  `gorm:"index" json:"e_category"`
	ARCategory    string  `json:"ar_category"`
	EDescription  string  `json:"e_description"`
	ARDescription string  `json:"ar_description"`
	Price         float64 `gorm:"not null" json:"price"`
	ImageURL      string  `json:"image_url"`
	Featured      bool    `gorm:"index" json:"featured"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Name returns the localized product name, falling back to English.
func (p Product) Name(lang string) string {
	if lang == "ar" && p.ARName != "" {
		return p.ARName
	}
	return p.EName
}
