package models

import "time"

// User mirrors a Firebase identity. Anonymous users are auto-provisioned on
// first visit and may be upgraded in place (same ID) by attaching credentials.
// Users are never deleted.
type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"index" json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	IsAnonymous bool   `json:"is_anonymous"`
	Cart        Cart   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
