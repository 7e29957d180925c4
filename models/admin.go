package models

import "time"

// AdminGrant records an administrative-privilege request. Creating a grant
// triggers attaching the isAdmin custom claim to the matching identity; the
// reconciler retries rows still pending.
type AdminGrant struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex" json:"email"`
	Granted   bool       `gorm:"index" json:"granted"`
	GrantedAt *time.Time `json:"granted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
