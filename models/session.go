package models

import (
	"time"
)

// Session is a server-side login session. The opaque Token value is what
// clients carry as a bearer credential; nothing is encoded in it.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	Admin     Admin     `gorm:"foreignKey:AdminID" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
