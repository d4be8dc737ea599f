package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the locally persisted identity record. Token holds the single
// active session token, or nil when the user is logged out. Users are
// hard-deleted on account deletion so a stale keychain token can never
// match a removed account.
type User struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Token        *string    `gorm:"index" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ProfileImage []byte     `gorm:"type:blob" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
