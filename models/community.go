package models

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Community is a named group of members. Owner is informational only:
// privilege decisions always flow through Member and Role, never through
// this field.
type Community struct {
	ID        string    `json:"id" gorm:"primaryKey;size:20"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	OwnerID   string    `json:"owner" gorm:"size:20;not null"`
	Owner     *User     `json:"-" gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = xid.New().String()
	}
	return nil
}
