package models

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Member grants one user one role within one community. The composite
// unique index on (user_id, community_id) is the authoritative guard
// against duplicate memberships; the application-level existence check is
// only a fast path.
type Member struct {
	ID          string     `json:"id" gorm:"primaryKey;size:20"`
	CommunityID string     `json:"community" gorm:"size:20;not null;uniqueIndex:uk_member_user_community,priority:2"`
	UserID      string     `json:"user" gorm:"size:20;not null;uniqueIndex:uk_member_user_community,priority:1"`
	RoleID      string     `json:"role" gorm:"size:20;not null"`
	Community   *Community `json:"-" gorm:"foreignKey:CommunityID"`
	User        *User      `json:"-" gorm:"foreignKey:UserID"`
	Role        *Role      `json:"-" gorm:"foreignKey:RoleID"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = xid.New().String()
	}
	return nil
}

// MemberKey identifies one (user, community) membership pair for bulk
// removal.
type MemberKey struct {
	UserID      string
	CommunityID string
}
