package models

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// PrivilegeTier ranks roles for membership authorization. The tier is
// derived from the role name once, at creation time, so authorization
// checks never compare name strings.
type PrivilegeTier int

const (
	TierMember PrivilegeTier = iota
	TierModerator
	TierAdmin
)

// Reserved role names. Only these two names confer privilege; every other
// name (case-sensitive) maps to TierMember.
const (
	RoleCommunityAdmin     = "Community Admin"
	RoleCommunityModerator = "Community Moderator"
	RoleMember             = "Member"
)

func TierFor(name string) PrivilegeTier {
	switch name {
	case RoleCommunityAdmin:
		return TierAdmin
	case RoleCommunityModerator:
		return TierModerator
	default:
		return TierMember
	}
}

func (t PrivilegeTier) Privileged() bool {
	return t >= TierModerator
}

type Role struct {
	ID        string        `json:"id" gorm:"primaryKey;size:20"`
	Name      string        `json:"name" gorm:"uniqueIndex;not null"`
	Scopes    []string      `json:"-" gorm:"serializer:json"`
	Tier      PrivilegeTier `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = xid.New().String()
	}
	r.Tier = TierFor(r.Name)
	return nil
}

func (r *Role) Privileged() bool {
	return r.Tier.Privileged()
}
