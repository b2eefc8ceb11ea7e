package models

import "time"

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CreateRoleRequest struct {
	Name   string   `json:"name" validate:"required,min=2"`
	Scopes []string `json:"scopes"`
}

type CreateCommunityRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type AddMemberRequest struct {
	Community string `json:"community" validate:"required"`
	User      string `json:"user" validate:"required"`
	Role      string `json:"role" validate:"required"`
}

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Status  bool     `json:"status"`
	Content *Content `json:"content,omitempty"`
}

type Content struct {
	Meta interface{} `json:"meta,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failure response.
type ErrorResponse struct {
	Status bool       `json:"status"`
	Errors []APIError `json:"errors"`
}

type PageMeta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommunityResponse is a community with its owner expanded to {id, name}.
type CommunityResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	Owner     UserSummary `json:"owner"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CommunityMemberResponse is a membership row with user and role expanded.
type CommunityMemberResponse struct {
	ID        string      `json:"id"`
	User      UserSummary `json:"user"`
	Role      RoleSummary `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}
