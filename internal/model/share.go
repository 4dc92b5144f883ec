package model

import "time"

// Share grants the grantee full access to the owner's forest. Shares are
// directional: the grantee does not implicitly share back.
type Share struct {
	OwnerID   int64     `json:"owner_id"`
	GranteeID int64     `json:"grantee_id"`
	CreatedAt time.Time `json:"created_at"`

	// Joined fields (not always populated).
	OwnerUsername   string `json:"owner_username,omitempty"`
	GranteeUsername string `json:"grantee_username,omitempty"`
}

// LoginLink is a one-time passwordless login token sent by email.
type LoginLink struct {
	Token     string     `json:"token"`
	UserID    int64      `json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}
