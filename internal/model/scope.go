package model

import (
	"fmt"
	"strings"
)

type ScopeKind string

const (
	ScopeCommunity ScopeKind = "community"
	ScopeDirect    ScopeKind = "direct"
)

// Scope is either a community room or a direct conversation. For direct
// scopes ID is the conversation id.
type Scope struct {
	Kind ScopeKind `json:"kind"`
	ID   string    `json:"id"`
}

func CommunityScope(communityID string) Scope {
	return Scope{Kind: ScopeCommunity, ID: communityID}
}

func DirectScope(conversationID string) Scope {
	return Scope{Kind: ScopeDirect, ID: conversationID}
}

func (s Scope) Key() string {
	return string(s.Kind) + ":" + s.ID
}

func ParseScopeKind(raw string) (ScopeKind, error) {
	switch ScopeKind(strings.ToLower(strings.TrimSpace(raw))) {
	case ScopeCommunity:
		return ScopeCommunity, nil
	case ScopeDirect:
		return ScopeDirect, nil
	}
	return "", fmt.Errorf("%w: unknown scope kind '%s'", ErrValidation, raw)
}

type Role string

const (
	RoleNone      Role = ""
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) IsMember() bool {
	return r == RoleMember || r == RoleModerator || r == RoleAdmin
}

func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}
