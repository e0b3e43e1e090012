package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ReactionLike  = "like"
	ReactionLove  = "love"
	ReactionLaugh = "laugh"
	ReactionWow   = "wow"
	ReactionSad   = "sad"
	ReactionAngry = "angry"
)

var reactionTypes = map[string]struct{}{
	ReactionLike:  {},
	ReactionLove:  {},
	ReactionLaugh: {},
	ReactionWow:   {},
	ReactionSad:   {},
	ReactionAngry: {},
}

func ValidateReactionType(reactionType string) error {
	if _, ok := reactionTypes[reactionType]; !ok {
		return fmt.Errorf("%w: reaction type '%s' is not supported", ErrValidation, reactionType)
	}
	return nil
}

// Reaction is one user's reaction on one message. There is at most one per
// (target, user).
type Reaction struct {
	TargetKind ScopeKind `db:"target_kind" json:"target_kind"`
	TargetID   uuid.UUID `db:"target_id" json:"target_id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Type       string    `db:"type" json:"type"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type ReactionGroup struct {
	Type  string   `json:"type"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// GroupReactions folds reactions into per-type groups, keeping the first-seen
// order of types.
func GroupReactions(reactions []Reaction) []ReactionGroup {
	groups := make([]ReactionGroup, 0)
	index := make(map[string]int)
	for _, r := range reactions {
		i, ok := index[r.Type]
		if !ok {
			i = len(groups)
			index[r.Type] = i
			groups = append(groups, ReactionGroup{Type: r.Type, Users: []string{}})
		}
		groups[i].Count++
		groups[i].Users = append(groups[i].Users, r.UserID)
	}
	return groups
}
