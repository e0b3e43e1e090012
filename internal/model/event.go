package model

import (
	"strings"
	"time"
)

const (
	EventMessageCreated      = "message.created"
	EventMessageUpdated      = "message.updated"
	EventMessageDeleted      = "message.deleted"
	EventDirectCreated       = "direct.created"
	EventDirectUpdated       = "direct.updated"
	EventDirectDeleted       = "direct.deleted"
	EventDirectRead          = "direct.read"
	EventReactionUpdated     = "reaction.updated"
	EventNotificationCreated = "notification.created"
	EventTyping              = "typing"
)

const (
	communityRoomPrefix = "community:"
	userRoomPrefix      = "user:"
)

func CommunityRoom(communityID string) string {
	return communityRoomPrefix + communityID
}

func UserRoom(userID string) string {
	return userRoomPrefix + userID
}

// CommunityFromRoom extracts the community id of a community room.
func CommunityFromRoom(room string) (string, bool) {
	communityID, ok := strings.CutPrefix(room, communityRoomPrefix)
	if !ok || communityID == "" {
		return "", false
	}
	return communityID, true
}

// Event is the unit pushed over the live channel and returned by polls.
// ID is the id of the entity the event is about and Scope the key of the
// scope it is ordered in. Timestamp is the entity's creation time and orders
// it inside the scope; Version is when this state of the entity was produced.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Scope     string      `json:"scope"`
	Room      string      `json:"room,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Version   time.Time   `json:"version"`
	Data      interface{} `json:"data,omitempty"`
}

const NotificationsScope = "notifications"

type PollAction string

const (
	PollCommunity     PollAction = "community"
	PollDirect        PollAction = "direct"
	PollNotifications PollAction = "notifications"
	PollPresence      PollAction = "presence"
	PollTyping        PollAction = "typing"
)

// Recommended client poll intervals per action.
const (
	DirectPollInterval       = 2 * time.Second
	CommunityPollInterval    = 3 * time.Second
	NotificationPollInterval = 5 * time.Second
	PresencePollInterval     = 10 * time.Second
)

type PollResult struct {
	Items     []Event  `json:"items"`
	Removed   []string `json:"removed"`
	Timestamp int64    `json:"timestamp"`
	Available bool     `json:"available"`
}
