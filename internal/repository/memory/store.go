package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

type pairKey struct {
	a, b string
}

type reactionKey struct {
	kind   model.ScopeKind
	target uuid.UUID
	user   string
}

// Store keeps everything in process memory. Each method is atomic on its own;
// WithTx serializes transactional callers but cannot roll back.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users         map[string]struct{}
	members       map[string]map[string]model.Role
	messages      map[uuid.UUID]*model.Message
	direct        map[uuid.UUID]*model.DirectMessage
	conversations map[uuid.UUID]*model.ConversationRow
	pairs         map[pairKey]uuid.UUID
	reactions     map[reactionKey]model.Reaction
	notifications map[uuid.UUID]*model.Notification
}

func New() *Store {
	return &Store{
		users:         make(map[string]struct{}),
		members:       make(map[string]map[string]model.Role),
		messages:      make(map[uuid.UUID]*model.Message),
		direct:        make(map[uuid.UUID]*model.DirectMessage),
		conversations: make(map[uuid.UUID]*model.ConversationRow),
		pairs:         make(map[pairKey]uuid.UUID),
		reactions:     make(map[reactionKey]model.Reaction),
		notifications: make(map[uuid.UUID]*model.Notification),
	}
}

func (s *Store) AddUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
}

// AddCommunityMember registers userID in communityID with role, adding the
// user as well.
func (s *Store) AddCommunityMember(communityID, userID string, role model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
	if s.members[communityID] == nil {
		s.members[communityID] = make(map[string]model.Role)
	}
	s.members[communityID][userID] = role
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return cb(ctx)
}

func (s *Store) UserExists(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) GetCommunityRole(_ context.Context, communityID, userID string) (model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members[communityID][userID], nil
}

// ----------------------------- community messages -----------------------------

func (s *Store) SaveMessage(_ context.Context, message *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[message.ID]; ok {
		return fmt.Errorf("%w: message %s already exists", model.ErrStore, message.ID)
	}
	stored := *message
	stored.Reactions = nil
	s.messages[message.ID] = &stored
	return nil
}

func (s *Store) GetMessage(_ context.Context, id uuid.UUID) (*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	message, ok := s.messages[id]
	if !ok || message.DeletedAt != nil {
		return nil, fmt.Errorf("%w: message %s", model.ErrNotFound, id)
	}
	result := *message
	return &result, nil
}

func (s *Store) UpdateMessageContent(_ context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok || message.DeletedAt != nil {
		return fmt.Errorf("%w: message %s", model.ErrNotFound, id)
	}
	message.Content = content
	message.EditedAt = &editedAt
	return nil
}

func (s *Store) DeleteMessage(_ context.Context, id uuid.UUID, deletedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok || message.DeletedAt != nil {
		return fmt.Errorf("%w: message %s", model.ErrNotFound, id)
	}
	message.DeletedAt = &deletedAt
	return nil
}

func (s *Store) GetCommunityMessages(_ context.Context, communityID string, before time.Time, limit int) (model.MessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageMessages(func(m *model.Message) bool {
		return m.CommunityID == communityID
	}, before, limit), nil
}

func (s *Store) GetReplies(_ context.Context, parentID uuid.UUID, before time.Time, limit int) (model.MessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageMessages(func(m *model.Message) bool {
		return m.ReplyTo != nil && *m.ReplyTo == parentID
	}, before, limit), nil
}

func (s *Store) GetCommunityChanges(_ context.Context, communityID string, since time.Time) (model.MessageList, []uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		changed model.MessageList
		removed []uuid.UUID
	)
	for _, m := range s.messages {
		if m.CommunityID != communityID {
			continue
		}
		if m.DeletedAt != nil {
			if m.DeletedAt.After(since) {
				removed = append(removed, m.ID)
			}
			continue
		}
		if m.ChangedAt().After(since) {
			changed = append(changed, *m)
		}
	}

	sort.Slice(changed, func(i, j int) bool {
		return earlier(changed[i].CreatedAt, changed[i].ID, changed[j].CreatedAt, changed[j].ID)
	})
	sortIDs(removed)
	return changed, removed, nil
}

// pageMessages returns live messages matching keep with created_at < before,
// newest first.
func (s *Store) pageMessages(keep func(m *model.Message) bool, before time.Time, limit int) model.MessageList {
	var page model.MessageList
	for _, m := range s.messages {
		if m.DeletedAt != nil || !keep(m) || !m.CreatedAt.Before(before) {
			continue
		}
		page = append(page, *m)
	}

	sort.Slice(page, func(i, j int) bool {
		return earlier(page[j].CreatedAt, page[j].ID, page[i].CreatedAt, page[i].ID)
	})
	if limit > 0 && len(page) > limit {
		page = page[:limit]
	}
	return page
}

// ----------------------------- conversations -----------------------------

// GetOrCreateConversation is the atomic find-or-insert on the canonical pair.
func (s *Store) GetOrCreateConversation(_ context.Context, participantA, participantB string) (*model.Conversation, error) {
	a, b, err := model.CanonicalPair(participantA, participantB)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{a: a, b: b}
	if id, ok := s.pairs[key]; ok {
		return model.NewConversation(*s.conversations[id])
	}

	row := &model.ConversationRow{
		ID:           uuid.New(),
		ParticipantA: a,
		ParticipantB: b,
		CreatedAt:    time.Now().UTC(),
	}
	s.conversations[row.ID] = row
	s.pairs[key] = row.ID

	return model.NewConversation(*row)
}

func (s *Store) GetConversation(_ context.Context, id uuid.UUID) (*model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.conversations[id]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", model.ErrNotFound, id)
	}
	return model.NewConversation(*row)
}

func (s *Store) TouchConversation(_ context.Context, id, lastMessageID uuid.UUID, at time.Time, senderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.conversations[id]
	if !ok {
		return fmt.Errorf("%w: conversation %s", model.ErrNotFound, id)
	}

	switch senderID {
	case row.ParticipantA:
		row.UnreadB++
	case row.ParticipantB:
		row.UnreadA++
	default:
		return fmt.Errorf("%w: conversation %s", model.ErrNotFound, id)
	}

	if row.LastMessageAt == nil || !at.Before(*row.LastMessageAt) {
		messageID := lastMessageID
		row.LastMessageID = &messageID
		row.LastMessageAt = &at
	}
	return nil
}

func (s *Store) MarkConversationRead(_ context.Context, id uuid.UUID, readerID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.conversations[id]
	if !ok {
		return fmt.Errorf("%w: conversation %s", model.ErrNotFound, id)
	}

	switch readerID {
	case row.ParticipantA:
		row.UnreadA = 0
	case row.ParticipantB:
		row.UnreadB = 0
	default:
		return fmt.Errorf("%w: conversation %s", model.ErrNotFound, id)
	}

	for _, m := range s.direct {
		if m.ConversationID == id && m.RecipientID == readerID && !m.IsRead {
			readAt := at
			m.IsRead = true
			m.ReadAt = &readAt
		}
	}
	return nil
}

func (s *Store) RefreshConversationLastMessage(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.conversations[id]
	if !ok {
		return fmt.Errorf("%w: conversation %s", model.ErrNotFound, id)
	}

	var latest *model.DirectMessage
	for _, m := range s.direct {
		if m.ConversationID != id || m.DeletedAt != nil {
			continue
		}
		if latest == nil || earlier(latest.CreatedAt, latest.ID, m.CreatedAt, m.ID) {
			latest = m
		}
	}

	if latest == nil {
		row.LastMessageID = nil
		row.LastMessageAt = nil
		return nil
	}
	messageID, at := latest.ID, latest.CreatedAt
	row.LastMessageID = &messageID
	row.LastMessageAt = &at
	return nil
}

func (s *Store) ListConversations(_ context.Context, userID string) (model.ConversationPreviewList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	previews := make(model.ConversationPreviewList, 0)
	for _, row := range s.conversations {
		var participant string
		var unread int
		switch userID {
		case row.ParticipantA:
			participant, unread = row.ParticipantB, row.UnreadA
		case row.ParticipantB:
			participant, unread = row.ParticipantA, row.UnreadB
		default:
			continue
		}

		preview := model.ConversationPreview{
			ID:            row.ID,
			Participant:   participant,
			LastMessageID: row.LastMessageID,
			LastMessageAt: row.LastMessageAt,
			UnreadCount:   unread,
		}
		if row.LastMessageID != nil {
			if m, ok := s.direct[*row.LastMessageID]; ok && m.DeletedAt == nil {
				content := m.Content
				preview.LastMessageContent = &content
			}
		}
		previews = append(previews, preview)
	}

	sort.SliceStable(previews, func(i, j int) bool {
		a, b := previews[i].LastMessageAt, previews[j].LastMessageAt
		switch {
		case a == nil && b == nil:
			return previews[i].ID.String() < previews[j].ID.String()
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.After(*b)
	})
	return previews, nil
}

// ----------------------------- direct messages -----------------------------

func (s *Store) SaveDirectMessage(_ context.Context, message *model.DirectMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[message.ConversationID]; !ok {
		return fmt.Errorf("%w: conversation %s", model.ErrNotFound, message.ConversationID)
	}
	if _, ok := s.direct[message.ID]; ok {
		return fmt.Errorf("%w: direct message %s already exists", model.ErrStore, message.ID)
	}
	stored := *message
	stored.Reactions = nil
	s.direct[message.ID] = &stored
	return nil
}

func (s *Store) GetDirectMessage(_ context.Context, id uuid.UUID) (*model.DirectMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	message, ok := s.direct[id]
	if !ok || message.DeletedAt != nil {
		return nil, fmt.Errorf("%w: direct message %s", model.ErrNotFound, id)
	}
	result := *message
	return &result, nil
}

func (s *Store) UpdateDirectMessageContent(_ context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.direct[id]
	if !ok || message.DeletedAt != nil {
		return fmt.Errorf("%w: direct message %s", model.ErrNotFound, id)
	}
	message.Content = content
	message.EditedAt = &editedAt
	return nil
}

func (s *Store) DeleteDirectMessage(_ context.Context, id uuid.UUID, deletedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.direct[id]
	if !ok || message.DeletedAt != nil {
		return fmt.Errorf("%w: direct message %s", model.ErrNotFound, id)
	}
	message.DeletedAt = &deletedAt
	return nil
}

func (s *Store) GetDirectMessages(_ context.Context, conversationID uuid.UUID, before time.Time, limit int) (model.DirectMessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var page model.DirectMessageList
	for _, m := range s.direct {
		if m.ConversationID != conversationID || m.DeletedAt != nil || !m.CreatedAt.Before(before) {
			continue
		}
		page = append(page, *m)
	}

	sort.Slice(page, func(i, j int) bool {
		return earlier(page[j].CreatedAt, page[j].ID, page[i].CreatedAt, page[i].ID)
	})
	if limit > 0 && len(page) > limit {
		page = page[:limit]
	}
	return page, nil
}

func (s *Store) GetDirectChanges(_ context.Context, userID string, conversationID *uuid.UUID, since time.Time) (model.DirectMessageList, []uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		changed model.DirectMessageList
		removed []uuid.UUID
	)
	for _, m := range s.direct {
		if !m.IsParticipant(userID) {
			continue
		}
		if conversationID != nil && m.ConversationID != *conversationID {
			continue
		}
		if m.DeletedAt != nil {
			if m.DeletedAt.After(since) {
				removed = append(removed, m.ID)
			}
			continue
		}
		if m.ChangedAt().After(since) {
			changed = append(changed, *m)
		}
	}

	sort.Slice(changed, func(i, j int) bool {
		return earlier(changed[i].CreatedAt, changed[i].ID, changed[j].CreatedAt, changed[j].ID)
	})
	sortIDs(removed)
	return changed, removed, nil
}

// ----------------------------- reactions -----------------------------

func (s *Store) ToggleReaction(_ context.Context, reaction model.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := reactionKey{kind: reaction.TargetKind, target: reaction.TargetID, user: reaction.UserID}
	if existing, ok := s.reactions[key]; ok && existing.Type == reaction.Type {
		delete(s.reactions, key)
	} else {
		s.reactions[key] = reaction
	}

	at := reaction.CreatedAt
	switch reaction.TargetKind {
	case model.ScopeCommunity:
		if m, ok := s.messages[reaction.TargetID]; ok {
			m.ReactionsChangedAt = &at
		}
	case model.ScopeDirect:
		if m, ok := s.direct[reaction.TargetID]; ok {
			m.ReactionsChangedAt = &at
		}
	}
	return nil
}

func (s *Store) GetReactions(_ context.Context, kind model.ScopeKind, targetIDs []uuid.UUID) (map[uuid.UUID][]model.Reaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		wanted[id] = struct{}{}
	}

	result := make(map[uuid.UUID][]model.Reaction)
	for key, reaction := range s.reactions {
		if key.kind != kind {
			continue
		}
		if _, ok := wanted[key.target]; ok {
			result[key.target] = append(result[key.target], reaction)
		}
	}

	for id := range result {
		reactions := result[id]
		sort.Slice(reactions, func(i, j int) bool {
			if reactions[i].CreatedAt.Equal(reactions[j].CreatedAt) {
				return reactions[i].UserID < reactions[j].UserID
			}
			return reactions[i].CreatedAt.Before(reactions[j].CreatedAt)
		})
	}
	return result, nil
}

// ----------------------------- notifications -----------------------------

func (s *Store) SaveNotification(_ context.Context, notification *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *notification
	s.notifications[notification.ID] = &stored
	return nil
}

func (s *Store) GetNotifications(_ context.Context, recipientID string, before time.Time, limit int) (model.NotificationList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var page model.NotificationList
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && n.CreatedAt.Before(before) {
			page = append(page, *n)
		}
	}

	sort.Slice(page, func(i, j int) bool {
		return earlier(page[j].CreatedAt, page[j].ID, page[i].CreatedAt, page[i].ID)
	})
	if limit > 0 && len(page) > limit {
		page = page[:limit]
	}
	return page, nil
}

func (s *Store) GetNotificationsSince(_ context.Context, recipientID string, since time.Time) (model.NotificationList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var changed model.NotificationList
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && n.CreatedAt.After(since) {
			changed = append(changed, *n)
		}
	}

	sort.Slice(changed, func(i, j int) bool {
		return earlier(changed[i].CreatedAt, changed[i].ID, changed[j].CreatedAt, changed[j].ID)
	})
	return changed, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id uuid.UUID, recipientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return fmt.Errorf("%w: notification %s", model.ErrNotFound, id)
	}
	n.IsRead = true
	return nil
}

// earlier orders by (timestamp, id).
func earlier(at time.Time, id uuid.UUID, otherAt time.Time, otherID uuid.UUID) bool {
	if at.Equal(otherAt) {
		return id.String() < otherID.String()
	}
	return at.Before(otherAt)
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}
