package presence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/model"
)

const (
	onlinePrefix = "online:"
	typingPrefix = "typing:"

	scanBatch = 100
)

// Store keeps ephemeral online and typing state as expiring Redis keys.
// Nothing here is persisted beyond the TTL.
type Store struct {
	client    *redis.Client
	onlineTTL time.Duration
	typingTTL time.Duration
}

func New(cfg *config.Config) *Store {
	opts, err := redis.ParseURL(cfg.Redis.Addr)
	if err != nil {
		opts = &redis.Options{
			Addr: cfg.Redis.Addr,
		}
	}
	opts.DialTimeout = cfg.Redis.DialTimeout

	return NewWithClient(redis.NewClient(opts), cfg.Redis.OnlineTTL, cfg.Redis.TypingTTL)
}

func NewWithClient(client *redis.Client, onlineTTL, typingTTL time.Duration) *Store {
	return &Store{
		client:    client,
		onlineTTL: onlineTTL,
		typingTTL: typingTTL,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() {
	_ = s.client.Close()
}

// SetOnline marks userID online, or extends the mark, for the online TTL.
func (s *Store) SetOnline(ctx context.Context, userID string) error {
	if err := s.client.Set(ctx, onlinePrefix+userID, time.Now().UnixMilli(), s.onlineTTL).Err(); err != nil {
		return fmt.Errorf("%w: failed to set online: %v", model.ErrTransport, err)
	}
	return nil
}

func (s *Store) SetOffline(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, onlinePrefix+userID).Err(); err != nil {
		return fmt.Errorf("%w: failed to set offline: %v", model.ErrTransport, err)
	}
	return nil
}

// Online returns the subset of userIDs that are online, in input order.
func (s *Store) Online(ctx context.Context, userIDs []string) ([]string, error) {
	online := make([]string, 0, len(userIDs))
	if len(userIDs) == 0 {
		return online, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.IntCmd, len(userIDs))
	for i, userID := range userIDs {
		cmds[i] = pipe.Exists(ctx, onlinePrefix+userID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to check online: %v", model.ErrTransport, err)
	}

	for i, cmd := range cmds {
		if cmd.Val() > 0 {
			online = append(online, userIDs[i])
		}
	}
	return online, nil
}

// SetTyping marks userID as typing in room for the typing TTL.
func (s *Store) SetTyping(ctx context.Context, room, userID string) error {
	if err := s.client.Set(ctx, typingKey(room, userID), 1, s.typingTTL).Err(); err != nil {
		return fmt.Errorf("%w: failed to set typing: %v", model.ErrTransport, err)
	}
	return nil
}

func (s *Store) ClearTyping(ctx context.Context, room, userID string) error {
	if err := s.client.Del(ctx, typingKey(room, userID)).Err(); err != nil {
		return fmt.Errorf("%w: failed to clear typing: %v", model.ErrTransport, err)
	}
	return nil
}

// Typing lists the users currently typing in room.
func (s *Store) Typing(ctx context.Context, room string) ([]string, error) {
	prefix := typingPrefix + room + ":"
	users := make([]string, 0)

	iter := s.client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		users = append(users, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list typing users: %v", model.ErrTransport, err)
	}
	return users, nil
}

func typingKey(room, userID string) string {
	return typingPrefix + room + ":" + userID
}
