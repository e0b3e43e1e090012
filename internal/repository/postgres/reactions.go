package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

// ToggleReaction removes the user's reaction when it has the same type and
// replaces it otherwise. Both paths are single statements keyed by the
// (target_kind, target_id, user_id) primary key. The target message's
// reactions_changed_at is moved to the reaction time so change feeds pick the
// toggle up.
func (r *Repository) ToggleReaction(ctx context.Context, reaction model.Reaction) error {
	removed, err := r.removeReaction(ctx, reaction)
	if err != nil {
		return err
	}

	if !removed {
		if err := r.upsertReaction(ctx, reaction); err != nil {
			return err
		}
	}

	table := "messages"
	if reaction.TargetKind == model.ScopeDirect {
		table = "direct_messages"
	}

	query, args, err := sq.Update(table).
		Set("reactions_changed_at", reaction.CreatedAt).
		Where(sq.Eq{"id": reaction.TargetID.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to touch reacted message: %w", storeError(err))
	}

	return nil
}

func (r *Repository) removeReaction(ctx context.Context, reaction model.Reaction) (bool, error) {
	query, args, err := sq.Delete("reactions").
		Where(sq.Eq{
			"target_kind": string(reaction.TargetKind),
			"target_id":   reaction.TargetID.String(),
			"user_id":     reaction.UserID,
			"type":        reaction.Type,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to remove reaction: %w", storeError(err))
	}

	affected, err := res.RowsAffected()
	return err == nil && affected > 0, nil
}

func (r *Repository) upsertReaction(ctx context.Context, reaction model.Reaction) error {
	query, args, err := sq.Insert("reactions").
		Columns("target_kind", "target_id", "user_id", "type", "created_at").
		Values(string(reaction.TargetKind), reaction.TargetID, reaction.UserID, reaction.Type, reaction.CreatedAt).
		Suffix("ON CONFLICT (target_kind, target_id, user_id) DO UPDATE SET type = EXCLUDED.type, created_at = EXCLUDED.created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save reaction: %w", storeError(err))
	}

	return nil
}

func (r *Repository) GetReactions(ctx context.Context, kind model.ScopeKind, targetIDs []uuid.UUID) (map[uuid.UUID][]model.Reaction, error) {
	result := make(map[uuid.UUID][]model.Reaction)
	if len(targetIDs) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(targetIDs))
	for _, id := range targetIDs {
		ids = append(ids, id.String())
	}

	query, args, err := sq.Select("target_kind", "target_id", "user_id", "type", "created_at").
		From("reactions").
		Where(sq.Eq{"target_kind": string(kind)}).
		Where(sq.Eq{"target_id": ids}).
		OrderBy("created_at", "user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reactions []model.Reaction
	err = r.Chk(ctx).SelectContext(ctx, &reactions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %w", storeError(err))
	}

	for _, reaction := range reactions {
		result[reaction.TargetID] = append(result[reaction.TargetID], reaction)
	}

	return result, nil
}
