package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/model"
)

const uniqueViolation = "23505"

type txKey struct{}

type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return NewWithDB(conn)
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.connection.PingContext(ctx)
}

// Chk returns the transaction bound to ctx, or the connection pool.
func (r *Repository) Chk(ctx context.Context) executor {
	if txn, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return txn
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	txn, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", storeError(err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = txn.Rollback()
			panic(p)
		}
	}()

	if err = cb(context.WithValue(ctx, txKey{}, txn)); err != nil {
		if rbErr := txn.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err = txn.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", storeError(err))
	}

	return nil
}

func (r *Repository) UserExists(ctx context.Context, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", storeError(err))
	}

	return exists, nil
}

func (r *Repository) GetCommunityRole(ctx context.Context, communityID, userID string) (model.Role, error) {
	query, args, err := sq.
		Select("role").
		From("community_members").
		Where(sq.And{
			sq.Eq{"community_id": communityID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.RoleNone, fmt.Errorf("failed to build sql query: %v", err)
	}

	var role string
	err = r.Chk(ctx).GetContext(ctx, &role, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoleNone, nil
		}
		return model.RoleNone, fmt.Errorf("failed to get community role: %w", storeError(err))
	}

	return model.Role(role), nil
}

// storeError classifies a driver error into the model error kinds.
func storeError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", model.ErrConflict, pqErr.Message)
	}

	return fmt.Errorf("%w: %v", model.ErrStore, err)
}
