package store

import (
	"context"
	"fmt"
	"time"

	"baladiya/internal/utils"
	"baladiya/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionTableName = "baladiya.sessions"

var sessionColumns = utils.StructTagValues(types.Session{})

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Create issues a fresh session token for the user.
func (r *SessionRepository) Create(ctx context.Context, userID int, ttl time.Duration) (*types.Session, error) {
	now := time.Now()
	session := &types.Session{
		Token:     utils.NanoID(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	query, args, err := psql().
		Insert(sessionTableName).
		SetMap(utils.StructToMap(session)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate create session query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Session looks up a live session by token. Expired sessions are
// deleted on sight and reported as not found.
func (r *SessionRepository) Session(ctx context.Context, token string) (*types.Session, error) {
	query, args, err := psql().
		Select(sessionColumns...).
		From(sessionTableName).
		Where(sq.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session query: %w", err)
	}

	var session types.Session
	err = pgxscan.Get(ctx, r.pool, &session, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := r.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, types.ErrSessionNotFound
	}

	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	query, args, err := psql().
		Delete(sessionTableName).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete session query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteExpired sweeps dead sessions. Called opportunistically from the
// seed command; there is no background job.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	query, args, err := psql().
		Delete(sessionTableName).
		Where(sq.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete expired sessions query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return nil
}
