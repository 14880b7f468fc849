package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"baladiya/internal/utils"
	"baladiya/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userTableName = "baladiya.users"

var userColumns = utils.StructTagValues(types.User{})

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) User(ctx context.Context, userID int) (*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user query: %w", err)
	}

	var user types.User
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Users(ctx context.Context) ([]*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate users query: %w", err)
	}

	var users []*types.User
	err = pgxscan.Select(ctx, r.pool, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) UserByCIN(ctx context.Context, cin string) (*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"cin": cin}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user-by-cin query: %w", err)
	}

	var user types.User
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by cin: %w", err)
	}

	return &user, nil
}

// Create inserts the user and fills in the generated id and timestamp.
// A unique-violation on cin comes back as ErrCINExists.
func (r *UserRepository) Create(ctx context.Context, user *types.User) (*types.User, error) {
	values := utils.StructToMap(user)
	delete(values, "id")
	values["created_at"] = time.Now()

	query, args, err := psql().
		Insert(userTableName).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate create user query: %w", err)
	}

	var created types.User
	err = pgxscan.Get(ctx, r.pool, &created, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, types.ErrCINExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID int, role types.Role) (*types.User, error) {
	query, args, err := psql().
		Update(userTableName).
		Set("role", role).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update role query: %w", err)
	}

	var updated types.User
	err = pgxscan.Get(ctx, r.pool, &updated, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	return &updated, nil
}

// ToggleBan flips the user's banned flag and returns the new state.
func (r *UserRepository) ToggleBan(ctx context.Context, userID int) (*types.User, error) {
	query, args, err := psql().
		Update(userTableName).
		Set("is_banned", sq.Expr("NOT is_banned")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate toggle ban query: %w", err)
	}

	var updated types.User
	err = pgxscan.Get(ctx, r.pool, &updated, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to toggle user ban: %w", err)
	}

	return &updated, nil
}
