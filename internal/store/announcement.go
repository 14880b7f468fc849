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

const announcementTableName = "baladiya.announcements"

var announcementColumns = utils.StructTagValues(types.Announcement{})

type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

func (r *AnnouncementRepository) Announcements(ctx context.Context) ([]*types.Announcement, error) {
	query, args, err := psql().
		Select(announcementColumns...).
		From(announcementTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate announcements query: %w", err)
	}

	var announcements = make([]*types.Announcement, 0)
	err = pgxscan.Select(ctx, r.pool, &announcements, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}

	return announcements, nil
}

func (r *AnnouncementRepository) Create(ctx context.Context, announcement *types.Announcement) (*types.Announcement, error) {
	now := time.Now()

	values := utils.StructToMap(announcement)
	delete(values, "id")
	values["created_at"] = now
	values["updated_at"] = now

	query, args, err := psql().
		Insert(announcementTableName).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(announcementColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate create announcement query: %w", err)
	}

	var created types.Announcement
	err = pgxscan.Get(ctx, r.pool, &created, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	return &created, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, announcementID int) error {
	query, args, err := psql().
		Delete(announcementTableName).
		Where(sq.Eq{"id": announcementID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete announcement query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrAnnouncementNotFound
	}

	return nil
}
