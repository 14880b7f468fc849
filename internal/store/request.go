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

const requestTableName = "baladiya.requests"

var requestColumns = utils.StructTagValues(types.Request{})

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Request(ctx context.Context, requestID int) (*types.Request, error) {
	query, args, err := psql().
		Select(requestColumns...).
		From(requestTableName).
		Where(sq.Eq{"id": requestID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request query: %w", err)
	}

	var request types.Request
	err = pgxscan.Get(ctx, r.pool, &request, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}

	return &request, nil
}

func (r *RequestRepository) RequestsByUser(ctx context.Context, userID int) ([]*types.Request, error) {
	query, args, err := psql().
		Select(requestColumns...).
		From(requestTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate requests-by-user query: %w", err)
	}

	var requests = make([]*types.Request, 0)
	err = pgxscan.Select(ctx, r.pool, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests by user: %w", err)
	}

	return requests, nil
}

func (r *RequestRepository) Requests(ctx context.Context) ([]*types.Request, error) {
	query, args, err := psql().
		Select(requestColumns...).
		From(requestTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate requests query: %w", err)
	}

	var requests = make([]*types.Request, 0)
	err = pgxscan.Select(ctx, r.pool, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	return requests, nil
}

// Create inserts the request with status Pending regardless of what the
// caller set on the struct.
func (r *RequestRepository) Create(ctx context.Context, request *types.Request) (*types.Request, error) {
	values := utils.StructToMap(request)
	delete(values, "id")
	values["status"] = types.RequestStatusPending
	values["created_at"] = time.Now()

	query, args, err := psql().
		Insert(requestTableName).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(requestColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate create request query: %w", err)
	}

	var created types.Request
	err = pgxscan.Get(ctx, r.pool, &created, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return &created, nil
}

// UpdateStatus overwrites the status field only. Transition legality is
// the handler's concern.
func (r *RequestRepository) UpdateStatus(ctx context.Context, requestID int, status types.RequestStatus) (*types.Request, error) {
	query, args, err := psql().
		Update(requestTableName).
		Set("status", status).
		Where(sq.Eq{"id": requestID}).
		Suffix("RETURNING " + strings.Join(requestColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update request status query: %w", err)
	}

	var updated types.Request
	err = pgxscan.Get(ctx, r.pool, &updated, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	return &updated, nil
}

// AttachFile records an uploaded document's URL and upload time on the
// request.
func (r *RequestRepository) AttachFile(ctx context.Context, requestID int, attachmentURL string) (*types.Request, error) {
	query, args, err := psql().
		Update(requestTableName).
		Set("attachment_url", nullable(attachmentURL)).
		Set("uploaded_at", time.Now()).
		Where(sq.Eq{"id": requestID}).
		Suffix("RETURNING " + strings.Join(requestColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate attach file query: %w", err)
	}

	var updated types.Request
	err = pgxscan.Get(ctx, r.pool, &updated, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to attach file: %w", err)
	}

	return &updated, nil
}
