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

const reportTableName = "baladiya.reports"

var reportColumns = utils.StructTagValues(types.Report{})

type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) Report(ctx context.Context, reportID int) (*types.Report, error) {
	query, args, err := psql().
		Select(reportColumns...).
		From(reportTableName).
		Where(sq.Eq{"id": reportID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report query: %w", err)
	}

	var report types.Report
	err = pgxscan.Get(ctx, r.pool, &report, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	return &report, nil
}

func (r *ReportRepository) ReportsByUser(ctx context.Context, userID int) ([]*types.Report, error) {
	query, args, err := psql().
		Select(reportColumns...).
		From(reportTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reports-by-user query: %w", err)
	}

	var reports = make([]*types.Report, 0)
	err = pgxscan.Select(ctx, r.pool, &reports, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports by user: %w", err)
	}

	return reports, nil
}

func (r *ReportRepository) Reports(ctx context.Context) ([]*types.Report, error) {
	query, args, err := psql().
		Select(reportColumns...).
		From(reportTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reports query: %w", err)
	}

	var reports = make([]*types.Report, 0)
	err = pgxscan.Select(ctx, r.pool, &reports, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}

	return reports, nil
}

// Create inserts the report with status Pending regardless of what the
// caller set on the struct.
func (r *ReportRepository) Create(ctx context.Context, report *types.Report) (*types.Report, error) {
	values := utils.StructToMap(report)
	delete(values, "id")
	values["status"] = types.ReportStatusPending
	values["created_at"] = time.Now()

	query, args, err := psql().
		Insert(reportTableName).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate create report query: %w", err)
	}

	var created types.Report
	err = pgxscan.Get(ctx, r.pool, &created, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return &created, nil
}

func (r *ReportRepository) UpdateStatus(ctx context.Context, reportID int, status types.ReportStatus) (*types.Report, error) {
	query, args, err := psql().
		Update(reportTableName).
		Set("status", status).
		Where(sq.Eq{"id": reportID}).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update report status query: %w", err)
	}

	var updated types.Report
	err = pgxscan.Get(ctx, r.pool, &updated, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}

	return &updated, nil
}
