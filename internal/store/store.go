// Package store holds the Postgres repositories. One repository per
// entity, all built on squirrel for query generation and pgxscan for
// row mapping.
package store

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
