package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DB is the slice of pgxpool.Pool the repositories need. Tests can stand in
// a fake; production passes the pool itself.
type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Constraint names of the per-field unique indexes, mapped back to the
// request field they protect.
var uniqueConstraintFields = map[string]string{
	"uq_property_title":        "title",
	"uq_property_postal_code":  "postalCode",
	"uq_property_address":      "address",
	"uq_property_interior":     "interior",
	"uq_property_surface_area": "surfaceArea",
}

// UniqueViolationField reports which property field a unique-violation error
// (PostgreSQL code 23505) refers to.
func UniqueViolationField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		field, ok := uniqueConstraintFields[pgErr.ConstraintName]
		return field, ok
	}
	return "", false
}
