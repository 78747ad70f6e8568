package repository

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// psql builds postgres statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"b.id",
	"b.reference",
	"b.user_id",
	"b.status",
	"b.total_amount",
	"b.currency",
	"COALESCE(b.contact_info, '{}'::jsonb)",
	"b.flight_details",
	"b.created_at",
	"b.updated_at",
}

// BookingFilter is the request-scoped set of predicates plus pagination.
// Nil fields impose no constraint.
type BookingFilter struct {
	Status    *string
	Search    *string
	StartDate *time.Time
	EndDate   *time.Time
	UserID    *string

	Limit  int
	Offset int
}

func (f BookingFilter) limit() uint64 {
	if f.Limit < 1 {
		return DefaultLimit
	}
	return uint64(f.Limit)
}

func (f BookingFilter) offset() uint64 {
	if f.Offset < 0 {
		return 0
	}
	return uint64(f.Offset)
}

// predicates returns the WHERE clause shared by the page query and the count query
func (f BookingFilter) predicates() squirrel.And {
	where := squirrel.And{}

	if f.UserID != nil {
		where = append(where, squirrel.Eq{"b.user_id": *f.UserID})
	}

	if f.Status != nil {
		where = append(where, squirrel.Eq{"b.status": *f.Status})
	}

	// Any of the four searchable fields may contain the term
	if f.Search != nil {
		pattern := "%" + escapeLike(*f.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"b.reference": pattern},
			squirrel.ILike{"b.user_id": pattern},
			squirrel.ILike{"b.contact_info->>'email'": pattern},
			squirrel.ILike{"b.contact_info->>'phone'": pattern},
		})
	}

	if f.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"b.created_at": *f.StartDate})
	}
	if f.EndDate != nil {
		where = append(where, squirrel.LtOrEq{"b.created_at": *f.EndDate})
	}

	return where
}

// BuildBookingQuery returns the paginated page query, newest first
func BuildBookingQuery(f BookingFilter) (string, []any, error) {
	builder := psql.Select(bookingColumns...).
		From("bookings b")

	if where := f.predicates(); len(where) > 0 {
		builder = builder.Where(where)
	}

	return builder.
		OrderBy("b.created_at DESC").
		Limit(f.limit()).
		Offset(f.offset()).
		ToSql()
}

// BuildBookingCountQuery counts every match regardless of pagination
func BuildBookingCountQuery(f BookingFilter) (string, []any, error) {
	builder := psql.Select("COUNT(*)").
		From("bookings b")

	if where := f.predicates(); len(where) > 0 {
		builder = builder.Where(where)
	}

	return builder.ToSql()
}

// escapeLike makes user input literal inside an ILIKE pattern
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
