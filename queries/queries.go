package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrNotFound = errors.New("the requested record does not exists")

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")
)

// IsUniqueViolation reports whether err came from a unique constraint, such as
// a duplicate team or competition slug.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// IsForeignKeyViolation reports whether err came from a missing or still
// referenced parent row.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

func prepare(id *uuid.UUID, record any) error {
	if err := models.Validate(record); err != nil {
		return err
	}
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	return nil
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", what, id, ErrNotFound)
	}
	log.Println("error querying "+what+": ", err.Error())
	return err
}

func affected(res sql.Result, what string, id any) error {
	row, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if row == 0 {
		return fmt.Errorf("%s %v: %w", what, id, ErrNotFound)
	}
	return nil
}

// namedGet runs a query written with :name parameters bound from arg and scans
// the single returned row into dest.
func namedGet(ctx context.Context, db sqlx.ExtContext, dest any, query string, arg any) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, db, dest, db.Rebind(bound), args...)
}
