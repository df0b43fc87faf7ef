package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the id plus the active filters.
// Services translate it into a client-facing not-found; a row that exists but
// fails a scoping filter is indistinguishable from one that does not exist.
var ErrNotFound = errors.New("resource not found")

// DatabaseError wraps constraint violations (unique index, foreign key) so
// services can translate them into client-facing bad requests instead of
// letting raw driver errors escape.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string { return e.Err.Error() }
func (e *DatabaseError) Unwrap() error { return e.Err }

// translate maps gorm errors into the repository's own taxonomy. Requires
// TranslateError enabled on the gorm config.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &DatabaseError{Err: err}
	default:
		return err
	}
}
