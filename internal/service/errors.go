package service

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// Kind classifies a service error for the handler's status mapping. Anything
// not carrying a Kind is treated as internal and never shown to clients.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(msg string) error   { return &Error{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }

// KindOf extracts the classification; unknown errors are internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// translateRepo maps repository errors into client-facing kinds. Not-found
// becomes a 404 with the given message, constraint violations become bad
// requests, and everything else is logged and kept internal.
func translateRepo(err error, notFoundMsg string) error {
	var dbe *repository.DatabaseError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return NotFound(notFoundMsg)
	case errors.As(err, &dbe):
		return BadRequest(dbe.Error())
	default:
		log.Error().Err(err).Msg("unhandled repository error")
		return err
	}
}
