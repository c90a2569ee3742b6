package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrMappingNotFound       = crerr.New("game mapping not found")
	ErrNoMatch               = crerr.New("no matching play")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
