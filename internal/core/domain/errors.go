package domain

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("access forbidden")
	ErrNotFound          = errors.New("resource not found")
	ErrUpstream          = errors.New("backend request failed")
	ErrMissingServiceKey = errors.New("service credential not configured")
)
