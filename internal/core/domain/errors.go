package domain

import "errors"

var (
	// ErrUnauthenticated means no principal is present on the request. It
	// always takes precedence over ErrForbidden.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden means the principal is authenticated but lacks the
	// rights for the requested record or operation.
	ErrForbidden = errors.New("access denied")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRoleNotFound     = errors.New("role not found")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login responses cannot be used for user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token has been revoked")

	ErrEmptyUsername     = errors.New("username must not be empty")
	ErrEmptyPassword     = errors.New("password must not be empty")
	ErrDuplicateUsername = errors.New("username already taken")
)
