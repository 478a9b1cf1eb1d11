package domain

import "errors"

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrUserNotFound = errors.New("user not found")

// Authentication gate failures. All three render as 401 at the API boundary
// but stay distinct for diagnostics and tests.
var ErrMissingCredentials = errors.New("missing credentials")
var ErrInvalidToken = errors.New("invalid token")
