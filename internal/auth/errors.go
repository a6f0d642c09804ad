package auth

import "errors"

var (
	errMissingToken    = errors.New("authorization header required")
	errMalformedHeader = errors.New("authorization header must be a bearer token")
)
