package xerrors

import "errors"

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrMalformedEvent = errors.New("malformed event payload")
)

// Registration / Login
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// Verification
var (
	ErrNoPendingVerification = errors.New("no pending verification for email")
	ErrInvalidCode           = errors.New("invalid verification code")
)

// Social graph
var (
	ErrPostNotFound = errors.New("post not found")
)
