package domain

import "errors"

// Sentinel errors for the outcomes the API reports. The REST layer maps each
// one to a fixed status and message; anything unrecognized is treated as a
// store failure and surfaces as a generic database error.
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers a wrong pin and an unrecognized session
	// token. The two are deliberately indistinguishable so a caller cannot
	// probe whether a token ever existed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSessionTimeout         = errors.New("session timeout")
	ErrNoTokenProvided        = errors.New("no token provided")
	ErrSecurityQuestionNotSet = errors.New("security question not set")
	ErrIncorrectAnswer        = errors.New("incorrect answer")

	ErrIDExists     = errors.New("id already exists")
	ErrUPCExists    = errors.New("upc already exists")
	ErrCopyIDExists = errors.New("copy id already exists")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrMovieNotFound    = errors.New("movie not found")
)
