package user

import "errors"

// ErrDuplicateEmail signals a registration attempt with an email that is
// already taken.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// ErrInvalidCredentials covers both unknown accounts and bad passwords,
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound is returned by profile lookups for unknown user IDs.
var ErrUserNotFound = errors.New("user not found")
