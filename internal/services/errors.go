package services

import "errors"

// Sentinel errors the handlers translate into HTTP responses.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// at login, so responses cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrWrongPassword is returned when the old password presented to a
	// password change does not match the stored hash.
	ErrWrongPassword = errors.New("old password is incorrect")

	// ErrPasswordUpdate is returned when hashing the replacement password fails.
	ErrPasswordUpdate = errors.New("could not update the password, please try again")

	ErrUserNotFound = errors.New("user not found")
	ErrFileNotFound = errors.New("file not found")

	// ErrStoreUnavailable marks infrastructure failures talking to the database.
	ErrStoreUnavailable = errors.New("storage unavailable")
)
