package user

import "errors"

// ErrInvalidCredentials is returned for both unknown-aadhar and
// wrong-password logins; the two are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid aadhar number or password")

// ErrDuplicateAadhar is returned when signup reuses a registered aadhar.
var ErrDuplicateAadhar = errors.New("a user with this aadhar number already exists")
