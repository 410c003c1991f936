// Package auth checks the static operator credentials that unlock the app.
package auth

import (
	"crypto/subtle"
	"errors"
)

const (
	username = "Admin"
	password = "MarketingComfort25"
)

// ErrInvalidCredentials is returned for any username/password mismatch
var ErrInvalidCredentials = errors.New("invalid username or password")

// Check accepts exactly one credential pair
func Check(user, pass string) error {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username))
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password))
	if userOK&passOK != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
