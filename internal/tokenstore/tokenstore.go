// Package tokenstore persists the session token outside the main
// store, in the operating system's credential manager. It is a
// key-value contract keyed by a fixed account identifier: set
// (overwrite), get, delete.
package tokenstore

import "errors"

// ErrNotFound is returned by Get when no token is stored.
var ErrNotFound = errors.New("token not found")

// Store holds at most one session token durably across process
// restarts.
type Store interface {
	// Set stores the token, overwriting any prior value.
	Set(token string) error

	// Get returns the stored token, or ErrNotFound.
	Get() (string, error)

	// Delete removes the stored token. Deleting an absent token is not
	// an error.
	Delete() error
}
