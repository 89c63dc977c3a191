// Package sqlerr handles database driver errors.
//
// It parses PostgreSQL error codes from the driver and converts
// them into client errors (e.g. a unique violation on users.phone
// becomes a 409 "A User with this Phone already exists").
package sqlerr
