// Package services contains the domain logic: identity, catalog, booking
// lifecycle, payments, and admin reporting. Services return sentinel errors
// from this file; controllers map them onto HTTP status codes with errors.Is.
package services

import "errors"

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the identity is valid but lacks permission.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized means credentials did not match.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrEmailTaken means the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidTransition means the requested booking status change has
	// no edge in the transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation means the input failed a domain-level check.
	ErrValidation = errors.New("validation failed")
)
