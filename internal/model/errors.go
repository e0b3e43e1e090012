package model

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrNotFound      = errors.New("not found")
	// ErrConflict is returned by the store when a racing writer created the
	// same canonical row first. Callers resolve it by re-reading.
	ErrConflict  = errors.New("conflict")
	ErrTransport = errors.New("transport error")
	ErrStore     = errors.New("store error")
)
