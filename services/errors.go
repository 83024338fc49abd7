package services

import "errors"

var (
	// ErrEmailTaken is returned when a signup email already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnavailable maps to 503: quota-limited or circuit-broken upstream.
	ErrUnavailable = errors.New("service temporarily unavailable")
	// ErrUpstream maps to 502: the upstream API failed.
	ErrUpstream = errors.New("upstream API error")
)
