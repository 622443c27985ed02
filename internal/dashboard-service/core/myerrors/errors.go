package myerrors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrUnknownEmail    = errors.New("unknown email")
	ErrPasswordUnknown = errors.New("unknown password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnknownClient   = errors.New("delivery requires an existing client")
	ErrRingTooShort    = errors.New("zone ring needs at least 3 distinct vertices")
	ErrRoutingUpstream = errors.New("routing service failed")
)
