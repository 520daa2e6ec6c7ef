package adapter

import "errors"

var (
	ErrBridgeUnavailable = errors.New("autofill runtime unavailable")
	ErrUnauthorized      = errors.New("bridge request unauthorized")
)
