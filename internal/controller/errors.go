package controller

import "errors"

// ErrInvalidInput marks client-side validation failures. Writes blocked by
// it never reach the network.
var ErrInvalidInput = errors.New("invalid input")
