package service

import "errors"

// ErrValidation marks errors caused by missing or malformed input. Handlers
// map it to 400; everything else from the storage layer surfaces as 500.
var ErrValidation = errors.New("validation failed")
