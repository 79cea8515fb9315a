package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidInput indicates a malformed or out-of-range conversion input,
// such as a non-positive amount.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoRateAvailable indicates that a currency exists but has no rate records.
var ErrNoRateAvailable = errors.New("no rate available")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnavailable indicates a transient storage failure (e.g. a dropped
// database connection) that callers should treat as retryable.
var ErrUnavailable = errors.New("storage unavailable")
