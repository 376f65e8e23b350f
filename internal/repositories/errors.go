package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services map
// these onto domain error kinds; callers must use errors.Is since GORM
// implementations wrap them with context.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
