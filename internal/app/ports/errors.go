package ports

import "errors"

// Repository-level sentinels. Adapters translate driver errors into these;
// usecases wrap them with caller-facing messages.
var (
	ErrNotFound = errors.New("not found")
	ErrDeleted  = errors.New("deleted")
	ErrConflict = errors.New("conflict")
)
