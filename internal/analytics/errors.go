package analytics

import "fmt"

// ValidationError reports a missing or malformed filter criterion. Requests
// failing validation are rejected before any storage access happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Field, e.Reason)
}

// StorageError wraps a record store read failure. The engine never retries;
// retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotFoundError is returned when a trends query targets a restaurant id with
// no matching record, so callers can tell "no such restaurant" apart from
// "no orders in range".
type NotFoundError struct {
	RestaurantID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("restaurant %s not found", e.RestaurantID)
}
