package repositories

import "fmt"

// DataAccessError wraps a storage engine failure on the query path,
// preserving the underlying cause for logging while keeping a stable type
// for callers to match on.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("sales %s query failed: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func newDataAccessError(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}
