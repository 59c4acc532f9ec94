// file: internals/features/attendance/service/errors.go
package service

import "fmt"

// DataAccessError: accessor gagal mengambil slice datanya. Tidak dipulihkan
// lokal — dashboard gagal utuh, bukan hasil parsial.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("attendance data access failed (%s): %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func wrapDataAccess(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}
