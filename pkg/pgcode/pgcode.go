// Package pgcode classifies errors raised by the database routines.
//
// The stored procedures signal business-rule violations through SQLSTATE
// codes; each handler translates the subset of codes it expects into an
// HTTP status. Anything unrecognized is an unexpected failure.
package pgcode

import (
	"errors"

	"github.com/lib/pq"
)

const (
	// RaisedException is the generic code the routines raise for
	// uniqueness violations such as a duplicate department name.
	RaisedException = "45000"
	// UniqueViolation is raised by the database itself for unique
	// constraints (the users table's email index).
	UniqueViolation = "23505"
	// UnknownEntity: the referenced department/membership does not exist.
	UnknownEntity = "P0001"
	// UnknownEmployee: one or more referenced card IDs do not exist.
	UnknownEmployee = "P0002"
	// AlreadyMember: the employee already belongs to the department.
	AlreadyMember = "P0003"
)

// Of returns the vendor error code carried by err, or "" when err did not
// originate from the database driver.
func Of(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Message returns the routine-supplied error message, or "" for
// non-database errors.
func Message(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message
	}
	return ""
}
