package httperr

import (
	"errors"
	"fmt"
)

// ===============================
// Erros de regra de negócio
// ===============================

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ===============================
// Forbidden — sempre distinto de NotFound
// ===============================

type ForbiddenError struct {
	Code string
}

func (e ForbiddenError) Error() string {
	return e.Code
}

func ErrForbidden(code string) error {
	return ForbiddenError{Code: code}
}

func IsForbidden(err error) bool {
	var fe ForbiddenError
	return errors.As(err, &fe)
}

// ===============================
// Conflito referencial (deletion guard)
// ===============================

type ReferentialConflictError struct {
	Entity string
	Count  int64
}

func (e ReferentialConflictError) Error() string {
	return fmt.Sprintf("referential_conflict: %s referenced by %d appointments", e.Entity, e.Count)
}

func ErrReferentialConflict(entity string, count int64) error {
	return ReferentialConflictError{Entity: entity, Count: count}
}

func AsReferentialConflict(err error) (ReferentialConflictError, bool) {
	var rc ReferentialConflictError
	ok := errors.As(err, &rc)
	return rc, ok
}
