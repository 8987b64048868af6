// Package repository persists the domain models in PostgreSQL through GORM and
// keeps sessions in Redis. Every method takes the caller's context and returns
// types.AppError values so services never see driver errors.
package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"home-maintenance-server/types"
)

// notFoundOr maps a missing row to a not-found error and anything else to an
// internal error carrying op as context
func notFoundOr(err error, notFoundMsg, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.NewNotFoundError(notFoundMsg)
	}
	return types.NewInternalError(op, err)
}

// duplicateOr maps a unique-constraint violation to a conflict error
func duplicateOr(err error, conflictMsg, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return types.NewConflictError(conflictMsg)
	}
	return types.NewInternalError(op, err)
}

// IsValidID reports whether id is a syntactically valid identifier
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validIDs drops identifiers that cannot match any row
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if IsValidID(id) {
			out = append(out, id)
		}
	}
	return out
}
