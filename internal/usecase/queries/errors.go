package queries

import (
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
)

// mapNotFound turns a missing row into the given sentinel and marks anything
// else as a storage failure.
func mapNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
