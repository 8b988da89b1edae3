package commands

import (
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
)

// mapRepoErr translates repository failures into usecase sentinels. Errors that
// already carry a sentinel pass through untouched.
func mapRepoErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrDomainValidation)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}
