//go:build unit

package commands_test

import (
	"testing"

	"hotel-admin/internal/infra"
	"hotel-admin/tests/common/uowtest"
	sharedmock "hotel-admin/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

func newMocks(t *testing.T) (*sharedmock.MockUnitOfWork, *uowtest.Repositories) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repos := uowtest.NewRepositories(ctrl)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uowtest.Passthrough(uow, repos.Tx, nil)
	return uow, repos
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr("test", nil, kind)
}

func ptr[T any](v T) *T { return &v }
