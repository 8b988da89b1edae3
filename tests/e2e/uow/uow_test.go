//go:build e2e

package uow_test

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/domain/hotel"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/infra/uow"
	"hotel-admin/internal/usecase/shared"
	"hotel-admin/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type uowSuite struct {
	e2e.SharedSuite
}

func TestUnitOfWorkSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(uowSuite))
}

func (s *uowSuite) countHotels() int {
	var n int
	s.Require().NoError(s.DB.QueryRow(context.Background(), "SELECT count(*) FROM hotels").Scan(&n))
	return n
}

func (s *uowSuite) TestWithin() {
	ctx := context.Background()
	work := uow.NewPostgresUoW(s.DB, sqlc.New())

	s.Run("panicking work rolls back and returns its connection", func() {
		// a leaked connection per panic would exhaust the pool before the deadline
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		for range int(s.DB.Config().MaxConns) + 1 {
			s.Panics(func() {
				_ = work.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					h, err := hotel.NewHotel(0, "Ghost", "Nowhere", true)
					s.Require().NoError(err)
					_, err = tx.Hotels().Create(ctx, h)
					s.Require().NoError(err)
					panic("handler bug")
				})
			})
		}

		s.Equal(int32(0), s.DB.Stat().AcquiredConns())
		s.Equal(0, s.countHotels())
	})

	s.Run("failed work leaves no rows behind", func() {
		err := work.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			h, err := hotel.NewHotel(0, "Dup", "Here", true)
			s.Require().NoError(err)
			if _, err := tx.Hotels().Create(ctx, h); err != nil {
				return err
			}
			_, err = tx.Hotels().Create(ctx, h)
			return err
		})

		s.Error(err)
		s.Equal(0, s.countHotels())
		s.Equal(int32(0), s.DB.Stat().AcquiredConns())
	})
}
