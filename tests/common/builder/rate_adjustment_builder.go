//go:build unit || e2e

package builder

import (
	"time"

	"hotel-admin/internal/domain/rate"
	reqdto "hotel-admin/internal/handler/dto/request"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/queries"
)

type RateAdjustmentBuilder struct {
	ID               int64
	RoomTypeID       int64
	AdjustmentAmount float64
	EffectiveDate    dateonly.Date
	Reason           string
}

func NewRateAdjustmentBuilder() *RateAdjustmentBuilder {
	return &RateAdjustmentBuilder{
		RoomTypeID:       1,
		AdjustmentAmount: 50.0,
		EffectiveDate:    dateonly.New(2024, time.June, 15),
		Reason:           "Summer season",
	}
}

func (b *RateAdjustmentBuilder) With(mutate func(*RateAdjustmentBuilder)) *RateAdjustmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RateAdjustmentBuilder) BuildDomain() (*rate.Adjustment, error) {
	return rate.NewAdjustment(b.ID, b.RoomTypeID, b.AdjustmentAmount, b.EffectiveDate, b.Reason)
}

func (b *RateAdjustmentBuilder) BuildInfra() sqlc.RateAdjustments {
	return sqlc.RateAdjustments{
		ID:               b.ID,
		RoomTypeID:       b.RoomTypeID,
		AdjustmentAmount: b.AdjustmentAmount,
		EffectiveDate:    pgconv.DateToPgtype(b.EffectiveDate),
		Reason:           b.Reason,
	}
}

func (b *RateAdjustmentBuilder) BuildView() *queries.RateAdjustmentView {
	return &queries.RateAdjustmentView{
		ID:               b.ID,
		RoomTypeID:       b.RoomTypeID,
		AdjustmentAmount: b.AdjustmentAmount,
		EffectiveDate:    b.EffectiveDate,
		Reason:           b.Reason,
	}
}

func (b *RateAdjustmentBuilder) BuildCreateDTO() reqdto.CreateRateAdjustmentRequest {
	amount := b.AdjustmentAmount
	return reqdto.CreateRateAdjustmentRequest{
		RoomTypeID:       b.RoomTypeID,
		AdjustmentAmount: &amount,
		EffectiveDate:    b.EffectiveDate,
		Reason:           b.Reason,
	}
}

// Fluent builder methods
func (b *RateAdjustmentBuilder) WithID(id int64) *RateAdjustmentBuilder {
	b.ID = id
	return b
}

func (b *RateAdjustmentBuilder) WithRoomTypeID(roomTypeID int64) *RateAdjustmentBuilder {
	b.RoomTypeID = roomTypeID
	return b
}

func (b *RateAdjustmentBuilder) WithAmount(amount float64) *RateAdjustmentBuilder {
	b.AdjustmentAmount = amount
	return b
}

func (b *RateAdjustmentBuilder) WithEffectiveDate(d dateonly.Date) *RateAdjustmentBuilder {
	b.EffectiveDate = d
	return b
}

func (b *RateAdjustmentBuilder) WithReason(reason string) *RateAdjustmentBuilder {
	b.Reason = reason
	return b
}
