package request

import (
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/usecase/queries"
)

type ListQuery struct {
	Skip  int  `form:"skip" binding:"min=0"`
	Limit *int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

func (q ListQuery) ToPage() (queries.Page, error) {
	return queries.NewPage(q.Skip, q.Limit)
}

type EffectiveRateQuery struct {
	DateStr string `form:"date_str"`
}

// Date is nil when no date was supplied, meaning today.
func (q EffectiveRateQuery) Date() (*dateonly.Date, error) {
	if q.DateStr == "" {
		return nil, nil
	}
	d, err := dateonly.Parse(q.DateStr)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
