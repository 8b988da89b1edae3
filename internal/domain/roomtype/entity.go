package roomtype

type RoomType struct {
	id       int64
	hotelID  int64
	name     Name
	baseRate BaseRate
}

func NewRoomType(id, hotelID int64, name string, baseRate float64) (*RoomType, error) {
	if hotelID <= 0 {
		return nil, ErrInvalidHotelID
	}

	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	rate, err := NewBaseRate(baseRate)
	if err != nil {
		return nil, err
	}

	return &RoomType{
		id:       id,
		hotelID:  hotelID,
		name:     n,
		baseRate: rate,
	}, nil
}

func (r *RoomType) ID() int64          { return r.id }
func (r *RoomType) HotelID() int64     { return r.hotelID }
func (r *RoomType) Name() Name         { return r.name }
func (r *RoomType) BaseRate() BaseRate { return r.baseRate }
