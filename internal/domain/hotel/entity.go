package hotel

// Hotel is a property managed by administrators. Names are unique across all hotels;
// the store enforces that constraint.
type Hotel struct {
	id       int64
	name     Name
	location Location
	isActive bool
}

// NewHotel validates and builds a hotel. id is zero for hotels not yet persisted.
func NewHotel(id int64, name, location string, isActive bool) (*Hotel, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	l, err := NewLocation(location)
	if err != nil {
		return nil, err
	}

	return &Hotel{
		id:       id,
		name:     n,
		location: l,
		isActive: isActive,
	}, nil
}

func (h *Hotel) ID() int64          { return h.id }
func (h *Hotel) Name() Name         { return h.name }
func (h *Hotel) Location() Location { return h.location }
func (h *Hotel) IsActive() bool     { return h.isActive }
