package hotel

import "strings"

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Location{}, ErrEmptyLocation
	}
	return Location{value: t}, nil
}

func (l Location) String() string { return l.value }
