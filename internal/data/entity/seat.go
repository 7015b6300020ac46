package entity

// Seat is a single bookable unit identified by a capital letter (A-Z).
type Seat struct {
	id          rune
	reservedFor string
	reserved    bool
}

func newSeat(id rune) Seat {
	return Seat{id: id}
}

func (s *Seat) ID() string {
	return string(s.id)
}

// ReservedFor returns the occupant name and whether the seat is taken.
func (s *Seat) ReservedFor() (string, bool) {
	return s.reservedFor, s.reserved
}

// Reserve sets the occupant. Double-booking is guarded by the allocator, not here.
func (s *Seat) Reserve(name string) {
	s.reservedFor = name
	s.reserved = true
}

func (s *Seat) Release() {
	s.reservedFor = ""
	s.reserved = false
}

func (s *Seat) IsFree() bool {
	return !s.reserved
}
