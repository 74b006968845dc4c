package allocation

import "errors"

// ErrRowOverflow is returned by Place when a team would not fit in the row.
// The seat allocator always checks CanFit first, so seeing this error means
// a caller broke the contract.
var ErrRowOverflow = errors.New("allocation: team does not fit in row")

// Room is one physical room configured for the event: NumRows rows of
// SeatsPerRow seats each. RoomNo is the unique key. The configuration is
// fixed for the duration of an allocation run.
type Room struct {
	RoomNo      string
	SeatsPerRow int
	NumRows     int
}

// Capacity returns the total number of seats in the room.
func (r Room) Capacity() int { return r.SeatsPerRow * r.NumRows }

// RoomLayout tracks row occupancy for one room during a seating run. Teams
// are packed contiguously from the left of a row, so a row's state is fully
// described by its remaining seat count.
type RoomLayout struct {
	room      Room
	remaining []int
}

// NewRoomLayout builds an empty layout for the given room, every row
// starting with SeatsPerRow free seats.
func NewRoomLayout(room Room) *RoomLayout {
	rem := make([]int, room.NumRows)
	for i := range rem {
		rem[i] = room.SeatsPerRow
	}
	return &RoomLayout{room: room, remaining: rem}
}

// RoomNo returns the room identifier this layout belongs to.
func (l *RoomLayout) RoomNo() string { return l.room.RoomNo }

// Rows returns the number of rows in the room.
func (l *RoomLayout) Rows() int { return len(l.remaining) }

// RowCapacity returns the seat count of a full row.
func (l *RoomLayout) RowCapacity() int { return l.room.SeatsPerRow }

// Remaining returns the free seats left in the zero-based row.
func (l *RoomLayout) Remaining(row int) int { return l.remaining[row] }

// CanFit reports whether a team of the given size still fits in the row.
func (l *RoomLayout) CanFit(row, teamSize int) bool {
	return row >= 0 && row < len(l.remaining) && teamSize >= 1 && l.remaining[row] >= teamSize
}

// Place seats a team in the row and returns the seats left afterwards.
func (l *RoomLayout) Place(row, teamSize int) (int, error) {
	if !l.CanFit(row, teamSize) {
		return 0, ErrRowOverflow
	}
	l.remaining[row] -= teamSize
	return l.remaining[row], nil
}
