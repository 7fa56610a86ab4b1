package repository

import "github.com/iliyamo/hotel-front-desk/internal/model"

// RoomRepo tracks the occupancy of every room.  Rooms are stored in
// ascending number order and the slice never changes length after
// construction.
type RoomRepo struct {
	rooms []model.Room
}

// NewRoomRepo seeds count unbooked rooms numbered 1..count.
func NewRoomRepo(count int) *RoomRepo {
	rooms := make([]model.Room, 0, count)
	for i := 1; i <= count; i++ {
		rooms = append(rooms, model.Room{Number: i})
	}
	return &RoomRepo{rooms: rooms}
}

// Count returns the number of rooms in the hotel.
func (r *RoomRepo) Count() int { return len(r.rooms) }

// ListAvailable returns the unbooked rooms in ascending number order.
// When every room is booked it returns an empty slice.
func (r *RoomRepo) ListAvailable() []model.Room {
	out := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if !room.IsBooked {
			out = append(out, room)
		}
	}
	return out
}

// GetByNumber returns a copy of the room with the given number or
// ErrRoomNotFound.
func (r *RoomRepo) GetByNumber(number int) (model.Room, error) {
	i := r.index(number)
	if i < 0 {
		return model.Room{}, ErrRoomNotFound
	}
	return r.rooms[i], nil
}

// Book marks the room as booked.  It returns ErrRoomUnavailable when the
// room does not exist or is already booked; in that case nothing changes.
func (r *RoomRepo) Book(number int) error {
	i := r.index(number)
	if i < 0 || r.rooms[i].IsBooked {
		return ErrRoomUnavailable
	}
	r.rooms[i].IsBooked = true
	return nil
}

// Release marks the room as free again.  Releasing a free room is a
// no-op.  It returns ErrRoomNotFound for an unknown number.
func (r *RoomRepo) Release(number int) error {
	i := r.index(number)
	if i < 0 {
		return ErrRoomNotFound
	}
	r.rooms[i].IsBooked = false
	return nil
}

// index maps a room number to its slot.  Rooms are numbered 1..N so the
// slot is number-1, but the stored number is checked in case the
// numbering ever stops being dense.
func (r *RoomRepo) index(number int) int {
	i := number - 1
	if i >= 0 && i < len(r.rooms) && r.rooms[i].Number == number {
		return i
	}
	for j, room := range r.rooms {
		if room.Number == number {
			return j
		}
	}
	return -1
}
