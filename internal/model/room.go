package model

// Room is a guest room of the hotel.  Rooms are seeded once at startup,
// numbered 1..N, and are never removed.  IsBooked flips to true when a
// booking is made and back to false on check-out.
//
// Fields:
//  Number   – room number, unique within the hotel.
//  IsBooked – whether a booking currently holds the room.
type Room struct {
	Number   int  // room number (1..N)
	IsBooked bool // true while a booking references this room
}
