package model

import "time"

// Complaint is a free-text note left by a guest.  Complaints are only
// ever appended.
type Complaint struct {
	GuestName string    // who complained
	Text      string    // complaint as typed
	CreatedAt time.Time // registration timestamp
}
