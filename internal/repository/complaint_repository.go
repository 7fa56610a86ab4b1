package repository

import (
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// ComplaintRepo is an append-only log of guest complaints.
type ComplaintRepo struct {
	complaints []model.Complaint
	now        func() time.Time
}

// NewComplaintRepo returns an empty complaint log.
func NewComplaintRepo() *ComplaintRepo {
	return &ComplaintRepo{now: time.Now}
}

// Create records a complaint.  Empty names or texts are accepted as is.
func (r *ComplaintRepo) Create(guestName, text string) model.Complaint {
	c := model.Complaint{GuestName: guestName, Text: text, CreatedAt: r.now().UTC()}
	r.complaints = append(r.complaints, c)
	return c
}

// List returns the complaints in registration order.
func (r *ComplaintRepo) List() []model.Complaint {
	out := make([]model.Complaint, len(r.complaints))
	copy(out, r.complaints)
	return out
}
