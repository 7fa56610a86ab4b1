package handler

import (
	"github.com/iliyamo/hotel-front-desk/internal/console"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// ComplaintHandler records and lists guest complaints.
type ComplaintHandler struct {
	Session *service.Session
}

// Register handles "Register Complaint".  The complaint is read as one
// free-text line; neither field is validated.
func (h *ComplaintHandler) Register(c *console.Context) error {
	name, err := c.Prompt("Enter your name: ")
	if err != nil {
		return err
	}
	text, err := c.Prompt("Enter your complaint: ")
	if err != nil {
		return err
	}
	h.Session.RegisterComplaint(c.Context(), name, text)
	c.Successln("Complaint registered successfully.")
	return nil
}

// List handles "View Complaints".
func (h *ComplaintHandler) List(c *console.Context) error {
	complaints := h.Session.Complaints()
	if len(complaints) == 0 {
		c.Println("No complaints registered.")
		return nil
	}
	c.Println("Current Complaints:")
	for _, cm := range complaints {
		c.Printf("Guest: %s\nComplaint: %s\n%s\n", cm.GuestName, cm.Text, separator)
	}
	return nil
}
