package handler

import (
	"errors"
	"io"

	"github.com/iliyamo/hotel-front-desk/internal/console"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// doneWord ends item entry while placing an order.
const doneWord = "done"

// OrderHandler builds, places and lists room-service orders.
type OrderHandler struct {
	Session *service.Session
	Money   Money
}

// Place handles "Place Order".  Item names are read one per line until
// "done"; unknown names are reported and skipped.  The end of input
// places whatever was collected so far.
func (h *OrderHandler) Place(c *console.Context) error {
	var tab model.Order
	c.Printf("Enter item name to add to the order (or '%s' to finish): ", doneWord)
	for {
		line, err := c.Prompt("")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if line == doneWord {
			break
		}
		item, err := h.Session.MenuItem(line)
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			c.Errorln("Invalid item. Please enter a valid item name.")
			continue
		}
		if err != nil {
			return err
		}
		tab.AddItem(item)
	}

	placed := h.Session.PlaceOrder(c.Context(), tab)
	c.Successln("Order placed Successfully!")
	c.Printf("Total: %s\n", h.Money.Format(placed.TotalCents()))
	return nil
}

// List handles "View Orders".
func (h *OrderHandler) List(c *console.Context) error {
	orders := h.Session.Orders()
	if len(orders) == 0 {
		c.Println("No orders yet.")
		return nil
	}
	c.Println("Current Orders:")
	for _, o := range orders {
		c.Printf("Order #%d Details:\n", o.ID)
		for _, item := range o.Items {
			printItem(c, h.Money, item)
		}
		c.Println(separator)
		c.Printf("Total: %s\n", h.Money.Format(o.TotalCents()))
		c.Println(separator)
	}
	return nil
}
