package repository

import (
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// OrderRepo is the append-only order history.
type OrderRepo struct {
	orders []model.Order
	nextID uint64
	now    func() time.Time
}

// NewOrderRepo returns an empty history whose first order gets ID 1.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{nextID: 1, now: time.Now}
}

// Create finalizes an order: it assigns ID and PlacedAt, stores a copy
// whose item slice is not shared with the caller, and returns it.
func (r *OrderRepo) Create(o model.Order) model.Order {
	placed := model.Order{
		ID:       r.nextID,
		Items:    append([]model.MenuItem(nil), o.Items...),
		PlacedAt: r.now().UTC(),
	}
	r.nextID++
	r.orders = append(r.orders, placed)
	return placed
}

// List returns the placed orders, oldest first.
func (r *OrderRepo) List() []model.Order {
	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out
}
