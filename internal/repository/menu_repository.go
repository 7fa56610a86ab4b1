package repository

import (
	"golang.org/x/text/cases"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// DefaultMenu returns the room-service catalog the hotel starts with.
func DefaultMenu() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Burger", PriceCents: 4900},
		{Name: "Pizza", PriceCents: 13900},
		{Name: "Pasta", PriceCents: 6900},
		{Name: "Maggi", PriceCents: 4900},
		{Name: "French Fries", PriceCents: 6000},
		{Name: "Potato Chilli", PriceCents: 8000},
		{Name: "Paneer Chilli", PriceCents: 9900},
		{Name: "Fried Rice", PriceCents: 7000},
		{Name: "Spring Roll", PriceCents: 5000},
		{Name: "Soft Drink", PriceCents: 5000},
		{Name: "Mineral Water", PriceCents: 2500},
	}
}

// MenuRepo is the fixed catalog of purchasable items.  Lookups compare
// Unicode case-folded names, so "PIZZA", "pizza" and "Pizza" all match.
type MenuRepo struct {
	items  []model.MenuItem
	folded []string
	fold   cases.Caser
}

// NewMenuRepo builds a catalog from items.  The slice is copied.
func NewMenuRepo(items []model.MenuItem) *MenuRepo {
	r := &MenuRepo{
		items:  make([]model.MenuItem, len(items)),
		folded: make([]string, len(items)),
		fold:   cases.Fold(),
	}
	copy(r.items, items)
	for i, item := range r.items {
		r.folded[i] = r.fold.String(item.Name)
	}
	return r
}

// List returns the catalog in its fixed order.
func (r *MenuRepo) List() []model.MenuItem {
	out := make([]model.MenuItem, len(r.items))
	copy(out, r.items)
	return out
}

// GetByName returns the item whose name equals name ignoring case, or
// ErrMenuItemNotFound.  Partial names never match.
func (r *MenuRepo) GetByName(name string) (model.MenuItem, error) {
	key := r.fold.String(name)
	for i, folded := range r.folded {
		if folded == key {
			return r.items[i], nil
		}
	}
	return model.MenuItem{}, ErrMenuItemNotFound
}
