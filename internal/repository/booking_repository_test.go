package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepo_SequentialIDs(t *testing.T) {
	repo := NewBookingRepo()
	a := repo.Create(1, "Alice")
	b := repo.Create(2, "Bob")
	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(2), b.ID)

	require.NoError(t, repo.Delete(b.ID))
	c := repo.Create(2, "Carol")
	assert.Equal(t, uint64(3), c.ID, "ids of removed bookings are not reused")
}

func TestBookingRepo_GetAndDelete(t *testing.T) {
	repo := NewBookingRepo()
	repo.Create(4, "Alice")
	bob := repo.Create(7, "Bob")

	got, err := repo.GetByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.GuestName)
	assert.Equal(t, 7, got.RoomNumber)

	got, err = repo.GetByRoom(4)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.GuestName)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	_, err = repo.GetByRoom(5)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.ErrorIs(t, repo.Delete(99), ErrBookingNotFound)
	assert.Len(t, repo.List(), 2)

	require.NoError(t, repo.Delete(1))
	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Bob", list[0].GuestName)
	_, err = repo.GetByID(1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepo_ListKeepsCreationOrder(t *testing.T) {
	repo := NewBookingRepo()
	for i, name := range []string{"A", "B", "C", "D"} {
		repo.Create(i+1, name)
	}
	require.NoError(t, repo.Delete(2))

	var names []string
	for _, b := range repo.List() {
		names = append(names, b.GuestName)
	}
	assert.Equal(t, []string{"A", "C", "D"}, names)
}
