package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomNumbers(r *RoomRepo) []int {
	var out []int
	for _, room := range r.ListAvailable() {
		out = append(out, room.Number)
	}
	return out
}

func TestRoomRepo_AllAvailableAfterSeed(t *testing.T) {
	for _, n := range []int{1, 2, 10} {
		repo := NewRoomRepo(n)
		rooms := repo.ListAvailable()
		require.Len(t, rooms, n)
		for i, room := range rooms {
			assert.Equal(t, i+1, room.Number)
			assert.False(t, room.IsBooked)
		}
		assert.Equal(t, n, repo.Count())
	}
}

func TestRoomRepo_Book(t *testing.T) {
	tests := []struct {
		name    string
		booked  []int
		number  int
		wantErr error
	}{
		{name: "free room", number: 3},
		{name: "already booked", booked: []int{3}, number: 3, wantErr: ErrRoomUnavailable},
		{name: "room zero", number: 0, wantErr: ErrRoomUnavailable},
		{name: "past last room", number: 11, wantErr: ErrRoomUnavailable},
		{name: "negative", number: -4, wantErr: ErrRoomUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRoomRepo(10)
			for _, n := range tt.booked {
				require.NoError(t, repo.Book(n))
			}
			before := roomNumbers(repo)

			err := repo.Book(tt.number)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, roomNumbers(repo))
				return
			}
			require.NoError(t, err)
			room, err := repo.GetByNumber(tt.number)
			require.NoError(t, err)
			assert.True(t, room.IsBooked)
			assert.NotContains(t, roomNumbers(repo), tt.number)
		})
	}
}

func TestRoomRepo_Release(t *testing.T) {
	repo := NewRoomRepo(3)
	require.NoError(t, repo.Book(2))
	assert.Equal(t, []int{1, 3}, roomNumbers(repo))

	require.NoError(t, repo.Release(2))
	assert.Equal(t, []int{1, 2, 3}, roomNumbers(repo))

	// releasing a free room changes nothing
	require.NoError(t, repo.Release(2))
	assert.Equal(t, []int{1, 2, 3}, roomNumbers(repo))

	assert.ErrorIs(t, repo.Release(42), ErrRoomNotFound)
}

func TestRoomRepo_ListAvailableIsACopy(t *testing.T) {
	repo := NewRoomRepo(2)
	rooms := repo.ListAvailable()
	rooms[0].IsBooked = true
	assert.Len(t, repo.ListAvailable(), 2)
}
