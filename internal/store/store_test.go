package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_AddAndGet(t *testing.T) {
	s := NewUserStore()

	u := User{ID: "u-1", Name: "Ada", Email: "ada@example.com", CreatedAt: time.Now().UTC()}
	s.Add(u)

	got, ok := s.Get("u-1")
	require.True(t, ok)
	assert.Equal(t, u, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestUserStore_ListReturnsSnapshot(t *testing.T) {
	s := NewUserStore()
	s.Add(User{ID: "u-1", Name: "Ada", Email: "ada@example.com"})
	s.Add(User{ID: "u-2", Name: "Grace", Email: "grace@example.com"})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "u-1", list[0].ID)
	assert.Equal(t, "u-2", list[1].ID)

	// Mutating the snapshot must not leak into the store.
	list[0].Name = "changed"
	got, ok := s.Get("u-1")
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Name)
}

func TestUserStore_LastWriteWins(t *testing.T) {
	s := NewUserStore()
	s.Add(User{ID: "u-1", Name: "Ada", Email: "ada@example.com"})
	s.Add(User{ID: "u-2", Name: "Grace", Email: "grace@example.com"})
	s.Add(User{ID: "u-1", Name: "Ada L.", Email: "lovelace@example.com"})

	// Replacement keeps list position and does not grow the list.
	assert.Equal(t, 2, s.Len())
	list := s.List()
	assert.Equal(t, "Ada L.", list[0].Name)

	got, ok := s.Get("u-1")
	require.True(t, ok)
	assert.Equal(t, "lovelace@example.com", got.Email)
}

func TestUserStore_ConcurrentAdds(t *testing.T) {
	s := NewUserStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("u-%d", i)
			s.Add(User{ID: id, Name: "user", Email: id + "@example.com"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	assert.Len(t, s.List(), 50)
}
