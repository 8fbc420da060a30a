package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()

	token := NewToken()
	assert.NoError(t, store.Set(token, 42))

	id, ok := store.Get(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	assert.NoError(t, store.Delete(token))
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore()

	id, ok := store.Get("no-such-token")
	assert.False(t, ok)
	assert.Zero(t, id)

	// deleting a token that never existed is not an error
	assert.NoError(t, store.Delete("no-such-token"))
}

func TestNewToken_Distinct(t *testing.T) {
	assert.NotEqual(t, NewToken(), NewToken())
}
