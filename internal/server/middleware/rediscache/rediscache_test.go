package rediscache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	return NewStorage(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestStorage(t *testing.T) {
	s, _ := newTestStorage(t)

	require.Nil(t, s.Get("key"))

	s.Set("key", []byte("content"), time.Minute)
	require.Equal(t, []byte("content"), s.Get("key"))
}

func TestStorage_Expiration(t *testing.T) {
	s, mr := newTestStorage(t)

	s.Set("key", []byte("content"), time.Minute)

	mr.FastForward(2 * time.Minute)

	require.Nil(t, s.Get("key"))
}

func TestStorage_Unreachable(t *testing.T) {
	s, mr := newTestStorage(t)

	mr.Close()

	// failures degrade to cache misses
	require.Nil(t, s.Get("key"))
	s.Set("key", []byte("content"), time.Minute)
}
