package credentials

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls atomic.Int32
	delay time.Duration
	creds map[string]*Credential
}

func (s *countingStore) Get(_ context.Context, id string) (*Credential, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	if cred, ok := s.creds[id]; ok {
		return cred, nil
	}
	return nil, ErrNotFound
}

func TestNewCachedStore_ZeroTTL(t *testing.T) {
	next := &countingStore{}
	assert.Same(t, Store(next), NewCachedStore(next, 0))
}

func TestCachedStore_HitAndExpiry(t *testing.T) {
	next := &countingStore{creds: map[string]*Credential{"a": {ID: "a"}}}
	store := NewCachedStore(next, time.Minute).(*CachedStore)

	now := time.Now()
	store.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		cred, err := store.Get(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "a", cred.ID)
	}
	assert.EqualValues(t, 1, next.calls.Load())

	now = now.Add(2 * time.Minute)
	_, err := store.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.EqualValues(t, 2, next.calls.Load())

	store.Invalidate("a")
	_, err = store.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.EqualValues(t, 3, next.calls.Load())
}

func TestCachedStore_UnknownNotCached(t *testing.T) {
	next := &countingStore{creds: map[string]*Credential{}}
	store := NewCachedStore(next, time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 2, next.calls.Load())
}

func TestCachedStore_Singleflight(t *testing.T) {
	next := &countingStore{delay: 50 * time.Millisecond, creds: map[string]*Credential{"a": {ID: "a"}}}
	store := NewCachedStore(next, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Get(context.Background(), "a")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, next.calls.Load())
}
