package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/embedcache/embedcache/keys"
)

func TestMapStoreBasicOperations(t *testing.T) {
	store := NewMapStore()
	ctx := context.Background()
	key := keys.Derive("hello world")

	_, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, key, []byte("blob")))

	val, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("blob"), val)

	ok, err := store.Contains(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, store.Delete(ctx, key))
	ok, err = store.Contains(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Close())
}

func TestMapStoreOverwrite(t *testing.T) {
	store := NewMapStore()
	ctx := context.Background()
	key := keys.Derive("text")

	require.NoError(t, store.Set(ctx, key, []byte("old")))
	require.NoError(t, store.Set(ctx, key, []byte("new")))

	val, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("new"), val)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMapStoreDefensiveCopies(t *testing.T) {
	store := NewMapStore()
	ctx := context.Background()
	key := keys.Derive("text")

	in := []byte{1, 2, 3}
	require.NoError(t, store.Set(ctx, key, in))
	in[0] = 99

	out, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, out)

	out[1] = 99
	again, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, again)
}

func TestMapStoreFlush(t *testing.T) {
	store := NewMapStore()
	ctx := context.Background()

	for i := range 10 {
		require.NoError(t, store.Set(ctx, keys.Derive(fmt.Sprintf("text %d", i)), []byte{byte(i)}))
	}
	require.NoError(t, store.Flush(ctx))

	n, err := store.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestMapStoreConcurrentAccess(t *testing.T) {
	store := NewMapStore()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, keys.Derive(fmt.Sprintf("text %d", i)), []byte{byte(i)})
		}()
		go func() {
			defer wg.Done()
			_, _, _ = store.Get(ctx, keys.Derive(fmt.Sprintf("text %d", i)))
		}()
	}
	wg.Wait()

	for i := range n {
		val, found, err := store.Get(ctx, keys.Derive(fmt.Sprintf("text %d", i)))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte{byte(i)}, val)
	}
}
