package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0, "cv")
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

type item struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cv:pessoas:1", (&Cache{Prefix: "cv"}).Key("pessoas", "1"))
	assert.Equal(t, "pessoas:1", (&Cache{}).Key("pessoas", "1"))
}

func TestNamespaceGet(t *testing.T) {
	c, mr := newTestCache(t)
	ns := NewNamespace[item](c, "pessoas", time.Minute)
	ctx := context.Background()
	var loads int32
	load := func(context.Context) (*item, error) {
		atomic.AddInt32(&loads, 1)
		return &item{ID: 1, Nome: "Ana"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := ns.Get(ctx, 1, load)
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Nome)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&loads))
	assert.Equal(t, "cv:pessoas:1", ns.Key(1))
	assert.Equal(t, time.Minute, mr.TTL("cv:pessoas:1"))

	require.NoError(t, ns.Evict(ctx, 1))
	assert.False(t, mr.Exists("cv:pessoas:1"))
}

func TestNamespaceErrorNotCached(t *testing.T) {
	c, mr := newTestCache(t)
	ns := NewNamespace[item](c, "habilidades", time.Minute)
	boom := errors.New("not found")

	_, err := ns.Get(context.Background(), 7, func(context.Context) (*item, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("cv:habilidades:7"))
}

func TestNamespaceCorruptEntryReloads(t *testing.T) {
	c, mr := newTestCache(t)
	ns := NewNamespace[item](c, "pessoas", time.Minute)
	require.NoError(t, mr.Set("cv:pessoas:2", "{not json"))

	got, err := ns.Get(context.Background(), 2, func(context.Context) (*item, error) {
		return &item{ID: 2, Nome: "Bia"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Bia", got.Nome)
}

func TestGetOrLoadSingleflight(t *testing.T) {
	c, _ := newTestCache(t)
	var loads int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrLoad(context.Background(), "cv:hot", time.Minute, func(context.Context) ([]byte, error) {
				atomic.AddInt32(&loads, 1)
				<-release
				return []byte(`{}`), nil
			})
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&loads), int32(2))
}

func TestFlushPrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	for i := 0; i < 450; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("cv:habilidades:%d", i), "x"))
	}
	require.NoError(t, mr.Set("cv:pessoas:1", "x"))

	require.NoError(t, c.FlushNamespace(ctx, "habilidades"))

	assert.Len(t, mr.Keys(), 1)
	assert.True(t, mr.Exists("cv:pessoas:1"))
	assert.NoError(t, c.Delete(ctx))
}
