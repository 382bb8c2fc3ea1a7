package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ---- fakes ----

// fakeStore keeps JSON blobs so decode behaviour matches the real backends.
type fakeStore struct {
	mu   sync.Mutex
	m    map[string][]byte
	fail error
}

func newFakeStore() *fakeStore { return &fakeStore{m: map[string][]byte{}} }

func (s *fakeStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}
	b, ok := s.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (s *fakeStore) Set(ctx context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.m[key] = b
	return nil
}

// stallingStore parks the first read of key after it has loaded, until
// release is closed.
type stallingStore struct {
	*fakeStore
	key     string
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func (s *stallingStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	ok, err := s.fakeStore.Get(ctx, key, dst)
	if key == s.key {
		s.once.Do(func() {
			close(s.loaded)
			<-s.release
		})
	}
	return ok, err
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	dels  []string
	gets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// brokenCache fails every call; services must keep working without it.
type brokenCache struct{}

var errCacheDown = errors.New("cache down")

func (brokenCache) Get(context.Context, string, any) (bool, error) { return false, errCacheDown }
func (brokenCache) Set(context.Context, string, any, int) error    { return errCacheDown }
func (brokenCache) Del(context.Context, string) error              { return errCacheDown }
