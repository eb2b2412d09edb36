package cache

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"lis-dashboard/internal/backend"
	"lis-dashboard/internal/domain/address"
	"lis-dashboard/internal/mockstore"
	"lis-dashboard/pkg/jsonx"
)

type countingHandler struct {
	next  backend.Handler
	mu    sync.Mutex
	calls []string
}

func (h *countingHandler) Handle(ctx context.Context, method, path string, body []byte) (any, error) {
	h.mu.Lock()
	h.calls = append(h.calls, method+" "+path)
	h.mu.Unlock()
	return h.next.Handle(ctx, method, path, body)
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.calls)
}

func setup(t *testing.T) (*miniredis.Miniredis, *countingHandler, *AddressCache) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	h := &countingHandler{next: mockstore.New()}
	return s, h, NewAddressCache(h, rdb)
}

func items(t *testing.T, v any) []address.Item {
	t.Helper()
	var out []address.Item
	if err := jsonx.CopyByJSON(&out, v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestKey(t *testing.T) {
	tests := []struct {
		level  address.Level
		parent string
		want   string
	}{
		{address.Regions, "", "address:regions"},
		{address.Provinces, "04", "address:provinces:04"},
		{address.Municipalities, "0401", "address:municipalities:0401"},
		{address.Barangays, "040101", "address:barangays:040101"},
	}
	for _, tt := range tests {
		if got := Key(tt.level, tt.parent); got != tt.want {
			t.Fatalf("Key(%s, %q) = %q, want %q", tt.level, tt.parent, got, tt.want)
		}
	}
}

func TestAddressCache_ReadThrough(t *testing.T) {
	s, h, c := setup(t)
	ctx := context.Background()

	first, err := c.Handle(ctx, "GET", "/address/provinces?region_code=04", nil)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := c.Handle(ctx, "GET", "/address/provinces?region_code=04", nil)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if h.count() != 1 {
		t.Fatalf("second read should hit redis, backend calls = %d", h.count())
	}
	if _, ok := second.(jsonx.RawMessage); !ok {
		t.Fatalf("cache hit should be raw JSON, got %T", second)
	}
	if !reflect.DeepEqual(items(t, first), items(t, second)) {
		t.Fatalf("cached value differs")
	}
	if ttl := s.TTL("address:provinces:04"); ttl != DefaultTTL {
		t.Fatalf("ttl = %v", ttl)
	}
}

func TestAddressCache_PassThrough(t *testing.T) {
	_, h, c := setup(t)
	ctx := context.Background()

	for _, p := range []string{"/projects", "/address/provinces", "/address/regions/04"} {
		_, _ = c.Handle(ctx, "GET", p, nil)
		_, _ = c.Handle(ctx, "GET", p, nil)
	}
	if h.count() != 6 {
		t.Fatalf("uncached routes must always reach the backend, calls = %d", h.count())
	}
}

func TestAddressCache_InvalidatesLevel(t *testing.T) {
	s, h, c := setup(t)
	ctx := context.Background()

	_, _ = c.Handle(ctx, "GET", "/address/regions", nil)
	_, _ = c.Handle(ctx, "GET", "/address/provinces?region_code=04", nil)
	_, _ = c.Handle(ctx, "GET", "/address/provinces?region_code=13", nil)

	if _, err := c.Handle(ctx, "POST", "/address/provinces", []byte(`{"code":"1301","name":"Manila","region_code":"13"}`)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Exists("address:provinces:04") || s.Exists("address:provinces:13") {
		t.Fatalf("province lists should be dropped: %v", s.Keys())
	}
	if !s.Exists("address:regions") {
		t.Fatalf("other levels stay cached")
	}

	before := h.count()
	res, err := c.Handle(ctx, "GET", "/address/provinces?region_code=13", nil)
	if err != nil || h.count() != before+1 {
		t.Fatalf("refetch expected: %v", err)
	}
	if got := items(t, res); len(got) != 1 || got[0].Code != "1301" {
		t.Fatalf("provinces of 13 = %+v", got)
	}
}

func TestAddressCache_FailedMutationKeepsCache(t *testing.T) {
	s, _, c := setup(t)
	ctx := context.Background()

	_, _ = c.Handle(ctx, "GET", "/address/regions", nil)
	if _, err := c.Handle(ctx, "DELETE", "/address/regions/04", nil); err == nil {
		t.Fatalf("region with provinces must not be deleted")
	}
	if !s.Exists("address:regions") {
		t.Fatalf("failed mutation must not invalidate")
	}
}

func TestAddressCache_Warm(t *testing.T) {
	s, _, c := setup(t)

	res, err := c.Handle(context.Background(), "POST", "/address/warm", nil)
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if m, ok := res.(map[string]string); !ok || m["status"] != "ok" {
		t.Fatalf("warm result = %v", res)
	}

	keys := s.Keys()
	sort.Strings(keys)
	want := []string{
		"address:barangays:040101",
		"address:municipalities:0401",
		"address:municipalities:0402",
		"address:provinces:04",
		"address:provinces:13",
		"address:regions",
	}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
}

func TestAddressCache_WithoutRedis(t *testing.T) {
	h := &countingHandler{next: mockstore.New()}
	c := NewAddressCache(h, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.Handle(ctx, "GET", "/address/regions", nil); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if _, err := c.Handle(ctx, "POST", "/address/warm", nil); err != nil {
		t.Fatalf("warm: %v", err)
	}
	if h.count() != 3 {
		t.Fatalf("calls = %d", h.count())
	}
	if err := c.Warm(ctx); err != nil {
		t.Fatalf("warm without redis should be a no-op: %v", err)
	}
}

func TestAddressCache_RedisDown(t *testing.T) {
	s, h, _ := setup(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr(), DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewAddressCache(h, rdb)
	s.Close()

	res, err := c.Handle(context.Background(), "GET", "/address/regions", nil)
	if err != nil {
		t.Fatalf("redis outage must not fail reads: %v", err)
	}
	if got := items(t, res); len(got) != 2 {
		t.Fatalf("regions = %+v", got)
	}
}
