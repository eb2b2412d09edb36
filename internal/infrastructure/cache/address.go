package cache

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"lis-dashboard/internal/backend"
	"lis-dashboard/internal/domain/address"
	"lis-dashboard/pkg/jsonx"
)

const (
	DefaultTTL = 7 * 24 * time.Hour
	keyPrefix  = "address:"
)

// Key is the cache key of one address list: address:regions or
// address:<level>:<parent code>.
func Key(l address.Level, parent string) string {
	if l == address.Regions {
		return keyPrefix + string(l)
	}
	return keyPrefix + string(l) + ":" + parent
}

// AddressCache serves address lists from Redis before the wrapped
// handler and drops a level's keys when that level changes. Without
// Redis, or when Redis fails, it passes everything through.
type AddressCache struct {
	next backend.Handler
	rdb  *redis.Client
	ttl  time.Duration
	log  zerolog.Logger
}

type Option func(*AddressCache)

func WithTTL(d time.Duration) Option { return func(a *AddressCache) { a.ttl = d } }

func WithLogger(l zerolog.Logger) Option { return func(a *AddressCache) { a.log = l } }

func NewAddressCache(next backend.Handler, rdb *redis.Client, opts ...Option) *AddressCache {
	a := &AddressCache{next: next, rdb: rdb, ttl: DefaultTTL, log: zerolog.Nop()}
	for _, o := range opts {
		o(a)
	}
	return a
}

type addressRoute struct {
	level  address.Level
	code   string
	parent string
	warm   bool
}

// route reports whether the request targets the address resource.
func route(pathWithQuery string) (addressRoute, bool) {
	p, rawQuery, _ := strings.Cut(strings.TrimPrefix(pathWithQuery, "/"), "?")
	p = strings.TrimPrefix(p, "api/v1/")
	segs := strings.Split(strings.Trim(p, "/"), "/")
	if len(segs) < 2 || segs[0] != "address" {
		return addressRoute{}, false
	}
	if len(segs) == 2 && segs[1] == "warm" {
		return addressRoute{warm: true}, true
	}
	l, ok := address.ParseLevel(segs[1])
	if !ok || len(segs) > 3 {
		return addressRoute{}, false
	}
	r := addressRoute{level: l}
	if len(segs) == 3 {
		r.code = segs[2]
	}
	q, _ := url.ParseQuery(rawQuery)
	r.parent = strings.TrimSpace(q.Get(l.ParentParam()))
	return r, true
}

func (a *AddressCache) Handle(ctx context.Context, method, pathWithQuery string, body []byte) (any, error) {
	r, ok := route(pathWithQuery)
	if !ok || a.rdb == nil {
		return a.next.Handle(ctx, method, pathWithQuery, body)
	}
	method = strings.ToUpper(method)

	switch {
	case r.warm && method == http.MethodPost:
		res, err := a.next.Handle(ctx, method, pathWithQuery, body)
		if err != nil {
			return nil, err
		}
		if err := a.Warm(ctx); err != nil {
			a.log.Warn().Err(err).Msg("address cache: warm failed")
		}
		return res, nil
	case r.warm:
		return a.next.Handle(ctx, method, pathWithQuery, body)
	case method == http.MethodGet && r.code == "":
		return a.list(ctx, r, method, pathWithQuery, body)
	case method == http.MethodGet:
		return a.next.Handle(ctx, method, pathWithQuery, body)
	}

	res, err := a.next.Handle(ctx, method, pathWithQuery, body)
	if err == nil {
		a.invalidate(ctx, r.level)
	}
	return res, err
}

func (a *AddressCache) list(ctx context.Context, r addressRoute, method, pathWithQuery string, body []byte) (any, error) {
	if r.level != address.Regions && r.parent == "" {
		return a.next.Handle(ctx, method, pathWithQuery, body)
	}
	key := Key(r.level, r.parent)
	raw, err := a.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return jsonx.RawMessage(raw), nil
	case !errors.Is(err, redis.Nil):
		a.log.Warn().Err(err).Str("key", key).Msg("address cache: read failed")
	}

	res, err := a.next.Handle(ctx, method, pathWithQuery, body)
	if err != nil {
		return nil, err
	}
	if _, err := a.store(ctx, key, res); err != nil {
		a.log.Warn().Err(err).Str("key", key).Msg("address cache: write failed")
	}
	return res, nil
}

func (a *AddressCache) store(ctx context.Context, key string, res any) ([]byte, error) {
	raw, err := jsonx.Marshal(res)
	if err != nil {
		return nil, err
	}
	return raw, a.rdb.Set(ctx, key, raw, a.ttl).Err()
}

// invalidate drops every cached list of level.
func (a *AddressCache) invalidate(ctx context.Context, l address.Level) {
	pattern := keyPrefix + string(l) + "*"
	var keys []string
	iter := a.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		a.log.Warn().Err(err).Str("pattern", pattern).Msg("address cache: scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := a.rdb.Del(ctx, keys...).Err(); err != nil {
		a.log.Warn().Err(err).Str("pattern", pattern).Msg("address cache: invalidate failed")
	}
}

// Warm walks the hierarchy from the regions down and caches every list.
func (a *AddressCache) Warm(ctx context.Context) error {
	if a.rdb == nil {
		return nil
	}
	start := time.Now()
	n, err := a.warm(ctx, address.Regions, "")
	if err != nil {
		return err
	}
	a.log.Info().Int("lists", n).Dur("took", time.Since(start)).Msg("address cache: warmed")
	return nil
}

func (a *AddressCache) warm(ctx context.Context, l address.Level, parent string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	path := "/address/" + string(l)
	if parent != "" {
		path += "?" + url.Values{l.ParentParam(): {parent}}.Encode()
	}
	res, err := a.next.Handle(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	raw, err := a.store(ctx, Key(l, parent), res)
	if err != nil {
		return 0, err
	}
	n := 1
	child := l.Child()
	if child == "" {
		return n, nil
	}
	var items []address.Item
	if err := jsonx.Unmarshal(raw, &items); err != nil {
		return n, err
	}
	for _, it := range items {
		m, err := a.warm(ctx, child, it.Code)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
