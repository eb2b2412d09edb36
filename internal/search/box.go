// Package search implements the search-as-you-type box of the dashboard
// header.
package search

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	domain "lis-dashboard/internal/domain/search"
	"lis-dashboard/internal/resource"
)

const (
	DefaultDelay = 280 * time.Millisecond
	DefaultGrace = 150 * time.Millisecond
)

type State struct {
	Query   string
	Results *domain.Response
	Loading bool
	Open    bool
}

// Box debounces keystrokes into at most one search per quiet period.
// Results of superseded searches are dropped and failures only clear
// the results.
type Box struct {
	mu    sync.Mutex
	req   resource.Requester
	log   zerolog.Logger
	delay time.Duration
	grace time.Duration
	limit int
	onDone func(*domain.Response, error)

	query   string
	results *domain.Response
	loading bool
	open    bool

	seq      uint64
	debounce *time.Timer
	blur     *time.Timer

	ctx    context.Context
	cancel context.CancelFunc
}

type Option func(*Box)

func WithDelay(d time.Duration) Option { return func(b *Box) { b.delay = d } }

func WithBlurGrace(d time.Duration) Option { return func(b *Box) { b.grace = d } }

func WithLimit(n int) Option { return func(b *Box) { b.limit = n } }

func WithLogger(l zerolog.Logger) Option { return func(b *Box) { b.log = l } }

// WithOnSettled is called after every search that is still current when
// it completes, outside the box lock.
func WithOnSettled(f func(*domain.Response, error)) Option {
	return func(b *Box) { b.onDone = f }
}

func New(req resource.Requester, opts ...Option) *Box {
	b := &Box{
		req:   req,
		log:   zerolog.Nop(),
		delay: DefaultDelay,
		grace: DefaultGrace,
		limit: domain.DefaultLimit,
	}
	for _, o := range opts {
		o(b)
	}
	b.ctx, b.cancel = context.WithCancel(context.Background())
	return b
}

// Type handles one keystroke. Short queries clear the results without
// touching the network.
func (b *Box) Type(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = q
	b.seq++
	b.stopDebounce()

	term := strings.TrimSpace(q)
	if utf8.RuneCountInString(term) < domain.MinQueryLen {
		b.results = nil
		b.loading = false
		return
	}
	b.open = true
	seq := b.seq
	b.debounce = time.AfterFunc(b.delay, func() { b.run(seq, term) })
}

func (b *Box) run(seq uint64, term string) {
	b.mu.Lock()
	if seq != b.seq {
		b.mu.Unlock()
		return
	}
	b.loading = true
	path := "/search?q=" + url.QueryEscape(term) + "&limit=" + strconv.Itoa(b.limit)
	b.mu.Unlock()

	var res domain.Response
	err := b.req.Do(b.ctx, http.MethodGet, path, nil, &res)

	b.mu.Lock()
	if seq != b.seq {
		b.mu.Unlock()
		return
	}
	b.loading = false
	var settled *domain.Response
	if err != nil {
		b.log.Debug().Err(err).Str("query", term).Msg("search failed")
		b.results = nil
	} else {
		b.results = &res
		r := res
		settled = &r
	}
	onDone := b.onDone
	b.mu.Unlock()

	if onDone != nil {
		onDone(settled, err)
	}
}

// Focus cancels a pending close and reopens the panel for a qualifying
// query without searching again.
func (b *Box) Focus() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopBlur()
	if utf8.RuneCountInString(strings.TrimSpace(b.query)) >= domain.MinQueryLen {
		b.open = true
	}
}

// Blur closes the panel after the grace delay so a click on a result
// still lands.
func (b *Box) Blur() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopBlur()
	b.blur = time.AfterFunc(b.grace, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.open = false
	})
}

// Escape clears everything and closes the panel immediately.
func (b *Box) Escape() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.stopDebounce()
	b.stopBlur()
	b.query = ""
	b.results = nil
	b.loading = false
	b.open = false
}

// Close stops the timers and aborts an in-flight search.
func (b *Box) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.stopDebounce()
	b.stopBlur()
	b.cancel()
}

func (b *Box) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := State{Query: b.query, Loading: b.loading, Open: b.open}
	if b.results != nil {
		r := *b.results
		st.Results = &r
	}
	return st
}

func (b *Box) stopDebounce() {
	if b.debounce != nil {
		b.debounce.Stop()
		b.debounce = nil
	}
}

func (b *Box) stopBlur() {
	if b.blur != nil {
		b.blur.Stop()
		b.blur = nil
	}
}
