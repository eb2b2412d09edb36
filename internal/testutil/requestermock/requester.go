package requestermock

import (
	"context"
	"errors"
	"sync"

	"lis-dashboard/pkg/jsonx"
)

var errUnimplemented = errors.New("requestermock: method not implemented")

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Body   any
}

// Requester is a function-backed mock of the resource client. DoFn
// returns the value to decode into out; every call is recorded.
type Requester struct {
	DoFn func(ctx context.Context, method, path string, body any) (any, error)

	mu    sync.Mutex
	calls []Call
}

func (m *Requester) Do(ctx context.Context, method, path string, body, out any) error {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, Path: path, Body: body})
	m.mu.Unlock()

	if m.DoFn == nil {
		return errUnimplemented
	}
	res, err := m.DoFn(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || res == nil {
		return nil
	}
	return jsonx.CopyByJSON(out, res)
}

// Calls returns a copy of the recorded requests.
func (m *Requester) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

func (m *Requester) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.DoFn = nil
}
