package requestermock

import (
	"context"
	"errors"
	"testing"
)

func TestRequester_DecodesAndRecords(t *testing.T) {
	m := &Requester{
		DoFn: func(_ context.Context, method, path string, body any) (any, error) {
			return map[string]string{"mc_ref": "MC-1"}, nil
		},
	}
	var out struct {
		MCRef string `json:"mc_ref"`
	}
	if err := m.Do(context.Background(), "GET", "/programs/1", nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if out.MCRef != "MC-1" {
		t.Fatalf("out = %+v", out)
	}
	calls := m.Calls()
	if len(calls) != 1 || calls[0].Method != "GET" || calls[0].Path != "/programs/1" {
		t.Fatalf("calls = %+v", calls)
	}
}

func TestRequester_Defaults(t *testing.T) {
	m := &Requester{}
	if err := m.Do(context.Background(), "GET", "/x", nil, nil); !errors.Is(err, errUnimplemented) {
		t.Fatalf("default: %v", err)
	}
	if len(m.Calls()) != 1 {
		t.Fatalf("unimplemented calls are still recorded")
	}
	m.Reset()
	if len(m.Calls()) != 0 {
		t.Fatalf("Reset should clear calls")
	}
}
