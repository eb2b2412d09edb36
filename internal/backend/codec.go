package backend

import (
	"bytes"

	"lis-dashboard/internal/store"
	"lis-dashboard/pkg/jsonx"
)

// decode reads a JSON object body into dst; an empty body leaves dst
// untouched.
func decode(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := jsonx.Unmarshal(body, dst); err != nil {
		return store.BadRequestf("invalid request body: %v", err)
	}
	return nil
}

// merge overlays the top-level keys of body on existing and decodes
// the result into a fresh value, so nothing aliases the stored record.
func merge[T any](existing *T, body []byte) (*T, error) {
	base := map[string]jsonx.RawMessage{}
	if err := jsonx.CopyByJSON(&base, existing); err != nil {
		return nil, err
	}
	patch := map[string]jsonx.RawMessage{}
	if err := decode(body, &patch); err != nil {
		return nil, err
	}
	for k, v := range patch {
		base[k] = v
	}
	out := new(T)
	if err := jsonx.CopyByJSON(out, base); err != nil {
		return nil, store.BadRequestf("invalid request body: %v", err)
	}
	return out, nil
}
