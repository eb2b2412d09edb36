package backend

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"lis-dashboard/internal/domain/address"
	"lis-dashboard/internal/store"
	"lis-dashboard/internal/validation"
)

// WarmPath is answered by the address cache; without one it is a no-op.
const WarmPath = "address/warm"

type addressResource struct{}

type addressInput struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	RegionCode    string `json:"region_code"`
	ProvinceCode  string `json:"province_code"`
	MunicipalCode string `json:"municipal_code"`
}

func (in addressInput) parent(l address.Level) string {
	switch l.ParentParam() {
	case "region_code":
		return strings.TrimSpace(in.RegionCode)
	case "province_code":
		return strings.TrimSpace(in.ProvinceCode)
	case "municipal_code":
		return strings.TrimSpace(in.MunicipalCode)
	}
	return ""
}

func (addressResource) serve(ctx context.Context, rt *Router, req request) (any, error) {
	if len(req.Rest) == 1 && req.Rest[0] == "warm" && req.Method == http.MethodPost {
		return map[string]string{"status": "ok"}, nil
	}
	if len(req.Rest) == 0 || len(req.Rest) > 2 {
		return nil, errNoRoute
	}
	level, ok := address.ParseLevel(req.Rest[0])
	if !ok {
		return nil, errNoRoute
	}
	code := ""
	if len(req.Rest) == 2 {
		code = strings.TrimSpace(req.Rest[1])
	}

	switch {
	case req.Method == http.MethodGet && code == "":
		return listAddress(ctx, rt, level, req.Query.Get(level.ParentParam()))
	case req.Method == http.MethodGet:
		return getAddress(ctx, rt, level, code)
	case req.Method == http.MethodPost && code == "":
		return createAddress(ctx, rt, level, req.Body)
	case req.Method == http.MethodPatch && code != "":
		return renameAddress(ctx, rt, level, code, req.Body)
	case req.Method == http.MethodDelete && code != "":
		return nil, deleteAddress(ctx, rt, level, code)
	}
	return nil, errNoRoute
}

func label(l address.Level) string { return store.Address(l).Label }

// notFound rewords a missing-row error the way address routes report it.
func notFound(l address.Level, code string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return store.NotFoundf("%s with code '%s' not found", label(l), code)
	}
	return err
}

func maxChars(n int) string { return "Max " + strconv.Itoa(n) + " characters." }

// listAddress returns every region, or the children of parent for the
// lower levels. A missing parent yields an empty list.
func listAddress(ctx context.Context, rt *Router, l address.Level, parent string) ([]address.Item, error) {
	parent = strings.TrimSpace(parent)
	out := []address.Item{}
	if l != address.Regions && parent == "" {
		return out, nil
	}
	var where []store.Criterion
	if l != address.Regions {
		where = append(where, store.Criterion{Column: "parent_code", Mode: store.Exact, Value: parent})
	}
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		items, err := c.Level(l).List(ctx, store.All, where...)
		if err != nil {
			return err
		}
		out = append(out, items...)
		return nil
	})
	return out, err
}

func getAddress(ctx context.Context, rt *Router, l address.Level, code string) (*address.Item, error) {
	var out *address.Item
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		item, err := c.Level(l).Get(ctx, code)
		if err != nil {
			return notFound(l, code, err)
		}
		out = item
		return nil
	})
	return out, err
}

func createAddress(ctx context.Context, rt *Router, l address.Level, body []byte) (*address.Item, error) {
	var in addressInput
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	item := &address.Item{
		Code:       strings.TrimSpace(in.Code),
		Name:       strings.TrimSpace(in.Name),
		ParentCode: in.parent(l),
	}
	if item.Code == "" || item.Name == "" || (l != address.Regions && item.ParentCode == "") {
		if l == address.Regions {
			return nil, store.BadRequestf("code and name are required")
		}
		return nil, store.BadRequestf("%s, code and name are required", l.ParentParam())
	}
	if fields := addressLimits(l, item); len(fields) > 0 {
		return nil, store.Invalid(fields)
	}

	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		col := c.Level(l)
		taken, err := col.Exists(ctx, "code", item.Code)
		if err != nil {
			return err
		}
		if taken {
			return store.Conflictf("%s with code '%s' already exists", label(l), item.Code)
		}
		if p := l.Parent(); p != "" {
			found, err := c.Level(p).Exists(ctx, "code", item.ParentCode)
			if err != nil {
				return err
			}
			if !found {
				return store.BadRequestf("%s with code '%s' not found", label(p), item.ParentCode)
			}
		}
		return col.Insert(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	rt.log.Debug().Str("level", string(l)).Str("code", item.Code).Msg("address created")
	return item, nil
}

func addressLimits(l address.Level, item *address.Item) []validation.FieldError {
	var out []validation.FieldError
	if utf8.RuneCountInString(item.Code) > l.CodeMax() {
		out = append(out, validation.FieldError{Field: "code", Message: maxChars(l.CodeMax())})
	}
	if utf8.RuneCountInString(item.Name) > address.NameMax {
		out = append(out, validation.FieldError{Field: "name", Message: maxChars(address.NameMax)})
	}
	return out
}

func renameAddress(ctx context.Context, rt *Router, l address.Level, code string, body []byte) (*address.Item, error) {
	var in addressInput
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, store.BadRequestf("code and name are required")
	}
	if utf8.RuneCountInString(name) > address.NameMax {
		return nil, store.Invalid([]validation.FieldError{{Field: "name", Message: maxChars(address.NameMax)}})
	}

	var out *address.Item
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		col := c.Level(l)
		item, err := col.Get(ctx, code)
		if err != nil {
			return notFound(l, code, err)
		}
		item.Name = name
		if err := col.Replace(ctx, code, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

// deleteAddress refuses while any child level row points at code.
func deleteAddress(ctx context.Context, rt *Router, l address.Level, code string) error {
	return rt.uow.WithinTx(ctx, func(c store.Collections) error {
		col := c.Level(l)
		if _, err := col.Get(ctx, code); err != nil {
			return notFound(l, code, err)
		}
		if child := l.Child(); child != "" {
			used, err := c.Level(child).Exists(ctx, "parent_code", code)
			if err != nil {
				return err
			}
			if used {
				return store.Conflictf("Cannot delete %s that has %s. Delete %s first.", l.Singular(), child, child)
			}
		}
		return col.Delete(ctx, code)
	})
}
