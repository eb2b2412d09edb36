package backend

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"lis-dashboard/internal/domain/search"
	"lis-dashboard/internal/store"
)

type searchResource struct{}

func (searchResource) serve(ctx context.Context, rt *Router, req request) (any, error) {
	if req.Method != http.MethodGet || len(req.Rest) > 0 {
		return nil, errNoRoute
	}
	phrase := strings.TrimSpace(req.Query.Get("q"))
	limit := search.ClampLimit(strconv.Atoi(strings.TrimSpace(req.Query.Get("limit"))))
	return runSearch(ctx, rt, phrase, limit)
}

// runSearch caps each record type at limit independently. Phrases
// shorter than search.MinQueryLen never touch the collections.
func runSearch(ctx context.Context, rt *Router, phrase string, limit int) (search.Response, error) {
	out := search.Empty()
	if utf8.RuneCountInString(phrase) < search.MinQueryLen {
		return out, nil
	}
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		var err error
		if out.Projects, err = c.Projects.Search(ctx, store.Projects.SearchColumns, phrase, limit); err != nil {
			return err
		}
		if out.Programs, err = c.Programs.Search(ctx, store.Programs.SearchColumns, phrase, limit); err != nil {
			return err
		}
		if out.Applications, err = c.Applications.Search(ctx, store.Applications.SearchColumns, phrase, limit); err != nil {
			return err
		}
		out.Beneficiaries, err = c.Beneficiaries.Search(ctx, store.Beneficiaries.SearchColumns, phrase, limit)
		return err
	})
	if err != nil {
		return search.Empty(), err
	}
	return out, nil
}
