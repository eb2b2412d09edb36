package resource

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"sync"
	"testing"
	"time"

	"lis-dashboard/internal/domain/project"
	"lis-dashboard/internal/testutil/requestermock"
)

func strp(s string) *string { return &s }

func projectRows(codes ...string) []project.Project {
	out := make([]project.Project, 0, len(codes))
	for _, c := range codes {
		out = append(out, project.Project{ProjectCode: c})
	}
	return out
}

func codes(items []project.Project) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ProjectCode)
	}
	return out
}

func TestList_Load(t *testing.T) {
	tests := []struct {
		name    string
		res     any
		err     error
		want    []string
		wantErr bool
	}{
		{"array", projectRows("PROJ-001", "PROJ-002"), nil, []string{"PROJ-001", "PROJ-002"}, false},
		{"non-array coerced to empty", map[string]string{"detail": "odd"}, nil, []string{}, false},
		{"failure keeps items and sets error", nil, errors.New("Project not found"), []string{"KEEP"}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) {
				return tt.res, tt.err
			}}
			l := NewList(Projects, req)
			l.Append(project.Project{ProjectCode: "KEEP"})

			err := l.Load(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			st := l.State()
			if st.Loading {
				t.Fatalf("loading must be cleared")
			}
			if !reflect.DeepEqual(codes(st.Items), tt.want) {
				t.Fatalf("items = %v, want %v", codes(st.Items), tt.want)
			}
			if tt.wantErr && st.Error != "Project not found" {
				t.Fatalf("error banner = %q", st.Error)
			}
		})
	}
}

func TestList_ApplyFiltersIsIdempotent(t *testing.T) {
	req := &requestermock.Requester{DoFn: func(_ context.Context, _ string, path string, _ any) (any, error) {
		return projectRows("PROJ-002"), nil
	}}
	l := NewList(Projects, req)
	ctx := context.Background()

	l.OpenFilters()
	l.SetPendingFilter("lot_type", "B")
	l.SetPendingFilter("region_code", "  ")
	if len(req.Calls()) != 0 || len(l.State().Items) != 0 {
		t.Fatalf("editing pending filters must not fetch or touch items")
	}

	if err := l.ApplyFilters(ctx); err != nil {
		t.Fatalf("apply: %v", err)
	}
	first := l.State()
	l.OpenFilters()
	if err := l.ApplyFilters(ctx); err != nil {
		t.Fatalf("apply again: %v", err)
	}
	second := l.State()

	calls := req.Calls()
	if len(calls) != 2 {
		t.Fatalf("want a fetch per apply, got %d", len(calls))
	}
	for _, c := range calls {
		if c.Path != "/projects?lot_type=B" {
			t.Fatalf("path = %q", c.Path)
		}
	}
	if !reflect.DeepEqual(first.Items, second.Items) || !reflect.DeepEqual(first.Applied, second.Applied) {
		t.Fatalf("same filters gave different state")
	}
	if second.FiltersOpen {
		t.Fatalf("apply must close the popover")
	}
}

func TestList_DismissAndClearFilters(t *testing.T) {
	req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) {
		return projectRows(), nil
	}}
	l := NewList(Projects, req)
	ctx := context.Background()

	l.OpenFilters()
	l.SetPendingFilter("project_name", "north")
	l.DismissFilters()
	st := l.State()
	if st.FiltersOpen || len(st.Applied) != 0 || len(req.Calls()) != 0 {
		t.Fatalf("dismiss must not apply: %+v", st)
	}
	l.OpenFilters()
	if l.State().Pending["project_name"] != "" {
		t.Fatalf("reopening shows applied values, not dismissed edits")
	}

	l.SetPendingFilter("project_name", "north")
	_ = l.ApplyFilters(ctx)
	if err := l.ClearFilters(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	st = l.State()
	if len(st.Applied) != 0 || len(st.Pending) != 0 {
		t.Fatalf("clear must reset both: %+v", st)
	}
	calls := req.Calls()
	if calls[len(calls)-1].Path != "/projects" {
		t.Fatalf("clear refetch path = %q", calls[len(calls)-1].Path)
	}
}

func TestList_LastLoadWins(t *testing.T) {
	releaseA := make(chan struct{})
	aCtx := make(chan context.Context, 1)
	req := &requestermock.Requester{DoFn: func(ctx context.Context, _ string, path string, _ any) (any, error) {
		q, _ := url.ParseQuery(path[len("/projects?"):])
		if q.Get("project_name") == "a" {
			aCtx <- ctx
			<-releaseA
			return projectRows("FROM-A"), nil
		}
		return projectRows("FROM-B"), nil
	}}
	l := NewList(Projects, req)
	ctx := context.Background()

	var wg sync.WaitGroup
	var errA error
	l.OpenFilters()
	l.SetPendingFilter("project_name", "a")
	wg.Add(1)
	go func() {
		defer wg.Done()
		errA = l.ApplyFilters(ctx)
	}()
	ctxA := <-aCtx

	l.OpenFilters()
	l.SetPendingFilter("project_name", "b")
	if err := l.ApplyFilters(ctx); err != nil {
		t.Fatalf("load B: %v", err)
	}

	select {
	case <-ctxA.Done():
	case <-time.After(time.Second):
		t.Fatalf("superseded load was not cancelled")
	}
	close(releaseA)
	wg.Wait()

	if !errors.Is(errA, ErrStale) {
		t.Fatalf("load A: want ErrStale, got %v", errA)
	}
	st := l.State()
	if got := codes(st.Items); len(got) != 1 || got[0] != "FROM-B" {
		t.Fatalf("items = %v, want B's result", got)
	}
	if st.Loading {
		t.Fatalf("loading stuck after stale result")
	}
}

func TestList_ScopeIsPinned(t *testing.T) {
	req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) {
		return projectRows(), nil
	}}
	l := NewList(Projects, req, WithScope[project.Project]("approval_status", "pending_approval"))
	l.OpenFilters()
	l.SetPendingFilter("approval_status", "approved")
	l.SetPendingFilter("lot_type", "R")
	_ = l.ApplyFilters(context.Background())

	if p := req.Calls()[0].Path; p != "/projects?approval_status=pending_approval&lot_type=R" {
		t.Fatalf("path = %q", p)
	}
}

func TestList_ConfirmDelete(t *testing.T) {
	t.Run("success removes row and closes dialog", func(t *testing.T) {
		req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) { return nil, nil }}
		l := NewList(Projects, req)
		for _, p := range projectRows("PROJ-001", "A/B") {
			l.Append(p)
		}
		l.RequestDelete(project.Project{ProjectCode: "A/B"})
		if l.State().DeleteTarget == nil {
			t.Fatalf("dialog should be open")
		}
		if err := l.ConfirmDelete(context.Background()); err != nil {
			t.Fatalf("delete: %v", err)
		}
		c := req.Calls()[0]
		if c.Method != "DELETE" || c.Path != "/projects/A%2FB" {
			t.Fatalf("call = %+v", c)
		}
		st := l.State()
		if st.DeleteTarget != nil || !reflect.DeepEqual(codes(st.Items), []string{"PROJ-001"}) || len(st.Busy) != 0 {
			t.Fatalf("state after delete = %+v", st)
		}
	})

	t.Run("failure keeps list and surfaces error", func(t *testing.T) {
		req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) {
			return nil, errors.New("Project not found")
		}}
		l := NewList(Projects, req)
		l.Append(project.Project{ProjectCode: "PROJ-001", ProjectName: strp("N")})
		l.RequestDelete(project.Project{ProjectCode: "PROJ-001"})

		if err := l.ConfirmDelete(context.Background()); err == nil {
			t.Fatalf("want error")
		}
		st := l.State()
		if len(st.Items) != 1 || st.Error != "Project not found" || st.DeleteTarget == nil || st.Busy["PROJ-001"] {
			t.Fatalf("state after failed delete = %+v", st)
		}
		l.CancelDelete()
		if l.State().DeleteTarget != nil {
			t.Fatalf("cancel should close the dialog")
		}
	})
}

func TestList_RowHelpers(t *testing.T) {
	l := NewList(Projects, &requestermock.Requester{})
	for _, p := range projectRows("A", "B", "C") {
		l.Append(p)
	}
	l.Replace(project.Project{ProjectCode: "B", ProjectName: strp("new")})
	l.Remove("A")

	if got := l.Keys(); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Fatalf("keys = %v", got)
	}
	b, ok := l.Find("B")
	if !ok || b.ProjectName == nil || *b.ProjectName != "new" {
		t.Fatalf("Find(B) = %+v, %v", b, ok)
	}
	if !l.TryBusy("B") || l.TryBusy("B") {
		t.Fatalf("TryBusy must succeed once")
	}
	l.Done("B")
	if l.IsBusy("B") {
		t.Fatalf("Done should clear busy")
	}
}
