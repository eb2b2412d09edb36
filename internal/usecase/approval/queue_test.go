package approval

import (
	"context"
	"errors"
	"testing"

	"lis-dashboard/internal/client"
	domain "lis-dashboard/internal/domain/approval"
	"lis-dashboard/internal/domain/program"
	"lis-dashboard/internal/domain/project"
	"lis-dashboard/internal/mockstore"
	"lis-dashboard/internal/resource"
	"lis-dashboard/internal/testutil/requestermock"
)

func strp(s string) *string { return &s }

func pendingProject(code string) project.Project {
	return project.Project{ProjectCode: code, Lifecycle: domain.Lifecycle{ApprovalStatus: domain.StatusPending}}
}

func loaded(t *testing.T, req *requestermock.Requester, rows []project.Project, opts ...Option[project.Project]) *Queue[project.Project] {
	t.Helper()
	get := req.DoFn
	req.DoFn = func(ctx context.Context, method, path string, body any) (any, error) {
		if method == "GET" {
			return rows, nil
		}
		return get(ctx, method, path, body)
	}
	q := NewQueue(resource.Projects, req, opts...)
	if err := q.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	req.Reset()
	req.DoFn = get
	return q
}

func TestQueue_DecidedRowsHaveNoControls(t *testing.T) {
	req := &requestermock.Requester{}
	q := NewQueue(resource.Projects, req)

	for _, status := range []domain.Status{domain.StatusApproved, domain.StatusRejected} {
		item := project.Project{ProjectCode: "PROJ-001", Lifecycle: domain.Lifecycle{ApprovalStatus: status}}
		if a := q.Actions(item); a.Approve || a.Reject {
			t.Fatalf("%s: actions enabled: %+v", status, a)
		}
		if err := q.Approve(context.Background(), item); !errors.Is(err, ErrNotPending) {
			t.Fatalf("%s: approve err = %v", status, err)
		}
		if err := q.OpenReject(item); !errors.Is(err, ErrNotPending) {
			t.Fatalf("%s: open reject err = %v", status, err)
		}
	}
	if len(req.Calls()) != 0 {
		t.Fatalf("decided rows must never be patched: %+v", req.Calls())
	}
}

func TestQueue_LoadIsScopedToPending(t *testing.T) {
	req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) {
		return []project.Project{pendingProject("PROJ-009")}, nil
	}}
	q := NewQueue(resource.Projects, req)
	_ = q.List().ApplyFilters(context.Background())
	if p := req.Calls()[0].Path; p != "/projects?approval_status=pending_approval" {
		t.Fatalf("path = %q", p)
	}
}

func TestQueue_Approve(t *testing.T) {
	var got domain.Decision
	req := &requestermock.Requester{DoFn: func(_ context.Context, _ string, _ string, body any) (any, error) {
		got = body.(domain.Decision)
		return nil, nil
	}}
	q := loaded(t, req, []project.Project{pendingProject("P-1"), pendingProject("P-2")}, WithApprover[project.Project](" jdc "))

	if a := q.Actions(pendingProject("P-1")); !a.Approve || !a.Reject {
		t.Fatalf("pending row should be actionable")
	}
	if err := q.Approve(context.Background(), pendingProject("P-1")); err != nil {
		t.Fatalf("approve: %v", err)
	}
	c := req.Calls()[0]
	if c.Method != "PATCH" || c.Path != "/projects/P-1" {
		t.Fatalf("call = %+v", c)
	}
	if got.Status != domain.StatusApproved || got.ApprovedBy == nil || *got.ApprovedBy != "jdc" || got.RejectionReason != nil {
		t.Fatalf("decision = %+v", got)
	}
	if keys := q.List().Keys(); len(keys) != 1 || keys[0] != "P-2" {
		t.Fatalf("approved row should leave the queue: %v", keys)
	}
}

func TestQueue_ApproveWithReview(t *testing.T) {
	req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) { return nil, nil }}
	q := loaded(t, req, []project.Project{pendingProject("P-1")}, WithApproveReview[project.Project]())
	ctx := context.Background()

	if err := q.ConfirmApprove(ctx); !errors.Is(err, ErrNoDialog) {
		t.Fatalf("confirm without dialog: %v", err)
	}
	_ = q.Approve(ctx, pendingProject("P-1"))
	if q.State().Confirming == nil || len(req.Calls()) != 0 {
		t.Fatalf("approve should wait for confirmation")
	}
	q.CancelApprove()
	if q.State().Confirming != nil {
		t.Fatalf("cancel should close the confirmation")
	}

	_ = q.Approve(ctx, pendingProject("P-1"))
	if err := q.ConfirmApprove(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(req.Calls()) != 1 || len(q.List().Keys()) != 0 || q.State().Confirming != nil {
		t.Fatalf("state after confirm = %+v", q.State())
	}
}

func TestQueue_Reject(t *testing.T) {
	tests := []struct {
		name       string
		reason     string
		wantReason *string
	}{
		{"with reason", "  Incomplete ", strp("Incomplete")},
		{"blank reason omitted", "   ", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Decision
			req := &requestermock.Requester{DoFn: func(_ context.Context, _ string, _ string, body any) (any, error) {
				got = body.(domain.Decision)
				return nil, nil
			}}
			q := loaded(t, req, []project.Project{pendingProject("P-1")})

			if err := q.OpenReject(pendingProject("P-1")); err != nil {
				t.Fatalf("open: %v", err)
			}
			q.SetRejectReason(tt.reason)
			if err := q.ConfirmReject(context.Background()); err != nil {
				t.Fatalf("reject: %v", err)
			}
			if got.Status != domain.StatusRejected {
				t.Fatalf("status = %s", got.Status)
			}
			if (got.RejectionReason == nil) != (tt.wantReason == nil) ||
				(got.RejectionReason != nil && *got.RejectionReason != *tt.wantReason) {
				t.Fatalf("reason = %v", got.RejectionReason)
			}
			st := q.State()
			if st.Rejecting != nil || st.Reason != "" || len(st.List.Items) != 0 {
				t.Fatalf("state after reject = %+v", st)
			}
		})
	}
}

func TestQueue_FailureKeepsRowAndDialog(t *testing.T) {
	req := &requestermock.Requester{DoFn: func(context.Context, string, string, any) (any, error) {
		return nil, errors.New("Project P-1 is already approved")
	}}
	q := loaded(t, req, []project.Project{pendingProject("P-1")})

	_ = q.OpenReject(pendingProject("P-1"))
	if err := q.ConfirmReject(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	st := q.State()
	if st.List.Error != "Project P-1 is already approved" || len(st.List.Items) != 1 || st.Rejecting == nil {
		t.Fatalf("state after failure = %+v", st)
	}
	if q.List().IsBusy("P-1") {
		t.Fatalf("busy flag must be cleared after failure")
	}
	q.CancelReject()
	if q.State().Rejecting != nil {
		t.Fatalf("cancel should close the dialog")
	}
}

func TestQueue_BusyRowIsDisabled(t *testing.T) {
	req := &requestermock.Requester{}
	q := loaded(t, req, []project.Project{pendingProject("P-1"), pendingProject("P-2")})

	q.List().TryBusy("P-1")
	if a := q.Actions(pendingProject("P-1")); a.Approve || a.Reject {
		t.Fatalf("busy row must be disabled")
	}
	if a := q.Actions(pendingProject("P-2")); !a.Approve {
		t.Fatalf("other rows stay interactive")
	}
	if err := q.Approve(context.Background(), pendingProject("P-1")); !errors.Is(err, resource.ErrBusy) {
		t.Fatalf("approve busy row: %v", err)
	}
}

func TestQueue_RejectProgramThroughMockStore(t *testing.T) {
	ctx := context.Background()
	c := client.New(client.Config{MockMode: true}, mockstore.New())

	var created program.Program
	if err := c.Post(ctx, "/programs", program.Program{MCRef: strp("MC-2025-007")}, &created); err != nil {
		t.Fatalf("create: %v", err)
	}

	q := NewQueue(resource.Programs, c)
	if err := q.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	items := q.State().List.Items
	if len(items) != 1 || items[0].ProjectProgID != created.ProjectProgID {
		t.Fatalf("queue = %+v", items)
	}

	_ = q.OpenReject(items[0])
	q.SetRejectReason("Incomplete")
	if err := q.ConfirmReject(ctx); err != nil {
		t.Fatalf("reject: %v", err)
	}

	var got program.Program
	if err := c.Get(ctx, resource.Programs.ItemPath(&created), &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ApprovalStatus != domain.StatusRejected || got.RejectionReason == nil || *got.RejectionReason != "Incomplete" || got.ApprovedAt != nil {
		t.Fatalf("program after reject = %+v", got)
	}
	if err := q.Load(ctx); err != nil || len(q.State().List.Items) != 0 {
		t.Fatalf("queue should be empty: %v %+v", err, q.State().List.Items)
	}
	if a := q.Actions(got); a.Approve || a.Reject {
		t.Fatalf("rejected program must have no controls")
	}
}
