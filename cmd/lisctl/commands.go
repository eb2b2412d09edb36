package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"lis-dashboard/internal/domain/approval"
	domainsearch "lis-dashboard/internal/domain/search"
	"lis-dashboard/internal/resource"
	"lis-dashboard/internal/search"
	approvalqueue "lis-dashboard/internal/usecase/approval"
	"lis-dashboard/pkg/jsonx"
)

func (a *app) print(v any) error {
	b, err := jsonx.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	filters := fs.StringArrayP("filter", "f", nil, "filter as key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("list takes one resource: %w", errUsage)
	}
	pending := map[string]string{}
	for _, f := range *filters {
		k, v, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return fmt.Errorf("filter %q is not key=value: %w", f, errUsage)
		}
		pending[strings.TrimSpace(k)] = v
	}

	switch name := fs.Arg(0); name {
	case "projects":
		return listAll(ctx, a, resource.Projects, pending)
	case "programs":
		return listAll(ctx, a, resource.Programs, pending)
	case "applications":
		return listAll(ctx, a, resource.Applications, pending)
	case "beneficiaries":
		return listAll(ctx, a, resource.Beneficiaries, pending)
	case "lots":
		return listAll(ctx, a, resource.Lots, pending)
	case "co-owners":
		return listAll(ctx, a, resource.CoOwners, pending)
	case "employment-profiles":
		return listAll(ctx, a, resource.EmploymentProfiles, pending)
	case "properties":
		return listAll(ctx, a, resource.Properties, pending)
	case "program-classifications":
		return listAll(ctx, a, resource.ProgramClasses, pending)
	default:
		return fmt.Errorf("unknown resource %q: %w", name, errUsage)
	}
}

func listAll[T any](ctx context.Context, a *app, cfg resource.Config[T], filters map[string]string) error {
	l := resource.NewList(cfg, a.client)
	l.OpenFilters()
	for k, v := range filters {
		l.SetPendingFilter(k, v)
	}
	if err := l.ApplyFilters(ctx); err != nil {
		return err
	}
	return a.print(l.State().Items)
}

func (a *app) pending(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("pending takes at most one resource: %w", errUsage)
	}
	which := ""
	if len(args) == 1 {
		which = args[0]
	}
	out := map[string]any{}
	if which == "" || which == "projects" {
		q := approvalqueue.NewQueue(resource.Projects, a.client)
		if err := q.Load(ctx); err != nil {
			return err
		}
		out["projects"] = q.State().List.Items
	}
	if which == "" || which == "programs" {
		q := approvalqueue.NewQueue(resource.Programs, a.client)
		if err := q.Load(ctx); err != nil {
			return err
		}
		out["programs"] = q.State().List.Items
	}
	if len(out) == 0 {
		return fmt.Errorf("unknown resource %q: %w", which, errUsage)
	}
	return a.print(out)
}

func (a *app) decide(ctx context.Context, args []string, reject bool) error {
	name := "approve"
	if reject {
		name = "reject"
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	reason := fs.String("reason", "", "rejection reason")
	by := fs.String("by", "", "approver recorded on approval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%s takes a resource and an id: %w", name, errUsage)
	}
	d := decision{key: fs.Arg(1), reject: reject, reason: *reason, by: *by}

	switch res := fs.Arg(0); res {
	case "projects":
		return decideOne(ctx, a, resource.Projects, d)
	case "programs":
		return decideOne(ctx, a, resource.Programs, d)
	default:
		return fmt.Errorf("%s has no approval workflow: %w", res, errUsage)
	}
}

type decision struct {
	key    string
	reject bool
	reason string
	by     string
}

func decideOne[T any](ctx context.Context, a *app, cfg resource.Config[T], d decision) error {
	q := approvalqueue.NewQueue(cfg, a.client, approvalqueue.WithApprover[T](d.by))
	if err := q.Load(ctx); err != nil {
		return err
	}
	item, ok := q.List().Find(d.key)
	if !ok {
		return fmt.Errorf("%s %s is not pending approval", cfg.Label, d.key)
	}

	status := approval.StatusApproved
	if d.reject {
		status = approval.StatusRejected
		if err := q.OpenReject(item); err != nil {
			return err
		}
		q.SetRejectReason(d.reason)
		if err := q.ConfirmReject(ctx); err != nil {
			return err
		}
	} else if err := q.Approve(ctx, item); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "%s %s %s\n", cfg.Label, d.key, status)
	return err
}

// search feeds the query through the same debounced box the dashboard
// header uses and prints the first settled result.
func (a *app) search(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	limit := fs.Int("limit", domainsearch.DefaultLimit, "results per record type (1-20)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	q := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if q == "" {
		return fmt.Errorf("search needs a query: %w", errUsage)
	}
	if utf8.RuneCountInString(q) < domainsearch.MinQueryLen {
		return a.print(domainsearch.Empty())
	}

	type settled struct {
		res *domainsearch.Response
		err error
	}
	done := make(chan settled, 1)
	box := search.New(a.client,
		search.WithDelay(a.searchCfg.Debounce),
		search.WithBlurGrace(a.searchCfg.BlurGrace),
		search.WithLimit(domainsearch.ClampLimit(*limit, nil)),
		search.WithLogger(a.log),
		search.WithOnSettled(func(res *domainsearch.Response, err error) {
			select {
			case done <- settled{res, err}:
			default:
			}
		}),
	)
	defer box.Close()

	box.Type(q)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s := <-done:
		if s.err != nil {
			return s.err
		}
		return a.print(*s.res)
	}
}
