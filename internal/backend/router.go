// Package backend routes method + path requests onto the record
// collections. The REST server and the in-process mock share it.
package backend

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"lis-dashboard/internal/domain/application"
	"lis-dashboard/internal/domain/beneficiary"
	"lis-dashboard/internal/domain/classification"
	"lis-dashboard/internal/domain/coowner"
	"lis-dashboard/internal/domain/employment"
	"lis-dashboard/internal/domain/lot"
	"lis-dashboard/internal/domain/program"
	"lis-dashboard/internal/domain/project"
	"lis-dashboard/internal/domain/property"
	"lis-dashboard/internal/store"
	"lis-dashboard/internal/validation"
	"lis-dashboard/pkg/id"

	"github.com/rs/zerolog"
)

// Handler answers one request. A nil result with a nil error means
// there is nothing to return.
type Handler interface {
	Handle(ctx context.Context, method, pathWithQuery string, body []byte) (any, error)
}

type HandlerFunc func(ctx context.Context, method, pathWithQuery string, body []byte) (any, error)

func (f HandlerFunc) Handle(ctx context.Context, method, pathWithQuery string, body []byte) (any, error) {
	return f(ctx, method, pathWithQuery, body)
}

// errNoRoute is turned into the "unknown METHOD path" error by Handle.
var errNoRoute = errors.New("no route")

type request struct {
	Method   string
	Path     string
	Resource string
	Rest     []string
	Query    url.Values
	Body     []byte
}

// ID is the first segment after the resource, unescaped.
func (r request) ID() string {
	if len(r.Rest) == 0 {
		return ""
	}
	return r.Rest[0]
}

type resource interface {
	serve(ctx context.Context, rt *Router, req request) (any, error)
}

type Router struct {
	uow       store.UnitOfWork
	now       func() time.Time
	newID     func() string
	validator *validation.Validator
	log       zerolog.Logger
	resources map[string]resource
}

var _ Handler = (*Router)(nil)

type Option func(*Router)

func WithClock(now func() time.Time) Option { return func(r *Router) { r.now = now } }

func WithIDGenerator(f func() string) Option { return func(r *Router) { r.newID = f } }

func WithValidator(v *validation.Validator) Option { return func(r *Router) { r.validator = v } }

func WithLogger(l zerolog.Logger) Option { return func(r *Router) { r.log = l } }

func New(uow store.UnitOfWork, opts ...Option) *Router {
	r := &Router{
		uow:   uow,
		now:   time.Now,
		newID: id.NewUUID,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.validator == nil {
		r.validator = validation.New()
	}
	r.resources = map[string]resource{
		store.Projects.Resource: entity[project.Project]{store.Projects, func(c store.Collections) store.Collection[project.Project] {
			return c.Projects
		}},
		store.Programs.Resource: entity[program.Program]{store.Programs, func(c store.Collections) store.Collection[program.Program] {
			return c.Programs
		}},
		store.Applications.Resource: entity[application.Application]{store.Applications, func(c store.Collections) store.Collection[application.Application] {
			return c.Applications
		}},
		store.Beneficiaries.Resource: entity[beneficiary.Beneficiary]{store.Beneficiaries, func(c store.Collections) store.Collection[beneficiary.Beneficiary] {
			return c.Beneficiaries
		}},
		store.Lots.Resource: entity[lot.Lot]{store.Lots, func(c store.Collections) store.Collection[lot.Lot] {
			return c.Lots
		}},
		store.CoOwners.Resource: entity[coowner.CoOwner]{store.CoOwners, func(c store.Collections) store.Collection[coowner.CoOwner] {
			return c.CoOwners
		}},
		store.EmploymentProfiles.Resource: entity[employment.Profile]{store.EmploymentProfiles, func(c store.Collections) store.Collection[employment.Profile] {
			return c.Employment
		}},
		store.Properties.Resource: entity[property.Property]{store.Properties, func(c store.Collections) store.Collection[property.Property] {
			return c.Properties
		}},
		store.ProgramClasses.Resource: entity[classification.ProgramClass]{store.ProgramClasses, func(c store.Collections) store.Collection[classification.ProgramClass] {
			return c.ProgramClasses
		}},
		"address": addressResource{},
		"search":  searchResource{},
	}
	return r
}

func (r *Router) Handle(ctx context.Context, method, pathWithQuery string, body []byte) (any, error) {
	req := parseRequest(method, pathWithQuery, body)
	res, ok := r.resources[req.Resource]
	if !ok {
		return nil, unknownRoute(req)
	}
	out, err := res.serve(ctx, r, req)
	if errors.Is(err, errNoRoute) {
		return nil, unknownRoute(req)
	}
	return out, err
}

func unknownRoute(req request) error {
	return store.BadRequestf("Mock API: unknown %s %s", req.Method, req.Path)
}

// parseRequest splits "projects/PROJ-001?x=1" into resource, the
// remaining unescaped segments and the query. A leading slash and an
// /api/v1 prefix are both accepted.
func parseRequest(method, pathWithQuery string, body []byte) request {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = "GET"
	}
	p, rawQuery, _ := strings.Cut(strings.TrimPrefix(pathWithQuery, "/"), "?")
	p = strings.TrimPrefix(p, "api/v1/")
	q, _ := url.ParseQuery(rawQuery)

	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s == "" {
			continue
		}
		if u, err := url.PathUnescape(s); err == nil {
			s = u
		}
		segs = append(segs, s)
	}
	req := request{Method: method, Path: p, Query: q, Body: body}
	if len(segs) > 0 {
		req.Resource = segs[0]
		req.Rest = segs[1:]
	}
	return req
}

// check runs struct validation and converts failures to store.Invalid.
func (r *Router) check(v any) error {
	if err := r.validator.Validate(v); err != nil {
		return store.Invalid(validation.ToFieldErrors(err))
	}
	return nil
}
