package search

import (
	"lis-dashboard/internal/domain/application"
	"lis-dashboard/internal/domain/beneficiary"
	"lis-dashboard/internal/domain/program"
	"lis-dashboard/internal/domain/project"
)

const (
	MinQueryLen  = 2
	DefaultLimit = 5
	MaxLimit     = 20
)

// Response groups hits by record type; every slice is non-nil.
type Response struct {
	Projects      []project.Project         `json:"projects"`
	Programs      []program.Program         `json:"programs"`
	Applications  []application.Application `json:"applications"`
	Beneficiaries []beneficiary.Beneficiary `json:"beneficiaries"`
}

func Empty() Response {
	return Response{
		Projects:      []project.Project{},
		Programs:      []program.Program{},
		Applications:  []application.Application{},
		Beneficiaries: []beneficiary.Beneficiary{},
	}
}

func (r Response) Total() int {
	return len(r.Projects) + len(r.Programs) + len(r.Applications) + len(r.Beneficiaries)
}

// ClampLimit parses a limit parameter: non-numeric or zero falls back to
// the default, then the value is bounded to [1, MaxLimit].
func ClampLimit(n int, err error) int {
	if err != nil || n == 0 {
		n = DefaultLimit
	}
	if n < 1 {
		n = 1
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	return n
}
