package mockstore

import (
	"context"
	"testing"

	"lis-dashboard/internal/domain/project"
	"lis-dashboard/internal/store/memory"
)

func TestNew_InstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, b := New(), New()

	if _, err := a.Handle(ctx, "DELETE", "/projects/PROJ-001", nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if a.Memory().Projects.Len() != 1 {
		t.Fatalf("a projects = %d, want 1", a.Memory().Projects.Len())
	}
	if b.Memory().Projects.Len() != 2 {
		t.Fatalf("b must keep its own data, got %d", b.Memory().Projects.Len())
	}
}

func TestReset_RestoresFixtures(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Handle(ctx, "POST", "/projects", []byte(`{"project_code":"PRJ-X"}`)); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := s.Handle(ctx, "PATCH", "/address/regions/13", []byte(`{"name":"NCR"}`)); err != nil {
		t.Fatalf("patch: %v", err)
	}
	s.Reset()

	out, err := s.Handle(ctx, "GET", "/projects", nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := out.([]project.Project); len(got) != 2 {
		t.Fatalf("projects after reset = %d", len(got))
	}
	r, err := s.Memory().Regions.Get(ctx, "13")
	if err != nil || r.Name != "National Capital Region" {
		t.Fatalf("region after reset = %+v, %v", r, err)
	}
}

func TestFill_SeedsAnyStore(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewStore()

	if err := Fill(ctx, mem.Collections()); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	counts := map[string]int{
		"programs":       mem.Programs.Len(),
		"projects":       mem.Projects.Len(),
		"applications":   mem.Applications.Len(),
		"beneficiaries":  mem.Beneficiaries.Len(),
		"lots":           mem.Lots.Len(),
		"co-owners":      mem.CoOwners.Len(),
		"employment":     mem.Employment.Len(),
		"properties":     mem.Properties.Len(),
		"classes":        mem.ProgramClasses.Len(),
		"regions":        mem.Regions.Len(),
		"provinces":      mem.Provinces.Len(),
		"municipalities": mem.Municipalities.Len(),
		"barangays":      mem.Barangays.Len(),
	}
	want := map[string]int{
		"programs": 3, "projects": 2, "applications": 2, "beneficiaries": 2, "lots": 3,
		"co-owners": 1, "employment": 1, "properties": 1, "classes": 2,
		"regions": 2, "provinces": 2, "municipalities": 1, "barangays": 1,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Fatalf("%s = %d, want %d", k, counts[k], n)
		}
	}
	p, err := mem.Programs.Get(ctx, "3")
	if err != nil || *p.MCRef != "Socialized" {
		t.Fatalf("program 3 = %+v, %v", p, err)
	}
}

func TestFixtures_AreFresh(t *testing.T) {
	a := Projects()
	*a[0].ProjectName = "changed"
	if b := Projects(); *b[0].ProjectName != "Northville Resettlement" {
		t.Fatalf("fixtures share pointers")
	}
}
