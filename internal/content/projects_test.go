package content

import (
	"encoding/json"
	"testing"
)

func TestProjectRegistry(t *testing.T) {
	all := Projects()
	if len(all) != 5 {
		t.Fatalf("got %d projects, want 5", len(all))
	}

	slugs := []string{
		"mcp-appointment-manager",
		"springboot-task-manager",
		"fastapi-portfolio",
		"bst-parser",
		"inventory-tracker",
	}

	for i, slug := range slugs {
		p, ok := ProjectBySlug(slug)
		if !ok {
			t.Fatalf("ProjectBySlug(%q) not found", slug)
		}
		if p.Slug != slug {
			t.Errorf("ProjectBySlug(%q).Slug = %q", slug, p.Slug)
		}
		if all[i].Slug != slug {
			t.Errorf("Projects()[%d].Slug = %q, want %q", i, all[i].Slug, slug)
		}
		if p.Title == "" || p.Description == "" || p.Image == "" || p.GitHub == "" {
			t.Errorf("project %q has missing fields: %+v", slug, p)
		}
		if len(p.Technologies) == 0 || len(p.Features) == 0 {
			t.Errorf("project %q has empty technologies or features", slug)
		}
	}

	if _, ok := ProjectBySlug("unknown-project"); ok {
		t.Error("unknown slug should not resolve")
	}
}

func TestProjectJSONShape(t *testing.T) {
	p, _ := ProjectBySlug("mcp-appointment-manager")

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}

	// the slug is routing data, not part of the API payload
	if _, ok := fields["slug"]; ok {
		t.Error("project JSON must not contain a slug field")
	}
	if string(fields["demo"]) != "null" {
		t.Errorf("demo should be null for this project, got %s", fields["demo"])
	}

	withDemo, _ := ProjectBySlug("fastapi-portfolio")
	if withDemo.Demo == nil || *withDemo.Demo != "https://www.samuelrincon.com" {
		t.Errorf("fastapi-portfolio demo = %v", withDemo.Demo)
	}
}
