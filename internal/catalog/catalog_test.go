package catalog

import (
	"testing"
)

func TestNewIndexesBundledData(t *testing.T) {
	c := New()

	if len(c.Colleges()) == 0 {
		t.Fatal("expected bundled colleges")
	}
	if len(c.Branches()) == 0 {
		t.Fatal("expected bundled branches")
	}

	college, ok := c.CollegeByCode("E001")
	if !ok {
		t.Fatal("expected E001 to exist")
	}
	if college.Type != TypeGovernment {
		t.Errorf("E001 type = %q, want %q", college.Type, TypeGovernment)
	}

	branch, ok := c.BranchByCode("CS")
	if !ok {
		t.Fatal("expected CS to exist")
	}
	if branch.Name != "Computer Science and Engineering" {
		t.Errorf("CS name = %q", branch.Name)
	}
}

func TestCollegeCodesUnique(t *testing.T) {
	seen := make(map[string]bool, len(Colleges))
	for _, college := range Colleges {
		if seen[college.Code] {
			t.Errorf("duplicate college code %q", college.Code)
		}
		seen[college.Code] = true
	}
}

func TestBranchCodesUnique(t *testing.T) {
	seen := make(map[string]bool, len(Branches))
	for _, branch := range Branches {
		if seen[branch.Code] {
			t.Errorf("duplicate branch code %q", branch.Code)
		}
		seen[branch.Code] = true
	}
}

func TestSearchColleges(t *testing.T) {
	c := NewFromData([]College{
		{Code: "E001", Name: "University of Visvesvaraya College of Engineering", Location: "Bangalore", Type: TypeGovernment},
		{Code: "E005", Name: "R V College of Engineering", Location: "Bangalore", Type: TypePrivateUnaided},
		{Code: "E017", Name: "Siddaganga Institute of Technology", Location: "Tumkur", Type: TypePrivateUnaided},
	}, nil)

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},               // empty query returns everything
		{"visvesvaraya", 1},   // case-insensitive name match
		{"e0", 3},             // code substring
		{"institute", 1},      // name substring
		{"no such college", 0},
	}

	for _, tt := range tests {
		if got := len(c.SearchColleges(tt.query)); got != tt.want {
			t.Errorf("SearchColleges(%q) returned %d results, want %d", tt.query, got, tt.want)
		}
	}
}

func TestSearchBranches(t *testing.T) {
	c := New()

	results := c.SearchBranches("computer")
	if len(results) == 0 {
		t.Fatal("expected matches for 'computer'")
	}
	for _, branch := range results {
		if branch.Code == "ME" {
			t.Error("mechanical should not match 'computer'")
		}
	}

	byCode := c.SearchBranches("cs")
	found := false
	for _, branch := range byCode {
		if branch.Code == "CS" {
			found = true
		}
	}
	if !found {
		t.Error("expected CS in results for query 'cs'")
	}
}
