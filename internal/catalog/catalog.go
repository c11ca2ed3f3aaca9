// Package catalog provides the static college and branch reference data for
// the planner. The data is maintained manually and updated when KEA publishes
// a new seat matrix; it is immutable for the lifetime of the process.
package catalog

import (
	"strings"
)

// CollegeType enumerates the funding/management category of a college.
type CollegeType string

// College types as published in the KEA seat matrix.
const (
	TypeGovernment     CollegeType = "Government"
	TypeAidedPrivate   CollegeType = "Aided Private"
	TypePrivateUnaided CollegeType = "Private Unaided"
	TypeSNQ            CollegeType = "SNQ"
)

// College is a participating engineering college.
type College struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Location string      `json:"location"`
	Type     CollegeType `json:"type"`
	Fees     int         `json:"fees,omitempty"` // Annual fees in rupees, 0 = not yet published
}

// Branch is an engineering discipline offered in option entry.
type Branch struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog indexes the static reference data for lookup and search.
type Catalog struct {
	colleges      []College
	branches      []Branch
	collegeByCode map[string]College
	branchByCode  map[string]Branch
}

// New builds a catalog from the bundled reference data.
func New() *Catalog {
	return NewFromData(Colleges, Branches)
}

// NewFromData builds a catalog from the provided slices. Used by tests to
// exercise the catalog with small fixtures.
func NewFromData(colleges []College, branches []Branch) *Catalog {
	c := &Catalog{
		colleges:      colleges,
		branches:      branches,
		collegeByCode: make(map[string]College, len(colleges)),
		branchByCode:  make(map[string]Branch, len(branches)),
	}
	for _, college := range colleges {
		c.collegeByCode[college.Code] = college
	}
	for _, branch := range branches {
		c.branchByCode[branch.Code] = branch
	}
	return c
}

// Colleges returns all colleges in seat-matrix order.
func (c *Catalog) Colleges() []College {
	return c.colleges
}

// Branches returns all branches in seat-matrix order.
func (c *Catalog) Branches() []Branch {
	return c.branches
}

// CollegeByCode looks up a college by its code.
func (c *Catalog) CollegeByCode(code string) (College, bool) {
	college, ok := c.collegeByCode[code]
	return college, ok
}

// BranchByCode looks up a branch by its code.
func (c *Catalog) BranchByCode(code string) (Branch, bool) {
	branch, ok := c.branchByCode[code]
	return branch, ok
}

// SearchColleges returns colleges whose name or code contains the query,
// case-insensitive. An empty query returns all colleges.
func (c *Catalog) SearchColleges(query string) []College {
	if query == "" {
		return c.colleges
	}
	q := strings.ToLower(query)
	matches := make([]College, 0)
	for _, college := range c.colleges {
		if strings.Contains(strings.ToLower(college.Name), q) ||
			strings.Contains(strings.ToLower(college.Code), q) {
			matches = append(matches, college)
		}
	}
	return matches
}

// SearchBranches returns branches whose name or code contains the query,
// case-insensitive. An empty query returns all branches.
func (c *Catalog) SearchBranches(query string) []Branch {
	if query == "" {
		return c.branches
	}
	q := strings.ToLower(query)
	matches := make([]Branch, 0)
	for _, branch := range c.branches {
		if strings.Contains(strings.ToLower(branch.Name), q) ||
			strings.Contains(strings.ToLower(branch.Code), q) {
			matches = append(matches, branch)
		}
	}
	return matches
}
