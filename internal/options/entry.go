// Package options implements the ordered option list a candidate builds
// before submission: entries with dense priorities, reordered and annotated
// through a small set of operations.
package options

import "github.com/google/uuid"

// Comments holds the free-text research notes a candidate attaches to an
// option, one field per topic.
type Comments struct {
	Placement      string `json:"placement,omitempty"`
	Infrastructure string `json:"infrastructure,omitempty"`
	Hostel         string `json:"hostel,omitempty"`
	Other          string `json:"other,omitempty"`
}

// Empty reports whether every comment field is blank.
func (c Comments) Empty() bool {
	return c == Comments{}
}

// Entry is one row of the option list. CollegeCourse is the combined code
// entered on the KEA portal, always CollegeCode followed by BranchCode.
type Entry struct {
	ID            string   `json:"id"`
	Priority      int      `json:"priority"`
	CollegeCode   string   `json:"collegeCode"`
	CollegeName   string   `json:"collegeName"`
	BranchCode    string   `json:"branchCode"`
	BranchName    string   `json:"branchName"`
	Location      string   `json:"location,omitempty"`
	CollegeCourse string   `json:"collegeCourse"`
	Fees          int      `json:"fees,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Comments      Comments `json:"comments,omitzero"`
}

// NewEntry builds an entry for a college/branch pair with a fresh ID and an
// unset priority. The caller assigns the priority on insert.
func NewEntry(collegeCode, collegeName, branchCode, branchName, location string, fees int) Entry {
	return Entry{
		ID:            uuid.NewString(),
		CollegeCode:   collegeCode,
		CollegeName:   collegeName,
		BranchCode:    branchCode,
		BranchName:    branchName,
		Location:      location,
		CollegeCourse: collegeCode + branchCode,
		Fees:          fees,
	}
}
