// Package cutoff provides the historical cutoff dataset and the matching,
// recommendation and chance-evaluation logic built on top of it.
//
// Cutoff records are immutable reference data: they are loaded once at
// startup and only read afterwards, so the dataset needs no locking.
package cutoff

import (
	"sort"
	"strings"
)

// Record is one historical cutoff entry. InstituteCode and Course reference
// catalog codes by string equality only; duplicates are tolerated and
// resolved by the consumer (first or best match wins).
type Record struct {
	Year          string `json:"year"`
	Round         string `json:"round"`
	Institute     string `json:"institute,omitempty"`
	InstituteCode string `json:"institute_code"`
	Course        string `json:"course"`
	Category      string `json:"category"`
	CutoffRank    int    `json:"cutoff_rank"`
}

// Metadata describes the provenance of a dataset document.
type Metadata struct {
	TotalEntries        int `json:"total_entries"`
	TotalFilesProcessed int `json:"total_files_processed"`
}

// Dataset holds the loaded cutoff records.
type Dataset struct {
	records []Record
	meta    Metadata
}

// NewDataset creates a dataset from records. A nil slice yields a valid,
// empty dataset (the silent-failure fallback when loading fails).
func NewDataset(records []Record, meta Metadata) *Dataset {
	return &Dataset{records: records, meta: meta}
}

// Records returns the underlying records. Callers must not mutate them.
func (d *Dataset) Records() []Record {
	return d.records
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Empty reports whether the dataset holds no records.
func (d *Dataset) Empty() bool {
	return len(d.records) == 0
}

// Metadata returns the document metadata, if any was present.
func (d *Dataset) Metadata() Metadata {
	return d.meta
}

// Years returns all distinct years, newest first.
func (d *Dataset) Years() []string {
	return d.distinct(func(r Record) (string, bool) {
		return r.Year, true
	}, true)
}

// Rounds returns the distinct rounds available for a year, newest first.
func (d *Dataset) Rounds(year string) []string {
	return d.distinct(func(r Record) (string, bool) {
		return r.Round, r.Year == year
	}, true)
}

// Courses returns the distinct courses for a year and round, ascending.
func (d *Dataset) Courses(year, round string) []string {
	return d.distinct(func(r Record) (string, bool) {
		return r.Course, r.Year == year && r.Round == round
	}, false)
}

// Categories returns the distinct categories for a year, round and course,
// ascending.
func (d *Dataset) Categories(year, round, course string) []string {
	return d.distinct(func(r Record) (string, bool) {
		return r.Category, r.Year == year && r.Round == round && r.Course == course
	}, false)
}

func (d *Dataset) distinct(extract func(Record) (string, bool), descending bool) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range d.records {
		v, ok := extract(r)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	if descending {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}
	return values
}

// equalFold is the case-insensitive comparison used for course and category
// codes throughout the package. Institute codes always compare exact.
func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
