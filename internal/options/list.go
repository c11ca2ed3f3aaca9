package options

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// MaxPriority caps what SetPriority accepts; larger values clamp down.
const MaxPriority = 999

// ErrPriorityRange is returned when SetPriority is asked for a priority
// below 1. Removal is a separate operation, not priority zero.
var ErrPriorityRange = errors.New("priority must be at least 1")

// List is an ordered collection of option entries. All mutation goes
// through its methods; a mutex serializes access so a list can be shared
// by concurrent requests for the same profile.
type List struct {
	mu      sync.Mutex
	entries []Entry
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Add appends the entry at the end with a dense priority. Duplicate
// college/branch pairs are allowed. Returns the stored entry.
func (l *List) Add(e Entry) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.Priority = len(l.entries) + 1
	l.entries = append(l.entries, e)
	return e
}

// Remove deletes the entry with the given id and renumbers the remainder
// to dense 1..N. An unknown id is a no-op.
func (l *List) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.renumber()
			return
		}
	}
}

// SetPriority assigns priority n to the entry with the given id and stably
// re-sorts the list ascending by priority. Priorities are NOT renumbered
// afterwards, so duplicates and gaps persist until the next Add, Remove or
// Move. n below 1 is rejected; above MaxPriority clamps. Unknown ids are a
// no-op.
func (l *List) SetPriority(id string, n int) error {
	if n < 1 {
		return ErrPriorityRange
	}
	if n > MaxPriority {
		n = MaxPriority
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Priority = n
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Priority < l.entries[j].Priority
	})
	return nil
}

// Move extracts the entry at index from and reinserts it at index to, then
// renumbers to dense 1..N. Out-of-range indexes are a no-op.
func (l *List) Move(from, to int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if from < 0 || from >= len(l.entries) || to < 0 || to >= len(l.entries) {
		return
	}
	if from == to {
		return
	}
	e := l.entries[from]
	l.entries = append(l.entries[:from], l.entries[from+1:]...)
	l.entries = append(l.entries[:to], append([]Entry{e}, l.entries[to:]...)...)
	l.renumber()
}

// Clear removes every entry. Clearing an empty list is not an error.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// SetNotes replaces the notes on one entry. Unknown ids are a no-op.
func (l *List) SetNotes(id, notes string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Notes = notes
			return
		}
	}
}

// SetComments replaces the comments on one entry. Unknown ids are a no-op.
func (l *List) SetComments(id string, c Comments) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Comments = c
			return
		}
	}
}

// Search returns entries whose college name, college code, branch name,
// branch code, combined code or location contains q, case-insensitive. An
// empty query returns everything.
func (l *List) Search(q string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if q == "" {
		return l.copyEntries()
	}
	q = strings.ToLower(q)
	var out []Entry
	for _, e := range l.entries {
		haystack := strings.ToLower(strings.Join([]string{
			e.CollegeName, e.CollegeCode, e.BranchName, e.BranchCode, e.CollegeCourse, e.Location,
		}, "\n"))
		if strings.Contains(haystack, q) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns a copy of the list in priority order.
func (l *List) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.copyEntries()
}

// Len returns the number of entries.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Replace swaps the full contents, renumbering to dense 1..N in the order
// given. Used by snapshot load and spreadsheet import.
func (l *List) Replace(entries []Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry(nil), entries...)
	l.renumber()
}

func (l *List) copyEntries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// renumber restores dense priorities 1..N in current order.
// Callers must hold mu.
func (l *List) renumber() {
	for i := range l.entries {
		l.entries[i].Priority = i + 1
	}
}
