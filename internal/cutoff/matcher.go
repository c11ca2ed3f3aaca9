package cutoff

// Tier identifies which fallback level produced a match. Lower is stricter.
type Tier int

// Fallback tiers, evaluated in order. The search stops at the first tier
// with any hit; within a tier the first record in dataset order wins.
const (
	TierExact          Tier = iota + 1 // institute + course + category + year/round
	TierAnyCategory                    // institute + course + year/round
	TierAnyCourse                      // institute + category + year/round
	TierInstituteOnly                  // institute + year/round
	TierHistoric                       // institute + course + category, any year/round
	TierHistoricAnyCat                 // institute + course, any year/round
)

// Label returns the human-readable description shown alongside results.
func (t Tier) Label() string {
	switch t {
	case TierExact:
		return "Exact match"
	case TierAnyCategory:
		return "Course match (different category)"
	case TierAnyCourse:
		return "College match (different course)"
	case TierInstituteOnly:
		return "College match (any course/category)"
	case TierHistoric:
		return "Historical data (different year/round)"
	case TierHistoricAnyCat:
		return "Historical data (any category)"
	default:
		return "No match"
	}
}

// Query describes what a single option is matched against.
type Query struct {
	InstituteCode string
	Course        string
	Category      string
	Year          string
	Round         string
}

// Match is a matched record together with the tier that produced it.
type Match struct {
	Record Record
	Tier   Tier
}

// Matcher finds the best available historical record for an option using a
// layered fallback search over the dataset.
type Matcher struct {
	dataset *Dataset
}

// NewMatcher creates a matcher over the given dataset.
func NewMatcher(dataset *Dataset) *Matcher {
	return &Matcher{dataset: dataset}
}

// tierPredicate reports whether a record satisfies a tier for a query.
// Course and category compare case-insensitively; institute compares exact.
type tierPredicate func(r Record, q Query) bool

var tiers = []struct {
	tier Tier
	pred tierPredicate
}{
	{TierExact, func(r Record, q Query) bool {
		return r.InstituteCode == q.InstituteCode &&
			equalFold(r.Course, q.Course) &&
			equalFold(r.Category, q.Category) &&
			r.Year == q.Year && r.Round == q.Round
	}},
	{TierAnyCategory, func(r Record, q Query) bool {
		return r.InstituteCode == q.InstituteCode &&
			equalFold(r.Course, q.Course) &&
			r.Year == q.Year && r.Round == q.Round
	}},
	{TierAnyCourse, func(r Record, q Query) bool {
		return r.InstituteCode == q.InstituteCode &&
			equalFold(r.Category, q.Category) &&
			r.Year == q.Year && r.Round == q.Round
	}},
	{TierInstituteOnly, func(r Record, q Query) bool {
		return r.InstituteCode == q.InstituteCode &&
			r.Year == q.Year && r.Round == q.Round
	}},
	{TierHistoric, func(r Record, q Query) bool {
		return r.InstituteCode == q.InstituteCode &&
			equalFold(r.Course, q.Course) &&
			equalFold(r.Category, q.Category)
	}},
	{TierHistoricAnyCat, func(r Record, q Query) bool {
		return r.InstituteCode == q.InstituteCode &&
			equalFold(r.Course, q.Course)
	}},
}

// BestMatch returns the first record found at the strictest satisfiable
// tier. A record qualifying at tier N is never passed over in favour of a
// tier >N record, even when the looser record has a better cutoff rank.
func (m *Matcher) BestMatch(q Query) (Match, bool) {
	for _, t := range tiers {
		for _, r := range m.dataset.Records() {
			if t.pred(r, q) {
				return Match{Record: r, Tier: t.tier}, true
			}
		}
	}
	return Match{}, false
}
