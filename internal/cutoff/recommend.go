package cutoff

import "sort"

// Recommendation is one grouped (institute, course) suggestion for a
// candidate, carrying the best cutoff rank seen for that pair.
type Recommendation struct {
	Institute     string `json:"institute"`
	InstituteCode string `json:"institute_code"`
	Course        string `json:"course"`
	Category      string `json:"category"`
	CutoffRank    int    `json:"cutoff_rank"`
	Qualifies     bool   `json:"qualifies"`
}

// RecommendParams selects the slice of the dataset to recommend from.
type RecommendParams struct {
	UserRank int
	Year     string
	Round    string
	Course   string
	Category string
}

const (
	recommendRankSlack = 5000
	recommendRankCeil  = 200000
)

// Recommend returns colleges for the given course and category, grouped by
// (institute, course) keeping the lowest cutoff rank per pair, limited to a
// window around the candidate's rank and sorted by cutoff rank ascending.
func Recommend(d *Dataset, p RecommendParams) []Recommendation {
	if p.UserRank <= 0 {
		return nil
	}
	floor := p.UserRank - recommendRankSlack

	type key struct {
		instituteCode string
		course        string
	}
	best := make(map[key]Record)
	for _, r := range d.Records() {
		if r.Year != p.Year || r.Round != p.Round {
			continue
		}
		if r.Course != p.Course || r.Category != p.Category {
			continue
		}
		if r.CutoffRank < floor || r.CutoffRank > recommendRankCeil {
			continue
		}
		k := key{r.InstituteCode, r.Course}
		if cur, ok := best[k]; !ok || r.CutoffRank < cur.CutoffRank {
			best[k] = r
		}
	}

	out := make([]Recommendation, 0, len(best))
	for _, r := range best {
		out = append(out, Recommendation{
			Institute:     r.Institute,
			InstituteCode: r.InstituteCode,
			Course:        r.Course,
			Category:      r.Category,
			CutoffRank:    r.CutoffRank,
			Qualifies:     equalFold(r.Category, p.Category) && p.UserRank <= r.CutoffRank,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CutoffRank != out[j].CutoffRank {
			return out[i].CutoffRank < out[j].CutoffRank
		}
		return out[i].InstituteCode < out[j].InstituteCode
	})
	return out
}
