package cutoff

import "sort"

// Seed is one auto-generated (institute, course) pick, ordered by how close
// its cutoff rank sits above the candidate's rank.
type Seed struct {
	InstituteCode string
	Institute     string
	Course        string
	CutoffRank    int
}

// AutoGenerate builds an ordered list of reachable (institute, course)
// pairs for the given branches. For each branch it keeps the per-institute
// minimum cutoff rank among records with cutoff rank at or above the
// candidate's rank in the requested category, any year or round, then
// orders everything by distance above the rank. Pairs are deduplicated
// across branches.
func AutoGenerate(d *Dataset, rank int, category string, courses []string) []Seed {
	type key struct {
		instituteCode string
		course        string
	}
	best := make(map[key]Record)
	for _, course := range courses {
		for _, r := range d.Records() {
			if !equalFold(r.Course, course) || !equalFold(r.Category, category) {
				continue
			}
			if r.CutoffRank < rank {
				continue
			}
			k := key{r.InstituteCode, r.Course}
			if cur, ok := best[k]; !ok || r.CutoffRank < cur.CutoffRank {
				best[k] = r
			}
		}
	}

	out := make([]Seed, 0, len(best))
	for _, r := range best {
		out = append(out, Seed{
			InstituteCode: r.InstituteCode,
			Institute:     r.Institute,
			Course:        r.Course,
			CutoffRank:    r.CutoffRank,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].CutoffRank-rank, out[j].CutoffRank-rank
		if di != dj {
			return di < dj
		}
		if out[i].InstituteCode != out[j].InstituteCode {
			return out[i].InstituteCode < out[j].InstituteCode
		}
		return out[i].Course < out[j].Course
	})
	return out
}
