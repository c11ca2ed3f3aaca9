package cutoff

// AnalysisInput identifies one option to analyze. Combination is the
// display code carried through to the result, typically "E001CS".
type AnalysisInput struct {
	Combination   string
	InstituteCode string
	Course        string
}

// AnalysisRow is the per-option outcome of an analysis run.
type AnalysisRow struct {
	Combination string `json:"combination"`
	Status      string `json:"status"`
	Probability int    `json:"probability"`
	CutoffRank  int    `json:"cutoff_rank,omitempty"`
	MatchedYear string `json:"matched_year,omitempty"`
	MatchRound  string `json:"matched_round,omitempty"`
	MatchType   string `json:"match_type"`
}

// AnalysisResult is a full analysis: one row per option plus a count of
// rows per status for summary display.
type AnalysisResult struct {
	Rows    []AnalysisRow  `json:"rows"`
	Summary map[string]int `json:"summary"`
}

// Analyzer combines the tier matcher and the chance evaluator into the
// per-option analysis used by the list views.
type Analyzer struct {
	matcher   *Matcher
	evaluator *ChanceEvaluator
}

// NewAnalyzer creates an analyzer over the dataset with the given evaluator.
func NewAnalyzer(dataset *Dataset, evaluator *ChanceEvaluator) *Analyzer {
	return &Analyzer{matcher: NewMatcher(dataset), evaluator: evaluator}
}

// Analyze evaluates every input against the candidate's rank and category
// for the chosen year and round. Options with no match at any tier report
// an unknown status instead of an error.
func (a *Analyzer) Analyze(inputs []AnalysisInput, userRank int, category, year, round string) AnalysisResult {
	result := AnalysisResult{
		Rows:    make([]AnalysisRow, 0, len(inputs)),
		Summary: make(map[string]int),
	}
	for _, in := range inputs {
		row := AnalysisRow{Combination: in.Combination}
		match, ok := a.matcher.BestMatch(Query{
			InstituteCode: in.InstituteCode,
			Course:        in.Course,
			Category:      category,
			Year:          year,
			Round:         round,
		})
		if ok {
			chance := a.evaluator.Evaluate(userRank, match.Record.CutoffRank)
			row.Status = chance.Status
			row.Probability = chance.Probability
			row.CutoffRank = match.Record.CutoffRank
			row.MatchedYear = match.Record.Year
			row.MatchRound = match.Record.Round
			row.MatchType = match.Tier.Label()
		} else {
			chance := a.evaluator.Unknown()
			row.Status = chance.Status
			row.Probability = chance.Probability
			row.MatchType = "No match"
		}
		result.Rows = append(result.Rows, row)
		result.Summary[row.Status]++
	}
	return result
}
