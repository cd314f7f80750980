package report

import "github.com/DjordjeVuckovic/little-english/internal/compiler"

func Generate(run *compiler.Run) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       run.ID,
			Source:      run.Source,
			StartedAt:   run.StartedAt,
			FinishedAt:  run.FinishedAt,
			Environment: NewEnvironmentInfo(),
		},
		Entries: make([]Entry, 0, len(run.Results)),
	}

	for _, res := range run.Results {
		entry := Entry{
			LineNumber: res.LineNumber,
			Sentence:   res.Sentence,
			Success:    res.Success,
			Reason:     res.Reason,
		}
		if !res.Success {
			entry.Message = res.Message
		}
		r.Entries = append(r.Entries, entry)
	}

	r.Summary, r.Errors = aggregate(run.Results)
	return r
}

func aggregate(results []compiler.LineResult) (Summary, Tally) {
	var s Summary
	var t Tally

	for _, res := range results {
		s.Total++
		if res.Success {
			s.Successful++
			continue
		}
		s.Failed++

		switch res.Reason.Category() {
		case compiler.CategoryLexical:
			t.Lexical++
		case compiler.CategorySyntactic:
			t.Syntactic++
		default:
			t.Other++
		}
	}

	return s, t
}
