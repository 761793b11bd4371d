package analytics

import (
	"vantage/internal/domain"
	"vantage/internal/register"
)

// StatusHistogram counts records of one type per status value. The counts
// are keyed by that type's own status enum; risk and issue vocabularies
// are different enums and a filter built from one must never offer the
// other's values. Every valid status appears, zero-counted if unused;
// statuses outside the enum are ignored.
func StatusHistogram(items []domain.RiskIssue, typ domain.RecordType) map[string]int {
	valid := domain.RiskStatuses()
	if typ == domain.TypeIssue {
		valid = domain.IssueStatuses()
	}
	counts := make(map[string]int, len(valid))
	for _, s := range valid {
		counts[s] = 0
	}
	for _, v := range items {
		if v.Type != typ {
			continue
		}
		if _, ok := counts[v.Status]; ok {
			counts[v.Status]++
		}
	}
	return counts
}

// LevelHistogram counts risks per risk level using the canonical threshold
// table, recomputed from the score so the histogram can never disagree with
// the per-record level.
func LevelHistogram(items []domain.RiskIssue) map[domain.RiskLevel]int {
	counts := map[domain.RiskLevel]int{
		domain.LevelLow:      0,
		domain.LevelMedium:   0,
		domain.LevelHigh:     0,
		domain.LevelCritical: 0,
	}
	for _, v := range items {
		if v.Type != domain.TypeRisk {
			continue
		}
		counts[register.LevelFor(v.RiskScore)]++
	}
	return counts
}

// CategoryHistogram counts issues per category. Unknown categories are kept
// under their own label rather than dropped; the chart shows what the data
// actually says.
func CategoryHistogram(items []domain.RiskIssue) map[string]int {
	counts := map[string]int{}
	for _, v := range items {
		if v.Type != domain.TypeIssue || v.Category == "" {
			continue
		}
		counts[v.Category]++
	}
	return counts
}
