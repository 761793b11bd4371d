package analytics

import (
	"sort"

	"vantage/internal/domain"
)

// ProjectBenchmark is one project's side of a comparison.
type ProjectBenchmark struct {
	ProjectCode          string   `json:"project_code"`
	ProjectName          string   `json:"project_name"`
	TotalRisks           int      `json:"total_risks"`
	TotalIssues          int      `json:"total_issues"`
	AvgRiskScore         *float64 `json:"avg_risk_score"` // nil when the project has no risks
	TotalFinancialImpact float64  `json:"total_financial_impact"`
}

// Benchmark compares summary statistics across the selected projects. A
// comparison needs at least two selections; fewer returns an empty set.
// Records attach to a selection by project code, so issues whose project
// name resolved to no product are left out of every column.
func Benchmark(items []domain.RiskIssue, projectCodes []string) []ProjectBenchmark {
	if len(projectCodes) < 2 {
		return nil
	}
	selected := make(map[string]*ProjectBenchmark, len(projectCodes))
	order := make([]string, 0, len(projectCodes))
	for _, code := range projectCodes {
		if code == "" {
			continue
		}
		if _, dup := selected[code]; dup {
			continue
		}
		selected[code] = &ProjectBenchmark{ProjectCode: code}
		order = append(order, code)
	}
	if len(order) < 2 {
		return nil
	}

	scoreSums := make(map[string]float64, len(order))
	for _, v := range items {
		pb, ok := selected[v.ProjectCode]
		if !ok {
			continue
		}
		if pb.ProjectName == "" {
			pb.ProjectName = v.ProjectName
		}
		if v.Type == domain.TypeRisk {
			pb.TotalRisks++
			scoreSums[v.ProjectCode] += v.RiskScore
		} else {
			pb.TotalIssues++
		}
		if v.ImpactValue != nil {
			pb.TotalFinancialImpact += *v.ImpactValue
		}
	}

	sort.Strings(order)
	out := make([]ProjectBenchmark, 0, len(order))
	for _, code := range order {
		pb := selected[code]
		if pb.TotalRisks > 0 {
			avg := scoreSums[code] / float64(pb.TotalRisks)
			pb.AvgRiskScore = &avg
		}
		out = append(out, *pb)
	}
	return out
}
