package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantage/internal/domain"
)

func scoredRisk(code string, score, impactValue float64) domain.RiskIssue {
	return domain.RiskIssue{
		Type:        domain.TypeRisk,
		ProjectCode: code,
		ProjectName: code + " project",
		RiskScore:   score,
		ImpactValue: &impactValue,
	}
}

func TestBenchmarkRequiresTwoProjects(t *testing.T) {
	items := []domain.RiskIssue{scoredRisk("A", 0.1, 100)}
	assert.Nil(t, Benchmark(items, []string{"A"}), "one selection is not a comparison")
	assert.Nil(t, Benchmark(items, nil))
	assert.Nil(t, Benchmark(items, []string{"A", "A", ""}), "duplicates and blanks do not count")
}

func TestBenchmarkPerProjectIndependence(t *testing.T) {
	items := []domain.RiskIssue{
		scoredRisk("A", 0.5*0.2, 1000),
		scoredRisk("B", 0.2*0.05, 500),
		{Type: domain.TypeIssue, ProjectCode: "B", ImpactValue: f(250)},
		scoredRisk("C", 0.9, 9999), // not selected
	}
	out := Benchmark(items, []string{"A", "B"})
	require.Len(t, out, 2)

	a, b := out[0], out[1]
	assert.Equal(t, "A", a.ProjectCode)
	assert.Equal(t, 1, a.TotalRisks)
	assert.Equal(t, 0, a.TotalIssues)
	require.NotNil(t, a.AvgRiskScore)
	assert.InDelta(t, 0.1, *a.AvgRiskScore, 1e-9)
	assert.InDelta(t, 1000, a.TotalFinancialImpact, 1e-9)

	assert.Equal(t, 1, b.TotalRisks)
	assert.Equal(t, 1, b.TotalIssues)
	require.NotNil(t, b.AvgRiskScore)
	assert.InDelta(t, 0.01, *b.AvgRiskScore, 1e-9)
	assert.InDelta(t, 750, b.TotalFinancialImpact, 1e-9, "financial impact sums both risks and issues")
}

func TestBenchmarkNoRisksMeansNoAverage(t *testing.T) {
	items := []domain.RiskIssue{
		{Type: domain.TypeIssue, ProjectCode: "A", ImpactValue: f(10)},
		scoredRisk("B", 0.2, 0),
	}
	out := Benchmark(items, []string{"A", "B"})
	require.Len(t, out, 2)
	assert.Nil(t, out[0].AvgRiskScore, "no risks, no average")
	assert.NotNil(t, out[1].AvgRiskScore)
}

func f(v float64) *float64 { return &v }
