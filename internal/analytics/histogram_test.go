package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vantage/internal/domain"
)

func TestStatusHistogramKeepsVocabulariesApart(t *testing.T) {
	items := []domain.RiskIssue{
		{Type: domain.TypeRisk, Status: "Open"},
		{Type: domain.TypeRisk, Status: "Mitigated"},
		{Type: domain.TypeRisk, Status: "Bogus"},
		{Type: domain.TypeIssue, Status: "Open"},
		{Type: domain.TypeIssue, Status: "Resolved"},
		{Type: domain.TypeIssue, Status: "Mitigated"}, // risk-only word on an issue
	}

	risks := StatusHistogram(items, domain.TypeRisk)
	assert.Equal(t, map[string]int{"Open": 1, "Closed": 0, "Mitigated": 1, "Transferred": 0}, risks)

	issues := StatusHistogram(items, domain.TypeIssue)
	assert.Equal(t, map[string]int{"Open": 1, "Resolved": 1, "Escalated": 0, "Closed": 0}, issues)
	assert.NotContains(t, issues, "Mitigated", "issue histogram never grows risk statuses")
}

func TestLevelHistogram(t *testing.T) {
	items := []domain.RiskIssue{
		{Type: domain.TypeRisk, RiskScore: 0.005},
		{Type: domain.TypeRisk, RiskScore: 0.14},
		{Type: domain.TypeRisk, RiskScore: 0.36},
		{Type: domain.TypeRisk, RiskScore: 0.72},
		{Type: domain.TypeIssue, RiskScore: 0.72}, // issues never counted
	}
	counts := LevelHistogram(items)
	assert.Equal(t, map[domain.RiskLevel]int{
		domain.LevelLow:      1,
		domain.LevelMedium:   1,
		domain.LevelHigh:     1,
		domain.LevelCritical: 1,
	}, counts)
}

func TestCategoryHistogram(t *testing.T) {
	items := []domain.RiskIssue{
		{Type: domain.TypeIssue, Category: "Technical"},
		{Type: domain.TypeIssue, Category: "Technical"},
		{Type: domain.TypeIssue, Category: "Schedule"},
		{Type: domain.TypeIssue}, // uncategorized, skipped
		{Type: domain.TypeRisk, Category: "Technical"},
	}
	assert.Equal(t, map[string]int{"Technical": 2, "Schedule": 1}, CategoryHistogram(items))
}
