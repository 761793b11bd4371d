package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vantage/internal/domain"
)

func openRiskDue(id string, due time.Time) domain.RiskIssue {
	return domain.RiskIssue{
		ID:      id,
		Type:    domain.TypeRisk,
		Status:  string(domain.RiskOpen),
		DueDate: due.Format(time.RFC3339),
	}
}

func TestBucketOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	items := []domain.RiskIssue{
		openRiskDue("overdue-45", now.Add(-45*day)),
		openRiskDue("overdue-10", now.Add(-10*day)),
		openRiskDue("overdue-70", now.Add(-70*day)),
		openRiskDue("due-in-20", now.Add(20*day)),
		openRiskDue("due-in-90", now.Add(90*day)), // too far out, excluded
		{ID: "closed", Type: domain.TypeRisk, Status: "Closed", DueDate: now.Add(-45 * day).Format(time.RFC3339)},
		{ID: "no-due", Type: domain.TypeRisk, Status: "Open"},
		{ID: "issue", Type: domain.TypeIssue, Status: "Open", DueDate: now.Add(-45 * day).Format(time.RFC3339)},
	}

	b := BucketOverdue(items, now)

	ids := func(items []domain.RiskIssue) []string {
		out := make([]string, len(items))
		for i, v := range items {
			out[i] = v.ID
		}
		return out
	}
	assert.Equal(t, []string{"overdue-10", "due-in-20"}, ids(b.DueWithin30))
	assert.Equal(t, []string{"overdue-45"}, ids(b.Overdue30To60))
	assert.Equal(t, []string{"overdue-70"}, ids(b.CriticalOverdue))
}

func TestBucketOverdueBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	b := BucketOverdue([]domain.RiskIssue{
		openRiskDue("at-30", now.Add(-30*day)),
		openRiskDue("at-60", now.Add(-60*day)),
		openRiskDue("at-61", now.Add(-61*day)),
	}, now)

	assert.Len(t, b.DueWithin30, 0)
	assert.Len(t, b.Overdue30To60, 2, "30 and 60 days overdue sit in the middle bucket")
	assert.Len(t, b.CriticalOverdue, 1)
}
