package analytics

import (
	"time"

	"vantage/internal/domain"
)

// OverdueBuckets splits open risks with a due date by how far past due they
// are. Risks without a due date, non-open risks, and issues are omitted
// entirely, not counted as zero.
type OverdueBuckets struct {
	DueWithin30     []domain.RiskIssue `json:"due_within_30"`
	Overdue30To60   []domain.RiskIssue `json:"overdue_30_to_60"`
	CriticalOverdue []domain.RiskIssue `json:"critical_overdue"`
}

// BucketOverdue assigns each eligible risk by days overdue relative to now:
// more than 60 days overdue is critical, 30 to 60 is the middle bucket, and
// everything due between 30 days out and 30 days overdue is "due within
// 30". Risks due further than 30 days in the future are excluded.
func BucketOverdue(items []domain.RiskIssue, now time.Time) OverdueBuckets {
	var b OverdueBuckets
	for _, v := range items {
		if v.Type != domain.TypeRisk || v.Status != string(domain.RiskOpen) || v.DueDate == "" {
			continue
		}
		due, err := time.Parse(time.RFC3339, v.DueDate)
		if err != nil {
			continue
		}
		overdueDays := int(now.Sub(due).Hours() / 24)
		switch {
		case overdueDays > 60:
			b.CriticalOverdue = append(b.CriticalOverdue, v)
		case overdueDays >= 30:
			b.Overdue30To60 = append(b.Overdue30To60, v)
		case overdueDays >= -30:
			b.DueWithin30 = append(b.DueWithin30, v)
		}
	}
	return b
}
