package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vantage/internal/domain"
)

func TestCrossReferenceRisk(t *testing.T) {
	ix := testIndex()

	v := domain.RiskIssue{Type: domain.TypeRisk, ProjectCode: "ALPHA"}
	CrossReference(&v, ix)
	assert.Equal(t, "Alpha Platform", v.ProjectName)

	// Unmatched code: the raw code serves as the display name, never
	// "Unknown" and never empty.
	v = domain.RiskIssue{Type: domain.TypeRisk, ProjectCode: "GHOST"}
	CrossReference(&v, ix)
	assert.Equal(t, "GHOST", v.ProjectName)

	v = domain.RiskIssue{Type: domain.TypeRisk}
	CrossReference(&v, ix)
	assert.Equal(t, "Unknown", v.ProjectName, "only an absent code yields Unknown")
}

func TestCrossReferenceIssue(t *testing.T) {
	ix := testIndex()

	v := domain.RiskIssue{Type: domain.TypeIssue, ProjectName: "Beta Gateway"}
	CrossReference(&v, ix)
	assert.Equal(t, "BETA", v.ProjectCode)

	v = domain.RiskIssue{Type: domain.TypeIssue, ProjectName: "Not A Product", ProjectCode: "stale"}
	CrossReference(&v, ix)
	assert.Empty(t, v.ProjectCode, "unmatched name leaves the code absent")
	assert.Equal(t, "Not A Product", v.ProjectName)
}

func TestDecodeProducts(t *testing.T) {
	docs := []domain.Document{
		{ID: "1", Fields: map[string]any{"code": "A", "name": "Alpha", "value": 100000.0, "pa_number": "PA-1"}},
		{ID: "2", Fields: map[string]any{"current_status": "on track"}}, // no join keys
		{ID: "3", Fields: nil},
		{ID: "4", Fields: map[string]any{"name": "Nameless Code", "value": "not-a-number"}},
	}
	products := DecodeProducts(docs)
	assert.Len(t, products, 2)
	assert.Equal(t, 100000.0, products[0].Value)
	assert.Zero(t, products[1].Value)
}
