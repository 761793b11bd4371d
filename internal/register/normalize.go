// Package register holds the pure core of the risk/issue register: the
// normalizer that projects heterogeneous raw documents into one unified
// view, the product cross-referencer, and the risk scorer. Everything here
// operates on in-memory snapshots and has no side effects.
package register

import (
	"errors"

	"vantage/internal/domain"
)

// ErrUnnormalizable marks a record whose structural essentials (id, type
// tag) are missing. Callers drop the record and continue; a single corrupt
// document must not block the batch.
var ErrUnnormalizable = errors.New("record cannot be normalized")

// Normalize projects one raw document into the unified RiskIssue view.
// Everything except the id and the type tag is best effort: missing or
// malformed optional fields resolve to absent, never to an error.
func Normalize(doc domain.Document, typ domain.RecordType, products ProductIndex) (domain.RiskIssue, error) {
	if doc.ID == "" || (typ != domain.TypeRisk && typ != domain.TypeIssue) {
		return domain.RiskIssue{}, ErrUnnormalizable
	}
	f := doc.Fields
	if f == nil {
		f = map[string]any{}
	}

	v := domain.RiskIssue{
		ID:    doc.ID,
		Type:  typ,
		Month: fieldString(f, "month"),
		Owner: fieldString(f, "owner"),
	}

	if typ == domain.TypeRisk {
		v.Description = fieldString(f, "description")
		v.Status = resolveStatus(f, "risk_status", "status")
		v.DueDate = fieldDate(f, "due_date", "dueDate")
		v.ProjectCode = fieldString(f, "project_code")
		v.MitigationPlan = fieldString(f, "mitigation_plan")
		v.ContingencyPlan = fieldString(f, "contingency_plan")
		v.Probability = optFloat(f, "probability")
		v.ImpactRating = optFloat(f, "impact_rating")
		v.ImpactValue = optFloat(f, "impact_value")
		v.BudgetContingency = optFloat(f, "budget_contingency")
	} else {
		v.Status = resolveStatus(f, "status", "risk_status")
		v.DueDate = fieldDate(f, "dueDate", "due_date")
		v.ProjectName = fieldString(f, "project_name")
		v.Category = fieldString(f, "category")
		v.SubCategory = fieldString(f, "sub_category")
		v.Discussion = fieldString(f, "discussion")
		v.Resolution = fieldString(f, "resolution")
		v.Response = fieldString(f, "response")
		v.Impact = fieldString(f, "impact")
		v.Priority = fieldString(f, "priority")
		v.ImpactValue = optFloat(f, "impact_value")
	}

	v.Title = resolveTitle(f, typ)

	CrossReference(&v, products)

	if typ == domain.TypeRisk {
		d := ScoreRisk(deref(v.Probability), deref(v.ImpactRating), deref(v.ImpactValue), deref(v.BudgetContingency))
		v.RiskScore = d.Score
		v.RiskLevel = d.Level
		v.EMV = d.EMV
		v.DeficitSurplus = d.DeficitSurplus
		v.RiskNature = d.Nature
	}
	return v, nil
}

// NormalizeBatch normalizes a whole collection, silently dropping records
// that fail structurally.
func NormalizeBatch(docs []domain.Document, typ domain.RecordType, products ProductIndex) []domain.RiskIssue {
	out := make([]domain.RiskIssue, 0, len(docs))
	for _, doc := range docs {
		v, err := Normalize(doc, typ, products)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// resolveTitle falls back from the title field to the risk description, and
// finally to a generated placeholder. Issues never borrow their discussion
// text as a title.
func resolveTitle(f map[string]any, typ domain.RecordType) string {
	if t := fieldString(f, "title"); t != "" {
		return t
	}
	if typ == domain.TypeRisk {
		if d := fieldString(f, "description"); d != "" {
			return d
		}
		return "Untitled Risk"
	}
	return "Untitled Issue"
}

func resolveStatus(f map[string]any, primary, secondary string) string {
	if s := fieldString(f, primary); s != "" {
		return s
	}
	if s := fieldString(f, secondary); s != "" {
		return s
	}
	return "Open"
}

func optFloat(f map[string]any, key string) *float64 {
	if x, ok := fieldFloat(f, key); ok {
		return &x
	}
	return nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
