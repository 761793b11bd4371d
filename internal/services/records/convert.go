package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vantage/internal/domain"
	"vantage/internal/ports"
	core "vantage/internal/register"
)

// Convert moves a record to the other collection when its classification
// changes. It is a move, not a copy: the new record gets a new identity and
// the old one is deleted, in a single atomic store batch. The field mapping
// is pure; only the final Move touches the store, so a failure anywhere
// leaves both collections untouched.
func (s *Service) Convert(ctx context.Context, id string) (ports.ConversionResult, error) {
	doc, typ, err := s.locate(ctx, id)
	if err != nil {
		return ports.ConversionResult{}, err
	}

	products, err := s.store.List(ctx, domain.CollectionProducts)
	if err != nil {
		return ports.ConversionResult{}, err
	}
	ix := core.NewProductIndex(core.DecodeProducts(products))

	var target domain.Document
	var targetType domain.RecordType
	if typ == domain.TypeRisk {
		target = domain.Document{ID: uuid.NewString(), Fields: riskToIssue(doc, ix)}
		targetType = domain.TypeIssue
	} else {
		target = domain.Document{ID: uuid.NewString(), Fields: issueToRisk(doc, ix)}
		targetType = domain.TypeRisk
	}

	from := domain.CollectionFor(typ)
	to := domain.CollectionFor(targetType)
	if err := s.store.Move(ctx, from, doc.ID, to, target); err != nil {
		return ports.ConversionResult{}, err
	}
	s.log.Info("record converted", "old_id", doc.ID, "new_id", target.ID, "to", to)
	return ports.ConversionResult{OldID: doc.ID, NewID: target.ID, NewType: targetType}, nil
}

// locate finds the record in either collection.
func (s *Service) locate(ctx context.Context, id string) (domain.Document, domain.RecordType, error) {
	doc, err := s.store.Get(ctx, domain.CollectionRisks, id)
	if err == nil {
		return doc, domain.TypeRisk, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Document{}, "", err
	}
	doc, err = s.store.Get(ctx, domain.CollectionIssues, id)
	if err == nil {
		return doc, domain.TypeIssue, nil
	}
	return domain.Document{}, "", err
}

// riskToIssue builds the issue-shaped replacement for a risk. Risk-only
// fields (probability, impact rating, plans, financials, risk status,
// project code, due date) are dropped; the prose moves from description to
// discussion and the issue-side defaults apply.
func riskToIssue(doc domain.Document, ix core.ProductIndex) map[string]any {
	f := doc.Fields
	out := map[string]any{
		"title":      convertedTitle(f, domain.TypeRisk, doc.ID),
		"discussion": str(f, "description"),
		"status":     string(domain.IssueOpen),
		"priority":   "Medium",
		"impact":     "Medium",
	}
	carry(f, out, "month", "owner")
	if code := str(f, "project_code"); code != "" {
		if p, ok := ix.ByCode(code); ok {
			out["project_name"] = p.Name
		} else {
			out["project_name"] = code
		}
	}
	return out
}

// issueToRisk builds the risk-shaped replacement for an issue. Issue-only
// fields are dropped and probability/impact start from the lowest pick-list
// values. The conversion loses type-specific fields in both directions.
func issueToRisk(doc domain.Document, ix core.ProductIndex) map[string]any {
	f := doc.Fields
	out := map[string]any{
		"title":         convertedTitle(f, domain.TypeIssue, doc.ID),
		"description":   str(f, "discussion"),
		"risk_status":   string(domain.RiskOpen),
		"probability":   0.2,
		"impact_rating": 0.05,
	}
	carry(f, out, "month", "owner")
	if name := str(f, "project_name"); name != "" {
		if p, ok := ix.ByName(name); ok {
			out["project_code"] = p.Code
		}
	}
	return out
}

func convertedTitle(f map[string]any, sourceType domain.RecordType, id string) string {
	if t := str(f, "title"); t != "" {
		return t
	}
	return fmt.Sprintf("Converted from %s %s", sourceType, id)
}

func carry(src, dst map[string]any, keys ...string) {
	for _, k := range keys {
		if v := str(src, k); v != "" {
			dst[k] = v
		}
	}
}

func str(f map[string]any, key string) string {
	if f == nil {
		return ""
	}
	s, _ := f[key].(string)
	return s
}
