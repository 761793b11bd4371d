package register

import "vantage/internal/domain"

// ProductIndex holds the product directory keyed both ways. Risks join on
// product code, issues on product name; the asymmetry comes from the stored
// schemas (issue documents carry no project code field) and is deliberate.
// Callers build the index once per batch, not per record.
type ProductIndex struct {
	byCode map[string]domain.Product
	byName map[string]domain.Product
}

func NewProductIndex(products []domain.Product) ProductIndex {
	ix := ProductIndex{
		byCode: make(map[string]domain.Product, len(products)),
		byName: make(map[string]domain.Product, len(products)),
	}
	for _, p := range products {
		if p.Code != "" {
			ix.byCode[p.Code] = p
		}
		if p.Name != "" {
			ix.byName[p.Name] = p
		}
	}
	return ix
}

func (ix ProductIndex) ByCode(code string) (domain.Product, bool) {
	p, ok := ix.byCode[code]
	return p, ok
}

func (ix ProductIndex) ByName(name string) (domain.Product, bool) {
	p, ok := ix.byName[name]
	return p, ok
}

// CrossReference attaches the project name/code pair to a normalized record.
// For risks the raw code falls back to serving as the display name when no
// product matches; "Unknown" appears only when the code itself is absent.
// For issues an unmatched project name leaves the code absent.
func CrossReference(v *domain.RiskIssue, ix ProductIndex) {
	switch v.Type {
	case domain.TypeRisk:
		if v.ProjectCode == "" {
			v.ProjectName = "Unknown"
			return
		}
		if p, ok := ix.ByCode(v.ProjectCode); ok {
			v.ProjectName = p.Name
		} else {
			v.ProjectName = v.ProjectCode
		}
	case domain.TypeIssue:
		if p, ok := ix.ByName(v.ProjectName); ok {
			v.ProjectCode = p.Code
		} else {
			v.ProjectCode = ""
		}
	}
}
