package register

import "vantage/internal/domain"

// DecodeProducts reads product documents tolerantly. A product missing both
// join keys is useless to the cross-referencer and is skipped; nothing here
// fails the batch.
func DecodeProducts(docs []domain.Document) []domain.Product {
	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		if d.Fields == nil {
			continue
		}
		p := domain.Product{
			ID:            d.ID,
			Code:          fieldString(d.Fields, "code"),
			Name:          fieldString(d.Fields, "name"),
			PANumber:      fieldString(d.Fields, "pa_number"),
			CurrentStatus: fieldString(d.Fields, "current_status"),
		}
		if v, ok := fieldFloat(d.Fields, "value"); ok {
			p.Value = v
		}
		if p.Code == "" && p.Name == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
