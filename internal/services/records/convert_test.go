package records

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantage/internal/domain"
)

// fakeStore is an in-memory DocumentStore with the same atomicity contract
// as the real adapter: Move either applies both writes or neither.
type fakeStore struct {
	mu       sync.Mutex
	data     map[string]map[string]domain.Document
	moveErr  error
	listErr  error
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]map[string]domain.Document{
		domain.CollectionRisks:    {},
		domain.CollectionIssues:   {},
		domain.CollectionProducts: {},
	}}
}

func (f *fakeStore) seed(collection string, doc domain.Document) {
	f.data[collection][doc.ID] = doc
}

func (f *fakeStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Document
	for _, d := range f.data[collection] {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.data[collection][id]
	if !ok {
		return domain.Document{}, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakeStore) Create(ctx context.Context, collection string, doc domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.data[collection][doc.ID] = doc
	return nil
}

func (f *fakeStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.data[collection][id]; !ok {
		return domain.ErrNotFound
	}
	f.data[collection][id] = domain.Document{ID: id, Fields: fields}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[collection][id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.data[collection], id)
	return nil
}

func (f *fakeStore) Move(ctx context.Context, fromCollection, id, toCollection string, doc domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.moveErr != nil {
		return f.moveErr
	}
	if _, ok := f.data[fromCollection][id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.data[fromCollection], id)
	f.data[toCollection][doc.ID] = doc
	return nil
}

func seededService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.seed(domain.CollectionProducts, domain.Document{
		ID:     "p1",
		Fields: map[string]any{"code": "ALPHA", "name": "Alpha Platform"},
	})
	return New(store, nil), store
}

func TestConvertRiskToIssue(t *testing.T) {
	svc, store := seededService(t)
	store.seed(domain.CollectionRisks, domain.Document{
		ID: "r1",
		Fields: map[string]any{
			"title":              "Integration slip",
			"description":        "Vendor may slip the integration date",
			"risk_status":        "Open",
			"project_code":       "ALPHA",
			"probability":        0.9,
			"impact_rating":      0.4,
			"impact_value":       5000.0,
			"budget_contingency": 1000.0,
			"mitigation_plan":    "weekly checkpoint",
			"contingency_plan":   "fallback vendor",
			"due_date":           "2025-08-01",
			"month":              "2025-06",
			"owner":              "pm@example.com",
		},
	})

	res, err := svc.Convert(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", res.OldID)
	assert.Equal(t, domain.TypeIssue, res.NewType)
	assert.NotEqual(t, res.OldID, res.NewID, "conversion mints a new identity")

	_, err = store.Get(context.Background(), domain.CollectionRisks, "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "the old record is gone")

	doc, err := store.Get(context.Background(), domain.CollectionIssues, res.NewID)
	require.NoError(t, err)
	f := doc.Fields
	assert.Equal(t, "Integration slip", f["title"])
	assert.Equal(t, "Vendor may slip the integration date", f["discussion"])
	assert.Equal(t, "Open", f["status"])
	assert.Equal(t, "Medium", f["priority"])
	assert.Equal(t, "Medium", f["impact"])
	assert.Equal(t, "Alpha Platform", f["project_name"])
	assert.Equal(t, "2025-06", f["month"])
	assert.Equal(t, "pm@example.com", f["owner"])

	for _, dropped := range []string{
		"probability", "impact_rating", "mitigation_plan", "contingency_plan",
		"impact_value", "budget_contingency", "risk_status", "project_code", "due_date",
	} {
		assert.NotContains(t, f, dropped, "risk-only field %q must be dropped", dropped)
	}
}

func TestConvertIssueToRisk(t *testing.T) {
	svc, store := seededService(t)
	store.seed(domain.CollectionIssues, domain.Document{
		ID: "i1",
		Fields: map[string]any{
			"title":        "Api outage",
			"discussion":   "The partner API has been flapping",
			"status":       "Escalated",
			"category":     "Technical",
			"priority":     "High",
			"impact":       "High",
			"impact_value": 750.0,
			"resolution":   "pending RCA",
			"response":     "In Progress",
			"project_name": "Alpha Platform",
			"dueDate":      "2025-07-01",
			"month":        "2025-06",
		},
	})

	res, err := svc.Convert(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeRisk, res.NewType)

	doc, err := store.Get(context.Background(), domain.CollectionRisks, res.NewID)
	require.NoError(t, err)
	f := doc.Fields
	assert.Equal(t, "The partner API has been flapping", f["description"])
	assert.Equal(t, "Open", f["risk_status"])
	assert.Equal(t, 0.2, f["probability"])
	assert.Equal(t, 0.05, f["impact_rating"])
	assert.Equal(t, "ALPHA", f["project_code"], "project code resolved by name lookup")

	for _, dropped := range []string{
		"discussion", "resolution", "response", "impact", "impact_value",
		"priority", "project_name", "status", "category", "sub_category", "dueDate",
	} {
		assert.NotContains(t, f, dropped, "issue-only field %q must be dropped", dropped)
	}
}

// The round trip does not restore the source: converting a risk to an issue and back
// replaces the original probability, impact rating and plans with defaults.
func TestConvertRoundTripIsLossy(t *testing.T) {
	svc, store := seededService(t)
	store.seed(domain.CollectionRisks, domain.Document{
		ID: "r1",
		Fields: map[string]any{
			"title":           "Lossy",
			"description":     "original description",
			"probability":     0.9,
			"impact_rating":   0.4,
			"mitigation_plan": "the plan",
			"project_code":    "ALPHA",
		},
	})

	first, err := svc.Convert(context.Background(), "r1")
	require.NoError(t, err)
	second, err := svc.Convert(context.Background(), first.NewID)
	require.NoError(t, err)

	doc, err := store.Get(context.Background(), domain.CollectionRisks, second.NewID)
	require.NoError(t, err)
	f := doc.Fields
	assert.Equal(t, 0.2, f["probability"], "original probability is not restored")
	assert.Equal(t, 0.05, f["impact_rating"], "original impact rating is not restored")
	assert.NotContains(t, f, "mitigation_plan", "original mitigation plan is not restored")
	assert.Equal(t, "Lossy", f["title"], "the title survives both hops")
	assert.Equal(t, "original description", f["description"])
}

func TestConvertSynthesizesTitle(t *testing.T) {
	svc, store := seededService(t)
	store.seed(domain.CollectionRisks, domain.Document{
		ID:     "r9",
		Fields: map[string]any{"description": "untitled risk"},
	})

	res, err := svc.Convert(context.Background(), "r9")
	require.NoError(t, err)
	doc, err := store.Get(context.Background(), domain.CollectionIssues, res.NewID)
	require.NoError(t, err)
	assert.Equal(t, "Converted from risk r9", doc.Fields["title"])
}

func TestConvertNotFound(t *testing.T) {
	svc, _ := seededService(t)
	_, err := svc.Convert(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConvertFailureLeavesStoreUntouched(t *testing.T) {
	svc, store := seededService(t)
	store.seed(domain.CollectionRisks, domain.Document{
		ID:     "r1",
		Fields: map[string]any{"title": "stays put", "description": "d"},
	})
	store.moveErr = errors.New("batch rejected")

	_, err := svc.Convert(context.Background(), "r1")
	require.Error(t, err)

	_, err = store.Get(context.Background(), domain.CollectionRisks, "r1")
	assert.NoError(t, err, "the source record must still exist")
	issues, err := store.List(context.Background(), domain.CollectionIssues)
	require.NoError(t, err)
	assert.Empty(t, issues, "no replacement may appear without the delete")
}
