package ports

import (
	"context"
	"time"

	"vantage/internal/analytics"
	"vantage/internal/domain"
)

// RegisterFilter narrows the unified register read. Empty fields match all.
type RegisterFilter struct {
	Type        domain.RecordType
	Status      string
	ProjectCode string
}

// Register reads the unified, normalized and scored register. Every call
// operates on a fresh snapshot of the store; nothing is cached across
// requests.
type Register interface {
	List(ctx context.Context, filter RegisterFilter) ([]domain.RiskIssue, error)
	Products(ctx context.Context) ([]domain.Product, error)
	HeatMap(ctx context.Context) (analytics.HeatMap, error)
	StatusHistogram(ctx context.Context, typ domain.RecordType) (map[string]int, error)
	LevelHistogram(ctx context.Context) (map[domain.RiskLevel]int, error)
	CategoryHistogram(ctx context.Context) (map[string]int, error)
	Overdue(ctx context.Context, now time.Time) (analytics.OverdueBuckets, error)
	Benchmark(ctx context.Context, projectCodes []string) ([]analytics.ProjectBenchmark, error)
}

// ConversionResult reports the outcome of a type-conversion move.
type ConversionResult struct {
	OldID   string            `json:"old_id"`
	NewID   string            `json:"new_id"`
	NewType domain.RecordType `json:"new_type"`
}

// Records owns validated writes to the three collections and the
// risk/issue type conversion.
type Records interface {
	CreateRisk(ctx context.Context, rec domain.RiskRecord) (string, error)
	UpdateRisk(ctx context.Context, id string, rec domain.RiskRecord) error
	CreateIssue(ctx context.Context, rec domain.IssueRecord) (string, error)
	UpdateIssue(ctx context.Context, id string, rec domain.IssueRecord) error
	Delete(ctx context.Context, typ domain.RecordType, id string) error
	Get(ctx context.Context, typ domain.RecordType, id string) (domain.Document, error)
	Convert(ctx context.Context, id string) (ConversionResult, error)
	CreateProduct(ctx context.Context, p domain.Product) (string, error)
	UpdateProduct(ctx context.Context, id string, p domain.Product) error
}

// CategorySuggestion is the structured result of the category suggester.
type CategorySuggestion struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
}

// SimilarResult either matched an existing record or carries a rephrasing
// of the query text.
type SimilarResult struct {
	Match     *domain.RiskIssue `json:"match,omitempty"`
	Rephrased string            `json:"rephrased,omitempty"`
}

// Assistant is the AI suggestion boundary: opaque text-in/text-out and
// structured-suggestion services layered over the register read path.
type Assistant interface {
	Rephrase(ctx context.Context, text string) (string, error)
	SuggestTitle(ctx context.Context, text string) (string, error)
	SuggestCategory(ctx context.Context, text string) (CategorySuggestion, error)
	SuggestMitigations(ctx context.Context, text, extra string) ([]string, error)
	FindSimilar(ctx context.Context, text string) (SimilarResult, error)
	AnswerQuestion(ctx context.Context, question, datasetTag string) (string, error)
}
