// Package register (service) assembles the unified register: it fetches the
// risks and issues collections in parallel, normalizes and cross-references
// them against the product directory, scores the risks, and serves filtered
// lists and chart aggregations. Everything is recomputed from a fresh store
// snapshot per call; there is no cache and no state shared across requests.
package register

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"vantage/internal/analytics"
	"vantage/internal/domain"
	"vantage/internal/metrics"
	"vantage/internal/ports"
	core "vantage/internal/register"
)

type Service struct {
	store ports.DocumentStore
	log   *slog.Logger
}

func New(store ports.DocumentStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log}
}

// snapshot fetches and normalizes both collections. The two scans run
// concurrently and join in memory once both complete.
func (s *Service) snapshot(ctx context.Context) ([]domain.RiskIssue, error) {
	var (
		riskDocs, issueDocs []domain.Document
		products            []domain.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		riskDocs, err = s.store.List(gctx, domain.CollectionRisks)
		return err
	})
	g.Go(func() (err error) {
		issueDocs, err = s.store.List(gctx, domain.CollectionIssues)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.store.List(gctx, domain.CollectionProducts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := core.NewProductIndex(core.DecodeProducts(products))
	risks := core.NormalizeBatch(riskDocs, domain.TypeRisk, ix)
	issues := core.NormalizeBatch(issueDocs, domain.TypeIssue, ix)
	if dropped := len(riskDocs) + len(issueDocs) - len(risks) - len(issues); dropped > 0 {
		metrics.DroppedRecords.Add(float64(dropped))
		s.log.Warn("dropped unnormalizable records", "count", dropped)
	}
	return append(risks, issues...), nil
}

func (s *Service) List(ctx context.Context, filter ports.RegisterFilter) ([]domain.RiskIssue, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := items[:0:0]
	for _, v := range items {
		if filter.Type != "" && v.Type != filter.Type {
			continue
		}
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if filter.ProjectCode != "" && v.ProjectCode != filter.ProjectCode {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	docs, err := s.store.List(ctx, domain.CollectionProducts)
	if err != nil {
		return nil, err
	}
	return core.DecodeProducts(docs), nil
}

func (s *Service) HeatMap(ctx context.Context) (analytics.HeatMap, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return analytics.HeatMap{}, err
	}
	return analytics.BuildHeatMap(items), nil
}

func (s *Service) StatusHistogram(ctx context.Context, typ domain.RecordType) (map[string]int, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.StatusHistogram(items, typ), nil
}

func (s *Service) LevelHistogram(ctx context.Context) (map[domain.RiskLevel]int, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.LevelHistogram(items), nil
}

func (s *Service) CategoryHistogram(ctx context.Context) (map[string]int, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryHistogram(items), nil
}

func (s *Service) Overdue(ctx context.Context, now time.Time) (analytics.OverdueBuckets, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return analytics.OverdueBuckets{}, err
	}
	return analytics.BucketOverdue(items, now), nil
}

func (s *Service) Benchmark(ctx context.Context, projectCodes []string) ([]analytics.ProjectBenchmark, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Benchmark(items, projectCodes), nil
}
