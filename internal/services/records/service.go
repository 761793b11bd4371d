// Package records owns validated writes to the risks, issues and products
// collections, and the type-conversion move between the two record shapes.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vantage/internal/domain"
	"vantage/internal/ports"
)

type Service struct {
	store    ports.DocumentStore
	validate *validator.Validate
	log      *slog.Logger
}

func New(store ports.DocumentStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failures under the wire field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Service{store: store, validate: v, log: log}
}

func (s *Service) CreateRisk(ctx context.Context, rec domain.RiskRecord) (string, error) {
	return s.create(ctx, domain.CollectionRisks, rec)
}

func (s *Service) UpdateRisk(ctx context.Context, id string, rec domain.RiskRecord) error {
	return s.update(ctx, domain.CollectionRisks, id, rec)
}

func (s *Service) CreateIssue(ctx context.Context, rec domain.IssueRecord) (string, error) {
	return s.create(ctx, domain.CollectionIssues, rec)
}

func (s *Service) UpdateIssue(ctx context.Context, id string, rec domain.IssueRecord) error {
	return s.update(ctx, domain.CollectionIssues, id, rec)
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (string, error) {
	return s.create(ctx, domain.CollectionProducts, p)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, p domain.Product) error {
	return s.update(ctx, domain.CollectionProducts, id, p)
}

func (s *Service) Delete(ctx context.Context, typ domain.RecordType, id string) error {
	return s.store.Delete(ctx, domain.CollectionFor(typ), id)
}

func (s *Service) Get(ctx context.Context, typ domain.RecordType, id string) (domain.Document, error) {
	return s.store.Get(ctx, domain.CollectionFor(typ), id)
}

func (s *Service) create(ctx context.Context, collection string, rec any) (string, error) {
	fields, err := s.checked(rec)
	if err != nil {
		return "", err
	}
	doc := domain.Document{ID: uuid.NewString(), Fields: fields}
	if err := s.store.Create(ctx, collection, doc); err != nil {
		return "", err
	}
	s.log.Info("record created", "collection", collection, "id", doc.ID)
	return doc.ID, nil
}

func (s *Service) update(ctx context.Context, collection, id string, rec any) error {
	fields, err := s.checked(rec)
	if err != nil {
		return err
	}
	if err := s.store.Update(ctx, collection, id, fields); err != nil {
		return err
	}
	s.log.Info("record updated", "collection", collection, "id", id)
	return nil
}

// checked validates a write shape and flattens it to a stored field map.
// Validation failures are never partially applied: the record does not
// reach the store at all.
func (s *Service) checked(rec any) (map[string]any, error) {
	if err := s.validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		out := &domain.ValidationError{}
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				out.Fields = append(out.Fields, domain.FieldError{
					Field:   fe.Field(),
					Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
				})
			}
		}
		return nil, out
	}
	return toFields(rec)
}

func toFields(rec any) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	delete(m, "id") // identity lives on the document, not in its fields
	return m, nil
}
