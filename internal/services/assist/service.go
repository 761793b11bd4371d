// Package assist implements the AI suggestion boundary: rephrasing, title
// and category suggestions, mitigation ideas, similarity lookup, and
// question answering over the register. The language model is an opaque
// text-in/text-out collaborator behind the ChatCompleter interface; the
// register data the answer flow reads is threaded through as an explicit
// parameter, never stashed in package state.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"vantage/internal/domain"
	"vantage/internal/metrics"
	"vantage/internal/ports"
)

// ChatCompleter is the one operation the assistant needs from a language
// model.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Service struct {
	llm      ChatCompleter
	register ports.Register
	log      *slog.Logger
}

func New(llm ChatCompleter, register ports.Register, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{llm: llm, register: register, log: log}
}

func (s *Service) Rephrase(ctx context.Context, text string) (string, error) {
	out, err := s.complete(ctx, "rephrase",
		"You rewrite risk and issue descriptions for a project register. Reply with the rewritten text only.",
		"Rewrite this clearly and concisely:\n\n"+text)
	return strings.TrimSpace(out), err
}

func (s *Service) SuggestTitle(ctx context.Context, text string) (string, error) {
	out, err := s.complete(ctx, "title",
		"You write short titles for risk and issue records. Reply with the title only, no quotes.",
		"Suggest a title (at most ten words) for:\n\n"+text)
	return strings.Trim(strings.TrimSpace(out), `"`), err
}

func (s *Service) SuggestCategory(ctx context.Context, text string) (ports.CategorySuggestion, error) {
	out, err := s.complete(ctx, "category",
		`You classify project issues. Reply with JSON only: {"category":"Technical|Contractual|Resource|Schedule","sub_category":"<free text>"}`,
		"Classify this issue:\n\n"+text)
	if err != nil {
		return ports.CategorySuggestion{}, err
	}
	var sugg ports.CategorySuggestion
	if err := json.Unmarshal([]byte(extractJSON(out)), &sugg); err != nil {
		return ports.CategorySuggestion{}, fmt.Errorf("unparsable category suggestion: %w", err)
	}
	return sugg, nil
}

func (s *Service) SuggestMitigations(ctx context.Context, text, extra string) ([]string, error) {
	user := "Suggest three to five mitigation actions for this risk:\n\n" + text
	if extra != "" {
		user += "\n\nAdditional context:\n" + extra
	}
	out, err := s.complete(ctx, "mitigations",
		"You suggest mitigation actions for project risks. Reply with one action per line, no numbering.",
		user)
	if err != nil {
		return nil, err
	}
	var actions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if line != "" {
			actions = append(actions, line)
		}
	}
	return actions, nil
}

// FindSimilar looks for an existing register record resembling the text.
// The candidate batch is fetched here and passed to the model inline; when
// nothing matches, the model's rephrasing of the query is returned instead.
func (s *Service) FindSimilar(ctx context.Context, text string) (ports.SimilarResult, error) {
	items, err := s.register.List(ctx, ports.RegisterFilter{})
	if err != nil {
		return ports.SimilarResult{}, err
	}
	var sb strings.Builder
	for i, v := range items {
		fmt.Fprintf(&sb, "%d: [%s] %s\n", i, v.Type, v.Title)
	}
	out, err := s.complete(ctx, "similar",
		"You match a query against a numbered list of register records. Reply with the matching number only, or -1 if none match.",
		"Query:\n"+text+"\n\nRecords:\n"+sb.String())
	if err != nil {
		return ports.SimilarResult{}, err
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(out)); err == nil && idx >= 0 && idx < len(items) {
		return ports.SimilarResult{Match: &items[idx]}, nil
	}
	rephrased, err := s.Rephrase(ctx, text)
	if err != nil {
		return ports.SimilarResult{}, err
	}
	return ports.SimilarResult{Rephrased: rephrased}, nil
}

// AnswerQuestion answers a free-form question against a filtered slice of
// the register. The dataset tag selects the slice: "risks", "issues" or
// "all", optionally followed by ":<status>" and ":<project code>".
func (s *Service) AnswerQuestion(ctx context.Context, question, datasetTag string) (string, error) {
	filter := parseDatasetTag(datasetTag)
	items, err := s.register.List(ctx, filter)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, v := range items {
		fmt.Fprintf(&sb, "- [%s/%s] %s (project %s", v.Type, v.Status, v.Title, v.ProjectName)
		if v.Type == domain.TypeRisk {
			fmt.Fprintf(&sb, ", score %.3f, level %s", v.RiskScore, v.RiskLevel)
		}
		sb.WriteString(")\n")
	}
	return s.complete(ctx, "ask",
		"You analyse a project risk/issue register. Answer from the dataset below only; say so when the data cannot answer.",
		"Dataset:\n"+sb.String()+"\nQuestion: "+question)
}

func parseDatasetTag(tag string) ports.RegisterFilter {
	var f ports.RegisterFilter
	parts := strings.Split(tag, ":")
	switch parts[0] {
	case "risks":
		f.Type = domain.TypeRisk
	case "issues":
		f.Type = domain.TypeIssue
	}
	if len(parts) > 1 {
		f.Status = parts[1]
	}
	if len(parts) > 2 {
		f.ProjectCode = parts[2]
	}
	return f
}

func (s *Service) complete(ctx context.Context, op, system, user string) (string, error) {
	out, err := s.llm.Complete(ctx, system, user)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.log.Error("assistant call failed", "operation", op, "error", err)
	}
	metrics.AssistCalls.WithLabelValues(op, outcome).Inc()
	return out, err
}

// extractJSON pulls the first JSON object out of a model reply that may be
// wrapped in prose or code fences.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
