package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"vantage/internal/domain"
	"vantage/internal/ports"
)

// Register reads

func (s *Server) getRegister(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.RegisterFilter{
		Type:        domain.RecordType(q.Get("type")),
		Status:      q.Get("status"),
		ProjectCode: q.Get("project"),
	}
	items, err := s.register.List(r.Context(), filter)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getHeatMap(w http.ResponseWriter, r *http.Request) {
	hm, err := s.register.HeatMap(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, hm)
}

func (s *Server) getLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.register.LevelHistogram(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, levels)
}

func (s *Server) getStatuses(w http.ResponseWriter, r *http.Request) {
	typ := domain.RecordType(r.URL.Query().Get("type"))
	if typ != domain.TypeRisk && typ != domain.TypeIssue {
		badRequest(w, "type must be risk or issue")
		return
	}
	counts, err := s.register.StatusHistogram(r.Context(), typ)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) getCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := s.register.CategoryHistogram(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) getOverdue(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.register.Overdue(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) getBenchmark(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("projects"))
	var codes []string
	if raw != "" {
		codes = strings.Split(raw, ",")
	}
	result, err := s.register.Benchmark(r.Context(), codes)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Risk CRUD

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	items, err := s.register.List(r.Context(), ports.RegisterFilter{Type: domain.TypeRisk})
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createRisk(w http.ResponseWriter, r *http.Request) {
	var rec domain.RiskRecord
	if err := decodeBody(r, &rec); err != nil {
		badRequest(w, "malformed risk payload: "+err.Error())
		return
	}
	id, err := s.records.CreateRisk(r.Context(), rec)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	s.getDocument(w, r, domain.TypeRisk)
}

func (s *Server) updateRisk(w http.ResponseWriter, r *http.Request) {
	var rec domain.RiskRecord
	if err := decodeBody(r, &rec); err != nil {
		badRequest(w, "malformed risk payload: "+err.Error())
		return
	}
	if err := s.records.UpdateRisk(r.Context(), chi.URLParam(r, "id"), rec); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteRisk(w http.ResponseWriter, r *http.Request) {
	s.deleteDocument(w, r, domain.TypeRisk)
}

// Issue CRUD

func (s *Server) listIssues(w http.ResponseWriter, r *http.Request) {
	items, err := s.register.List(r.Context(), ports.RegisterFilter{Type: domain.TypeIssue})
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createIssue(w http.ResponseWriter, r *http.Request) {
	var rec domain.IssueRecord
	if err := decodeBody(r, &rec); err != nil {
		badRequest(w, "malformed issue payload: "+err.Error())
		return
	}
	id, err := s.records.CreateIssue(r.Context(), rec)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) getIssue(w http.ResponseWriter, r *http.Request) {
	s.getDocument(w, r, domain.TypeIssue)
}

func (s *Server) updateIssue(w http.ResponseWriter, r *http.Request) {
	var rec domain.IssueRecord
	if err := decodeBody(r, &rec); err != nil {
		badRequest(w, "malformed issue payload: "+err.Error())
		return
	}
	if err := s.records.UpdateIssue(r.Context(), chi.URLParam(r, "id"), rec); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteIssue(w http.ResponseWriter, r *http.Request) {
	s.deleteDocument(w, r, domain.TypeIssue)
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request, typ domain.RecordType) {
	doc, err := s.records.Get(r.Context(), typ, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	body := map[string]any{"id": doc.ID}
	for k, v := range doc.Fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request, typ domain.RecordType) {
	if err := s.records.Delete(r.Context(), typ, chi.URLParam(r, "id")); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Products

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.register.Products(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeBody(r, &p); err != nil {
		badRequest(w, "malformed product payload: "+err.Error())
		return
	}
	id, err := s.records.CreateProduct(r.Context(), p)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeBody(r, &p); err != nil {
		badRequest(w, "malformed product payload: "+err.Error())
		return
	}
	if err := s.records.UpdateProduct(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Conversion

func (s *Server) convertRecord(w http.ResponseWriter, r *http.Request) {
	result, err := s.records.Convert(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
