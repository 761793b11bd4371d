package httpadapter

import "net/http"

type textRequest struct {
	Text string `json:"text"`
}

type mitigationsRequest struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

type askRequest struct {
	Question string `json:"question"`
	Dataset  string `json:"dataset,omitempty"`
}

func (s *Server) assistRephrase(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil || req.Text == "" {
		badRequest(w, "text is required")
		return
	}
	out, err := s.assist.Rephrase(r.Context(), req.Text)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": out})
}

func (s *Server) assistTitle(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil || req.Text == "" {
		badRequest(w, "text is required")
		return
	}
	out, err := s.assist.SuggestTitle(r.Context(), req.Text)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"title": out})
}

func (s *Server) assistCategory(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil || req.Text == "" {
		badRequest(w, "text is required")
		return
	}
	sugg, err := s.assist.SuggestCategory(r.Context(), req.Text)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sugg)
}

func (s *Server) assistMitigations(w http.ResponseWriter, r *http.Request) {
	var req mitigationsRequest
	if err := decodeBody(r, &req); err != nil || req.Text == "" {
		badRequest(w, "text is required")
		return
	}
	actions, err := s.assist.SuggestMitigations(r.Context(), req.Text, req.Context)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"mitigations": actions})
}

func (s *Server) assistSimilar(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil || req.Text == "" {
		badRequest(w, "text is required")
		return
	}
	result, err := s.assist.FindSimilar(r.Context(), req.Text)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) assistAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(r, &req); err != nil || req.Question == "" {
		badRequest(w, "question is required")
		return
	}
	answer, err := s.assist.AnswerQuestion(r.Context(), req.Question, req.Dataset)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
