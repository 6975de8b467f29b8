package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/njchilds90/polysolve"
)

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Equation string `json:"equation"`
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	var req polysolve.ToolRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	resp := polysolve.HandleToolCall(req)
	if resp.Error != "" {
		s.logger.InfoContext(r.Context(), "tool call failed",
			"request_id", RequestID(r.Context()), "tool", req.Tool, "error", resp.Error)
	} else {
		s.logger.DebugContext(r.Context(), "tool call",
			"request_id", RequestID(r.Context()), "tool", req.Tool)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := polysolve.Solve(req.Equation)
	if err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	s.logger.DebugContext(r.Context(), "solved",
		"request_id", RequestID(r.Context()),
		"equation", req.Equation,
		"case", res.Solution.Case.String())
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	spec, err := polysolve.ToolSpec()
	if err != nil {
		s.logger.ErrorContext(r.Context(), "tool spec failed",
			"request_id", RequestID(r.Context()), "error", err)
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprint(w, spec)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// decode reads a single JSON value from a size-capped body, rejecting
// unknown fields and trailing data.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON: trailing data")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error(), RequestID: RequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
