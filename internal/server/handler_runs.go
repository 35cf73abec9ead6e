package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/me/schedsim/internal/sim"
	"github.com/me/schedsim/pkg/model"
)

// createRunRequest is the body for POST /api/v1/runs.
type createRunRequest struct {
	Algorithm model.Algorithm `json:"algorithm"`
	Quantum   int             `json:"quantum"`
	Bursts    []int           `json:"bursts"`
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("invalid JSON body: "+err.Error()))
		return
	}

	if !req.Algorithm.Valid() {
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("algorithm must be 'fcfs' or 'rr'"))
		return
	}
	if req.Algorithm == model.AlgorithmRR && req.Quantum <= 0 {
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("rr requires a positive quantum"))
		return
	}

	run, err := sim.Simulate(sim.Request{
		Algorithm: req.Algorithm,
		Quantum:   req.Quantum,
		Bursts:    req.Bursts,
	})
	if err != nil {
		if errors.Is(err, sim.ErrNoProcesses) {
			respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("bursts must contain at least one value"))
			return
		}
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError(err.Error()))
		return
	}

	if err := s.store.CreateRun(r.Context(), run); err != nil {
		s.logger.Error("create run", "run_id", run.ID, "error", err)
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: "failed to persist run"})
		return
	}

	s.logger.Info("run created", "run_id", run.ID, "algorithm", run.Algorithm,
		"processes", len(run.Processes), "total_time", run.TotalTime)
	respondCreated(w, reqID, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := model.DefaultListOptions()
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Offset = n
		}
	}
	if v := r.URL.Query().Get("algorithm"); v != "" {
		opts.Algorithm = model.Algorithm(v)
	}
	opts.Clamp()

	runs, total, err := s.store.ListRuns(r.Context(), opts)
	if err != nil {
		s.logger.Error("list runs", "error", err)
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: "failed to list runs"})
		return
	}

	pg := &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+len(runs) < total,
	}
	respondList(w, reqID, runs, pg)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: "failed to load run"})
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}
	respondOK(w, reqID, run)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run for delete", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: "failed to load run"})
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}

	if err := s.store.DeleteRun(r.Context(), id); err != nil {
		s.logger.Error("delete run", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError,
			&model.APIError{Code: model.ErrInternal, Message: "failed to delete run"})
		return
	}

	s.logger.Info("run deleted", "run_id", id)
	respondOK(w, reqID, map[string]string{"id": id, "deleted": "true"})
}
