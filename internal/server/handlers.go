package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ChicagoDave/homeplanner/pkg/analytics"
	"github.com/ChicagoDave/homeplanner/pkg/cost"
	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/plan"
	"github.com/ChicagoDave/homeplanner/pkg/scene"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
	"github.com/ChicagoDave/homeplanner/pkg/suggest"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// planResponse is the envelope for a generated plan. GeneratedAt lives
// here, not in the scene, so scene output stays deterministic.
type planResponse struct {
	PlanID      string             `json:"plan_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Scene       *scene.Scene       `json:"scene"`
	Validation  *validation.Report `json:"validation"`
	Metrics     *analytics.Metrics `json:"metrics"`
	Cost        *cost.Report       `json:"cost"`
}

type errorResponse struct {
	Error      string             `json:"error"`
	Validation *validation.Report `json:"validation,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	sp, ok := decodeSpec(w, r)
	if !ok {
		return
	}

	sc, report, err := plan.Generate(sp)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidSpec) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:      err.Error(),
				Validation: report,
			})
			return
		}
		s.log.Error("plan generation failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "plan generation failed"})
		return
	}

	fp := footprint.Solve(sp.Area)
	zones, _, _ := layout.Partition(fp, sp)
	metrics, metricsReport := analytics.Resolve(sp, fp, zones)
	report.Merge(metricsReport)

	doors := len(sc.Groups.Types[scene.PrimitiveDoor])
	windows := len(sc.Groups.Types[scene.PrimitiveWindow])

	writeJSON(w, http.StatusOK, planResponse{
		PlanID:      uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Scene:       sc,
		Validation:  report,
		Metrics:     metrics,
		Cost:        cost.Estimate(sp, metrics, doors, windows),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sp, ok := decodeSpec(w, r)
	if !ok {
		return
	}

	sc, report, err := plan.Generate(sp)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidSpec) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:      err.Error(),
				Validation: report,
			})
			return
		}
		s.log.Error("plan generation failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "plan generation failed"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := s.renderer.Render(sc, w); err != nil {
		s.log.Error("render failed", "err", err)
	}
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	topic, err := suggest.ParseTopic(chi.URLParam(r, "topic"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	sp, ok := decodeSpec(w, r)
	if !ok {
		return
	}
	if report := validation.ValidateSchema(sp); !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      "specification failed validation",
			Validation: report,
		})
		return
	}

	prompt, err := suggest.BuildPrompt(topic, sp)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	text, err := s.suggest.Generate(r.Context(), prompt)
	if err != nil {
		s.log.Error("suggestion request failed", "topic", topic, "err", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "suggestion backend unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"topic":      string(topic),
		"suggestion": text,
	})
}

func decodeSpec(w http.ResponseWriter, r *http.Request) (*spec.Specification, bool) {
	var sp spec.Specification
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed specification: " + err.Error()})
		return nil, false
	}
	return &sp, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
