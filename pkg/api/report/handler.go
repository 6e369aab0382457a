package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/report"
	"capex_forecast/pkg/core/scenario"
	"capex_forecast/pkg/core/sensitivity"
)

// Handler holds dependencies for report endpoints.
type Handler struct {
	Engine    capex.Engine
	Scenarios []scenario.Adjustment
	Timelines []int
	Range     float64
}

// NewHandler creates a report handler with configured defaults.
func NewHandler(engine capex.Engine, scenarios []scenario.Adjustment, timelines []int, rng float64) *Handler {
	if len(scenarios) == 0 {
		scenarios = scenario.Defaults()
	}
	if len(timelines) == 0 {
		timelines = scenario.DefaultTimelines()
	}
	if rng <= 0 {
		rng = 0.20
	}
	return &Handler{Engine: engine, Scenarios: scenarios, Timelines: timelines, Range: rng}
}

type SummaryRequest struct {
	Meta       report.ProjectMeta      `json:"meta"`
	Parameters capex.ProjectParameters `json:"parameters"`
	Range      float64                 `json:"range,omitempty"`
	HTML       bool                    `json:"html,omitempty"`
}

type SummaryResponse struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Markdown    string    `json:"markdown"`
	HTML        string    `json:"html,omitempty"`
}

// HandleSummary runs the full analysis (breakdown, scenario matrix,
// tornado) and returns the assembled report.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := capex.ValidateParameters(req.Parameters); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rng := req.Range
	if rng <= 0 {
		rng = h.Range
	}

	// 1. Base case breakdown
	breakdown := h.Engine.Breakdown(req.Parameters)

	// 2. Scenario matrix
	rows := scenario.Matrix(h.Engine, req.Parameters, h.Scenarios, h.Timelines)

	// 3. Sensitivity ranking
	analyzer := sensitivity.NewAnalyzer(h.Engine, req.Parameters)
	results, err := analyzer.Run(sensitivity.DefaultPerturbations(rng))
	if err != nil {
		if errors.Is(err, sensitivity.ErrUnknownParameter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// 4. Assemble
	summary := report.Build(req.Meta, breakdown, rows, results)
	resp := SummaryResponse{
		ID:          summary.ID,
		GeneratedAt: summary.GeneratedAt,
		Markdown:    summary.Markdown,
	}
	if req.HTML {
		html, err := report.RenderHTML(summary.Markdown)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.HTML = html
	}

	fmt.Printf("[REPORT] Generated summary %s for %q\n", summary.ID, req.Meta.Name)
	json.NewEncoder(w).Encode(resp)
}
