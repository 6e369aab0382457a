package scenario

import (
	"encoding/json"
	"fmt"
	"net/http"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/scenario"
)

// Handler holds dependencies for scenario endpoints.
type Handler struct {
	Engine    capex.Engine
	Scenarios []scenario.Adjustment
	Timelines []int
}

// NewHandler creates a scenario handler with configured defaults.
func NewHandler(engine capex.Engine, scenarios []scenario.Adjustment, timelines []int) *Handler {
	if len(scenarios) == 0 {
		scenarios = scenario.Defaults()
	}
	if len(timelines) == 0 {
		timelines = scenario.DefaultTimelines()
	}
	return &Handler{Engine: engine, Scenarios: scenarios, Timelines: timelines}
}

type MatrixRequest struct {
	Parameters capex.ProjectParameters `json:"parameters"`
	// Scenarios and Timelines override the configured defaults when given.
	Scenarios []scenario.Adjustment `json:"scenarios,omitempty"`
	Timelines []int                 `json:"timelines,omitempty"`
}

type MatrixResponse struct {
	Rows []scenario.MatrixRow `json:"rows"`
}

// HandleMatrix evaluates every scenario at every timeline for the given
// base parameters.
func (h *Handler) HandleMatrix(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req MatrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := capex.ValidateParameters(req.Parameters); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenarios := req.Scenarios
	if len(scenarios) == 0 {
		scenarios = h.Scenarios
	}
	timelines := req.Timelines
	if len(timelines) == 0 {
		timelines = h.Timelines
	}

	rows := scenario.Matrix(h.Engine, req.Parameters, scenarios, timelines)
	fmt.Printf("[SCENARIO] Matrix: %d scenarios x %d timelines\n", len(scenarios), len(timelines))

	json.NewEncoder(w).Encode(MatrixResponse{Rows: rows})
}
