package config

import (
	"encoding/json"
	"net/http"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/scenario"
	"capex_forecast/pkg/core/sensitivity"
)

type Response struct {
	Engine      capex.Config          `json:"engine"`
	Sensitivity sensitivity.Config    `json:"sensitivity"`
	Scenarios   []scenario.Adjustment `json:"scenarios"`
	Timelines   []int                 `json:"timelines"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Engine      capex.Engine
	Sensitivity sensitivity.Config
	Scenarios   []scenario.Adjustment
	Timelines   []int
}

// NewHandler creates a new config handler
func NewHandler(engine capex.Engine, sens sensitivity.Config, scenarios []scenario.Adjustment, timelines []int) *Handler {
	return &Handler{
		Engine:      engine,
		Sensitivity: sens,
		Scenarios:   scenarios,
		Timelines:   timelines,
	}
}

// HandleConfig echoes the active engine configuration so the UI can show
// which constants a calculation ran with.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Engine:      h.Engine.Config(),
		Sensitivity: h.Sensitivity,
		Scenarios:   h.Scenarios,
		Timelines:   h.Timelines,
	}
	json.NewEncoder(w).Encode(resp)
}
