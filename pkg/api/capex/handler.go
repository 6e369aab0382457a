package capex

import (
	"encoding/json"
	"fmt"
	"net/http"

	"capex_forecast/pkg/core/capex"
)

var engine capex.Engine

// InitHandler wires the capex endpoints to a cost engine.
func InitHandler(e capex.Engine) {
	engine = e
}

// HandleBreakdown computes the full cost breakdown for a parameter set.
func HandleBreakdown(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var params capex.ProjectParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Preconditions are enforced here; the engine itself does no checking.
	if err := capex.ValidateParameters(params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bd := engine.Breakdown(params)
	fmt.Printf("[CAPEX] Breakdown: %.1f MW, %d-year timeline -> total %.0f\n",
		params.CapacityMW, params.TimelineYears, bd.Total)

	json.NewEncoder(w).Encode(bd)
}

type LCOERequest struct {
	TotalCapEx      float64 `json:"total_capex"`
	CapacityMW      float64 `json:"capacity_mw"`
	CapacityFactor  float64 `json:"capacity_factor"`
	LifetimeYears   int     `json:"lifetime_years"`
	DiscountRatePct float64 `json:"discount_rate_pct"`
}

type LCOEResponse struct {
	LCOE float64 `json:"lcoe"`
}

// HandleLCOE computes levelized cost of energy for an already-computed
// total CapEx. A degenerate denominator comes back as LCOE 0, not an
// error.
func HandleLCOE(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req LCOERequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lcoe := engine.LevelizedCost(req.TotalCapEx, req.CapacityMW, req.CapacityFactor, req.LifetimeYears, req.DiscountRatePct)
	fmt.Printf("[CAPEX] LCOE: %.2f $/MWh (%.1f MW, CF %.2f, %d years)\n",
		lcoe, req.CapacityMW, req.CapacityFactor, req.LifetimeYears)

	json.NewEncoder(w).Encode(LCOEResponse{LCOE: lcoe})
}
