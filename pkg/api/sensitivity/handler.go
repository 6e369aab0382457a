package sensitivity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/sensitivity"
)

var (
	engine       capex.Engine
	defaultRange float64
)

// InitHandler wires the sensitivity endpoints to an engine and the
// configured default perturbation range.
func InitHandler(e capex.Engine, rng float64) {
	engine = e
	defaultRange = rng
	if defaultRange <= 0 {
		defaultRange = 0.20
	}
}

type TornadoRequest struct {
	Parameters capex.ProjectParameters `json:"parameters"`
	// Range overrides the configured default when positive.
	Range float64 `json:"range,omitempty"`
	// Perturbations replaces the default parameter set entirely when given,
	// allowing per-parameter ranges.
	Perturbations []sensitivity.Perturbation `json:"perturbations,omitempty"`
}

type TornadoResponse struct {
	RunID    string               `json:"run_id"`
	Baseline float64              `json:"baseline"`
	Results  []sensitivity.Result `json:"results"`
}

// HandleTornado runs one-factor-at-a-time sensitivity over the baseline
// and returns results ranked by impact.
func HandleTornado(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req TornadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := capex.ValidateParameters(req.Parameters); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	perturbations := req.Perturbations
	if len(perturbations) == 0 {
		rng := req.Range
		if rng <= 0 {
			rng = defaultRange
		}
		perturbations = sensitivity.DefaultPerturbations(rng)
	}

	analyzer := sensitivity.NewAnalyzer(engine, req.Parameters)
	results, err := analyzer.Run(perturbations)
	if err != nil {
		// An unknown parameter name is a caller error, not a server fault.
		if errors.Is(err, sensitivity.ErrUnknownParameter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	runID := uuid.New().String()
	fmt.Printf("[SENSITIVITY] Run %s: %d parameters, top driver %s\n",
		runID, len(results), topParameter(results))

	json.NewEncoder(w).Encode(TornadoResponse{
		RunID:    runID,
		Baseline: analyzer.BaselineTotal(),
		Results:  results,
	})
}

type BreakEvenRequest struct {
	Parameters  capex.ProjectParameters `json:"parameters"`
	Parameter   string                  `json:"parameter"`
	TargetTotal float64                 `json:"target_total"`
}

type BreakEvenResponse struct {
	Parameter string  `json:"parameter"`
	Value     float64 `json:"value"`
}

// HandleBreakEven finds the single-parameter value at which total CapEx
// meets a target.
func HandleBreakEven(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req BreakEvenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := capex.ValidateParameters(req.Parameters); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	analyzer := sensitivity.NewAnalyzer(engine, req.Parameters)
	value, err := analyzer.BreakEven(req.Parameter, req.TargetTotal)
	if err != nil {
		if errors.Is(err, sensitivity.ErrUnknownParameter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[SENSITIVITY] Break-even %s = %.2f for target %.0f\n",
		req.Parameter, value, req.TargetTotal)

	json.NewEncoder(w).Encode(BreakEvenResponse{Parameter: req.Parameter, Value: value})
}

func topParameter(results []sensitivity.Result) string {
	if len(results) == 0 {
		return "none"
	}
	return results[0].Parameter
}
