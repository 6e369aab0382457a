package sensitivity

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/sensitivity"
)

func validParams() capex.ProjectParameters {
	return capex.ProjectParameters{
		CapacityMW:         100,
		EquipmentCostPerMW: 1_000_000,
		LaborCostPerMW:     200_000,
		PermittingCost:     500_000,
		InterestRatePct:    5,
		InflationRatePct:   2,
		TimelineYears:      5,
		DelayMonths:        6,
		ConstructionMonths: 18,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleTornado(t *testing.T) {
	InitHandler(capex.NewEngine(capex.DefaultConfig()), 0.20)

	rec := postJSON(t, HandleTornado, TornadoRequest{Parameters: validParams()})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp TornadoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID == "" {
		t.Error("response missing run ID")
	}
	if resp.Baseline <= 0 {
		t.Errorf("baseline should be positive, got %f", resp.Baseline)
	}
	if len(resp.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(resp.Results))
	}
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].Impact > resp.Results[i-1].Impact {
			t.Error("results not sorted by impact descending")
		}
	}
}

func TestHandleTornadoUnknownParameter(t *testing.T) {
	InitHandler(capex.NewEngine(capex.DefaultConfig()), 0.20)

	rec := postJSON(t, HandleTornado, TornadoRequest{
		Parameters:    validParams(),
		Perturbations: []sensitivity.Perturbation{{Parameter: "tax_rate", Range: 0.10}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown parameter, got %d", rec.Code)
	}
}

func TestHandleTornadoInvalidParameters(t *testing.T) {
	InitHandler(capex.NewEngine(capex.DefaultConfig()), 0.20)

	bad := validParams()
	bad.CapacityMW = 0
	rec := postJSON(t, HandleTornado, TornadoRequest{Parameters: bad})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero capacity, got %d", rec.Code)
	}
}

func TestHandleBreakEven(t *testing.T) {
	e := capex.NewEngine(capex.DefaultConfig())
	InitHandler(e, 0.20)

	// Target the total at 1.5x equipment cost; the handler should recover
	// the scaled value.
	scaled := validParams()
	scaled.EquipmentCostPerMW = 1_500_000
	target := e.TotalCapEx(scaled)

	rec := postJSON(t, HandleBreakEven, BreakEvenRequest{
		Parameters:  validParams(),
		Parameter:   sensitivity.ParamEquipmentCostPerMW,
		TargetTotal: target,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp BreakEvenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Value < 1_499_000 || resp.Value > 1_501_000 {
		t.Errorf("break-even value expected ~1500000, got %f", resp.Value)
	}
}
