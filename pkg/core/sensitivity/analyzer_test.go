package sensitivity

import (
	"errors"
	"math"
	"testing"

	"capex_forecast/pkg/core/capex"
)

func testBase() capex.ProjectParameters {
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

func TestRunOrdering(t *testing.T) {
	a := NewAnalyzer(capex.NewEngine(capex.DefaultConfig()), testBase())

	results, err := a.Run(DefaultPerturbations(0.20))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	for i := 1; i < len(results); i++ {
		if results[i].Impact > results[i-1].Impact {
			t.Errorf("results not sorted by impact desc: %s (%f) after %s (%f)",
				results[i].Parameter, results[i].Impact,
				results[i-1].Parameter, results[i-1].Impact)
		}
	}

	// Equipment cost dominates this project: it is ~80% of the principal.
	if results[0].Parameter != ParamEquipmentCostPerMW {
		t.Errorf("expected equipment cost to rank first, got %s", results[0].Parameter)
	}
}

func TestRunImpactDefinition(t *testing.T) {
	e := capex.NewEngine(capex.DefaultConfig())
	a := NewAnalyzer(e, testBase())

	results, err := a.Run([]Perturbation{{Parameter: ParamEquipmentCostPerMW, Range: 0.10}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	r := results[0]

	if math.Abs(r.LowValue-900_000) > 1e-9 || math.Abs(r.HighValue-1_100_000) > 1e-9 {
		t.Errorf("perturbed bounds expected 900000/1100000, got %f/%f", r.LowValue, r.HighValue)
	}

	low := testBase()
	low.EquipmentCostPerMW = 900_000
	high := testBase()
	high.EquipmentCostPerMW = 1_100_000
	wantImpact := math.Abs(e.TotalCapEx(high) - e.TotalCapEx(low))

	if math.Abs(r.Impact-wantImpact) > 1e-6 {
		t.Errorf("impact expected %f, got %f", wantImpact, r.Impact)
	}
	if math.Abs(r.LowTotal-e.TotalCapEx(low)) > 1e-6 {
		t.Errorf("low total expected %f, got %f", e.TotalCapEx(low), r.LowTotal)
	}
}

func TestRunStableTies(t *testing.T) {
	// A baseline with zero permitting cost and zero delay makes both
	// perturbations no-ops: identical zero impacts must keep declaration
	// order.
	base := testBase()
	base.PermittingCost = 0
	base.DelayMonths = 0
	a := NewAnalyzer(capex.NewEngine(capex.DefaultConfig()), base)

	results, err := a.Run([]Perturbation{
		{Parameter: ParamDelayMonths, Range: 0.20},
		{Parameter: ParamPermittingCost, Range: 0.20},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results[0].Impact != 0 || results[1].Impact != 0 {
		t.Fatalf("expected zero impacts, got %f and %f", results[0].Impact, results[1].Impact)
	}
	if results[0].Parameter != ParamDelayMonths || results[1].Parameter != ParamPermittingCost {
		t.Errorf("tie order not preserved: got %s, %s", results[0].Parameter, results[1].Parameter)
	}
}

func TestRunIntegerParameterRounding(t *testing.T) {
	a := NewAnalyzer(capex.NewEngine(capex.DefaultConfig()), testBase())

	// delay_months = 6 at ±25% -> 4.5 and 7.5, rounded half away from zero.
	results, err := a.Run([]Perturbation{{Parameter: ParamDelayMonths, Range: 0.25}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if results[0].LowValue != 5 || results[0].HighValue != 8 {
		t.Errorf("expected rounded bounds 5/8, got %f/%f", results[0].LowValue, results[0].HighValue)
	}
}

func TestRunUnknownParameter(t *testing.T) {
	a := NewAnalyzer(capex.NewEngine(capex.DefaultConfig()), testBase())

	_, err := a.Run([]Perturbation{{Parameter: "tax_rate", Range: 0.10}})
	if err == nil {
		t.Fatal("expected error for unknown parameter")
	}
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}
}

func TestParameterImpact(t *testing.T) {
	e := capex.NewEngine(capex.DefaultConfig())
	a := NewAnalyzer(e, testBase())

	newTotal, delta, err := a.ParameterImpact(ParamEquipmentCostPerMW, 0.10)
	if err != nil {
		t.Fatalf("ParameterImpact failed: %v", err)
	}

	bumped := testBase()
	bumped.EquipmentCostPerMW = 1_100_000
	want := e.TotalCapEx(bumped)
	if math.Abs(newTotal-want) > 1e-6 {
		t.Errorf("new total expected %f, got %f", want, newTotal)
	}
	if math.Abs(delta-(want-a.BaselineTotal())) > 1e-6 {
		t.Errorf("delta expected %f, got %f", want-a.BaselineTotal(), delta)
	}
	if delta <= 0 {
		t.Error("raising equipment cost should raise total CapEx")
	}
}
