package sensitivity

import (
	"errors"
	"math"
	"testing"

	"capex_forecast/pkg/core/capex"
)

func TestBreakEvenRecoversKnownMultiplier(t *testing.T) {
	e := capex.NewEngine(capex.DefaultConfig())
	a := NewAnalyzer(e, testBase())

	// Target: the total when equipment cost is at 1.5x baseline. The
	// bisection should land back on ~$1.5M/MW.
	scaled := testBase()
	scaled.EquipmentCostPerMW = 1_500_000
	target := e.TotalCapEx(scaled)

	value, err := a.BreakEven(ParamEquipmentCostPerMW, target)
	if err != nil {
		t.Fatalf("BreakEven failed: %v", err)
	}

	// The search stops once total is within $1000 of the target; with
	// d(total)/d(cost_per_mw) on the order of 10^2 per unit, the recovered
	// value sits well within $100 of the true one.
	if math.Abs(value-1_500_000) > 100 {
		t.Errorf("break-even value expected ~1500000, got %f", value)
	}
}

func TestBreakEvenUnknownParameter(t *testing.T) {
	a := NewAnalyzer(capex.NewEngine(capex.DefaultConfig()), testBase())

	_, err := a.BreakEven("discount_rate", 200_000_000)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}
}
