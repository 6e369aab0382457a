package finance

import (
	"math"
	"testing"
)

func TestBuildCashFlowSchedule(t *testing.T) {
	// 100 CapEx over 2 construction years, then 3 operating years at
	// 30 revenue / 10 OpEx.
	s := BuildCashFlowSchedule(100, 30, 10, 3, 2)

	if len(s.Years) != 6 {
		t.Fatalf("expected 6 periods (0..5), got %d", len(s.Years))
	}

	// Construction: -50 per year in years 1-2, no operations.
	for year := 1; year <= 2; year++ {
		if math.Abs(s.CapEx[year]+50) > 1e-9 {
			t.Errorf("year %d CapEx expected -50, got %f", year, s.CapEx[year])
		}
		if s.Revenue[year] != 0 || s.OpEx[year] != 0 {
			t.Errorf("year %d should have no operations", year)
		}
	}

	// Operations: years 3-5.
	for year := 3; year <= 5; year++ {
		if s.Revenue[year] != 30 || s.OpEx[year] != -10 {
			t.Errorf("year %d expected revenue 30 / opex -10, got %f / %f",
				year, s.Revenue[year], s.OpEx[year])
		}
		if math.Abs(s.Net[year]-20) > 1e-9 {
			t.Errorf("year %d net expected 20, got %f", year, s.Net[year])
		}
	}

	if s.Net[0] != 0 {
		t.Errorf("period 0 should be empty, got net %f", s.Net[0])
	}
}

func TestDebtServiceEqualPayment(t *testing.T) {
	// 1000 at 5% over 2 years:
	// payment = 1000 * (0.05 * 1.05^2) / (1.05^2 - 1) = 537.804878
	s, err := DebtService(1000, 5, 2, PaymentEqual)
	if err != nil {
		t.Fatalf("DebtService failed: %v", err)
	}

	payment := 1000 * (0.05 * math.Pow(1.05, 2)) / (math.Pow(1.05, 2) - 1)
	if math.Abs(s.Total[1]-payment) > 1e-9 || math.Abs(s.Total[2]-payment) > 1e-9 {
		t.Errorf("payments expected %f, got %f and %f", payment, s.Total[1], s.Total[2])
	}

	// Year 1 interest is on the full principal.
	if math.Abs(s.Interest[1]-50) > 1e-9 {
		t.Errorf("year 1 interest expected 50, got %f", s.Interest[1])
	}

	// Loan fully amortizes.
	if s.Balances[2] > 1e-6 {
		t.Errorf("final balance should be 0, got %f", s.Balances[2])
	}

	// Principal portions sum to the original loan.
	if math.Abs(s.Principal[1]+s.Principal[2]-1000) > 1e-6 {
		t.Errorf("principal payments should sum to 1000, got %f", s.Principal[1]+s.Principal[2])
	}
}

func TestDebtServiceInterestOnly(t *testing.T) {
	s, err := DebtService(1000, 5, 3, PaymentInterestOnly)
	if err != nil {
		t.Fatalf("DebtService failed: %v", err)
	}

	for year := 1; year <= 2; year++ {
		if math.Abs(s.Interest[year]-50) > 1e-9 {
			t.Errorf("year %d interest expected 50, got %f", year, s.Interest[year])
		}
		if s.Balances[year] != 1000 {
			t.Errorf("year %d balance should stay at 1000, got %f", year, s.Balances[year])
		}
	}

	// Balloon at maturity: interest plus full principal.
	if math.Abs(s.Total[3]-1050) > 1e-9 {
		t.Errorf("final payment expected 1050, got %f", s.Total[3])
	}
	if s.Balances[3] != 0 {
		t.Errorf("final balance should be 0, got %f", s.Balances[3])
	}
}

func TestDebtServiceUnknownType(t *testing.T) {
	if _, err := DebtService(1000, 5, 2, "bullet"); err == nil {
		t.Error("expected error for unknown payment type")
	}
}

func TestDepreciation(t *testing.T) {
	// Straight line: 100 over 4 years.
	schedule, err := Depreciation(100, StraightLine, 4)
	if err != nil {
		t.Fatalf("Depreciation failed: %v", err)
	}
	if len(schedule) != 4 || schedule[0] != 25 {
		t.Errorf("expected 4x25, got %v", schedule)
	}

	// MACRS 5-year table sums to the full asset cost.
	schedule, err = Depreciation(100, MACRS, 5)
	if err != nil {
		t.Fatalf("Depreciation failed: %v", err)
	}
	sum := 0.0
	for _, d := range schedule {
		sum += d
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("MACRS schedule should sum to 100, got %f", sum)
	}

	// No MACRS table for 4 years: falls back to straight line.
	schedule, err = Depreciation(100, MACRS, 4)
	if err != nil {
		t.Fatalf("Depreciation failed: %v", err)
	}
	if len(schedule) != 4 || schedule[0] != 25 {
		t.Errorf("expected straight-line fallback, got %v", schedule)
	}

	if _, err := Depreciation(100, "double_declining", 5); err == nil {
		t.Error("expected error for unknown method")
	}
}
