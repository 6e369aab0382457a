package finance

import (
	"fmt"
	"math"
)

// CashFlowSchedule lays out a project's annual flows: CapEx spread evenly
// over the construction years, revenue and OpEx over the operating years.
// Index 0 is the year before construction starts; all slices share length
// constructionYears + projectLife + 1.
type CashFlowSchedule struct {
	Years   []int     `json:"years"`
	CapEx   []float64 `json:"capex"`
	Revenue []float64 `json:"revenue"`
	OpEx    []float64 `json:"opex"`
	Net     []float64 `json:"net"`
}

// BuildCashFlowSchedule builds the standard construction-then-operation
// cash flow layout used for NPV and payback analysis.
func BuildCashFlowSchedule(totalCapEx, annualRevenue, annualOpEx float64, projectLife, constructionYears int) CashFlowSchedule {
	totalYears := constructionYears + projectLife

	s := CashFlowSchedule{
		Years:   make([]int, totalYears+1),
		CapEx:   make([]float64, totalYears+1),
		Revenue: make([]float64, totalYears+1),
		OpEx:    make([]float64, totalYears+1),
		Net:     make([]float64, totalYears+1),
	}
	for i := range s.Years {
		s.Years[i] = i
	}

	// CapEx spread evenly across construction.
	annualCapEx := totalCapEx / float64(constructionYears)
	for year := 1; year <= constructionYears; year++ {
		s.CapEx[year] = -annualCapEx
	}

	// Operations begin the year after construction completes.
	for year := constructionYears + 1; year <= totalYears; year++ {
		s.Revenue[year] = annualRevenue
		s.OpEx[year] = -annualOpEx
	}

	for i := range s.Net {
		s.Net[i] = s.CapEx[i] + s.Revenue[i] + s.OpEx[i]
	}
	return s
}

// PaymentType selects the debt amortization structure.
type PaymentType string

const (
	PaymentEqual        PaymentType = "equal"
	PaymentInterestOnly PaymentType = "interest_only"
)

// DebtServiceSchedule holds a loan's year-by-year balances and payments.
// Index 0 is loan origination.
type DebtServiceSchedule struct {
	Years     []int     `json:"years"`
	Balances  []float64 `json:"balances"`
	Interest  []float64 `json:"interest"`
	Principal []float64 `json:"principal"`
	Total     []float64 `json:"total"`
}

// DebtService computes an annual debt service schedule for the given
// principal, rate and term.
func DebtService(principal, interestRatePct float64, termYears int, paymentType PaymentType) (DebtServiceSchedule, error) {
	rate := interestRatePct / 100

	s := DebtServiceSchedule{Years: make([]int, termYears+1)}
	for i := range s.Years {
		s.Years[i] = i
	}

	switch paymentType {
	case PaymentEqual:
		// Level annuity payment.
		payment := principal * (rate * math.Pow(1+rate, float64(termYears))) / (math.Pow(1+rate, float64(termYears)) - 1)

		s.Balances = []float64{principal}
		s.Interest = []float64{0}
		s.Principal = []float64{0}
		s.Total = []float64{0}

		for year := 1; year <= termYears; year++ {
			interest := s.Balances[year-1] * rate
			principalPayment := payment - interest
			balance := s.Balances[year-1] - principalPayment
			if balance < 0 {
				balance = 0
			}

			s.Balances = append(s.Balances, balance)
			s.Interest = append(s.Interest, interest)
			s.Principal = append(s.Principal, principalPayment)
			s.Total = append(s.Total, payment)
		}

	case PaymentInterestOnly:
		annualInterest := principal * rate

		s.Balances = make([]float64, termYears+1)
		s.Interest = make([]float64, termYears+1)
		s.Principal = make([]float64, termYears+1)
		s.Total = make([]float64, termYears+1)

		for year := 0; year <= termYears; year++ {
			s.Balances[year] = principal
			if year > 0 {
				s.Interest[year] = annualInterest
				s.Total[year] = annualInterest
			}
		}
		// Principal repaid in full at maturity.
		s.Balances[termYears] = 0
		s.Principal[termYears] = principal
		s.Total[termYears] = annualInterest + principal

	default:
		return DebtServiceSchedule{}, fmt.Errorf("unknown payment type: %q", paymentType)
	}

	return s, nil
}
