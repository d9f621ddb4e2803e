// Package mortgage implements the standalone affordability calculator.
// It is a pure function over its inputs and does not depend on the
// listings dataset.
package mortgage

import (
	"errors"
	"math"
)

// Informational outcomes. These describe inputs the calculation cannot
// proceed from; they are messages for the user, not service failures.
var (
	ErrLoanZero   = errors.New("loan amount is zero; increase the price or decrease the down payment")
	ErrRateZero   = errors.New("interest rate must be greater than zero")
	ErrBudgetZero = errors.New("monthly budget must be greater than zero")
)

// Quote is a payoff estimate for a given property price and budget.
type Quote struct {
	LoanAmount  float64 `json:"loan_amount"`
	DownPayment float64 `json:"down_payment"`
	Months      float64 `json:"months"`
	Years       float64 `json:"years"`
	TotalPaid   float64 `json:"total_paid"`
	// Approximate is set when the budget does not cover the interest-only
	// payment and the estimate falls back to an interest-free linear payoff.
	Approximate bool `json:"approximate"`
}

// Calculate estimates how long paying monthlyBudget takes to clear the loan
// on a property. downPct and annualRatePct are percentages (30 means 30%).
// TotalPaid includes the down payment.
func Calculate(price, downPct, annualRatePct, monthlyBudget float64) (*Quote, error) {
	downPayment := price * downPct / 100
	loan := price - downPayment
	if loan <= 0 {
		return nil, ErrLoanZero
	}

	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate <= 0 {
		return nil, ErrRateZero
	}
	if monthlyBudget <= 0 {
		return nil, ErrBudgetZero
	}

	minPayment := loan * monthlyRate
	if monthlyBudget > minPayment {
		months := -math.Log(1-loan*monthlyRate/monthlyBudget) / math.Log(1+monthlyRate)
		return &Quote{
			LoanAmount:  loan,
			DownPayment: downPayment,
			Months:      months,
			Years:       months / 12,
			TotalPaid:   monthlyBudget*months + downPayment,
		}, nil
	}

	// Budget below the interest-only threshold: a real amortization never
	// terminates, so report an interest-free linear estimate instead.
	months := loan / monthlyBudget
	return &Quote{
		LoanAmount:  loan,
		DownPayment: downPayment,
		Months:      months,
		Years:       months / 12,
		TotalPaid:   monthlyBudget*months + downPayment,
		Approximate: true,
	}, nil
}
