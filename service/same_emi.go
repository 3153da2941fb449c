package service

import (
	"math"

	"explore-options/domain"
)

// CalculateSameEMI keeps paying chosenEMI at the new rate and reports how
// much sooner the loan closes. chosenEMI is not range checked; the slider
// bounds are a presentation concern.
//
// When chosenEMI cannot amortize the loan the new tenure and interest fall
// back to the original loan's, so nothing is reported as saved.
func CalculateSameEMI(loan domain.LoanState, chosenEMI float64) domain.SameEMIResult {
	original := loan.Tenure

	newTenure, ok := TenureFromEMI(loan.Principal, loan.NewRate, chosenEMI)
	if !ok {
		newTenure = original
	}

	monthsSaved := max(0, original-newTenure)
	originalInterest := TotalInterest(loan.Principal, loan.CurrentEMI, original)
	newInterest := originalInterest
	if ok {
		newInterest = TotalInterest(loan.Principal, chosenEMI, newTenure)
	}

	return domain.SameEMIResult{
		ChosenEMI:        chosenEMI,
		OriginalTenure:   original,
		NewTenure:        newTenure,
		MonthsSaved:      monthsSaved,
		PercentFaster:    int(math.Round(float64(monthsSaved) / float64(original) * 100)),
		OriginalInterest: originalInterest,
		NewInterest:      newInterest,
		InterestSaved:    math.Max(0, math.Round(originalInterest-newInterest)),
		Fallback:         !ok,
	}
}
