package service

import "explore-options/domain"

// CalculateSameTenure compares the current EMI with the EMI at the new rate
// over the same remaining tenure.
func CalculateSameTenure(loan domain.LoanState) domain.SameTenureResult {
	monthlySavings := loan.CurrentEMI - loan.NewEMI
	return domain.SameTenureResult{
		NewEMI:              loan.NewEMI,
		MonthlySavings:      monthlySavings,
		TotalInterestSaved:  monthlySavings * float64(loan.Tenure),
		PercentageReduction: monthlySavings / loan.CurrentEMI * 100,
	}
}
