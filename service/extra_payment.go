package service

import (
	"math"

	"explore-options/domain"
)

// ExtraPaymentInput holds the controls of the extra-payment scenario.
type ExtraPaymentInput struct {
	Amount    float64
	Frequency domain.Frequency
	Mode      domain.ComparisonMode
}

// CalculateExtraPayment measures what an extra payment saves against the
// baseline chosen by in.Mode.
//
// refinancingSavings is the interest saved by moving from the original loan
// to the refinanced one. It is added to the extra-payment savings in
// refinanced mode, including when the extra amount is zero, and ignored in
// original mode.
func CalculateExtraPayment(loan domain.LoanState, in ExtraPaymentInput, refinancingSavings float64) domain.ExtraPaymentResult {
	mode := in.Mode
	if mode != domain.CompareOriginal {
		mode = domain.CompareRefinanced
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = domain.Monthly
	}

	baseRate, baseEMI := loan.NewRate, loan.NewEMI
	if mode == domain.CompareOriginal {
		baseRate, baseEMI = loan.CurrentRate, loan.CurrentEMI
	}

	factor := frequency.Factor()
	effectiveMonthly := in.Amount * factor

	baseTenure, ok := TenureFromEMI(loan.Principal, baseRate, baseEMI)
	if !ok {
		baseTenure = loan.Tenure
	}
	newTenure, ok := TenureWithExtraPayment(loan.Principal, baseRate, baseEMI, in.Amount, factor)
	if !ok {
		newTenure = baseTenure
	}

	baseInterest := interestPaid(loan.Principal, baseRate, baseEMI, baseTenure)
	newInterest := interestPaid(loan.Principal, baseRate, baseEMI+effectiveMonthly, newTenure)
	extraSavings := math.Max(0, baseInterest-newInterest)

	res := domain.ExtraPaymentResult{
		ExtraAmount:         in.Amount,
		Frequency:           frequency,
		EffectiveMonthly:    effectiveMonthly,
		ComparisonMode:      mode,
		BaseRate:            baseRate,
		BaseEMI:             baseEMI,
		BaseTenure:          baseTenure,
		NewTenure:           newTenure,
		MonthsSaved:         max(0, baseTenure-newTenure),
		BaselineInterest:    math.Round(baseInterest),
		NewInterest:         math.Round(newInterest),
		ExtraPaymentSavings: math.Round(extraSavings),
	}

	total := extraSavings
	if mode == domain.CompareRefinanced {
		res.RefinancingSavings = math.Round(math.Max(0, refinancingSavings))
		total += math.Max(0, refinancingSavings)
	}
	res.InterestSaved = math.Round(total)
	return res
}

// RefinancingSavings is the interest saved by moving from the original loan
// to the refinanced one with no extra payment, each closing at the tenure
// its own EMI needs. It is never negative.
func RefinancingSavings(loan domain.LoanState) float64 {
	original := baselineInterest(loan, loan.CurrentRate, loan.CurrentEMI)
	refinanced := baselineInterest(loan, loan.NewRate, loan.NewEMI)
	return math.Max(0, original-refinanced)
}

func baselineInterest(loan domain.LoanState, rate, emi float64) float64 {
	tenure, ok := TenureFromEMI(loan.Principal, rate, emi)
	if !ok {
		tenure = loan.Tenure
	}
	return interestPaid(loan.Principal, rate, emi, tenure)
}

// interestPaid prefers the schedule-exact interest and falls back to the
// flat EMI × tenure figure when the payment does not amortize.
func interestPaid(principal, rate, payment float64, tenure int) float64 {
	if interest, ok := AmortizedInterest(principal, rate, payment); ok {
		return interest
	}
	return TotalInterest(principal, payment, tenure)
}
