package service

import (
	"math"
)

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (12 * 100)
}

// EMI returns the equated monthly installment, rounded to a whole currency
// unit, that repays principal over tenureMonths at the given annual rate.
// A zero rate amortizes linearly.
func EMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	if tenureMonths <= 0 {
		return 0
	}
	n := float64(tenureMonths)
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return math.Round(principal / n)
	}
	growth := math.Pow(1+r, n)
	return math.Round(principal * r * growth / (growth - 1))
}

// TenureFromEMI returns the number of months a payment of emi needs to
// repay principal. ok is false when the payment never amortizes the loan
// (it does not cover the first month's interest) or the result is not
// finite; months is 0 in that case.
//
// EMIs are whole currency units, so at a positive rate a payment that is
// within rounding of the installment for one month less counts as that
// installment. A zero rate needs ceil(principal/emi) months.
func TenureFromEMI(principal, annualRatePercent, emi float64) (months int, ok bool) {
	if emi <= 0 || principal <= 0 || math.IsNaN(emi) || math.IsInf(emi, 0) {
		return 0, false
	}
	r := monthlyRate(annualRatePercent)

	var n float64
	if r == 0 {
		n = principal / emi
	} else {
		ratio := principal * r / emi
		if ratio >= 1 {
			return 0, false
		}
		n = -math.Log(1-ratio) / math.Log(1+r)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}

	months = int(math.Ceil(n))
	if r > 0 && months > 1 && EMI(principal, annualRatePercent, months-1) <= emi {
		months--
	}
	return months, true
}

// TenureWithExtraPayment is TenureFromEMI for a payment of emi plus an
// extra amount spread over the month by frequencyFactor.
func TenureWithExtraPayment(principal, annualRatePercent, emi, extraPayment, frequencyFactor float64) (int, bool) {
	return TenureFromEMI(principal, annualRatePercent, emi+extraPayment*frequencyFactor)
}

// TotalInterest is everything paid over the tenure minus the principal.
// It is not clamped: a negative value means the inputs do not describe a
// real loan.
func TotalInterest(principal, emi float64, tenureMonths int) float64 {
	return emi*float64(tenureMonths) - principal
}

// AmortizedInterest returns the interest actually paid when principal is
// repaid with a constant monthly payment and the last installment only
// clears the outstanding balance. Unlike TotalInterest it is strictly
// decreasing in payment.
func AmortizedInterest(principal, annualRatePercent, payment float64) (float64, bool) {
	if _, ok := TenureFromEMI(principal, annualRatePercent, payment); !ok {
		return 0, false
	}
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return 0, true
	}

	n := -math.Log(1-principal*r/payment) / math.Log(1+r)
	full := math.Floor(n)
	growth := math.Pow(1+r, full)
	balance := principal*growth - payment*(growth-1)/r

	paid := payment * full
	if balance > 0 {
		paid += balance * (1 + r)
	}
	return paid - principal, true
}
