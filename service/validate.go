package service

import (
	"errors"
	"fmt"
	"math"

	"explore-options/domain"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateLoanState(s domain.LoanState) error {
	if !finite(s.Principal) || s.Principal <= 0 {
		return errors.New("invalid principal")
	}
	if s.Principal > MaxLoanAmount {
		return fmt.Errorf("principal exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if !finite(s.CurrentRate) || s.CurrentRate < 0 {
		return errors.New("invalid current rate")
	}
	if !finite(s.NewRate) || s.NewRate < 0 {
		return errors.New("invalid new rate")
	}
	if s.CurrentRate > MaxInterestRate || s.NewRate > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if !finite(s.CurrentEMI) || s.CurrentEMI <= 0 {
		return errors.New("invalid current EMI")
	}
	if !finite(s.NewEMI) || s.NewEMI < 0 {
		return errors.New("invalid new EMI")
	}
	if s.Tenure < MinTermMonths {
		return errors.New("invalid tenure")
	}
	if s.Tenure > MaxTermMonths {
		return fmt.Errorf("tenure exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

// normalizeLoanState fills in the derived new EMI unless the caller
// supplied one.
func normalizeLoanState(s domain.LoanState) domain.LoanState {
	if !s.NewEMISupplied {
		s.NewEMI = EMI(s.Principal, s.NewRate, s.Tenure)
	}
	return s
}
