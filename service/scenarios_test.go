package service

import (
	"math"
	"testing"

	"explore-options/domain"
)

func defaultLoan() domain.LoanState {
	return normalizeLoanState(domain.DefaultLoanInput().State())
}

func TestCalculateSameTenure(t *testing.T) {
	res := CalculateSameTenure(defaultLoan())

	if res.NewEMI != 84267 {
		t.Errorf("expected new EMI 84267, got %.0f", res.NewEMI)
	}
	if res.MonthlySavings != 5706 {
		t.Errorf("expected monthly savings 5706, got %.0f", res.MonthlySavings)
	}
	if res.TotalInterestSaved != 1_369_440 {
		t.Errorf("expected total interest saved 1369440, got %.0f", res.TotalInterestSaved)
	}
	if math.Abs(res.PercentageReduction-6.3419) > 0.001 {
		t.Errorf("expected ≈6.34%%, got %.4f", res.PercentageReduction)
	}
}

func TestCalculateSameEMI_LowerRateSamePayment(t *testing.T) {
	loan := defaultLoan()
	res := CalculateSameEMI(loan, loan.CurrentEMI)

	if res.NewTenure > res.OriginalTenure {
		t.Errorf("new tenure %d exceeds original %d", res.NewTenure, res.OriginalTenure)
	}
	if res.InterestSaved < 0 {
		t.Errorf("expected non-negative interest saved, got %.0f", res.InterestSaved)
	}
	if res.NewTenure != 207 || res.MonthsSaved != 33 {
		t.Errorf("expected 207 months (33 saved), got %d (%d saved)", res.NewTenure, res.MonthsSaved)
	}
	if res.InterestSaved != 2_969_109 {
		t.Errorf("expected 2969109 saved, got %.0f", res.InterestSaved)
	}
	if res.PercentFaster != 14 {
		t.Errorf("expected 14%% faster, got %d", res.PercentFaster)
	}
	if res.Fallback {
		t.Errorf("unexpected fallback")
	}
}

func TestCalculateSameEMI_HigherPaymentShortensLoan(t *testing.T) {
	loan := defaultLoan()
	base := CalculateSameEMI(loan, loan.CurrentEMI)
	higher := CalculateSameEMI(loan, loan.CurrentEMI*1.5)

	if higher.NewTenure >= base.NewTenure {
		t.Errorf("expected shorter tenure, got %d vs %d", higher.NewTenure, base.NewTenure)
	}
	if higher.InterestSaved <= base.InterestSaved {
		t.Errorf("expected more interest saved, got %.0f vs %.0f", higher.InterestSaved, base.InterestSaved)
	}
}

func TestCalculateSameEMI_NonAmortizingFallsBackToOriginalTenure(t *testing.T) {
	loan := defaultLoan()
	// 8.1% interest on 1 crore is 67,500 a month.
	res := CalculateSameEMI(loan, 60_000)

	if !res.Fallback {
		t.Errorf("expected fallback")
	}
	if res.NewTenure != loan.Tenure {
		t.Errorf("expected original tenure %d, got %d", loan.Tenure, res.NewTenure)
	}
	if res.MonthsSaved != 0 {
		t.Errorf("expected 0 months saved, got %d", res.MonthsSaved)
	}
	if res.InterestSaved != 0 || res.NewInterest != res.OriginalInterest {
		t.Errorf("expected nothing saved, got %v", res.InterestSaved)
	}
}

func TestCalculateSameEMI_ZeroPaymentSavesNothing(t *testing.T) {
	res := CalculateSameEMI(defaultLoan(), 0)

	if !res.Fallback || res.MonthsSaved != 0 || res.InterestSaved != 0 {
		t.Errorf("expected fallback with nothing saved, got %+v", res)
	}
}

func TestCalculateExtraPayment_ZeroExtraIsIdentity(t *testing.T) {
	loan := defaultLoan()
	for _, mode := range []domain.ComparisonMode{domain.CompareOriginal, domain.CompareRefinanced} {
		res := CalculateExtraPayment(loan, ExtraPaymentInput{Frequency: domain.Monthly, Mode: mode}, 0)

		if res.NewTenure != res.BaseTenure {
			t.Errorf("%s: expected new tenure %d, got %d", mode, res.BaseTenure, res.NewTenure)
		}
		if res.MonthsSaved != 0 {
			t.Errorf("%s: expected 0 months saved, got %d", mode, res.MonthsSaved)
		}
		if res.ExtraPaymentSavings != 0 {
			t.Errorf("%s: expected no extra-payment savings, got %.0f", mode, res.ExtraPaymentSavings)
		}
	}
}

func TestCalculateExtraPayment_Baselines(t *testing.T) {
	loan := defaultLoan()

	original := CalculateExtraPayment(loan, ExtraPaymentInput{Mode: domain.CompareOriginal}, 0)
	if original.BaseRate != 9 || original.BaseEMI != 89973 || original.BaseTenure != 240 {
		t.Errorf("unexpected original baseline: %+v", original)
	}

	refinanced := CalculateExtraPayment(loan, ExtraPaymentInput{Mode: domain.CompareRefinanced}, 0)
	if refinanced.BaseRate != 8.1 || refinanced.BaseEMI != 84267 || refinanced.BaseTenure != 240 {
		t.Errorf("unexpected refinanced baseline: %+v", refinanced)
	}
}

func TestCalculateExtraPayment_Quarterly(t *testing.T) {
	loan := defaultLoan()
	res := CalculateExtraPayment(loan, ExtraPaymentInput{
		Amount:    50_000,
		Frequency: domain.Quarterly,
		Mode:      domain.CompareOriginal,
	}, 0)

	if math.Abs(res.EffectiveMonthly-50_000.0/3) > 1e-9 {
		t.Errorf("expected effective monthly %.2f, got %.2f", 50_000.0/3, res.EffectiveMonthly)
	}
	if res.NewTenure != 163 || res.MonthsSaved != 77 {
		t.Errorf("expected 163 months (77 saved), got %d (%d saved)", res.NewTenure, res.MonthsSaved)
	}
	if res.InterestSaved != res.ExtraPaymentSavings {
		t.Errorf("original mode must not include refinancing savings")
	}
}

func TestCalculateExtraPayment_RefinancedIsCumulative(t *testing.T) {
	loan := defaultLoan()
	refinancing := RefinancingSavings(loan)

	zero := CalculateExtraPayment(loan, ExtraPaymentInput{Mode: domain.CompareRefinanced}, refinancing)
	if zero.InterestSaved != 1_368_910 {
		t.Errorf("expected refinancing savings with no extra payment, got %.0f", zero.InterestSaved)
	}

	res := CalculateExtraPayment(loan, ExtraPaymentInput{
		Amount:    10_000,
		Frequency: domain.Monthly,
		Mode:      domain.CompareRefinanced,
	}, refinancing)
	if res.RefinancingSavings != 1_368_910 {
		t.Errorf("expected refinancing component 1368910, got %.0f", res.RefinancingSavings)
	}
	if math.Abs(res.InterestSaved-(res.RefinancingSavings+res.ExtraPaymentSavings)) > 1 {
		t.Errorf("expected %.0f + %.0f, got %.0f", res.RefinancingSavings, res.ExtraPaymentSavings, res.InterestSaved)
	}
	if res.ExtraPaymentSavings <= 0 {
		t.Errorf("expected positive extra-payment savings")
	}
}

func TestRefinancingSavings(t *testing.T) {
	loan := defaultLoan()
	if got := math.Round(RefinancingSavings(loan)); got != 1_368_910 {
		t.Errorf("expected 1368910, got %.0f", got)
	}

	// Keeping the old EMI at the lower rate closes the loan early.
	loan.NewEMI = loan.CurrentEMI
	loan.NewEMISupplied = true
	if got := math.Round(RefinancingSavings(loan)); got != 3_040_481 {
		t.Errorf("expected 3040481 with the old EMI kept, got %.0f", got)
	}

	loan.NewRate = 12
	loan.NewEMISupplied = false
	loan = normalizeLoanState(loan)
	if got := RefinancingSavings(loan); got != 0 {
		t.Errorf("expected no savings at a higher rate, got %.0f", got)
	}
}

func TestCalculateExtraPayment_MonotoneInAmount(t *testing.T) {
	loan := defaultLoan()
	refinancing := RefinancingSavings(loan)

	for _, mode := range []domain.ComparisonMode{domain.CompareOriginal, domain.CompareRefinanced} {
		for _, freq := range []domain.Frequency{domain.Monthly, domain.Quarterly, domain.HalfYearly, domain.Yearly} {
			prev := -1.0
			for amount := 0.0; amount <= MaxExtraPayment; amount += 1000 {
				res := CalculateExtraPayment(loan, ExtraPaymentInput{Amount: amount, Frequency: freq, Mode: mode}, refinancing)
				if res.InterestSaved < prev {
					t.Fatalf("%s/%s: savings dropped at %.0f: %.0f < %.0f", mode, freq, amount, res.InterestSaved, prev)
				}
				prev = res.InterestSaved
			}
		}
	}
}

func TestFrequencyFactor(t *testing.T) {
	for f, want := range map[domain.Frequency]float64{
		domain.Monthly:    1,
		domain.Quarterly:  1.0 / 3,
		domain.HalfYearly: 1.0 / 6,
		domain.Yearly:     1.0 / 12,
	} {
		if got := f.Factor(); got != want {
			t.Errorf("%s: expected %v, got %v", f, want, got)
		}
	}
}
