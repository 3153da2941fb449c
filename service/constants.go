package service

const (
	MaxLoanAmount   = 1_000_000_000_000.0
	MaxInterestRate = 100.0 // % anual
	MaxTermMonths   = 600   // 50 años
	MinTermMonths   = 1

	// EMI slider: from the current EMI up to MaxEMIMultiple times it.
	MaxEMIMultiple = 3.0

	// Extra payment slider.
	MaxExtraPayment  = 500_000.0
	ExtraPaymentStep = 5_000.0
)

var (
	EMIPresetRatios     = []float64{1, 1.5, 2, 3}
	ExtraPaymentPresets = []float64{10_000, 50_000, 100_000, 200_000}
)
