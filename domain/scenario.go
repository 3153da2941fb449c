package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownScenario       = errors.New("unknown scenario")
	ErrUnknownFrequency      = errors.New("unknown payment frequency")
	ErrUnknownComparisonMode = errors.New("unknown comparison mode")
)

type ScenarioID string

const (
	SameTenure   ScenarioID = "same-tenure"
	SameEMI      ScenarioID = "same-emi"
	ExtraPayment ScenarioID = "extra-payment"
)

func ParseScenarioID(s string) (ScenarioID, error) {
	switch id := ScenarioID(s); id {
	case SameTenure, SameEMI, ExtraPayment:
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScenario, s)
}

// Frequency is how often an extra payment is made.
type Frequency string

const (
	Monthly    Frequency = "monthly"
	Quarterly  Frequency = "quarterly"
	HalfYearly Frequency = "half-yearly"
	Yearly     Frequency = "yearly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case Monthly, Quarterly, HalfYearly, Yearly:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// Factor converts a payment made at this frequency into the equivalent
// constant monthly amount. Unknown values count as monthly.
func (f Frequency) Factor() float64 {
	switch f {
	case Quarterly:
		return 1.0 / 3
	case HalfYearly:
		return 1.0 / 6
	case Yearly:
		return 1.0 / 12
	}
	return 1
}

// ComparisonMode selects the baseline the extra-payment scenario is
// measured against.
type ComparisonMode string

const (
	CompareOriginal   ComparisonMode = "original"
	CompareRefinanced ComparisonMode = "refinanced"
)

func ParseComparisonMode(s string) (ComparisonMode, error) {
	switch m := ComparisonMode(s); m {
	case CompareOriginal, CompareRefinanced:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComparisonMode, s)
}

type SameTenureResult struct {
	NewEMI              float64 `json:"newEMI"`
	MonthlySavings      float64 `json:"monthlySavings"`
	TotalInterestSaved  float64 `json:"totalInterestSaved"`
	PercentageReduction float64 `json:"percentageReduction"`
}

type SameEMIResult struct {
	ChosenEMI        float64 `json:"emi"`
	OriginalTenure   int     `json:"originalTenure"`
	NewTenure        int     `json:"newTenure"`
	MonthsSaved      int     `json:"monthsSaved"`
	PercentFaster    int     `json:"percentFaster"`
	OriginalInterest float64 `json:"originalInterest"`
	NewInterest      float64 `json:"newInterest"`
	InterestSaved    float64 `json:"interestSaved"`
	Fallback         bool    `json:"fallback,omitempty"`
}

type ExtraPaymentResult struct {
	ExtraAmount         float64        `json:"extraAmount"`
	Frequency           Frequency      `json:"frequency"`
	EffectiveMonthly    float64        `json:"effectiveMonthly"`
	ComparisonMode      ComparisonMode `json:"comparisonMode"`
	BaseRate            float64        `json:"baseRate"`
	BaseEMI             float64        `json:"baseEMI"`
	BaseTenure          int            `json:"baseTenure"`
	NewTenure           int            `json:"newTenure"`
	MonthsSaved         int            `json:"monthsSaved"`
	BaselineInterest    float64        `json:"baselineInterest"`
	NewInterest         float64        `json:"newInterest"`
	RefinancingSavings  float64        `json:"refinancingSavings"`
	ExtraPaymentSavings float64        `json:"extraPaymentSavings"`
	InterestSaved       float64        `json:"interestSaved"`
}

// ScenarioResult is what the explorer reports for one scenario. Exactly one
// of the scenario records is set, matching Scenario.
type ScenarioResult struct {
	Scenario     ScenarioID          `json:"type"`
	Loan         LoanState           `json:"loanData"`
	SameTenure   *SameTenureResult   `json:"savings,omitempty"`
	SameEMI      *SameEMIResult      `json:"emiScenario,omitempty"`
	ExtraPayment *ExtraPaymentResult `json:"extraPaymentScenario,omitempty"`
}

// Clone returns a deep copy of r.
func (r ScenarioResult) Clone() ScenarioResult {
	out := r
	if r.SameTenure != nil {
		v := *r.SameTenure
		out.SameTenure = &v
	}
	if r.SameEMI != nil {
		v := *r.SameEMI
		out.SameEMI = &v
	}
	if r.ExtraPayment != nil {
		v := *r.ExtraPayment
		out.ExtraPayment = &v
	}
	return out
}

// EvaluateInput is a self-contained request for one scenario: the loan plus
// every control value the scenario reads.
type EvaluateInput struct {
	Loan           LoanInput      `json:"loan"`
	Scenario       ScenarioID     `json:"scenario"`
	ChosenEMI      float64        `json:"emi,omitempty"`
	ExtraPayment   float64        `json:"extraPayment,omitempty"`
	Frequency      Frequency      `json:"frequency,omitempty"`
	ComparisonMode ComparisonMode `json:"comparisonMode,omitempty"`
}

// SliderRange describes a numeric control of the explorer.
type SliderRange struct {
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Step    float64   `json:"step,omitempty"`
	Value   float64   `json:"value"`
	Presets []float64 `json:"presets"`
}

// Controls describes the input surface for the current loan and control
// values.
type Controls struct {
	Scenario       ScenarioID     `json:"scenario"`
	EMI            SliderRange    `json:"emi"`
	ExtraPayment   SliderRange    `json:"extraPayment"`
	Frequency      Frequency      `json:"frequency"`
	Frequencies    []Frequency    `json:"frequencies"`
	ComparisonMode ComparisonMode `json:"comparisonMode"`
}
