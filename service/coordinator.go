package service

import (
	"errors"
	"fmt"
	"math"

	"explore-options/domain"
)

// ErrLoanStateMissing is the panic value for scenario calls made before
// Initialize.
var ErrLoanStateMissing = errors.New("loan state not initialized")

// Listener receives every result the coordinator emits.
type Listener func(domain.ScenarioResult)

// Coordinator owns the loan state and the control values of the three
// scenarios, and recalculates the active scenario whenever either changes.
// It is not safe for concurrent use.
type Coordinator struct {
	loan     *domain.LoanState
	active   domain.ScenarioID
	emi      float64
	emiSet   bool
	extra    ExtraPaymentInput
	listener Listener
	last     *domain.ScenarioResult
}

// NewCoordinator creates a coordinator showing the same-tenure scenario.
// listener may be nil.
func NewCoordinator(listener Listener) *Coordinator {
	return &Coordinator{
		active: domain.SameTenure,
		extra: ExtraPaymentInput{
			Frequency: domain.Monthly,
			Mode:      domain.CompareRefinanced,
		},
		listener: listener,
	}
}

// Initialize sets the loan the scenarios are computed for. It does not
// emit a result.
func (c *Coordinator) Initialize(input domain.LoanInput) error {
	state := normalizeLoanState(input.State())
	if err := validateLoanState(state); err != nil {
		return err
	}
	c.loan = &state
	c.last = nil
	return nil
}

// Loan returns a copy of the current loan state.
func (c *Coordinator) Loan() domain.LoanState {
	return c.state()
}

// Active returns the scenario currently shown.
func (c *Coordinator) Active() domain.ScenarioID {
	return c.active
}

// SelectScenario switches to id, recalculates it and emits the result.
func (c *Coordinator) SelectScenario(id domain.ScenarioID) (domain.ScenarioResult, error) {
	if _, err := domain.ParseScenarioID(string(id)); err != nil {
		return domain.ScenarioResult{}, err
	}
	c.active = id
	return c.emit(c.calculate(id)), nil
}

// SetSameEMIInput sets the EMI the same-EMI scenario pays and returns that
// scenario's result.
func (c *Coordinator) SetSameEMIInput(chosenEMI float64) domain.ScenarioResult {
	c.emi = chosenEMI
	c.emiSet = true
	return c.recalculate(domain.SameEMI)
}

// SetExtraPaymentInput sets the extra payment amount and its frequency and
// returns the extra-payment result.
func (c *Coordinator) SetExtraPaymentInput(amount float64, frequency domain.Frequency) (domain.ScenarioResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return domain.ScenarioResult{}, fmt.Errorf("invalid extra payment %v", amount)
	}
	if _, err := domain.ParseFrequency(string(frequency)); err != nil {
		return domain.ScenarioResult{}, err
	}
	c.extra.Amount = amount
	c.extra.Frequency = frequency
	return c.recalculate(domain.ExtraPayment), nil
}

// SetComparisonMode selects the extra-payment baseline.
func (c *Coordinator) SetComparisonMode(mode domain.ComparisonMode) (domain.ScenarioResult, error) {
	if _, err := domain.ParseComparisonMode(string(mode)); err != nil {
		return domain.ScenarioResult{}, err
	}
	c.extra.Mode = mode
	return c.recalculate(domain.ExtraPayment), nil
}

// UpdateLoanData merges update into the loan state, derives the new EMI
// unless one was supplied, and re-emits the active scenario. An update that
// leaves the loan invalid is rejected and the previous state kept.
func (c *Coordinator) UpdateLoanData(update domain.LoanUpdate) (domain.ScenarioResult, error) {
	if update.NewEMI != nil && (!finite(*update.NewEMI) || *update.NewEMI < 0) {
		return domain.ScenarioResult{}, errors.New("invalid new EMI")
	}
	merged := normalizeLoanState(c.state().Merge(update))
	if err := validateLoanState(merged); err != nil {
		return domain.ScenarioResult{}, err
	}
	c.loan = &merged
	return c.emit(c.calculate(c.active)), nil
}

// CurrentScenario returns the last emitted result, calculating the active
// scenario if nothing was emitted since the loan was set.
func (c *Coordinator) CurrentScenario() domain.ScenarioResult {
	if c.last == nil {
		res := c.calculate(c.active)
		c.last = &res
	}
	return c.last.Clone()
}

// Controls describes the sliders and presets for the current loan.
func (c *Coordinator) Controls() domain.Controls {
	loan := c.state()

	emiPresets := make([]float64, 0, len(EMIPresetRatios))
	for _, ratio := range EMIPresetRatios {
		emiPresets = append(emiPresets, math.Round(loan.CurrentEMI*ratio))
	}

	return domain.Controls{
		Scenario: c.active,
		EMI: domain.SliderRange{
			Min:     loan.CurrentEMI,
			Max:     loan.CurrentEMI * MaxEMIMultiple,
			Value:   c.chosenEMI(loan),
			Presets: emiPresets,
		},
		ExtraPayment: domain.SliderRange{
			Min:     0,
			Max:     MaxExtraPayment,
			Step:    ExtraPaymentStep,
			Value:   c.extra.Amount,
			Presets: append([]float64(nil), ExtraPaymentPresets...),
		},
		Frequency:      c.extra.Frequency,
		Frequencies:    []domain.Frequency{domain.Monthly, domain.Quarterly, domain.HalfYearly, domain.Yearly},
		ComparisonMode: c.extra.Mode,
	}
}

func (c *Coordinator) state() domain.LoanState {
	if c.loan == nil {
		panic(ErrLoanStateMissing)
	}
	return *c.loan
}

// chosenEMI defaults to the current EMI until the slider is moved.
func (c *Coordinator) chosenEMI(loan domain.LoanState) float64 {
	if c.emiSet {
		return c.emi
	}
	return loan.CurrentEMI
}

// recalculate computes id and emits it only when it is the active scenario.
func (c *Coordinator) recalculate(id domain.ScenarioID) domain.ScenarioResult {
	res := c.calculate(id)
	if id == c.active {
		return c.emit(res)
	}
	return res
}

func (c *Coordinator) calculate(id domain.ScenarioID) domain.ScenarioResult {
	loan := c.state()
	res := domain.ScenarioResult{Scenario: id, Loan: loan}

	switch id {
	case domain.SameEMI:
		r := CalculateSameEMI(loan, c.chosenEMI(loan))
		res.SameEMI = &r
	case domain.ExtraPayment:
		r := CalculateExtraPayment(loan, c.extra, RefinancingSavings(loan))
		res.ExtraPayment = &r
	default:
		r := CalculateSameTenure(loan)
		res.SameTenure = &r
	}
	return res
}

func (c *Coordinator) emit(res domain.ScenarioResult) domain.ScenarioResult {
	memo := res.Clone()
	c.last = &memo
	if c.listener != nil {
		c.listener(res.Clone())
	}
	return res
}
