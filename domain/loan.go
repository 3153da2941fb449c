package domain

// LoanInput is the loan configuration supplied when the explorer starts.
// NewEMI is optional; zero means it is derived from the new rate.
type LoanInput struct {
	Principal   float64 `json:"principal" yaml:"principal"`
	CurrentRate float64 `json:"currentRate" yaml:"current_rate"`
	NewRate     float64 `json:"newRate" yaml:"new_rate"`
	CurrentEMI  float64 `json:"currentEMI" yaml:"current_emi"`
	Tenure      int     `json:"tenure" yaml:"tenure"`
	NewEMI      float64 `json:"newEMI,omitempty" yaml:"new_emi"`
}

// LoanState holds the loan parameters shared by every scenario.
type LoanState struct {
	Principal      float64 `json:"principal"`
	CurrentRate    float64 `json:"currentRate"`
	NewRate        float64 `json:"newRate"`
	CurrentEMI     float64 `json:"currentEMI"`
	NewEMI         float64 `json:"newEMI"`
	Tenure         int     `json:"tenure"`
	NewEMISupplied bool    `json:"newEMISupplied"`
}

// LoanUpdate is a partial LoanState. Nil fields keep their previous value.
// A NewEMI of zero drops an explicit override so the EMI is derived again.
type LoanUpdate struct {
	Principal   *float64 `json:"principal,omitempty"`
	CurrentRate *float64 `json:"currentRate,omitempty"`
	NewRate     *float64 `json:"newRate,omitempty"`
	CurrentEMI  *float64 `json:"currentEMI,omitempty"`
	NewEMI      *float64 `json:"newEMI,omitempty"`
	Tenure      *int     `json:"tenure,omitempty"`
}

// DefaultLoanInput is the loan the explorer shows when nothing is configured.
func DefaultLoanInput() LoanInput {
	return LoanInput{
		Principal:   10_000_000,
		CurrentRate: 9,
		NewRate:     8.1,
		CurrentEMI:  89_973,
		Tenure:      240,
	}
}

// State converts the input into a LoanState. The derived EMI is not
// computed here.
func (in LoanInput) State() LoanState {
	return LoanState{
		Principal:      in.Principal,
		CurrentRate:    in.CurrentRate,
		NewRate:        in.NewRate,
		CurrentEMI:     in.CurrentEMI,
		NewEMI:         in.NewEMI,
		Tenure:         in.Tenure,
		NewEMISupplied: in.NewEMI > 0,
	}
}

// Merge returns a copy of s with every non-nil field of u applied.
func (s LoanState) Merge(u LoanUpdate) LoanState {
	out := s
	if u.Principal != nil {
		out.Principal = *u.Principal
	}
	if u.CurrentRate != nil {
		out.CurrentRate = *u.CurrentRate
	}
	if u.NewRate != nil {
		out.NewRate = *u.NewRate
	}
	if u.CurrentEMI != nil {
		out.CurrentEMI = *u.CurrentEMI
	}
	if u.Tenure != nil {
		out.Tenure = *u.Tenure
	}
	if u.NewEMI != nil {
		out.NewEMI = *u.NewEMI
		out.NewEMISupplied = *u.NewEMI > 0
	}
	return out
}
