package model

// PanelState is everything the page renders. It holds no wallet handles and
// survives a JSON round trip.
type PanelState struct {
	Connection   Connection          `json:"connection"`
	Input        BeneficiaryInput    `json:"input"`
	Details      *BeneficiaryDetails `json:"details,omitempty"`
	DetailsStale bool                `json:"detailsStale"`
	Vesting      *VestingStatus      `json:"vesting,omitempty"`
	LastResult   *ActionResult       `json:"lastResult,omitempty"`
}

// Apply returns the state that follows res. It does not modify s.
func (s PanelState) Apply(res ActionResult) PanelState {
	next := s
	r := res
	next.LastResult = &r

	switch res.Action {
	case ActionConnect:
		if res.OK && res.Connection != nil {
			next.Connection = *res.Connection
		}
	case ActionGetDetails:
		if res.OK && res.Details != nil {
			d := *res.Details
			next.Details = &d
			next.DetailsStale = false
		} else if next.Details != nil {
			next.DetailsStale = true
		}
	case ActionStartVesting, ActionRefreshStatus:
		if res.OK && res.Status != nil {
			v := *res.Status
			next.Vesting = &v
		}
	}
	return next
}

// WithInput returns s with the form fields replaced.
func (s PanelState) WithInput(in BeneficiaryInput) PanelState {
	s.Input = in
	return s
}
