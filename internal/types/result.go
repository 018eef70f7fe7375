package types

import "github.com/jokarl/nearacct/internal/balance"

// Resolution is the accepted outcome of resolving a new account id
type Resolution struct {
	// AccountID is the accepted identifier
	AccountID AccountID `json:"account_id" yaml:"account_id"`

	// ExistenceChecked is false when the user bypassed all policy evaluation
	ExistenceChecked bool `json:"existence_checked" yaml:"existence_checked"`

	// Advisories lists the violations shown to the user, in order
	Advisories []*Violation `json:"advisories" yaml:"advisories"`

	// Attempts counts how many candidates were evaluated
	Attempts int `json:"attempts" yaml:"attempts"`
}

// NewResolution creates a Resolution for an accepted account id
func NewResolution(id AccountID, checked bool) *Resolution {
	return &Resolution{
		AccountID:        id,
		ExistenceChecked: checked,
		Advisories:       make([]*Violation, 0),
	}
}

// AddAdvisory records a violation that was shown to the user
func (r *Resolution) AddAdvisory(v *Violation) {
	r.Advisories = append(r.Advisories, v)
}

// AcceptedWithAdvisory reports whether the final candidate was accepted despite an advisory
// raised against it.
func (r *Resolution) AcceptedWithAdvisory() bool {
	if len(r.Advisories) == 0 {
		return false
	}
	return r.Advisories[len(r.Advisories)-1].AccountID == r.AccountID
}

// NewAccount is the value handed to the key-selection stage
type NewAccount struct {
	Resolution     *Resolution     `json:"resolution" yaml:"resolution"`
	InitialBalance balance.Balance `json:"initial_balance" yaml:"initial_balance"`
}

// CheckReport is the outcome of a single non-interactive evaluation
type CheckReport struct {
	AccountID AccountID  `json:"account_id" yaml:"account_id"`
	Networks  []string   `json:"networks" yaml:"networks"`
	Violation *Violation `json:"violation" yaml:"violation"`
	Result    string     `json:"result" yaml:"result"`
}

// NewCheckReport creates a CheckReport and computes its result
func NewCheckReport(id AccountID, networks []string, v *Violation) *CheckReport {
	result := "PASS"
	if v != nil {
		result = "FAIL"
	}
	if networks == nil {
		networks = []string{}
	}
	return &CheckReport{
		AccountID: id,
		Networks:  networks,
		Violation: v,
		Result:    result,
	}
}
