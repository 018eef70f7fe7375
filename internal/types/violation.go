package types

// Violation is an advisory outcome of evaluating a candidate account id.
// Only the fields belonging to Kind are set.
type Violation struct {
	// Kind tags which variant this violation is
	Kind ViolationKind `json:"kind" yaml:"kind"`

	// RuleID is the rule that produced the violation (e.g., "AE001")
	RuleID string `json:"rule_id" yaml:"rule_id"`

	// AccountID is the candidate that was evaluated
	AccountID AccountID `json:"account_id" yaml:"account_id"`

	// Network is where the account already exists (AlreadyExists)
	Network *Network `json:"network,omitempty" yaml:"network,omitempty"`

	// Length and Minimum are the measured and required lengths (TooShortTopLevel)
	Length  int `json:"length,omitempty" yaml:"length,omitempty"`
	Minimum int `json:"minimum,omitempty" yaml:"minimum,omitempty"`

	// ParentID is the parent account that could not be found (ParentMissing)
	ParentID AccountID `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// NewAlreadyExists creates a violation for an account found on network
func NewAlreadyExists(ruleID string, id AccountID, network *Network) *Violation {
	return &Violation{
		Kind:      ViolationAlreadyExists,
		RuleID:    ruleID,
		AccountID: id,
		Network:   network,
	}
}

// NewTooShortTopLevel creates a violation for a top-level id below minimum
func NewTooShortTopLevel(ruleID string, id AccountID, minimum int) *Violation {
	return &Violation{
		Kind:      ViolationTooShortTopLevel,
		RuleID:    ruleID,
		AccountID: id,
		Length:    id.Len(),
		Minimum:   minimum,
	}
}

// NewParentMissing creates a violation for a sub-account whose parent is absent
func NewParentMissing(ruleID string, id, parent AccountID) *Violation {
	return &Violation{
		Kind:      ViolationParentMissing,
		RuleID:    ruleID,
		AccountID: id,
		ParentID:  parent,
	}
}

// KindOf returns the kind of v, treating nil as ViolationNone
func KindOf(v *Violation) ViolationKind {
	if v == nil {
		return ViolationNone
	}
	return v.Kind
}
