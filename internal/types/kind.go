package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ViolationKind identifies which naming policy a candidate violates
type ViolationKind int

const (
	// ViolationNone means the candidate passed every rule
	ViolationNone ViolationKind = iota
	// ViolationAlreadyExists means the account is registered on some network
	ViolationAlreadyExists
	// ViolationTooShortTopLevel means a top-level name is below the registrar-only length
	ViolationTooShortTopLevel
	// ViolationParentMissing means the parent of a sub-account is not registered anywhere
	ViolationParentMissing
)

// String returns the string representation of the kind
func (k ViolationKind) String() string {
	switch k {
	case ViolationNone:
		return "none"
	case ViolationAlreadyExists:
		return "already-exists"
	case ViolationTooShortTopLevel:
		return "too-short-top-level"
	case ViolationParentMissing:
		return "parent-missing"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (k ViolationKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (k *ViolationKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseViolationKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (k ViolationKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// ParseViolationKind parses a string into a ViolationKind
func ParseViolationKind(s string) (ViolationKind, error) {
	switch strings.ToLower(s) {
	case "none":
		return ViolationNone, nil
	case "already-exists":
		return ViolationAlreadyExists, nil
	case "too-short-top-level":
		return ViolationTooShortTopLevel, nil
	case "parent-missing":
		return ViolationParentMissing, nil
	default:
		return ViolationNone, fmt.Errorf("unknown violation kind: %s", s)
	}
}
