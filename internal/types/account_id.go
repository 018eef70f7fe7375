package types

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinAccountIDLength is the shortest account id the protocol accepts
	MinAccountIDLength = 2
	// MaxAccountIDLength is the longest account id the protocol accepts
	MaxAccountIDLength = 64

	// systemAccountID is reserved by the protocol and never treated as top-level
	systemAccountID = "system"
)

// accountIDPattern matches dot-separated parts of lowercase alphanumerics,
// where '-' and '_' may only sit between alphanumerics.
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// AccountID is a syntactically valid NEAR account identifier
type AccountID string

// InvalidAccountIDError is returned when raw input is not a valid account id
type InvalidAccountIDError struct {
	Input  string
	Reason string
}

func (e *InvalidAccountIDError) Error() string {
	return fmt.Sprintf("invalid account ID %q: %s", e.Input, e.Reason)
}

// ParseAccountID validates raw user input and returns it as an AccountID
func ParseAccountID(raw string) (AccountID, error) {
	s := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(s)

	if n < MinAccountIDLength {
		return "", &InvalidAccountIDError{
			Input:  s,
			Reason: fmt.Sprintf("the account ID is too short (minimum %d characters)", MinAccountIDLength),
		}
	}
	if n > MaxAccountIDLength {
		return "", &InvalidAccountIDError{
			Input:  s,
			Reason: fmt.Sprintf("the account ID is too long (maximum %d characters)", MaxAccountIDLength),
		}
	}
	if !accountIDPattern.MatchString(s) {
		return "", &InvalidAccountIDError{
			Input:  s,
			Reason: "only lowercase letters, digits and separators '.', '-', '_' are allowed; separators must sit between alphanumerics",
		}
	}
	return AccountID(s), nil
}

// MustParseAccountID is like ParseAccountID but panics on invalid input
func MustParseAccountID(raw string) AccountID {
	id, err := ParseAccountID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the account id as a string
func (a AccountID) String() string {
	return string(a)
}

// Len returns the character count of the account id
func (a AccountID) Len() int {
	return utf8.RuneCountInString(string(a))
}

// IsTopLevel reports whether the account id has no parent component.
// The system account is never top-level.
func (a AccountID) IsTopLevel() bool {
	return string(a) != systemAccountID && !strings.Contains(string(a), ".")
}

// Parent returns the account id with the first component removed,
// e.g. "app.alice.near" -> "alice.near". Top-level ids have no parent.
func (a AccountID) Parent() (AccountID, bool) {
	_, rest, found := strings.Cut(string(a), ".")
	if !found {
		return "", false
	}
	return AccountID(rest), true
}
