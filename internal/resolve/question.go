package resolve

import (
	"fmt"
	"strings"

	"github.com/jokarl/nearacct/internal/types"
)

// QuestionKind identifies what the user is being asked
type QuestionKind int

const (
	// QuestionCheckExistence asks whether to check the candidate at all (yes/no)
	QuestionCheckExistence QuestionKind = iota
	// QuestionChangeName asks whether to enter a different name after an advisory (yes/no)
	QuestionChangeName
	// QuestionAccountID asks for a new account id (text)
	QuestionAccountID
	// QuestionInitialBalance asks for the initial funding amount (text)
	QuestionInitialBalance
)

func (k QuestionKind) String() string {
	switch k {
	case QuestionCheckExistence:
		return "check-existence"
	case QuestionChangeName:
		return "change-name"
	case QuestionAccountID:
		return "account-id"
	case QuestionInitialBalance:
		return "initial-balance"
	default:
		return "unknown"
	}
}

// Question is a domain question; its wording belongs to the Interactor
type Question struct {
	Kind QuestionKind

	// AccountID is the candidate the question is about, if any
	AccountID types.AccountID
}

// Interactor is the user-facing side of the resolution loop.
// Any error it returns aborts the resolution.
type Interactor interface {
	// Confirm asks a yes/no question
	Confirm(q Question) (bool, error)

	// Input asks for free text, offering defaultValue when non-empty
	Input(q Question, defaultValue string) (string, error)

	// Notify shows an advisory about a policy violation
	Notify(v *types.Violation)

	// Invalid reports input that could not be parsed
	Invalid(err error)
}

// GateDecision is the answer to the entry gate
type GateDecision int

const (
	// GateCheck runs the naming policy on the candidate
	GateCheck GateDecision = iota
	// GateSkip accepts the candidate without any lookups
	GateSkip
)

// RenameDecision is the answer after an advisory
type RenameDecision int

const (
	// RenameChange asks for a replacement candidate
	RenameChange RenameDecision = iota
	// RenameKeep accepts the current candidate despite the advisory
	RenameKeep
)

// GateMode pre-answers the entry gate
type GateMode int

const (
	// GateAsk asks the user (default)
	GateAsk GateMode = iota
	// GateAlways checks without asking
	GateAlways
	// GateNever skips all checks without asking
	GateNever
)

func (m GateMode) String() string {
	switch m {
	case GateAlways:
		return "always"
	case GateNever:
		return "never"
	default:
		return "ask"
	}
}

// ParseGateMode parses "ask", "always" or "never"
func ParseGateMode(s string) (GateMode, error) {
	switch strings.ToLower(s) {
	case "", "ask":
		return GateAsk, nil
	case "always", "yes":
		return GateAlways, nil
	case "never", "no":
		return GateNever, nil
	default:
		return GateAsk, fmt.Errorf("invalid check mode: %s (must be 'ask', 'always', or 'never')", s)
	}
}
