package prompt

import (
	"fmt"

	"github.com/jokarl/nearacct/internal/resolve"
	"github.com/jokarl/nearacct/internal/types"
)

// TopLevelAccountsURL documents the registrar-only short name policy
const TopLevelAccountsURL = "https://nomicon.io/DataStructures/Account#top-level-accounts"

// Text is the wording of a question. Yes and No are only set for yes/no questions.
type Text struct {
	Question string
	Yes      string
	No       string

	// DefaultYes is the answer taken when a yes/no question gets an empty line
	DefaultYes bool
}

// Render returns the wording for a question
func Render(q resolve.Question) Text {
	switch q.Kind {
	case resolve.QuestionCheckExistence:
		return Text{
			Question:   "Do you want to check the existence of the specified account so that you don't waste tokens with sending a transaction that won't succeed?",
			Yes:        fmt.Sprintf("Yes, I want to check that <%s> account does not exist. (It is free of charge, and only requires Internet access)", q.AccountID),
			No:         "No, I know that this account does not exist and I want to proceed.",
			DefaultYes: true,
		}
	case resolve.QuestionChangeName:
		return Text{
			Question:   "Do you want to enter a different name for the new account ID?",
			Yes:        "Yes, I want to enter a new name for account ID.",
			No:         "No, I want to keep using this name for account ID.",
			DefaultYes: true,
		}
	case resolve.QuestionAccountID:
		return Text{Question: "What is the new account ID?"}
	case resolve.QuestionInitialBalance:
		return Text{Question: "Enter the amount of the NEAR tokens you want to fund the new account with (example: 10NEAR or 0.5near or 10000yoctonear)"}
	default:
		return Text{Question: q.Kind.String()}
	}
}

// Advisory returns the human-readable explanation of a violation
func Advisory(v *types.Violation) string {
	switch types.KindOf(v) {
	case types.ViolationAlreadyExists:
		network := "a configured network"
		if v.Network != nil {
			network = v.Network.Name
		}
		return fmt.Sprintf("Heads up! You will only waste tokens if you proceed creating <%s> account on <%s> as the account already exists.",
			v.AccountID, network)
	case types.ViolationTooShortTopLevel:
		return fmt.Sprintf("Account <%s> has <%d> character count. Only the registrar account can create new top level accounts that are shorter than %d characters. Read more about it in nomicon: %s",
			v.AccountID, v.Length, v.Minimum, TopLevelAccountsURL)
	case types.ViolationParentMissing:
		return fmt.Sprintf("The parent account <%s> does not yet exist. Therefore, you cannot create an account <%s>.",
			v.ParentID, v.AccountID)
	default:
		return ""
	}
}
