package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jokarl/nearacct/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// RenderAccount writes the new account in text format
func (r *TextRenderer) RenderAccount(w io.Writer, account *types.NewAccount) error {
	res := account.Resolution

	fmt.Fprintf(w, "New account: %s\n", r.bold(res.AccountID.String()))
	fmt.Fprintf(w, "Initial balance: %s (%s yoctoNEAR)\n", account.InitialBalance, account.InitialBalance.Yocto())

	if !res.ExistenceChecked {
		fmt.Fprintln(w, "Existence check: skipped")
	} else {
		fmt.Fprintf(w, "Existence check: %d attempt(s)\n", res.Attempts)
	}

	if len(res.Advisories) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Advisories:")
		for _, v := range res.Advisories {
			r.renderViolation(w, v)
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	if res.AcceptedWithAdvisory() {
		fmt.Fprintf(w, "Result: %s (accepted despite advisory)\n", r.yellow("ACCEPTED"))
	} else {
		fmt.Fprintf(w, "Result: %s\n", r.green("ACCEPTED"))
	}
	return nil
}

// RenderCheck writes a check report in text format
func (r *TextRenderer) RenderCheck(w io.Writer, report *types.CheckReport) error {
	fmt.Fprintf(w, "nearacct: checking %s on %s\n\n", report.AccountID, strings.Join(report.Networks, ", "))

	if report.Violation != nil {
		r.renderViolation(w, report.Violation)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	if report.Result == "PASS" {
		fmt.Fprintf(w, "Result: %s\n", r.green("PASS"))
	} else {
		fmt.Fprintf(w, "Result: %s (policy violation)\n", r.red("FAIL"))
	}
	return nil
}

func (r *TextRenderer) renderViolation(w io.Writer, v *types.Violation) {
	fmt.Fprintf(w, "%s  %s  %s\n", r.yellow(strings.ToUpper(v.Kind.String())), v.RuleID, v.AccountID)
	fmt.Fprintf(w, "  %s\n", Describe(v))
}

// Describe returns a one-line description of a violation
func Describe(v *types.Violation) string {
	switch types.KindOf(v) {
	case types.ViolationAlreadyExists:
		if v.Network != nil {
			return fmt.Sprintf("account already exists on %s", v.Network.Name)
		}
		return "account already exists"
	case types.ViolationTooShortTopLevel:
		return fmt.Sprintf("top-level name has %d characters, minimum is %d", v.Length, v.Minimum)
	case types.ViolationParentMissing:
		return fmt.Sprintf("parent account %s does not exist", v.ParentID)
	default:
		return "no violation"
	}
}

func (r *TextRenderer) bold(s string) string {
	if !r.ColorEnabled {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

func (r *TextRenderer) green(s string) string {
	if !r.ColorEnabled {
		return s
	}
	return color.New(color.FgGreen).Sprint(s)
}

func (r *TextRenderer) yellow(s string) string {
	if !r.ColorEnabled {
		return s
	}
	return color.New(color.FgYellow).Sprint(s)
}

func (r *TextRenderer) red(s string) string {
	if !r.ColorEnabled {
		return s
	}
	return color.New(color.FgRed, color.Bold).Sprint(s)
}
