// Package prompt implements line-based interactive prompts on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jokarl/nearacct/internal/resolve"
	"github.com/jokarl/nearacct/internal/types"
)

// ErrInputClosed is returned when the input stream ends before an answer
var ErrInputClosed = errors.New("input closed before an answer was given")

// Terminal asks questions on out and reads answers line by line from in
type Terminal struct {
	in           *bufio.Reader
	out          io.Writer
	colorEnabled bool
}

var _ resolve.Interactor = (*Terminal)(nil)

// NewTerminal creates a Terminal. Prompts and advisories go to out, which is
// normally stderr so that rendered results on stdout stay clean.
func NewTerminal(in io.Reader, out io.Writer, colorEnabled bool) *Terminal {
	return &Terminal{
		in:           bufio.NewReader(in),
		out:          out,
		colorEnabled: colorEnabled,
	}
}

// Confirm asks a yes/no question until it gets a recognisable answer.
// An empty answer takes the question's default.
func (t *Terminal) Confirm(q resolve.Question) (bool, error) {
	text := Render(q)
	hint := "[y/N]:"
	if text.DefaultYes {
		hint = "[Y/n]:"
	}
	for {
		fmt.Fprintf(t.out, "\n%s\n", t.bold(text.Question))
		fmt.Fprintf(t.out, "  y) %s\n", text.Yes)
		fmt.Fprintf(t.out, "  n) %s\n", text.No)
		fmt.Fprintf(t.out, "%s ", t.cyan(hint))

		line, err := t.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return text.DefaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintf(t.out, "%s\n", t.yellow(fmt.Sprintf("Please answer 'y' or 'n' (got %q).", line)))
		}
	}
}

// Input asks for a line of text; an empty answer yields defaultValue
func (t *Terminal) Input(q resolve.Question, defaultValue string) (string, error) {
	text := Render(q)
	if defaultValue != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", t.bold(text.Question), defaultValue)
	} else {
		fmt.Fprintf(t.out, "%s: ", t.bold(text.Question))
	}

	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Notify prints the advisory for a violation
func (t *Terminal) Notify(v *types.Violation) {
	fmt.Fprintf(t.out, "\n%s\n", t.yellow(Advisory(v)))
}

// Invalid prints a parse error for the last answer
func (t *Terminal) Invalid(err error) {
	fmt.Fprintf(t.out, "%s %v\n", t.red("Error:"), err)
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final line without a newline still counts as an answer
			if strings.TrimSpace(line) != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) bold(s string) string {
	if !t.colorEnabled {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

func (t *Terminal) cyan(s string) string {
	if !t.colorEnabled {
		return s
	}
	return color.New(color.FgCyan).Sprint(s)
}

func (t *Terminal) yellow(s string) string {
	if !t.colorEnabled {
		return s
	}
	return color.New(color.FgYellow, color.Bold).Sprint(s)
}

func (t *Terminal) red(s string) string {
	if !t.colorEnabled {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}
