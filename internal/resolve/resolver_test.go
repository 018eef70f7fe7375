package resolve

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/nearacct/internal/balance"
	"github.com/jokarl/nearacct/internal/policy"
	"github.com/jokarl/nearacct/internal/types"
)

// scriptedUI replays canned answers and records what it was asked
type scriptedUI struct {
	confirms []bool
	inputs   []string
	err      error

	asked    []QuestionKind
	notified []*types.Violation
	invalid  []error
}

func (s *scriptedUI) Confirm(q Question) (bool, error) {
	s.asked = append(s.asked, q.Kind)
	if len(s.confirms) == 0 {
		if s.err != nil {
			return false, s.err
		}
		return false, io.EOF
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *scriptedUI) Input(q Question, defaultValue string) (string, error) {
	s.asked = append(s.asked, q.Kind)
	if len(s.inputs) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	answer := s.inputs[0]
	s.inputs = s.inputs[1:]
	return answer, nil
}

func (s *scriptedUI) Notify(v *types.Violation) {
	s.notified = append(s.notified, v)
}

func (s *scriptedUI) Invalid(err error) {
	s.invalid = append(s.invalid, err)
}

// countingRegistry reports a fixed set of accounts and counts every query
type countingRegistry struct {
	name     string
	accounts map[types.AccountID]bool
	calls    int
}

func (c *countingRegistry) Name() string { return c.name }

func (c *countingRegistry) Network() *types.Network { return &types.Network{Name: c.name} }

func (c *countingRegistry) CheckExistence(ctx context.Context, id types.AccountID) (*types.AccountState, error) {
	c.calls++
	if c.accounts[id] {
		return &types.AccountState{}, nil
	}
	return nil, errors.New("not found")
}

func newRegistry(name string, accounts ...types.AccountID) *countingRegistry {
	r := &countingRegistry{name: name, accounts: make(map[types.AccountID]bool)}
	for _, a := range accounts {
		r.accounts[a] = true
	}
	return r
}

func newEngine(minLen int, regs ...*countingRegistry) *policy.Engine {
	nr := make([]policy.NetworkRegistry, len(regs))
	for i, r := range regs {
		nr[i] = r
	}
	return policy.NewDefaultEngine(policy.NewProber(nr, nil), minLen, nil)
}

func TestResolveAcceptsCleanCandidate(t *testing.T) {
	reg := newRegistry("testnet", "alice.testnet")
	ui := &scriptedUI{confirms: []bool{true}}

	res, err := New(newEngine(5, reg), ui).Resolve(context.Background(), "app.alice.testnet")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.AccountID != "app.alice.testnet" || !res.ExistenceChecked {
		t.Errorf("unexpected resolution: %+v", res)
	}
	if len(res.Advisories) != 0 || res.Attempts != 1 {
		t.Errorf("advisories=%d attempts=%d", len(res.Advisories), res.Attempts)
	}
}

func TestResolveGateDeclinedSkipsProbes(t *testing.T) {
	reg := newRegistry("mainnet", "abc")
	ui := &scriptedUI{confirms: []bool{false}}

	res, err := New(newEngine(5, reg), ui).Resolve(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.AccountID != "abc" || res.ExistenceChecked {
		t.Errorf("unexpected resolution: %+v", res)
	}
	if reg.calls != 0 {
		t.Errorf("registry queried %d times after gate was declined", reg.calls)
	}
	if len(ui.notified) != 0 {
		t.Error("no advisories expected when gate is declined")
	}
}

func TestResolveGateModeNever(t *testing.T) {
	reg := newRegistry("mainnet")
	ui := &scriptedUI{}

	res, err := New(newEngine(5, reg), ui, WithGateMode(GateNever)).Resolve(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.ExistenceChecked || reg.calls != 0 || len(ui.asked) != 0 {
		t.Errorf("expected silent bypass: res=%+v calls=%d asked=%v", res, reg.calls, ui.asked)
	}
}

func TestResolveGateModeAlwaysDoesNotAsk(t *testing.T) {
	reg := newRegistry("mainnet")
	ui := &scriptedUI{}

	res, err := New(newEngine(5, reg), ui, WithGateMode(GateAlways)).Resolve(context.Background(), "alice.near")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !res.ExistenceChecked || len(ui.asked) != 0 {
		t.Errorf("res=%+v asked=%v", res, ui.asked)
	}
}

func TestResolveKeepAfterViolationReturnsOriginal(t *testing.T) {
	tests := []struct {
		name      string
		candidate types.AccountID
		regs      []*countingRegistry
		wantKind  types.ViolationKind
	}{
		{"already exists", "alice.testnet", []*countingRegistry{newRegistry("testnet", "alice.testnet")}, types.ViolationAlreadyExists},
		{"too short", "abc", []*countingRegistry{newRegistry("mainnet")}, types.ViolationTooShortTopLevel},
		{"parent missing", "app.alice.near", []*countingRegistry{newRegistry("mainnet")}, types.ViolationParentMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &scriptedUI{confirms: []bool{true, false}}

			res, err := New(newEngine(5, tt.regs...), ui).Resolve(context.Background(), tt.candidate)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if res.AccountID != tt.candidate {
				t.Errorf("AccountID = %s, want %s", res.AccountID, tt.candidate)
			}
			if len(ui.notified) != 1 || ui.notified[0].Kind != tt.wantKind {
				t.Fatalf("notified = %v, want one %s", ui.notified, tt.wantKind)
			}
			if !res.AcceptedWithAdvisory() {
				t.Error("expected accepted-with-advisory")
			}
		})
	}
}

func TestResolveChangeNameLoops(t *testing.T) {
	reg := newRegistry("testnet", "alice.testnet", "bob.testnet")
	ui := &scriptedUI{
		confirms: []bool{true, true, true},
		inputs:   []string{"bob.testnet", "carol.testnet"},
	}

	res, err := New(newEngine(5, reg), ui).Resolve(context.Background(), "alice.testnet")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.AccountID != "carol.testnet" {
		t.Errorf("AccountID = %s, want carol.testnet", res.AccountID)
	}
	if res.Attempts != 3 || len(res.Advisories) != 2 {
		t.Errorf("attempts=%d advisories=%d", res.Attempts, len(res.Advisories))
	}
	if res.AcceptedWithAdvisory() {
		t.Error("final candidate passed cleanly")
	}

	want := []QuestionKind{
		QuestionCheckExistence,
		QuestionChangeName, QuestionAccountID,
		QuestionChangeName, QuestionAccountID,
	}
	if diff := cmp.Diff(want, ui.asked); diff != "" {
		t.Errorf("question sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveReplacementIsReevaluated(t *testing.T) {
	// The replacement is too short: it must be flagged, not accepted on the
	// strength of the earlier evaluation.
	reg := newRegistry("testnet", "alice.testnet")
	ui := &scriptedUI{
		confirms: []bool{true, true, false},
		inputs:   []string{"abc"},
	}

	res, err := New(newEngine(5, reg), ui).Resolve(context.Background(), "alice.testnet")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.AccountID != "abc" {
		t.Errorf("AccountID = %s", res.AccountID)
	}
	if len(ui.notified) != 2 || ui.notified[1].Kind != types.ViolationTooShortTopLevel {
		t.Errorf("second advisory should be too-short, got %v", ui.notified)
	}
}

func TestResolveInvalidReplacementReasks(t *testing.T) {
	reg := newRegistry("testnet", "alice.testnet")
	ui := &scriptedUI{
		confirms: []bool{true, true},
		inputs:   []string{"Not Valid", "bob.testnet"},
	}

	res, err := New(newEngine(5, reg), ui).Resolve(context.Background(), "alice.testnet")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.AccountID != "bob.testnet" {
		t.Errorf("AccountID = %s", res.AccountID)
	}
	if len(ui.invalid) != 1 {
		t.Errorf("invalid reports = %d, want 1", len(ui.invalid))
	}
}

func TestResolvePromptsForInitialCandidate(t *testing.T) {
	ui := &scriptedUI{
		inputs:   []string{"alice.near"},
		confirms: []bool{true},
	}

	res, err := New(newEngine(5, newRegistry("mainnet", "near")), ui).Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.AccountID != "alice.near" {
		t.Errorf("AccountID = %s", res.AccountID)
	}
	if ui.asked[0] != QuestionAccountID || ui.asked[1] != QuestionCheckExistence {
		t.Errorf("asked = %v", ui.asked)
	}
}

func TestResolveAdapterFailureAborts(t *testing.T) {
	closed := errors.New("input closed")

	// fails at the gate
	ui := &scriptedUI{err: closed}
	_, err := New(newEngine(5, newRegistry("mainnet")), ui).Resolve(context.Background(), "abc")
	if !errors.Is(err, ErrAborted) || !errors.Is(err, closed) {
		t.Errorf("gate failure: err = %v", err)
	}

	// fails while asking for a replacement
	ui = &scriptedUI{confirms: []bool{true, true}, err: closed}
	_, err = New(newEngine(5, newRegistry("mainnet")), ui).Resolve(context.Background(), "abc")
	if !errors.Is(err, ErrAborted) || !errors.Is(err, closed) {
		t.Errorf("replacement failure: err = %v", err)
	}
}

func TestResolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(newEngine(5), &scriptedUI{}).Resolve(ctx, "")
	if !errors.Is(err, ErrAborted) || !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}

func TestAcceptedCandidateHasNoUnseenViolation(t *testing.T) {
	reg := newRegistry("testnet", "alice.testnet")
	engine := newEngine(5, reg)
	scripts := [][]bool{
		{true, false},
		{true, true},
	}
	for _, confirms := range scripts {
		ui := &scriptedUI{confirms: confirms, inputs: []string{"bob.testnet"}}
		res, err := New(engine, ui).Resolve(context.Background(), "alice.testnet")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}

		v := engine.Evaluate(context.Background(), res.AccountID)
		if v == nil {
			continue
		}
		seen := false
		for _, n := range ui.notified {
			if n.AccountID == res.AccountID && n.Kind == v.Kind {
				seen = true
			}
		}
		if !seen {
			t.Errorf("accepted %s with unseen violation %s", res.AccountID, v.Kind)
		}
	}
}

func TestReadInitialBalance(t *testing.T) {
	ui := &scriptedUI{inputs: []string{"2.5 NEAR"}}
	b, err := ReadInitialBalance(ui, "0.1 NEAR")
	if err != nil {
		t.Fatalf("ReadInitialBalance() error = %v", err)
	}
	if !b.Equal(balance.MustParse("2.5 NEAR")) {
		t.Errorf("balance = %s", b)
	}

	ui = &scriptedUI{inputs: []string{""}}
	b, err = ReadInitialBalance(ui, "0.1 NEAR")
	if err != nil {
		t.Fatalf("ReadInitialBalance() error = %v", err)
	}
	if b.String() != "0.1 NEAR" {
		t.Errorf("default balance = %s", b)
	}
}

func TestReadInitialBalanceParseFailureIsTerminal(t *testing.T) {
	ui := &scriptedUI{inputs: []string{"ten near", "1 NEAR"}}
	_, err := ReadInitialBalance(ui, "0.1 NEAR")

	var parseErr *balance.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *balance.ParseError, got %v", err)
	}
	if len(ui.inputs) != 1 {
		t.Error("balance step must not re-prompt after a parse failure")
	}
}

func TestParseGateMode(t *testing.T) {
	for in, want := range map[string]GateMode{"": GateAsk, "ask": GateAsk, "ALWAYS": GateAlways, "never": GateNever} {
		got, err := ParseGateMode(in)
		if err != nil || got != want {
			t.Errorf("ParseGateMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseGateMode("maybe"); err == nil {
		t.Error("expected error")
	}
}
