package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/nearacct/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// accountOutput is the structure for rendered accounts
type accountOutput struct {
	Version          string             `json:"version" yaml:"version"`
	AccountID        types.AccountID    `json:"account_id" yaml:"account_id"`
	InitialBalance   string             `json:"initial_balance" yaml:"initial_balance"`
	InitialYocto     string             `json:"initial_balance_yocto" yaml:"initial_balance_yocto"`
	ExistenceChecked bool               `json:"existence_checked" yaml:"existence_checked"`
	Attempts         int                `json:"attempts" yaml:"attempts"`
	Advisories       []*types.Violation `json:"advisories" yaml:"advisories"`
}

// checkOutput is the structure for rendered check reports
type checkOutput struct {
	Version   string           `json:"version" yaml:"version"`
	AccountID types.AccountID  `json:"account_id" yaml:"account_id"`
	Networks  []string         `json:"networks" yaml:"networks"`
	Violation *types.Violation `json:"violation" yaml:"violation"`
	Result    string           `json:"result" yaml:"result"`
}

func newAccountOutput(account *types.NewAccount) accountOutput {
	res := account.Resolution
	advisories := res.Advisories
	if advisories == nil {
		advisories = []*types.Violation{}
	}
	return accountOutput{
		Version:          "1.0",
		AccountID:        res.AccountID,
		InitialBalance:   account.InitialBalance.String(),
		InitialYocto:     account.InitialBalance.Yocto(),
		ExistenceChecked: res.ExistenceChecked,
		Attempts:         res.Attempts,
		Advisories:       advisories,
	}
}

func newCheckOutput(report *types.CheckReport) checkOutput {
	return checkOutput{
		Version:   "1.0",
		AccountID: report.AccountID,
		Networks:  report.Networks,
		Violation: report.Violation,
		Result:    report.Result,
	}
}

// RenderAccount writes the new account in JSON format
func (r *JSONRenderer) RenderAccount(w io.Writer, account *types.NewAccount) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newAccountOutput(account))
}

// RenderCheck writes a check report in JSON format
func (r *JSONRenderer) RenderCheck(w io.Writer, report *types.CheckReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newCheckOutput(report))
}
