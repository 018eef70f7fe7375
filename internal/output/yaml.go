package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jokarl/nearacct/internal/types"
)

// YAMLRenderer renders output in YAML format
type YAMLRenderer struct{}

// RenderAccount writes the new account in YAML format
func (r *YAMLRenderer) RenderAccount(w io.Writer, account *types.NewAccount) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newAccountOutput(account)); err != nil {
		return err
	}
	return encoder.Close()
}

// RenderCheck writes a check report in YAML format
func (r *YAMLRenderer) RenderCheck(w io.Writer, report *types.CheckReport) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newCheckOutput(report)); err != nil {
		return err
	}
	return encoder.Close()
}
