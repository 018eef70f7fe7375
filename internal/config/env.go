package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/joho/godotenv"
	"github.com/zclconf/go-cty/cty"
)

// dotenvFile is read from the config file's directory when present
const dotenvFile = ".env"

// newEvalContext exposes environment variables to the config as env.NAME.
// Variables already set in the process take precedence over the .env file.
func newEvalContext(dir string) (*hcl.EvalContext, error) {
	vars := make(map[string]cty.Value)

	dotenv, err := godotenv.Read(filepath.Join(dir, dotenvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", dotenvFile, err)
	}
	for k, v := range dotenv {
		vars[k] = cty.StringVal(v)
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}, nil
}
