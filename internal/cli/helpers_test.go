package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// fakeRPC answers view_account queries; ids listed in existing are found
type fakeRPC struct {
	*httptest.Server
	calls atomic.Int32
}

func newFakeRPC(t *testing.T, existing ...string) *fakeRPC {
	t.Helper()
	known := make(map[string]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}

	f := &fakeRPC{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)

		var req struct {
			ID     string `json:"id"`
			Params struct {
				AccountID string `json:"account_id"`
			} `json:"params"`
		}
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &req)

		w.Header().Set("Content-Type", "application/json")
		if known[req.Params.AccountID] {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%q,"result":{"amount":"1","locked":"0","code_hash":"11111111111111111111111111111111","storage_usage":100,"block_height":10,"block_hash":"h"}}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%q,"error":{"name":"HANDLER_ERROR","cause":{"name":"UNKNOWN_ACCOUNT"},"code":-32000,"message":"Server error"}}`, req.ID)
	}))
	t.Cleanup(f.Server.Close)
	return f
}

// writeConfig writes a config with a localnet and a testnet, both served by rpcURL
func writeConfig(t *testing.T, rpcURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".nearacct.hcl")
	content := fmt.Sprintf(`version = 1

network "localnet" {
  rpc_url = %q
}

network "testnet" {
  rpc_url = %q
  timeout = "5s"
}
`, rpcURL, rpcURL)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// resetFlags restores package-level flag state and scripts the prompt input
func resetFlags(t *testing.T, input string) {
	t.Helper()
	configFlag = ""
	networkFlag = nil
	formatFlag = ""
	outputFlag = ""
	colorFlag = ""
	accountIDFlag = ""
	initialBalanceFlag = ""
	checkModeFlag = "ask"
	logLevelFlag = ""
	forceFlag = false

	oldIn, oldOut, oldLog := promptIn, promptOut, logOutput
	promptIn = strings.NewReader(input)
	promptOut = io.Discard
	logOutput = io.Discard
	t.Cleanup(func() {
		promptIn, promptOut, logOutput = oldIn, oldOut, oldLog
	})
}

// captureStdout runs fn and returns what it printed to stdout
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	out, _ := io.ReadAll(r)
	return string(out)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}
