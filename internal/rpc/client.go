// Package rpc implements account existence lookups against NEAR JSON-RPC endpoints.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/nearacct/internal/types"
)

// DefaultTimeout bounds a single request when the network sets none
const DefaultTimeout = 30 * time.Second

const userAgent = "nearacct"

// Client queries one network for account state
type Client struct {
	network types.Network
	http    *resty.Client
	logger  hclog.Logger
	nextID  int
}

// NewClient creates a client for the given network
func NewClient(network types.Network, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	timeout := network.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	http := resty.New().
		SetBaseURL(strings.TrimSuffix(network.RPCURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{
		network: network,
		http:    http,
		logger:  logger.Named(network.Name),
	}
}

// Name returns the name of the network this client talks to
func (c *Client) Name() string {
	return c.network.Name
}

// Network returns the network this client talks to
func (c *Client) Network() *types.Network {
	n := c.network
	return &n
}

// request is a JSON-RPC 2.0 request envelope
type request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// response is a JSON-RPC 2.0 response envelope
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// viewAccountParams selects the latest final state of an account
type viewAccountParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
}

// queryResult covers both a successful view_account result and the legacy
// form where the node reports the failure inside result.error.
type queryResult struct {
	types.AccountState
	Error string `json:"error,omitempty"`
}

// CheckExistence looks up the account at the latest final block.
// A nil error means the account exists.
func (c *Client) CheckExistence(ctx context.Context, id types.AccountID) (*types.AccountState, error) {
	c.nextID++
	req := request{
		JSONRPC: "2.0",
		ID:      fmt.Sprintf("nearacct-%d", c.nextID),
		Method:  "query",
		Params: viewAccountParams{
			RequestType: "view_account",
			Finality:    "final",
			AccountID:   id.String(),
		},
	}

	c.logger.Trace("sending view_account", "account_id", id, "url", c.network.RPCURL)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.network.Name, err)
	}

	if resp.IsError() {
		// Nodes answer handler errors with non-2xx codes but still carry a JSON-RPC body
		if rpcErr := decodeError(resp.Body()); rpcErr != nil {
			return nil, rpcErr
		}
		return nil, &StatusError{Network: c.network.Name, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	var envelope response
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("malformed response from %s: %w", c.network.Name, err)
	}
	if envelope.Error != nil {
		return nil, envelope.Error
	}
	if len(envelope.Result) == 0 {
		return nil, fmt.Errorf("malformed response from %s: missing result", c.network.Name)
	}

	var result queryResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, fmt.Errorf("malformed result from %s: %w", c.network.Name, err)
	}
	if result.Error != "" {
		return nil, &RPCError{Name: "HANDLER_ERROR", Message: result.Error}
	}

	c.logger.Debug("account found", "account_id", id, "block_height", result.BlockHeight)
	return &result.AccountState, nil
}

func decodeError(body []byte) *RPCError {
	var envelope response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	return envelope.Error
}
