package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// unknownAccountCause is the cause name nodes use for absent accounts
const unknownAccountCause = "UNKNOWN_ACCOUNT"

// RPCError is a JSON-RPC error object returned by a node
type RPCError struct {
	Name    string          `json:"name"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Cause   *ErrorCause     `json:"cause,omitempty"`
}

// ErrorCause is the structured cause attached to newer node errors
type ErrorCause struct {
	Name string `json:"name"`
}

func (e *RPCError) Error() string {
	if e.Cause != nil && e.Cause.Name != "" {
		return fmt.Sprintf("rpc error %s: %s (%s)", e.Name, e.Message, e.Cause.Name)
	}
	return fmt.Sprintf("rpc error %s: %s", e.Name, e.Message)
}

// StatusError is returned for non-2xx responses without a JSON-RPC body
type StatusError struct {
	Network    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.Network, e.Status)
}

// IsUnknownAccount returns true if the error says the account does not exist
func IsUnknownAccount(err error) bool {
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	if rpcErr.Cause != nil && rpcErr.Cause.Name == unknownAccountCause {
		return true
	}
	// Older nodes only report it in the message text
	return strings.Contains(rpcErr.Message, "does not exist") || strings.Contains(string(rpcErr.Data), "does not exist")
}
