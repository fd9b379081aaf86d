package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// Error codes surfaced to the calling agent. Every failure carries a code
// plus a detail string naming the offending field or id, so the agent can
// correct and resubmit.
const (
	codeInvalidArgument    = "invalid_argument"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeStorageUnavailable = "storage_unavailable"
)

type errorPayload struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// toolJSON renders a successful result as pretty-printed JSON content.
func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return storeError(fmt.Errorf("marshal result: %w", err)), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// storeError classifies a repository error into one of the reportable
// kinds and renders it as a structured error result. Unexpected failures
// surface as storage_unavailable: retryable, never swallowed.
func storeError(err error) *mcp.CallToolResult {
	code := codeStorageUnavailable
	switch {
	case errors.Is(err, storage.ErrValidation):
		code = codeInvalidArgument
	case errors.Is(err, storage.ErrNotFound):
		code = codeNotFound
	case errors.Is(err, storage.ErrConflict):
		code = codeConflict
	}
	return errorResult(code, err.Error())
}

// argError reports a missing or malformed argument caught before storage
// is touched.
func argError(format string, args ...any) *mcp.CallToolResult {
	return errorResult(codeInvalidArgument, fmt.Sprintf(format, args...))
}

func errorResult(code, detail string) *mcp.CallToolResult {
	data, _ := json.Marshal(errorPayload{Status: "error", Error: code, Detail: detail})
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}
