package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
)

const (
	defaultOperationLogLimit = 20
	maxOperationLogLimit     = 100
)

// OperationLogInput represents the MCP tool input for listing recent
// invocations.
type OperationLogInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum records to return (default 20, max 100)"`
}

// OperationLogEntry is one audit record in the tool output.
type OperationLogEntry struct {
	ID        string `json:"id" jsonschema:"record identifier"`
	Tool      string `json:"tool" jsonschema:"tool that ran"`
	Outcome   string `json:"outcome" jsonschema:"SUCCESS, DEGRADED, or FAILED"`
	Report    string `json:"report" jsonschema:"the report the tool returned"`
	CreatedAt string `json:"created_at" jsonschema:"RFC3339 timestamp"`
}

// OperationLogResult represents the MCP tool output for listing recent
// invocations.
type OperationLogResult struct {
	Entries []OperationLogEntry `json:"entries" jsonschema:"recent invocations, newest first"`
}

// OperationLogTool defines the MCP tool schema for the invocation audit log.
func OperationLogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "operation_log",
		Description: "Lists recent bridge tool invocations and their outcomes.",
	}
}

// OperationLogHandler lists recent invocation audit records.
func OperationLogHandler(recorder *Recorder) mcp.ToolHandlerFor[OperationLogInput, OperationLogResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OperationLogInput) (*mcp.CallToolResult, OperationLogResult, error) {
		store := recorder.Store()
		if store == nil {
			return nil, OperationLogResult{}, errors.New(errors.CodeStorage,
				"audit storage is not configured; set SCENEBRIDGE_AUDIT_DB")
		}

		limit := input.Limit
		if limit <= 0 {
			limit = defaultOperationLogLimit
		}
		if limit > maxOperationLogLimit {
			limit = maxOperationLogLimit
		}

		records, err := store.ListRecentInvocations(ctx, limit)
		if err != nil {
			return nil, OperationLogResult{}, errors.Wrap(errors.CodeStorage, "list invocations", err)
		}

		result := OperationLogResult{Entries: make([]OperationLogEntry, len(records))}
		var b strings.Builder
		fmt.Fprintf(&b, "%d recent invocation(s)\n", len(records))
		for i, record := range records {
			result.Entries[i] = OperationLogEntry{
				ID:        record.ID,
				Tool:      record.Tool,
				Outcome:   record.Outcome,
				Report:    record.Report,
				CreatedAt: record.CreatedAt.Format(time.RFC3339),
			}
			fmt.Fprintf(&b, "%s %s %s\n", result.Entries[i].CreatedAt, record.Tool, record.Outcome)
		}
		return textResult(b.String()), result, nil
	}
}
