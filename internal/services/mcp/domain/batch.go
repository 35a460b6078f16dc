package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/scene/batch"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage"
)

// BatchOperationInput is one tagged sub-operation of a batch.
type BatchOperationInput struct {
	Kind       string         `json:"kind" jsonschema:"operation kind: call or property_set"`
	ObjectPath string         `json:"object_path" jsonschema:"target object path"`
	Function   string         `json:"function,omitempty" jsonschema:"function name (kind call)"`
	Parameters map[string]any `json:"parameters,omitempty" jsonschema:"function parameters (kind call)"`
	Property   string         `json:"property,omitempty" jsonschema:"property name (kind property_set)"`
	Value      any            `json:"value,omitempty" jsonschema:"property value (kind property_set)"`
}

// BatchOperationsInput represents the MCP tool input for a batch submission.
type BatchOperationsInput struct {
	Operations []BatchOperationInput `json:"operations" jsonschema:"1 to 50 operations, executed as one wire-level batch"`
}

// BatchVerdictResult is the per-operation verdict, correlated by submission
// index.
type BatchVerdictResult struct {
	Index  int    `json:"index" jsonschema:"0-based submission index"`
	OK     bool   `json:"ok" jsonschema:"whether the operation succeeded"`
	Status int    `json:"status" jsonschema:"HTTP status for the operation, 0 when no response arrived"`
	Detail string `json:"detail,omitempty" jsonschema:"failure detail"`
}

// BatchOperationsResult represents the MCP tool output for a batch submission.
type BatchOperationsResult struct {
	Verdicts  []BatchVerdictResult `json:"verdicts" jsonschema:"one verdict per submitted operation, in submission order"`
	Succeeded int                  `json:"succeeded" jsonschema:"number of successful operations"`
	Failed    int                  `json:"failed" jsonschema:"number of failed operations"`
}

// BatchOperationsTool defines the MCP tool schema for batch submissions.
func BatchOperationsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "batch_operations",
		Description: "Submits up to 50 function calls and property writes as one batched request and reports a verdict per operation. Operations are independent; one failure does not abort the rest.",
	}
}

// BatchOperationsHandler executes a batch submission.
func BatchOperationsHandler(client RemoteClient, recorder *Recorder) mcp.ToolHandlerFor[BatchOperationsInput, BatchOperationsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BatchOperationsInput) (*mcp.CallToolResult, BatchOperationsResult, error) {
		operations := make([]batch.Operation, len(input.Operations))
		for i, op := range input.Operations {
			operations[i] = batch.Operation{
				Kind:       batch.Kind(op.Kind),
				ObjectPath: op.ObjectPath,
				Function:   op.Function,
				Parameters: op.Parameters,
				Property:   op.Property,
				Value:      op.Value,
			}
		}

		verdicts, err := batch.Submit(ctx, client, operations)
		if err != nil {
			return nil, BatchOperationsResult{}, fmt.Errorf("batch rejected: %w", err)
		}

		result := BatchOperationsResult{Verdicts: make([]BatchVerdictResult, len(verdicts))}
		for i, verdict := range verdicts {
			result.Verdicts[i] = BatchVerdictResult{
				Index:  verdict.Index,
				OK:     verdict.OK,
				Status: verdict.Status,
				Detail: verdict.Detail,
			}
			if verdict.OK {
				result.Succeeded++
			} else {
				result.Failed++
			}
		}

		report := batchReport(result)
		outcome := storage.OutcomeSuccess
		switch {
		case result.Succeeded == 0:
			outcome = storage.OutcomeFailed
		case result.Failed > 0:
			outcome = storage.OutcomeDegraded
		}
		recorder.Record(ctx, "batch_operations", outcome, report)
		return textResult(report), result, nil
	}
}

func batchReport(result BatchOperationsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch of %d: %d succeeded, %d failed\n", len(result.Verdicts), result.Succeeded, result.Failed)
	for _, verdict := range result.Verdicts {
		if verdict.OK {
			fmt.Fprintf(&b, "%d. ok (status %d)\n", verdict.Index, verdict.Status)
			continue
		}
		fmt.Fprintf(&b, "%d. failed: %s\n", verdict.Index, verdict.Detail)
	}
	return b.String()
}
