package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/scene/command"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage"
)

// RunEditorCommandInput represents the MCP tool input for a named command.
type RunEditorCommandInput struct {
	Command string `json:"command" jsonschema:"command name (play, stop, save, undo, redo, clear_selection, delete_selected, duplicate_selected)"`
}

// RunEditorCommandResult represents the MCP tool output for a named command.
type RunEditorCommandResult struct {
	Command     string `json:"command" jsonschema:"executed command name"`
	Description string `json:"description" jsonschema:"what the command did"`
}

// RunEditorCommandTool defines the MCP tool schema for named editor commands.
func RunEditorCommandTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "run_editor_command",
		Description: fmt.Sprintf(
			"Runs a named one-shot editor command. Available: %s.",
			strings.Join(command.Names(), ", ")),
	}
}

// RunEditorCommandHandler executes a named command lookup and call.
func RunEditorCommandHandler(client RemoteClient, recorder *Recorder) mcp.ToolHandlerFor[RunEditorCommandInput, RunEditorCommandResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunEditorCommandInput) (*mcp.CallToolResult, RunEditorCommandResult, error) {
		name := strings.TrimSpace(input.Command)
		description, err := command.Run(ctx, client, name)
		if err != nil {
			recorder.Record(ctx, "run_editor_command", storage.OutcomeFailed, err.Error())
			return nil, RunEditorCommandResult{}, err
		}

		report := fmt.Sprintf("%s: %s", name, description)
		recorder.Record(ctx, "run_editor_command", storage.OutcomeSuccess, report)
		return textResult(report), RunEditorCommandResult{Command: name, Description: description}, nil
	}
}
