package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
)

// CallFunctionInput represents the MCP tool input for a direct function call.
type CallFunctionInput struct {
	ObjectPath string         `json:"object_path" jsonschema:"target object path"`
	Function   string         `json:"function" jsonschema:"function name to invoke"`
	Parameters map[string]any `json:"parameters,omitempty" jsonschema:"function parameters"`
}

// CallFunctionResult represents the MCP tool output for a direct function call.
type CallFunctionResult struct {
	Status     int    `json:"status" jsonschema:"HTTP status from the host"`
	ResultJSON string `json:"result_json,omitempty" jsonschema:"function result payload as JSON"`
}

// CallFunctionTool defines the MCP tool schema for direct function calls.
func CallFunctionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "call_function",
		Description: "Invokes a function on a remote object. The call is transaction-generating so it appears in the host's undo history.",
	}
}

// CallFunctionHandler executes a direct function call.
func CallFunctionHandler(client RemoteClient) mcp.ToolHandlerFor[CallFunctionInput, CallFunctionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CallFunctionInput) (*mcp.CallToolResult, CallFunctionResult, error) {
		if strings.TrimSpace(input.ObjectPath) == "" || strings.TrimSpace(input.Function) == "" {
			return nil, CallFunctionResult{}, fmt.Errorf("object path and function are required")
		}

		env, err := client.CallFunction(ctx, input.ObjectPath, input.Function, input.Parameters)
		if err != nil {
			return nil, CallFunctionResult{}, err
		}
		if !env.OK {
			return nil, CallFunctionResult{}, errors.New(errors.CodeHostReported,
				fmt.Sprintf("%s.%s failed (status %d): %s", input.ObjectPath, input.Function, env.Status, env.ErrorMessage()))
		}

		payload := marshalPayload(env.Data)
		report := fmt.Sprintf("%s.%s: %s", input.ObjectPath, input.Function, payload)
		return textResult(report), CallFunctionResult{Status: env.Status, ResultJSON: payload}, nil
	}
}

// GetPropertyInput represents the MCP tool input for a property read.
type GetPropertyInput struct {
	ObjectPath string `json:"object_path" jsonschema:"target object path"`
	Property   string `json:"property" jsonschema:"property name to read"`
}

// GetPropertyResult represents the MCP tool output for a property read.
type GetPropertyResult struct {
	Status    int    `json:"status" jsonschema:"HTTP status from the host"`
	ValueJSON string `json:"value_json,omitempty" jsonschema:"property value as JSON"`
}

// GetPropertyTool defines the MCP tool schema for property reads.
func GetPropertyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_property",
		Description: "Reads a property value from a remote object.",
	}
}

// GetPropertyHandler executes a property read.
func GetPropertyHandler(client RemoteClient) mcp.ToolHandlerFor[GetPropertyInput, GetPropertyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetPropertyInput) (*mcp.CallToolResult, GetPropertyResult, error) {
		if strings.TrimSpace(input.ObjectPath) == "" || strings.TrimSpace(input.Property) == "" {
			return nil, GetPropertyResult{}, fmt.Errorf("object path and property are required")
		}

		env, err := client.GetProperty(ctx, input.ObjectPath, input.Property)
		if err != nil {
			return nil, GetPropertyResult{}, err
		}
		if !env.OK {
			return nil, GetPropertyResult{}, errors.New(errors.CodeHostReported,
				fmt.Sprintf("read %s on %s failed (status %d): %s", input.Property, input.ObjectPath, env.Status, env.ErrorMessage()))
		}

		payload := marshalPayload(env.Data)
		report := fmt.Sprintf("%s.%s = %s", input.ObjectPath, input.Property, payload)
		return textResult(report), GetPropertyResult{Status: env.Status, ValueJSON: payload}, nil
	}
}

// SetPropertyInput represents the MCP tool input for a property write.
type SetPropertyInput struct {
	ObjectPath string `json:"object_path" jsonschema:"target object path"`
	Property   string `json:"property" jsonschema:"property name to write"`
	Value      any    `json:"value" jsonschema:"value to write"`
}

// SetPropertyResult represents the MCP tool output for a property write.
type SetPropertyResult struct {
	Status int `json:"status" jsonschema:"HTTP status from the host"`
}

// SetPropertyTool defines the MCP tool schema for property writes.
func SetPropertyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_property",
		Description: "Writes a property value on a remote object.",
	}
}

// SetPropertyHandler executes a property write.
func SetPropertyHandler(client RemoteClient) mcp.ToolHandlerFor[SetPropertyInput, SetPropertyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetPropertyInput) (*mcp.CallToolResult, SetPropertyResult, error) {
		if strings.TrimSpace(input.ObjectPath) == "" || strings.TrimSpace(input.Property) == "" {
			return nil, SetPropertyResult{}, fmt.Errorf("object path and property are required")
		}

		env, err := client.SetProperty(ctx, input.ObjectPath, input.Property, input.Value)
		if err != nil {
			return nil, SetPropertyResult{}, err
		}
		if !env.OK {
			return nil, SetPropertyResult{}, errors.New(errors.CodeHostReported,
				fmt.Sprintf("write %s on %s failed (status %d): %s", input.Property, input.ObjectPath, env.Status, env.ErrorMessage()))
		}

		report := fmt.Sprintf("set %s on %s", input.Property, input.ObjectPath)
		return textResult(report), SetPropertyResult{Status: env.Status}, nil
	}
}

// DescribeObjectInput represents the MCP tool input for object introspection.
type DescribeObjectInput struct {
	ObjectPath string `json:"object_path" jsonschema:"object path to describe"`
}

// DescribeObjectResult represents the MCP tool output for object introspection.
type DescribeObjectResult struct {
	DescriptionJSON string `json:"description_json" jsonschema:"structured property/function dump as JSON"`
}

// DescribeObjectTool defines the MCP tool schema for object introspection.
func DescribeObjectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "describe_object",
		Description: "Returns the host's structured dump of an object's properties and functions.",
	}
}

// DescribeObjectHandler executes an object introspection request.
func DescribeObjectHandler(client RemoteClient) mcp.ToolHandlerFor[DescribeObjectInput, DescribeObjectResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DescribeObjectInput) (*mcp.CallToolResult, DescribeObjectResult, error) {
		if strings.TrimSpace(input.ObjectPath) == "" {
			return nil, DescribeObjectResult{}, fmt.Errorf("object path is required")
		}

		env, err := client.Describe(ctx, input.ObjectPath)
		if err != nil {
			return nil, DescribeObjectResult{}, err
		}
		if !env.OK {
			return nil, DescribeObjectResult{}, errors.New(errors.CodeHostReported,
				fmt.Sprintf("describe %s failed (status %d): %s", input.ObjectPath, env.Status, env.ErrorMessage()))
		}

		payload := marshalPayload(env.Data)
		return textResult(payload), DescribeObjectResult{DescriptionJSON: payload}, nil
	}
}
