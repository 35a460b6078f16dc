package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
	"github.com/scenebridge/scenebridge/internal/remote"
)

// RemoteInfoInput represents the MCP tool input for host discovery.
type RemoteInfoInput struct{}

// RemoteInfoResult represents the MCP tool output for host discovery.
type RemoteInfoResult struct {
	InfoJSON string `json:"info_json" jsonschema:"free-form connectivity and version info as JSON"`
}

// RemoteInfoTool defines the MCP tool schema for host discovery.
func RemoteInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remote_info",
		Description: "Checks connectivity to the scene host and returns its version info.",
	}
}

// RemoteInfoHandler executes a host discovery request.
func RemoteInfoHandler(client RemoteClient) mcp.ToolHandlerFor[RemoteInfoInput, RemoteInfoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ RemoteInfoInput) (*mcp.CallToolResult, RemoteInfoResult, error) {
		env, err := client.Info(ctx)
		if err != nil {
			return nil, RemoteInfoResult{}, err
		}
		if !env.OK {
			return nil, RemoteInfoResult{}, errors.New(errors.CodeHostReported,
				fmt.Sprintf("host info failed (status %d): %s", env.Status, env.ErrorMessage()))
		}

		payload := marshalPayload(env.Data)
		return textResult("Host reachable: " + payload), RemoteInfoResult{InfoJSON: payload}, nil
	}
}

// SearchAssetsInput represents the MCP tool input for an asset search.
type SearchAssetsInput struct {
	Query        string   `json:"query" jsonschema:"search query"`
	ClassNames   []string `json:"class_names,omitempty" jsonschema:"optional class name filter"`
	PackagePaths []string `json:"package_paths,omitempty" jsonschema:"optional package path filter"`
	Limit        int      `json:"limit,omitempty" jsonschema:"maximum matches to return (default 50)"`
}

// SearchAssetsResult represents the MCP tool output for an asset search.
type SearchAssetsResult struct {
	MatchesJSON string `json:"matches_json" jsonschema:"list of matches as JSON"`
}

// SearchAssetsTool defines the MCP tool schema for asset searches.
func SearchAssetsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_assets",
		Description: "Searches the host's asset index by query, optionally filtered by class name or package path.",
	}
}

// SearchAssetsHandler executes an asset search.
func SearchAssetsHandler(client RemoteClient) mcp.ToolHandlerFor[SearchAssetsInput, SearchAssetsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchAssetsInput) (*mcp.CallToolResult, SearchAssetsResult, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, SearchAssetsResult{}, fmt.Errorf("query is required")
		}
		limit := input.Limit
		if limit <= 0 {
			limit = 50
		}

		var filter *remote.SearchFilter
		if len(input.ClassNames) > 0 || len(input.PackagePaths) > 0 {
			filter = &remote.SearchFilter{ClassNames: input.ClassNames, PackagePaths: input.PackagePaths}
		}

		env, err := client.Search(ctx, input.Query, filter, limit)
		if err != nil {
			return nil, SearchAssetsResult{}, err
		}
		if !env.OK {
			return nil, SearchAssetsResult{}, errors.New(errors.CodeHostReported,
				fmt.Sprintf("asset search failed (status %d): %s", env.Status, env.ErrorMessage()))
		}

		payload := marshalPayload(env.Data)
		return textResult(payload), SearchAssetsResult{MatchesJSON: payload}, nil
	}
}
