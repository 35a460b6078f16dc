// Package service assembles the MCP server for the scene bridge and serves
// it over stdio.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/remote"
	"github.com/scenebridge/scenebridge/internal/services/mcp/domain"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Scene Bridge MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config holds the MCP service configuration.
type Config struct {
	// RemoteAddr is the scene host address as host:port.
	RemoteAddr string
	// Store is the optional invocation audit store; nil disables auditing.
	Store storage.InvocationStore
}

// Server hosts the MCP server and its remote client.
type Server struct {
	mcpServer *mcp.Server
	client    *remote.Client
}

// newServer creates the MCP tool bindings once. The remote client and the
// audit recorder are shared by every tool.
func newServer(client *remote.Client, store storage.InvocationStore) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	recorder := domain.NewRecorder(store)

	mcp.AddTool(mcpServer, domain.SpawnEntityTool(), domain.SpawnEntityHandler(client, recorder))
	mcp.AddTool(mcpServer, domain.BatchOperationsTool(), domain.BatchOperationsHandler(client, recorder))
	mcp.AddTool(mcpServer, domain.RunEditorCommandTool(), domain.RunEditorCommandHandler(client, recorder))
	mcp.AddTool(mcpServer, domain.CallFunctionTool(), domain.CallFunctionHandler(client))
	mcp.AddTool(mcpServer, domain.GetPropertyTool(), domain.GetPropertyHandler(client))
	mcp.AddTool(mcpServer, domain.SetPropertyTool(), domain.SetPropertyHandler(client))
	mcp.AddTool(mcpServer, domain.DescribeObjectTool(), domain.DescribeObjectHandler(client))
	mcp.AddTool(mcpServer, domain.SearchAssetsTool(), domain.SearchAssetsHandler(client))
	mcp.AddTool(mcpServer, domain.RemoteInfoTool(), domain.RemoteInfoHandler(client))
	mcp.AddTool(mcpServer, domain.OperationLogTool(), domain.OperationLogHandler(recorder))

	return &Server{mcpServer: mcpServer, client: client}
}

// Run is the service entrypoint; it blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.RemoteAddr == "" {
		return fmt.Errorf("remote host address is required")
	}
	server := newServer(remote.New(cfg.RemoteAddr), cfg.Store)
	return server.serve(ctx, &mcp.StdioTransport{})
}

// serve starts the MCP server on the provided transport. Context
// cancellation is the normal shutdown path, not an error.
func (s *Server) serve(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
