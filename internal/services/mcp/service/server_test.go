package service

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/remote"
)

// failingTransport returns a connection error for tests.
type failingTransport struct{}

// Connect returns the configured error for tests.
func (f failingTransport) Connect(context.Context) (mcp.Connection, error) {
	return nil, errors.New("transport failure")
}

func TestNewServerRegistersTools(t *testing.T) {
	server := newServer(remote.New("127.0.0.1:30010"), nil)
	if server.mcpServer == nil {
		t.Fatal("expected mcp server to be configured")
	}
	if server.client == nil {
		t.Fatal("expected remote client to be configured")
	}
}

func TestServeRequiresServer(t *testing.T) {
	var nilServer *Server
	if err := nilServer.serve(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for nil server")
	}

	emptyServer := &Server{}
	if err := emptyServer.serve(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for missing mcp server")
	}
}

func TestServeReportsTransportFailure(t *testing.T) {
	server := newServer(remote.New("127.0.0.1:30010"), nil)
	if err := server.serve(context.Background(), failingTransport{}); err == nil {
		t.Fatal("expected error from failing transport")
	}
}

func TestRunRequiresRemoteAddr(t *testing.T) {
	if err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for missing remote address")
	}
}
