package domain

import (
	"context"

	"github.com/scenebridge/scenebridge/internal/remote"
)

// RemoteClient is the remote surface the tool handlers drive. The concrete
// implementation is remote.Client; tests substitute fakes.
type RemoteClient interface {
	CallFunction(ctx context.Context, objectPath, functionName string, parameters map[string]any) (remote.Envelope, error)
	SetProperty(ctx context.Context, objectPath, propertyName string, value any) (remote.Envelope, error)
	GetProperty(ctx context.Context, objectPath, propertyName string) (remote.Envelope, error)
	Describe(ctx context.Context, objectPath string) (remote.Envelope, error)
	Info(ctx context.Context) (remote.Envelope, error)
	Search(ctx context.Context, query string, filter *remote.SearchFilter, limit int) (remote.Envelope, error)
	Batch(ctx context.Context, entries []remote.BatchRequestEntry) (remote.Envelope, error)
}
