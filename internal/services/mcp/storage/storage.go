// Package storage defines the invocation audit records persisted by the
// bridge and the store interface the MCP service consumes.
package storage

import (
	"context"
	"time"
)

// InvocationRecord is one persisted tool invocation.
type InvocationRecord struct {
	ID        string
	Tool      string
	Outcome   string
	Report    string
	CreatedAt time.Time
}

// Outcome values for InvocationRecord.
const (
	OutcomeSuccess  = "SUCCESS"
	OutcomeDegraded = "DEGRADED"
	OutcomeFailed   = "FAILED"
)

// InvocationStore persists and lists tool invocations.
type InvocationStore interface {
	PutInvocation(ctx context.Context, record InvocationRecord) error
	ListRecentInvocations(ctx context.Context, limit int) ([]InvocationRecord, error)
}
