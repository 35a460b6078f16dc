package domain

import (
	"context"
	"log"
	"time"

	"github.com/scenebridge/scenebridge/internal/platform/id"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage"
)

// Recorder appends invocation audit records. A nil Recorder or nil store
// disables recording; storage failures are logged and never fail the tool
// call they describe.
type Recorder struct {
	store storage.InvocationStore
}

// NewRecorder creates a recorder backed by store. A nil store is allowed.
func NewRecorder(store storage.InvocationStore) *Recorder {
	return &Recorder{store: store}
}

// Record persists one invocation outcome.
func (r *Recorder) Record(ctx context.Context, tool, outcome, report string) {
	if r == nil || r.store == nil {
		return
	}
	recordID, err := id.NewID()
	if err != nil {
		log.Printf("audit id generation failed: %v", err)
		return
	}
	record := storage.InvocationRecord{
		ID:        recordID,
		Tool:      tool,
		Outcome:   outcome,
		Report:    report,
		CreatedAt: time.Now(),
	}
	if err := r.store.PutInvocation(ctx, record); err != nil {
		log.Printf("audit record for %s failed: %v", tool, err)
	}
}

// Store exposes the underlying store for the operation_log tool.
func (r *Recorder) Store() storage.InvocationStore {
	if r == nil {
		return nil
	}
	return r.store
}
