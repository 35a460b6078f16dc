package batch_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
	"github.com/scenebridge/scenebridge/internal/remote"
	"github.com/scenebridge/scenebridge/internal/scene/batch"
)

type fakeSubmitter struct {
	entries []remote.BatchRequestEntry
	env     remote.Envelope
	err     error
}

func (f *fakeSubmitter) Batch(_ context.Context, entries []remote.BatchRequestEntry) (remote.Envelope, error) {
	f.entries = entries
	return f.env, f.err
}

func responseEnvelope(entries ...map[string]any) remote.Envelope {
	list := make([]any, len(entries))
	for i, e := range entries {
		list[i] = e
	}
	return remote.Envelope{OK: true, Status: http.StatusOK, Data: map[string]any{"Responses": list}}
}

func callOp(path string) batch.Operation {
	return batch.Operation{Kind: batch.KindCall, ObjectPath: path, Function: "DoThing"}
}

func TestSubmitTagsSequentialRequestIds(t *testing.T) {
	submitter := &fakeSubmitter{env: responseEnvelope(
		map[string]any{"RequestId": 0, "StatusCode": 200},
		map[string]any{"RequestId": 1, "StatusCode": 200},
	)}
	ops := []batch.Operation{
		callOp("/a"),
		{Kind: batch.KindPropertySet, ObjectPath: "/b", Property: "Mobility", Value: "Movable"},
	}

	verdicts, err := batch.Submit(context.Background(), submitter, ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(submitter.entries) != 2 {
		t.Fatalf("expected one wire batch of 2 entries, got %d", len(submitter.entries))
	}
	for i, entry := range submitter.entries {
		if entry.RequestID != i {
			t.Errorf("entry %d has RequestId %d", i, entry.RequestID)
		}
		if entry.Verb != http.MethodPut {
			t.Errorf("entry %d has verb %s", i, entry.Verb)
		}
	}
	if submitter.entries[0].URL != remote.ObjectCallPath {
		t.Errorf("call entry targets %s", submitter.entries[0].URL)
	}
	if submitter.entries[1].URL != remote.ObjectPropertyPath {
		t.Errorf("property entry targets %s", submitter.entries[1].URL)
	}
	if len(verdicts) != 2 || !verdicts[0].OK || !verdicts[1].OK {
		t.Fatalf("expected 2 ok verdicts, got %+v", verdicts)
	}
}

func TestSubmitCorrelatesReorderedResponses(t *testing.T) {
	// Host returns entries out of submission order; index 1 failed.
	submitter := &fakeSubmitter{env: responseEnvelope(
		map[string]any{"RequestId": 2, "StatusCode": 200},
		map[string]any{"RequestId": 0, "StatusCode": 200},
		map[string]any{"RequestId": 1, "StatusCode": 404, "ResponseBody": map[string]any{"errorMessage": "no such object"}},
	)}
	ops := []batch.Operation{callOp("/a"), callOp("/missing"), callOp("/c")}

	verdicts, err := batch.Submit(context.Background(), submitter, ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(verdicts) != 3 {
		t.Fatalf("expected 3 verdicts, got %d", len(verdicts))
	}
	if !verdicts[0].OK || !verdicts[2].OK {
		t.Fatalf("expected indexes 0 and 2 to succeed: %+v", verdicts)
	}
	if verdicts[1].OK || verdicts[1].Status != 404 || verdicts[1].Detail != "no such object" {
		t.Fatalf("expected index 1 to fail with host detail, got %+v", verdicts[1])
	}
}

func TestSubmitFallsBackToPositionalIndexing(t *testing.T) {
	submitter := &fakeSubmitter{env: responseEnvelope(
		map[string]any{"StatusCode": 200},
		map[string]any{"StatusCode": 500},
	)}
	verdicts, err := batch.Submit(context.Background(), submitter, []batch.Operation{callOp("/a"), callOp("/b")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdicts[0].OK {
		t.Fatalf("expected positional index 0 ok, got %+v", verdicts[0])
	}
	if verdicts[1].OK || verdicts[1].Status != 500 {
		t.Fatalf("expected positional index 1 failed, got %+v", verdicts[1])
	}
}

func TestSubmitTransportFailureFailsAll(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New(errors.CodeConnection, "cannot reach host")}
	ops := []batch.Operation{callOp("/a"), callOp("/b"), callOp("/c"), callOp("/d")}

	verdicts, err := batch.Submit(context.Background(), submitter, ops)
	if err != nil {
		t.Fatalf("transport failure becomes verdicts, not an error: %v", err)
	}
	if len(verdicts) != len(ops) {
		t.Fatalf("expected %d verdicts, got %d", len(ops), len(verdicts))
	}
	for _, verdict := range verdicts {
		if verdict.OK {
			t.Fatalf("no verdict may succeed when the round trip failed: %+v", verdict)
		}
	}
}

func TestSubmitTruncatedResponseMarksMissingAsFailed(t *testing.T) {
	submitter := &fakeSubmitter{env: responseEnvelope(
		map[string]any{"RequestId": 0, "StatusCode": 200},
	)}
	verdicts, err := batch.Submit(context.Background(), submitter, []batch.Operation{callOp("/a"), callOp("/b")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdicts[0].OK {
		t.Fatalf("expected index 0 ok, got %+v", verdicts[0])
	}
	if verdicts[1].OK || verdicts[1].Detail == "" {
		t.Fatalf("missing entry must be a failed verdict with detail, got %+v", verdicts[1])
	}
}

func TestSubmitSizeLimits(t *testing.T) {
	submitter := &fakeSubmitter{env: responseEnvelope()}

	if _, err := batch.Submit(context.Background(), submitter, nil); err == nil {
		t.Fatal("expected error for empty batch")
	}

	ops := make([]batch.Operation, batch.MaxOperations+1)
	for i := range ops {
		ops[i] = callOp(fmt.Sprintf("/obj/%d", i))
	}
	if _, err := batch.Submit(context.Background(), submitter, ops); err == nil {
		t.Fatal("expected error for oversized batch")
	}
	if submitter.entries != nil {
		t.Fatal("size violations must be rejected before any network attempt")
	}
}

func TestSubmitRejectsIncompleteOperations(t *testing.T) {
	submitter := &fakeSubmitter{env: responseEnvelope()}
	_, err := batch.Submit(context.Background(), submitter, []batch.Operation{
		{Kind: batch.KindCall, ObjectPath: "/a"},
	})
	if err == nil {
		t.Fatal("expected error for call without function")
	}
	_, err = batch.Submit(context.Background(), submitter, []batch.Operation{
		{Kind: "mystery", ObjectPath: "/a"},
	})
	if err == nil {
		t.Fatal("expected error for unsupported kind")
	}
}
