// Package batch collapses an ordered list of heterogeneous operations into
// one wire-level batch request and demultiplexes the response into
// per-operation verdicts.
package batch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scenebridge/scenebridge/internal/remote"
)

// MaxOperations bounds one batch submission.
const MaxOperations = 50

// Kind tags an operation variant.
type Kind string

const (
	// KindCall invokes a remote function.
	KindCall Kind = "call"
	// KindPropertySet writes a property value.
	KindPropertySet Kind = "property_set"
)

// Operation is one tagged sub-operation. Exactly the fields of its kind are
// meaningful: Function and Parameters for KindCall, Property and Value for
// KindPropertySet.
type Operation struct {
	Kind       Kind
	ObjectPath string
	Function   string
	Parameters map[string]any
	Property   string
	Value      any
}

// Verdict is the per-operation outcome, correlated back to the operation's
// 0-based submission index.
type Verdict struct {
	Index  int
	OK     bool
	Status int
	Detail string
}

// Submitter is the single transport operation a batch needs.
type Submitter interface {
	Batch(ctx context.Context, entries []remote.BatchRequestEntry) (remote.Envelope, error)
}

// Submit translates operations into one batch round trip and recovers one
// verdict per operation. If the round trip itself fails there is no partial
// knowledge, so every operation is reported failed.
func Submit(ctx context.Context, client Submitter, operations []Operation) ([]Verdict, error) {
	if len(operations) == 0 {
		return nil, fmt.Errorf("batch requires at least one operation")
	}
	if len(operations) > MaxOperations {
		return nil, fmt.Errorf("batch size %d exceeds limit of %d", len(operations), MaxOperations)
	}

	entries := make([]remote.BatchRequestEntry, 0, len(operations))
	for index, op := range operations {
		entry, err := translate(index, op)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	env, err := client.Batch(ctx, entries)
	if err != nil {
		return allFailed(len(operations), err.Error()), nil
	}
	if !env.OK {
		return allFailed(len(operations),
			fmt.Sprintf("batch rejected (status %d): %s", env.Status, env.ErrorMessage())), nil
	}

	decoded, err := remote.DecodeBatchResponse(env)
	if err != nil {
		return allFailed(len(operations), fmt.Sprintf("unreadable batch response: %v", err)), nil
	}

	return correlate(len(operations), decoded.Responses), nil
}

// translate maps one tagged operation to the transport's expected shape,
// tagging it with its submission index as RequestId.
func translate(index int, op Operation) (remote.BatchRequestEntry, error) {
	switch op.Kind {
	case KindCall:
		if op.ObjectPath == "" || op.Function == "" {
			return remote.BatchRequestEntry{}, fmt.Errorf("operation %d: call requires object path and function", index)
		}
		return remote.BatchRequestEntry{
			RequestID: index,
			URL:       remote.ObjectCallPath,
			Verb:      http.MethodPut,
			Body: remote.CallRequest{
				ObjectPath:          op.ObjectPath,
				FunctionName:        op.Function,
				Parameters:          op.Parameters,
				GenerateTransaction: true,
			},
		}, nil
	case KindPropertySet:
		if op.ObjectPath == "" || op.Property == "" {
			return remote.BatchRequestEntry{}, fmt.Errorf("operation %d: property set requires object path and property", index)
		}
		return remote.BatchRequestEntry{
			RequestID: index,
			URL:       remote.ObjectPropertyPath,
			Verb:      http.MethodPut,
			Body: remote.PropertyRequest{
				ObjectPath:    op.ObjectPath,
				PropertyName:  op.Property,
				PropertyValue: op.Value,
			},
		}, nil
	default:
		return remote.BatchRequestEntry{}, fmt.Errorf("operation %d: unsupported kind %q", index, op.Kind)
	}
}

// correlate matches response entries to submission indexes by RequestId,
// falling back to positional order when the host omits ids. A submitted
// operation with no matching entry is reported failed; absence is never
// read as success.
func correlate(count int, responses []remote.BatchResponseEntry) []Verdict {
	verdicts := make([]Verdict, count)
	for i := range verdicts {
		verdicts[i] = Verdict{Index: i, Status: 0, Detail: "no response entry for this operation"}
	}

	for position, entry := range responses {
		index := position
		if entry.RequestID != nil {
			index = *entry.RequestID
		}
		if index < 0 || index >= count {
			continue
		}
		verdict := Verdict{
			Index:  index,
			OK:     entry.StatusCode >= 200 && entry.StatusCode < 300,
			Status: entry.StatusCode,
		}
		if !verdict.OK {
			verdict.Detail = entryDetail(entry)
		}
		verdicts[index] = verdict
	}
	return verdicts
}

func entryDetail(entry remote.BatchResponseEntry) string {
	if payload, ok := entry.ResponseBody.(map[string]any); ok {
		for _, key := range []string{"errorMessage", "error", "message"} {
			if value, ok := payload[key].(string); ok && value != "" {
				return value
			}
		}
	}
	return fmt.Sprintf("host returned status %d", entry.StatusCode)
}

func allFailed(count int, detail string) []Verdict {
	verdicts := make([]Verdict, count)
	for i := range verdicts {
		verdicts[i] = Verdict{Index: i, Detail: detail}
	}
	return verdicts
}
