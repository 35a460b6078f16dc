package domain

import (
	"context"
	"net/http"

	"github.com/scenebridge/scenebridge/internal/remote"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage"
)

// fakeRemote answers every remote operation from fixed envelopes and records
// the functions invoked, in order.
type fakeRemote struct {
	calls        []string
	callEnv      map[string]remote.Envelope
	callErr      map[string]error
	defaultOK    remote.Envelope
	batchEntries []remote.BatchRequestEntry
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		callEnv:   map[string]remote.Envelope{},
		callErr:   map[string]error{},
		defaultOK: remote.Envelope{OK: true, Status: http.StatusOK, Data: map[string]any{}},
	}
}

func (f *fakeRemote) answer(name string) (remote.Envelope, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.callErr[name]; ok {
		return remote.Envelope{}, err
	}
	if env, ok := f.callEnv[name]; ok {
		return env, nil
	}
	if name == "SpawnActorFromClass" {
		return remote.Envelope{OK: true, Status: http.StatusOK,
			Data: map[string]any{"ReturnValue": "/Game/Maps/Main.Main:PersistentLevel.StaticMeshActor_0"}}, nil
	}
	return f.defaultOK, nil
}

func (f *fakeRemote) CallFunction(_ context.Context, _, functionName string, _ map[string]any) (remote.Envelope, error) {
	return f.answer(functionName)
}

func (f *fakeRemote) SetProperty(_ context.Context, _, propertyName string, _ any) (remote.Envelope, error) {
	return f.answer("set:" + propertyName)
}

func (f *fakeRemote) GetProperty(_ context.Context, _, propertyName string) (remote.Envelope, error) {
	return f.answer("get:" + propertyName)
}

func (f *fakeRemote) Describe(_ context.Context, _ string) (remote.Envelope, error) {
	return f.answer("describe")
}

func (f *fakeRemote) Info(_ context.Context) (remote.Envelope, error) {
	return f.answer("info")
}

func (f *fakeRemote) Search(_ context.Context, _ string, _ *remote.SearchFilter, _ int) (remote.Envelope, error) {
	return f.answer("search")
}

func (f *fakeRemote) Batch(_ context.Context, entries []remote.BatchRequestEntry) (remote.Envelope, error) {
	f.batchEntries = entries
	return f.answer("batch")
}

// fakeStore is an in-memory InvocationStore.
type fakeStore struct {
	records []storage.InvocationRecord
	putErr  error
}

func (f *fakeStore) PutInvocation(_ context.Context, record storage.InvocationRecord) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeStore) ListRecentInvocations(_ context.Context, limit int) ([]storage.InvocationRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	out := make([]storage.InvocationRecord, 0, limit)
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}
