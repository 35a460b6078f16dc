package compose_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
	"github.com/scenebridge/scenebridge/internal/remote"
	"github.com/scenebridge/scenebridge/internal/scene/compose"
)

// fakeClient records calls in order and answers each from a script keyed by
// function or property name.
type fakeClient struct {
	sequence []string
	fail     map[string]remote.Envelope
	failErr  map[string]error
	spawnEnv *remote.Envelope
}

func okEnvelope() remote.Envelope {
	return remote.Envelope{OK: true, Status: http.StatusOK, Data: map[string]any{}}
}

func (f *fakeClient) CallFunction(_ context.Context, objectPath, functionName string, _ map[string]any) (remote.Envelope, error) {
	f.sequence = append(f.sequence, functionName)
	if err, ok := f.failErr[functionName]; ok {
		return remote.Envelope{}, err
	}
	if env, ok := f.fail[functionName]; ok {
		return env, nil
	}
	if functionName == "SpawnActorFromClass" {
		if f.spawnEnv != nil {
			return *f.spawnEnv, nil
		}
		return remote.Envelope{OK: true, Status: http.StatusOK,
			Data: map[string]any{"ReturnValue": "/Game/Maps/Main.Main:PersistentLevel.StaticMeshActor_0"}}, nil
	}
	return okEnvelope(), nil
}

func (f *fakeClient) SetProperty(_ context.Context, _, propertyName string, _ any) (remote.Envelope, error) {
	f.sequence = append(f.sequence, "set:"+propertyName)
	if env, ok := f.fail["set:"+propertyName]; ok {
		return env, nil
	}
	return okEnvelope(), nil
}

func TestSpawnFullSequenceOrder(t *testing.T) {
	client := &fakeClient{}
	result, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class:   "StaticMeshActor",
		Mesh:    "Cube",
		Physics: true,
		Label:   "Box1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"SpawnActorFromClass", "set:StaticMesh", "set:Mobility", "SetSimulatePhysics", "SetEnableGravity", "SetActorLabel"}
	if fmt.Sprint(client.sequence) != fmt.Sprint(want) {
		t.Fatalf("call order = %v, want %v", client.sequence, want)
	}
	if len(result.Steps) != 6 {
		t.Fatalf("expected 6 steps, got %d: %+v", len(result.Steps), result.Steps)
	}
	for i, step := range result.Steps {
		if !step.OK {
			t.Errorf("step %d (%s) unexpectedly failed: %s", i, step.Description, step.Detail)
		}
	}
	if result.EntityPath == "" {
		t.Fatal("expected created entity path")
	}
}

func TestSpawnOrderIndependentOfRequestFields(t *testing.T) {
	// Rotation and scale are declared after label in the fixed order even
	// though the request struct supplies everything at once.
	client := &fakeClient{}
	_, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class:    "cube-holder",
		Scale:    &compose.Vector{X: 2, Y: 2, Z: 2},
		Rotation: &compose.Rotator{Yaw: 90},
		Label:    "Ordered",
		Mesh:     "sphere",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"SpawnActorFromClass", "set:StaticMesh", "SetActorLabel", "SetActorRotation", "SetActorScale3D"}
	if fmt.Sprint(client.sequence) != fmt.Sprint(want) {
		t.Fatalf("call order = %v, want %v", client.sequence, want)
	}
}

func TestSpawnPrimaryFailureAbortsWithSingleEntry(t *testing.T) {
	client := &fakeClient{fail: map[string]remote.Envelope{
		"SpawnActorFromClass": {OK: false, Status: http.StatusInternalServerError,
			Data: map[string]any{"errorMessage": "class not found"}},
	}}
	result, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class:   "BogusActor",
		Mesh:    "Cube",
		Physics: true,
		Label:   "Never",
	})
	if err == nil {
		t.Fatal("expected error for primary failure")
	}
	if !stderrors.Is(err, errors.New(errors.CodeHostReported, "")) {
		t.Fatalf("expected HOST_REPORTED, got %v", err)
	}
	if len(result.Steps) != 1 {
		t.Fatalf("expected exactly one log entry, got %d", len(result.Steps))
	}
	if result.Steps[0].OK {
		t.Fatal("the single entry must be the failure")
	}
	if len(client.sequence) != 1 {
		t.Fatalf("no configuration step may execute, saw calls %v", client.sequence)
	}
}

func TestSpawnMissingIdentifierTreatedAsPrimaryFailure(t *testing.T) {
	client := &fakeClient{spawnEnv: &remote.Envelope{OK: true, Status: http.StatusOK,
		Data: map[string]any{"ReturnValue": ""}}}
	result, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class: "StaticMeshActor",
		Label: "Never",
	})
	if err == nil {
		t.Fatal("expected error for missing identifier")
	}
	if !stderrors.Is(err, errors.New(errors.CodeMissingEntityID, "")) {
		t.Fatalf("expected MISSING_ENTITY_ID, got %v", err)
	}
	if len(result.Steps) != 1 {
		t.Fatalf("expected exactly one log entry, got %d", len(result.Steps))
	}
	if len(client.sequence) != 1 {
		t.Fatalf("no configuration step may execute, saw calls %v", client.sequence)
	}
}

func TestSpawnPhysicsTripletRunsDespiteStepFailure(t *testing.T) {
	client := &fakeClient{fail: map[string]remote.Envelope{
		"set:Mobility": {OK: false, Status: http.StatusConflict,
			Data: map[string]any{"errorMessage": "mobility locked"}},
	}}
	result, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class:   "StaticMeshActor",
		Physics: true,
	})
	if err != nil {
		t.Fatalf("step failure must not abort: %v", err)
	}

	want := []string{"SpawnActorFromClass", "set:Mobility", "SetSimulatePhysics", "SetEnableGravity"}
	if fmt.Sprint(client.sequence) != fmt.Sprint(want) {
		t.Fatalf("triplet order = %v, want %v", client.sequence, want)
	}
	if result.Warnings() != 1 {
		t.Fatalf("expected 1 warning, got %d", result.Warnings())
	}
	failed := result.Steps[1]
	if failed.OK || !strings.Contains(failed.Detail, "mobility locked") {
		t.Fatalf("expected mobility warning with host detail, got %+v", failed)
	}
}

func TestSpawnDegradedSuccessKeepsFullLog(t *testing.T) {
	client := &fakeClient{fail: map[string]remote.Envelope{
		"SetActorLabel": {OK: false, Status: http.StatusBadRequest,
			Data: map[string]any{"errorMessage": "bad label"}},
	}}
	result, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class: "StaticMeshActor",
		Mesh:  "Cube",
		Label: "Box/1",
		Scale: &compose.Vector{X: 1, Y: 1, Z: 1},
	})
	if err != nil {
		t.Fatalf("degraded success must return normally: %v", err)
	}
	if result.EntityPath == "" {
		t.Fatal("expected created entity path despite a failed step")
	}
	// spawn, mesh, label (failed), scale
	if len(result.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(result.Steps))
	}
	if result.Steps[3].Description != "set scale" || !result.Steps[3].OK {
		t.Fatalf("step after failure must still run: %+v", result.Steps[3])
	}
}

func TestSpawnTransportFailureAborts(t *testing.T) {
	transportErr := errors.New(errors.CodeTimeout, "call exceeded 10s")
	client := &fakeClient{failErr: map[string]error{"SetSimulatePhysics": transportErr}}

	result, err := compose.Spawn(context.Background(), client, compose.SpawnRequest{
		Class:   "StaticMeshActor",
		Physics: true,
		Label:   "Never",
	})
	if !stderrors.Is(err, transportErr) {
		t.Fatalf("expected timeout to propagate, got %v", err)
	}
	// spawn + mobility logged; simulate timed out; gravity and label must not run.
	if len(result.Steps) != 2 {
		t.Fatalf("expected 2 logged steps before abort, got %d", len(result.Steps))
	}
	for _, call := range client.sequence {
		if call == "SetEnableGravity" || call == "SetActorLabel" {
			t.Fatalf("no call may follow a transport failure, saw %v", client.sequence)
		}
	}
}
