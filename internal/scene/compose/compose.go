// Package compose runs composite scene operations: one mandatory primary
// call followed by a fixed-order sequence of optional configuration calls.
package compose

import (
	"context"
	"fmt"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
	"github.com/scenebridge/scenebridge/internal/remote"
	"github.com/scenebridge/scenebridge/internal/scene/resolve"
)

// spawnerPath is the editor object that creates actors.
const spawnerPath = "/Script/EditorScriptingUtilities.Default__EditorLevelLibrary"

// meshComponentSuffix addresses the mesh component of a spawned mesh actor.
const meshComponentSuffix = ".StaticMeshComponent0"

// Step is one entry in a composite operation's ordered log. Failed steps
// carry the warning detail; they never abort later steps.
type Step struct {
	Description string `json:"description"`
	OK          bool   `json:"ok"`
	Detail      string `json:"detail,omitempty"`
}

// Vector is a world-space position or scale.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rotator is a world-space orientation.
type Rotator struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// SpawnRequest describes one composite spawn. Class is mandatory; every
// other field gates an optional configuration step.
type SpawnRequest struct {
	Class    string
	Location *Vector
	Mesh     string
	Physics  bool
	Label    string
	Rotation *Rotator
	Scale    *Vector
}

// Result is a composite operation outcome. When the primary call succeeded
// the full ordered step log is returned even if some steps failed; failure
// visibility happens through the log, not through an overall error.
type Result struct {
	EntityPath string
	Steps      []Step
}

// Warnings counts the failed steps in the log.
func (r Result) Warnings() int {
	count := 0
	for _, step := range r.Steps {
		if !step.OK {
			count++
		}
	}
	return count
}

// Client is the remote surface a composite operation drives.
type Client interface {
	CallFunction(ctx context.Context, objectPath, functionName string, parameters map[string]any) (remote.Envelope, error)
	SetProperty(ctx context.Context, objectPath, propertyName string, value any) (remote.Envelope, error)
}

// Spawn creates an entity and applies the requested configuration steps in
// their fixed declared order: mesh, physics triplet (mobility, simulate,
// gravity), label, rotation, scale. Timeout and connection failures abort
// and propagate; a host-reported step failure is logged and execution
// continues.
func Spawn(ctx context.Context, client Client, req SpawnRequest) (Result, error) {
	classPath := resolve.EntityClass(req.Class)

	parameters := map[string]any{"ActorClass": classPath}
	if req.Location != nil {
		parameters["Location"] = locationParam(*req.Location)
	}

	var result Result
	env, err := client.CallFunction(ctx, spawnerPath, "SpawnActorFromClass", parameters)
	if err != nil {
		return Result{}, err
	}
	if !env.OK {
		result.Steps = append(result.Steps, Step{
			Description: fmt.Sprintf("spawn %s", classPath),
			Detail:      fmt.Sprintf("status %d: %s", env.Status, env.ErrorMessage()),
		})
		return result, errors.New(errors.CodeHostReported,
			fmt.Sprintf("spawn %s failed (status %d): %s", classPath, env.Status, env.ErrorMessage()))
	}

	entityPath := extractEntityPath(env)
	if entityPath == "" {
		result.Steps = append(result.Steps, Step{
			Description: fmt.Sprintf("spawn %s", classPath),
			Detail:      "host reported success but returned no entity reference",
		})
		return result, errors.New(errors.CodeMissingEntityID,
			fmt.Sprintf("spawn %s returned no entity reference", classPath))
	}

	result.EntityPath = entityPath
	result.Steps = append(result.Steps, Step{
		Description: fmt.Sprintf("spawn %s", classPath),
		OK:          true,
		Detail:      entityPath,
	})

	// Configuration steps run in declared order regardless of how the
	// request supplied them. A failed step logs a warning and the next
	// step still runs.
	meshComponent := entityPath + meshComponentSuffix

	if req.Mesh != "" {
		meshPath := resolve.MeshShape(req.Mesh)
		if err := runStep(&result, fmt.Sprintf("set mesh %s", meshPath), func() (remote.Envelope, error) {
			return client.SetProperty(ctx, meshComponent, "StaticMesh", meshPath)
		}); err != nil {
			return result, err
		}
	}

	if req.Physics {
		// Mobility must be movable before physics simulation is enabled;
		// the triplet always runs as three separately logged steps.
		if err := runStep(&result, "set mobility movable", func() (remote.Envelope, error) {
			return client.SetProperty(ctx, meshComponent, "Mobility", "Movable")
		}); err != nil {
			return result, err
		}
		if err := runStep(&result, "enable physics simulation", func() (remote.Envelope, error) {
			return client.CallFunction(ctx, meshComponent, "SetSimulatePhysics", map[string]any{"bSimulate": true})
		}); err != nil {
			return result, err
		}
		if err := runStep(&result, "enable gravity", func() (remote.Envelope, error) {
			return client.CallFunction(ctx, meshComponent, "SetEnableGravity", map[string]any{"bGravityEnabled": true})
		}); err != nil {
			return result, err
		}
	}

	if req.Label != "" {
		if err := runStep(&result, fmt.Sprintf("set label %q", req.Label), func() (remote.Envelope, error) {
			return client.CallFunction(ctx, entityPath, "SetActorLabel", map[string]any{"NewActorLabel": req.Label})
		}); err != nil {
			return result, err
		}
	}

	if req.Rotation != nil {
		rotation := *req.Rotation
		if err := runStep(&result, "set rotation", func() (remote.Envelope, error) {
			return client.CallFunction(ctx, entityPath, "SetActorRotation", map[string]any{
				"NewRotation":      rotationParam(rotation),
				"bTeleportPhysics": true,
			})
		}); err != nil {
			return result, err
		}
	}

	if req.Scale != nil {
		scale := *req.Scale
		if err := runStep(&result, "set scale", func() (remote.Envelope, error) {
			return client.CallFunction(ctx, entityPath, "SetActorScale3D", map[string]any{
				"NewScale3D": vectorParam(scale),
			})
		}); err != nil {
			return result, err
		}
	}

	return result, nil
}

// runStep executes one optional configuration call and appends its outcome.
// Transport errors propagate; a host-reported failure becomes a warning.
func runStep(result *Result, description string, call func() (remote.Envelope, error)) error {
	env, err := call()
	if err != nil {
		return err
	}
	step := Step{Description: description, OK: env.OK}
	if !env.OK {
		step.Detail = fmt.Sprintf("status %d: %s", env.Status, env.ErrorMessage())
	}
	result.Steps = append(result.Steps, step)
	return nil
}

// extractEntityPath pulls the created entity's path out of the primary
// call's result payload.
func extractEntityPath(env remote.Envelope) string {
	payload, ok := env.Data.(map[string]any)
	if !ok {
		return ""
	}
	value, _ := payload["ReturnValue"].(string)
	return value
}

func locationParam(v Vector) map[string]any {
	return map[string]any{"X": v.X, "Y": v.Y, "Z": v.Z}
}

func vectorParam(v Vector) map[string]any {
	return map[string]any{"X": v.X, "Y": v.Y, "Z": v.Z}
}

func rotationParam(r Rotator) map[string]any {
	return map[string]any{"Pitch": r.Pitch, "Yaw": r.Yaw, "Roll": r.Roll}
}
