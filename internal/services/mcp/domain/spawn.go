package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scenebridge/scenebridge/internal/scene/compose"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage"
)

// VectorInput is a world-space position or scale supplied by the caller.
type VectorInput struct {
	X float64 `json:"x" jsonschema:"X component"`
	Y float64 `json:"y" jsonschema:"Y component"`
	Z float64 `json:"z" jsonschema:"Z component"`
}

// RotatorInput is a world-space orientation supplied by the caller.
type RotatorInput struct {
	Pitch float64 `json:"pitch" jsonschema:"pitch in degrees"`
	Yaw   float64 `json:"yaw" jsonschema:"yaw in degrees"`
	Roll  float64 `json:"roll" jsonschema:"roll in degrees"`
}

// SpawnEntityInput represents the MCP tool input for a composite spawn.
type SpawnEntityInput struct {
	Class    string        `json:"class" jsonschema:"entity class, shorthand (StaticMeshActor, PointLight) or canonical path"`
	Location *VectorInput  `json:"location,omitempty" jsonschema:"optional world-space spawn location"`
	Mesh     string        `json:"mesh,omitempty" jsonschema:"optional mesh, shorthand shape (Cube, Sphere) or asset path"`
	Physics  bool          `json:"physics,omitempty" jsonschema:"enable physics simulation (mobility, simulate, gravity)"`
	Label    string        `json:"label,omitempty" jsonschema:"optional display label for the entity"`
	Rotation *RotatorInput `json:"rotation,omitempty" jsonschema:"optional world-space rotation"`
	Scale    *VectorInput  `json:"scale,omitempty" jsonschema:"optional world-space scale"`
}

// SpawnStepResult is one entry of the ordered step log.
type SpawnStepResult struct {
	Description string `json:"description" jsonschema:"what the step did"`
	OK          bool   `json:"ok" jsonschema:"whether the step succeeded"`
	Detail      string `json:"detail,omitempty" jsonschema:"entity path on success, warning on failure"`
}

// SpawnEntityResult represents the MCP tool output for a composite spawn.
type SpawnEntityResult struct {
	EntityPath string            `json:"entity_path" jsonschema:"path of the created entity"`
	Steps      []SpawnStepResult `json:"steps" jsonschema:"ordered step log"`
	Warnings   int               `json:"warnings" jsonschema:"number of failed configuration steps"`
}

// SpawnEntityTool defines the MCP tool schema for spawning an entity.
func SpawnEntityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "spawn_entity",
		Description: "Spawns an entity in the scene and optionally configures mesh, physics, label, rotation, and scale. Partial configuration failures are reported as warnings, not errors.",
	}
}

// SpawnEntityHandler executes a composite spawn request.
func SpawnEntityHandler(client RemoteClient, recorder *Recorder) mcp.ToolHandlerFor[SpawnEntityInput, SpawnEntityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SpawnEntityInput) (*mcp.CallToolResult, SpawnEntityResult, error) {
		if strings.TrimSpace(input.Class) == "" {
			return nil, SpawnEntityResult{}, fmt.Errorf("entity class is required")
		}

		request := compose.SpawnRequest{
			Class:   input.Class,
			Mesh:    input.Mesh,
			Physics: input.Physics,
			Label:   input.Label,
		}
		if input.Location != nil {
			request.Location = &compose.Vector{X: input.Location.X, Y: input.Location.Y, Z: input.Location.Z}
		}
		if input.Rotation != nil {
			request.Rotation = &compose.Rotator{Pitch: input.Rotation.Pitch, Yaw: input.Rotation.Yaw, Roll: input.Rotation.Roll}
		}
		if input.Scale != nil {
			request.Scale = &compose.Vector{X: input.Scale.X, Y: input.Scale.Y, Z: input.Scale.Z}
		}

		composed, err := compose.Spawn(ctx, client, request)
		report := spawnReport(composed)
		if err != nil {
			recorder.Record(ctx, "spawn_entity", storage.OutcomeFailed, report+err.Error())
			if len(composed.Steps) > 0 {
				// Primary failure still carries its single-entry log.
				return nil, SpawnEntityResult{}, fmt.Errorf("%s: %w", composed.Steps[0].Description, err)
			}
			return nil, SpawnEntityResult{}, err
		}

		result := SpawnEntityResult{
			EntityPath: composed.EntityPath,
			Steps:      stepResults(composed.Steps),
			Warnings:   composed.Warnings(),
		}
		outcome := storage.OutcomeSuccess
		if result.Warnings > 0 {
			outcome = storage.OutcomeDegraded
		}
		recorder.Record(ctx, "spawn_entity", outcome, report)
		return textResult(report), result, nil
	}
}

func stepResults(steps []compose.Step) []SpawnStepResult {
	results := make([]SpawnStepResult, len(steps))
	for i, step := range steps {
		results[i] = SpawnStepResult{Description: step.Description, OK: step.OK, Detail: step.Detail}
	}
	return results
}

// spawnReport renders the ordered step log as one readable report.
func spawnReport(result compose.Result) string {
	var b strings.Builder
	if result.EntityPath != "" {
		fmt.Fprintf(&b, "Spawned %s\n", result.EntityPath)
	}
	for i, step := range result.Steps {
		mark := "ok"
		if !step.OK {
			mark = "warning"
		}
		fmt.Fprintf(&b, "%d. %s: %s", i+1, step.Description, mark)
		if step.Detail != "" && !step.OK {
			fmt.Fprintf(&b, " (%s)", step.Detail)
		}
		b.WriteString("\n")
	}
	if warnings := result.Warnings(); warnings > 0 {
		fmt.Fprintf(&b, "%d step(s) failed; the entity was still created\n", warnings)
	}
	return b.String()
}
