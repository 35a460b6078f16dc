// Package command holds the registry of named one-shot editor actions.
package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
	"github.com/scenebridge/scenebridge/internal/remote"
)

// Descriptor binds a command name to a fixed remote call.
type Descriptor struct {
	ObjectPath  string
	Function    string
	Parameters  map[string]any
	Description string
}

// registry is built once at init and never mutated afterwards.
var registry = map[string]Descriptor{
	"play": {
		ObjectPath:  "/Script/LevelEditor.Default__LevelEditorSubsystem",
		Function:    "EditorPlaySimulate",
		Description: "Start play-in-editor simulation",
	},
	"stop": {
		ObjectPath:  "/Script/LevelEditor.Default__LevelEditorSubsystem",
		Function:    "EditorRequestEndPlay",
		Description: "Stop play-in-editor simulation",
	},
	"save": {
		ObjectPath:  "/Script/LevelEditor.Default__LevelEditorSubsystem",
		Function:    "SaveCurrentLevel",
		Description: "Save the currently loaded level",
	},
	"undo": {
		ObjectPath:  "/Script/LevelEditor.Default__LevelEditorSubsystem",
		Function:    "EditorUndo",
		Description: "Undo the last editor transaction",
	},
	"redo": {
		ObjectPath:  "/Script/LevelEditor.Default__LevelEditorSubsystem",
		Function:    "EditorRedo",
		Description: "Redo the last undone editor transaction",
	},
	"clear_selection": {
		ObjectPath:  "/Script/UnrealEd.Default__EditorActorSubsystem",
		Function:    "SelectNothing",
		Description: "Clear the current actor selection",
	},
	"delete_selected": {
		ObjectPath:  "/Script/UnrealEd.Default__EditorActorSubsystem",
		Function:    "DestroySelectedActors",
		Description: "Delete all selected actors",
	},
	"duplicate_selected": {
		ObjectPath: "/Script/UnrealEd.Default__EditorActorSubsystem",
		Function:   "DuplicateSelectedActors",
		Parameters: map[string]any{
			"Offset": map[string]any{"X": 100.0, "Y": 100.0, "Z": 0.0},
		},
		Description: "Duplicate all selected actors with a small offset",
	},
}

// Names returns the registered command names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the descriptor for name. Unknown names are rejected here,
// before any network attempt.
func Lookup(name string) (Descriptor, error) {
	descriptor, ok := registry[name]
	if !ok {
		return Descriptor{}, errors.New(errors.CodeUnknownCommand,
			fmt.Sprintf("unknown command %q (available: %v)", name, Names()))
	}
	return descriptor, nil
}

// Caller is the single remote operation the registry needs.
type Caller interface {
	CallFunction(ctx context.Context, objectPath, functionName string, parameters map[string]any) (remote.Envelope, error)
}

// Run looks up and executes a named command. On success it returns the
// command's description for the caller's report.
func Run(ctx context.Context, client Caller, name string) (string, error) {
	descriptor, err := Lookup(name)
	if err != nil {
		return "", err
	}

	env, err := client.CallFunction(ctx, descriptor.ObjectPath, descriptor.Function, descriptor.Parameters)
	if err != nil {
		return "", err
	}
	if !env.OK {
		return "", errors.New(errors.CodeHostReported,
			fmt.Sprintf("command %q failed (status %d): %s", name, env.Status, env.ErrorMessage()))
	}
	return descriptor.Description, nil
}
