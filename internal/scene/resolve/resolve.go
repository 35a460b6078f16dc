// Package resolve maps ergonomic shorthand tokens to canonical object paths.
// The tables are built once at init and never mutated, so lookups are safe
// from any goroutine without locking.
package resolve

import "strings"

// entityClasses maps shorthand entity names to canonical class paths.
var entityClasses = map[string]string{
	"staticmeshactor":  "/Script/Engine.StaticMeshActor",
	"actor":            "/Script/Engine.Actor",
	"pawn":             "/Script/Engine.Pawn",
	"character":        "/Script/Engine.Character",
	"pointlight":       "/Script/Engine.PointLight",
	"spotlight":        "/Script/Engine.SpotLight",
	"directionallight": "/Script/Engine.DirectionalLight",
	"rectlight":        "/Script/Engine.RectLight",
	"skylight":         "/Script/Engine.SkyLight",
	"cameraactor":      "/Script/Engine.CameraActor",
	"playerstart":      "/Script/Engine.PlayerStart",
	"triggerbox":       "/Script/Engine.TriggerBox",
	"triggersphere":    "/Script/Engine.TriggerSphere",
	"decalactor":       "/Script/Engine.DecalActor",
}

// meshShapes maps primitive shape names to canonical mesh asset paths.
var meshShapes = map[string]string{
	"cube":     "/Engine/BasicShapes/Cube.Cube",
	"sphere":   "/Engine/BasicShapes/Sphere.Sphere",
	"cylinder": "/Engine/BasicShapes/Cylinder.Cylinder",
	"cone":     "/Engine/BasicShapes/Cone.Cone",
	"plane":    "/Engine/BasicShapes/Plane.Plane",
}

// lightKinds maps light kind names to the same class paths as entityClasses;
// kept separate so light-specific callers reject non-light tokens.
var lightKinds = map[string]string{
	"point":       "/Script/Engine.PointLight",
	"spot":        "/Script/Engine.SpotLight",
	"directional": "/Script/Engine.DirectionalLight",
	"rect":        "/Script/Engine.RectLight",
	"sky":         "/Script/Engine.SkyLight",
}

// EntityClass resolves a shorthand entity class token to a canonical class
// path. Unknown tokens, including already-canonical paths, pass through
// unchanged.
func EntityClass(token string) string {
	return lookup(entityClasses, token)
}

// MeshShape resolves a primitive shape token to a canonical mesh asset path.
func MeshShape(token string) string {
	return lookup(meshShapes, token)
}

// LightKind resolves a light kind token to a canonical light class path.
func LightKind(token string) string {
	return lookup(lightKinds, token)
}

func lookup(table map[string]string, token string) string {
	if path, ok := table[strings.ToLower(strings.TrimSpace(token))]; ok {
		return path
	}
	return token
}
