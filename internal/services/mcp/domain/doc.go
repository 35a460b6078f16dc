// Package domain implements the MCP tool handlers for the scene bridge.
// Each tool pairs an Input/Result struct with a Tool definition and a
// Handler constructor; handlers drive the remote client and return one
// self-contained textual report per invocation.
package domain
