package domain

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult wraps a report in a tool result so the caller always receives
// one self-contained textual report.
func textResult(report string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: report}},
	}
}

// marshalPayload renders free-form host data as compact JSON for reports and
// result fields. Encoding of already-decoded JSON cannot fail in practice;
// the fallback keeps the report usable if it ever does.
func marshalPayload(data any) string {
	if data == nil {
		return ""
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return "<unencodable payload>"
	}
	return string(encoded)
}
