package remote

import (
	"encoding/json"
	"fmt"
)

// BatchRequestEntry is one sub-request inside a wire-level batch. RequestID
// is the sole correlation key back to the matching response entry.
type BatchRequestEntry struct {
	RequestID int    `json:"RequestId"`
	URL       string `json:"URL"`
	Verb      string `json:"Verb"`
	Body      any    `json:"Body"`
}

// BatchResponseEntry is one sub-response inside a wire-level batch response.
// The host does not guarantee submission order.
type BatchResponseEntry struct {
	RequestID    *int `json:"RequestId"`
	StatusCode   int  `json:"StatusCode"`
	ResponseBody any  `json:"ResponseBody"`
}

type batchRequest struct {
	Requests []BatchRequestEntry `json:"Requests"`
}

// BatchResponse is the decoded body of a batch round trip.
type BatchResponse struct {
	Responses []BatchResponseEntry `json:"Responses"`
}

// DecodeBatchResponse converts a successful batch envelope into typed
// response entries. Envelope data is generic JSON, so this re-encodes it
// once; batch payloads are small enough that the extra pass does not matter.
func DecodeBatchResponse(env Envelope) (BatchResponse, error) {
	raw, err := json.Marshal(env.Data)
	if err != nil {
		return BatchResponse{}, fmt.Errorf("encode batch payload: %w", err)
	}
	var decoded BatchResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return BatchResponse{}, fmt.Errorf("decode batch payload: %w", err)
	}
	return decoded, nil
}
