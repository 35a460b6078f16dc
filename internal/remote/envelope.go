package remote

// Envelope is the normalized result of one remote call. It is produced fresh
// per call and never cached.
type Envelope struct {
	OK     bool // true iff Status is in [200,300)
	Status int
	Data   any
}

// ErrorMessage extracts a host-supplied error message from the envelope data,
// falling back to a generic status description.
func (e Envelope) ErrorMessage() string {
	if payload, ok := e.Data.(map[string]any); ok {
		for _, key := range []string{"errorMessage", "error", "message"} {
			if value, ok := payload[key].(string); ok && value != "" {
				return value
			}
		}
	}
	if text, ok := e.Data.(string); ok && text != "" {
		return text
	}
	return "host reported failure"
}
