package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeTimeout marks a remote call that exceeded its time bound before
	// the host responded.
	CodeTimeout Code = "TIMEOUT"

	// CodeConnection marks a transport failure that prevented the request
	// from reaching the host at all.
	CodeConnection Code = "CONNECTION"

	// CodeHostReported marks a non-2xx response with a host-supplied error
	// payload.
	CodeHostReported Code = "HOST_REPORTED"

	// CodeMissingEntityID marks a spawn whose primary call succeeded but
	// returned no usable entity reference.
	CodeMissingEntityID Code = "MISSING_ENTITY_ID"

	// CodeUnknownCommand marks a registry lookup that found no matching
	// command name.
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"

	// CodeStorage marks an audit storage failure.
	CodeStorage Code = "STORAGE"
)
