// Package remote is the HTTP client for the scene host's remote-control API.
// Every call is bounded, non-retrying, and resolves to a uniform Envelope
// regardless of host-side success or failure.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
	"github.com/scenebridge/scenebridge/internal/platform/timeouts"
)

// Remote-control endpoint paths exposed by the scene host.
const (
	ObjectCallPath     = "/remote/object/call"
	ObjectPropertyPath = "/remote/object/property"
	ObjectDescribePath = "/remote/object/describe"
	BatchPath          = "/remote/batch"
	InfoPath           = "/remote/info"
	SearchAssetsPath   = "/remote/search/assets"
)

// readAccess is the access mode the host expects for property reads.
const readAccess = "READ_ACCESS"

// CallRequest is the wire body for an object-function invocation.
type CallRequest struct {
	ObjectPath   string         `json:"objectPath"`
	FunctionName string         `json:"functionName"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	// GenerateTransaction groups the call into the host's undo history.
	GenerateTransaction bool `json:"generateTransaction"`
}

// PropertyRequest is the wire body for an object-property access.
type PropertyRequest struct {
	ObjectPath    string `json:"objectPath"`
	PropertyName  string `json:"propertyName"`
	PropertyValue any    `json:"propertyValue,omitempty"`
	Access        string `json:"access,omitempty"`
}

// SearchFilter narrows an asset search by class name or package path.
type SearchFilter struct {
	ClassNames   []string `json:"ClassNames,omitempty"`
	PackagePaths []string `json:"PackagePaths,omitempty"`
}

type searchRequest struct {
	Query  string        `json:"Query"`
	Filter *SearchFilter `json:"Filter,omitempty"`
	Limit  int           `json:"Limit"`
}

type describeRequest struct {
	ObjectPath string `json:"objectPath"`
}

// Client issues bounded-timeout calls against one scene host. The zero value
// is not usable; construct with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a client for the host at addr (host:port, no scheme).
func New(addr string) *Client {
	return NewWithBaseURL("http://" + addr)
}

// NewWithBaseURL creates a client for a full base URL. Used by tests.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		tracer:     otel.Tracer("scenebridge/remote"),
	}
}

// BaseURL returns the host base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CallFunction invokes a remote function on an object. The call is always
// transaction-generating so the host can group it for undo.
func (c *Client) CallFunction(ctx context.Context, objectPath, functionName string, parameters map[string]any) (Envelope, error) {
	return c.do(ctx, "remote.call", http.MethodPut, ObjectCallPath, CallRequest{
		ObjectPath:          objectPath,
		FunctionName:        functionName,
		Parameters:          parameters,
		GenerateTransaction: true,
	})
}

// SetProperty writes a property value on an object.
func (c *Client) SetProperty(ctx context.Context, objectPath, propertyName string, value any) (Envelope, error) {
	return c.do(ctx, "remote.property.set", http.MethodPut, ObjectPropertyPath, PropertyRequest{
		ObjectPath:    objectPath,
		PropertyName:  propertyName,
		PropertyValue: value,
	})
}

// GetProperty reads a property value from an object.
func (c *Client) GetProperty(ctx context.Context, objectPath, propertyName string) (Envelope, error) {
	return c.do(ctx, "remote.property.get", http.MethodPut, ObjectPropertyPath, PropertyRequest{
		ObjectPath:   objectPath,
		PropertyName: propertyName,
		Access:       readAccess,
	})
}

// Describe returns the host's structured property/function dump for an object.
func (c *Client) Describe(ctx context.Context, objectPath string) (Envelope, error) {
	return c.do(ctx, "remote.describe", http.MethodPut, ObjectDescribePath, describeRequest{ObjectPath: objectPath})
}

// Info returns free-form connectivity and version information from the host.
func (c *Client) Info(ctx context.Context) (Envelope, error) {
	return c.do(ctx, "remote.info", http.MethodGet, InfoPath, nil)
}

// Search queries the host's asset index.
func (c *Client) Search(ctx context.Context, query string, filter *SearchFilter, limit int) (Envelope, error) {
	return c.do(ctx, "remote.search", http.MethodPut, SearchAssetsPath, searchRequest{
		Query:  query,
		Filter: filter,
		Limit:  limit,
	})
}

// Batch submits pre-built batch entries as one wire-level request.
func (c *Client) Batch(ctx context.Context, entries []BatchRequestEntry) (Envelope, error) {
	return c.do(ctx, "remote.batch", http.MethodPut, BatchPath, batchRequest{Requests: entries})
}

// do performs one bounded round trip and normalizes the outcome. Non-2xx
// responses are ordinary envelopes; only timeouts and transport failures
// surface as errors.
func (c *Client) do(ctx context.Context, spanName, verb, path string, body any) (Envelope, error) {
	target := c.baseURL + path

	callCtx, cancel := context.WithTimeout(ctx, timeouts.RemoteCall)
	defer cancel()

	callCtx, span := c.tracer.Start(callCtx, spanName, trace.WithAttributes(
		attribute.String("http.request.method", verb),
		attribute.String("url.full", target),
	))
	defer span.End()

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Envelope{}, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(callCtx, verb, target, payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		callErr := classifyTransportError(err, target)
		span.RecordError(callErr)
		span.SetStatus(otelcodes.Error, string(errors.CodeOf(callErr)))
		return Envelope{}, callErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		callErr := classifyTransportError(err, target)
		span.RecordError(callErr)
		span.SetStatus(otelcodes.Error, string(errors.CodeOf(callErr)))
		return Envelope{}, callErr
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return Envelope{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Data:   decodeBody(raw),
	}, nil
}

// classifyTransportError splits the two unrecoverable failure kinds: a call
// that ran out its bound and a call that never reached the host.
func classifyTransportError(err error, target string) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapTarget(errors.CodeTimeout,
			fmt.Sprintf("call to %s exceeded %s", target, timeouts.RemoteCall), target, err)
	}
	if stderrors.Is(err, context.Canceled) {
		return errors.WrapTarget(errors.CodeConnection,
			fmt.Sprintf("call to %s canceled", target), target, err)
	}
	return errors.WrapTarget(errors.CodeConnection,
		fmt.Sprintf("cannot reach host at %s", target), target, err)
}

// decodeBody parses the response as JSON, falling back to the raw text for
// malformed payloads so they never crash the caller.
func decodeBody(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return string(raw)
	}
	return data
}
