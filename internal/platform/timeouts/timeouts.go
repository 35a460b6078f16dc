// Package timeouts defines shared timeout constants used across the bridge.
// Centralizing these values prevents drift between layers and makes the
// durations discoverable.
package timeouts

import "time"

// RemoteCall caps a single HTTP round trip to the scene host. A call that
// has not resolved by then is reported as a timeout and never retried.
const RemoteCall = 10 * time.Second

// OtelShutdown limits how long tracer shutdown may flush pending spans.
const OtelShutdown = 5 * time.Second

// StorageOpen caps opening and migrating the audit database at startup.
const StorageOpen = 5 * time.Second
