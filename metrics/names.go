package metrics

// Instrument name constants used by the gate and codec packages, so
// dashboards built on a real Provider (e.g. an OpenTelemetry adapter) see a
// stable, documented set of series. Package parallel names its instruments
// with string literals at its call sites ("parallel.tasks.submitted", ...).
const (
	// GateWaitersEnqueued counts AutoSignal.Wait calls that had to queue
	// rather than consume a pending signal immediately.
	GateWaitersEnqueued = "gate.waiters.enqueued"
	// GateSignalsDelivered counts Signal calls that woke a waiter.
	GateSignalsDelivered = "gate.signals.delivered"
	// GateWaitTimeouts counts Wait calls that returned false on timeout.
	GateWaitTimeouts = "gate.wait.timeouts"

	// CodecFramesWritten counts EncodedArrayFrame writes.
	CodecFramesWritten = "codec.frames.written"
	// CodecFramesRead counts EncodedArrayFrame reads.
	CodecFramesRead = "codec.frames.read"
	// CodecBytesCompressed records the compressed payload size, in bytes.
	CodecBytesCompressed = "codec.bytes.compressed"
	// CodecCompressionRatio records raw_bytes / compressed_bytes per frame.
	CodecCompressionRatio = "codec.compression.ratio"
)
