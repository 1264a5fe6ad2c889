// Package parallel executes independent tasks concurrently using a bounded
// or dynamic pool of goroutines.
//
// The columnar codec (package codec) uses it to decode several column
// frames at once (Reader.DecodeInt64ArraysParallel and
// DecodeFloat64ArraysParallel): an embarrassingly-parallel Map over
// independent tasks, preserving the caller's column order in the output.
//
// Constructors
//   - New[R](Config): builds a Runner from an explicit Config.
//   - NewOptions[R](opts ...Option): functional-options constructor.
//
// Defaults
//   - MaxWorkers: 0 (dynamic pool, one goroutine per in-flight task)
//   - StopOnError: false
//   - ResultsBufferSize / ErrorsBufferSize: 1024
//   - PreserveOrder: false (results are delivered in completion order)
//
// Channel lifecycle: Results and Errors are not closed automatically;
// RunAll and Map drain and close them for you. A Runner built directly via
// New/NewOptions must be closed by the caller once draining is done.
package parallel
