// Package observe provides observability primitives for the resilience
// layer.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into retry hooks and
// bracket builders; the core packages never require it.
package observe
