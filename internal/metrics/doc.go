// Package metrics records descriptor and scaffold metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder. When a textfile path is configured the CLI swaps in a
// PrometheusRecorder and writes its registry in the node_exporter textfile
// format once the command finishes.
package metrics
