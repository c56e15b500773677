package metrics

import "time"

// Recorder defines observability hooks for lint and scaffold runs.
type Recorder interface {
	SetTreeShape(groups, pages, symbols int)
	IncLintIssue(rule, severity string)
	ObserveScaffoldDuration(d time.Duration)
	IncScaffoldFile(kind, result string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) SetTreeShape(int, int, int)            {}
func (NoopRecorder) IncLintIssue(string, string)           {}
func (NoopRecorder) ObserveScaffoldDuration(time.Duration) {}
func (NoopRecorder) IncScaffoldFile(string, string)        {}
