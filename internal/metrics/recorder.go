// Package metrics records build and stage metrics. Components take a Recorder
// and default to NoopRecorder, so metrics never need nil checks; the preview
// server swaps in a PrometheusRecorder and exposes it over HTTP.
package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFatal   ResultLabel = "fatal"
)

// BuildOutcome is the final status of one build.
type BuildOutcome string

const (
	OutcomeSuccess BuildOutcome = "success"
	OutcomeFailed  BuildOutcome = "failed"
)

// Recorder defines observability hooks for build and stage metrics.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncBuildOutcome(outcome BuildOutcome)
	SetPostsBuilt(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not served).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncBuildOutcome(BuildOutcome)               {}
func (NoopRecorder) SetPostsBuilt(int)                          {}
