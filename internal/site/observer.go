package site

import (
	"time"

	"github.com/cpawithai/sitebuild/internal/metrics"
)

// BuildObserver receives callbacks around stage execution and the build lifecycle.
type BuildObserver interface {
	OnStageStart(stage StageName)
	OnStageComplete(stage StageName, duration time.Duration, err error)
	OnBuildComplete(report *BuildReport)
}

// NoopObserver is a no-op implementation.
type NoopObserver struct{}

func (NoopObserver) OnStageStart(StageName)                          {}
func (NoopObserver) OnStageComplete(StageName, time.Duration, error) {}
func (NoopObserver) OnBuildComplete(*BuildReport)                    {}

// recorderObserver adapts metrics.Recorder into a BuildObserver.
type recorderObserver struct{ rec metrics.Recorder }

func (r recorderObserver) OnStageStart(StageName) {}

func (r recorderObserver) OnStageComplete(stage StageName, d time.Duration, err error) {
	r.rec.ObserveStageDuration(string(stage), d)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFatal
	}
	r.rec.IncStageResult(string(stage), result)
}

func (r recorderObserver) OnBuildComplete(report *BuildReport) {
	r.rec.ObserveBuildDuration(report.Duration())
	r.rec.IncBuildOutcome(report.Outcome)
	if report.Outcome == metrics.OutcomeSuccess {
		r.rec.SetPostsBuilt(len(report.Posts))
	}
}
