package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cpawithai/sitebuild/internal/metrics"
)

const reportSchemaVersion = 1

// BuildReport captures what one build did and how long each stage took.
type BuildReport struct {
	SchemaVersion  int
	BuildID        string
	Output         string
	Start          time.Time
	End            time.Time
	StageDurations map[StageName]time.Duration
	Posts          []PostSummary
	Outcome        metrics.BuildOutcome
	Err            error
}

// PostSummary is the report's view of one built post.
type PostSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Source      string `json:"source"`
	Fingerprint string `json:"fingerprint"`
}

func newBuildReport(output string) *BuildReport {
	return &BuildReport{
		SchemaVersion:  reportSchemaVersion,
		BuildID:        uuid.NewString(),
		Output:         output,
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
	}
}

func (r *BuildReport) finish(err error) {
	r.End = time.Now()
	r.Err = err
	if err != nil {
		r.Outcome = metrics.OutcomeFailed
		return
	}
	r.Outcome = metrics.OutcomeSuccess
}

// Duration is the wall time of the build.
func (r *BuildReport) Duration() time.Duration { return r.End.Sub(r.Start) }

// Fingerprints maps each post slug to its content fingerprint.
func (r *BuildReport) Fingerprints() map[string]string {
	out := make(map[string]string, len(r.Posts))
	for _, p := range r.Posts {
		out[p.Slug] = p.Fingerprint
	}
	return out
}

// Summary returns a human-readable single-line summary.
func (r *BuildReport) Summary() string {
	return fmt.Sprintf("build=%s posts=%d stages=%d duration=%s outcome=%s",
		r.BuildID, len(r.Posts), len(r.StageDurations), r.Duration().Truncate(time.Millisecond), r.Outcome)
}

type buildReportJSON struct {
	SchemaVersion    int              `json:"schema_version"`
	BuildID          string           `json:"build_id"`
	Output           string           `json:"output"`
	Start            time.Time        `json:"start"`
	End              time.Time        `json:"end"`
	DurationMS       int64            `json:"duration_ms"`
	StageDurationsMS map[string]int64 `json:"stage_durations_ms"`
	Posts            []PostSummary    `json:"posts"`
	Outcome          string           `json:"outcome"`
	Error            string           `json:"error,omitempty"`
}

// Persist writes the report as JSON to path, atomically.
func (r *BuildReport) Persist(path string) error {
	out := buildReportJSON{
		SchemaVersion:    r.SchemaVersion,
		BuildID:          r.BuildID,
		Output:           r.Output,
		Start:            r.Start,
		End:              r.End,
		DurationMS:       r.Duration().Milliseconds(),
		StageDurationsMS: make(map[string]int64, len(r.StageDurations)),
		Posts:            r.Posts,
		Outcome:          string(r.Outcome),
	}
	if out.Posts == nil {
		out.Posts = []PostSummary{}
	}
	for k, v := range r.StageDurations {
		out.StageDurationsMS[string(k)] = v.Milliseconds()
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure report dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename report: %w", err)
	}
	return nil
}

func summarize(posts []Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{
			Slug:        p.Slug,
			Title:       p.Title,
			Date:        p.Date,
			Source:      p.SourcePath,
			Fingerprint: p.Fingerprint,
		})
	}
	return out
}
