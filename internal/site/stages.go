package site

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/logfields"
	"github.com/cpawithai/sitebuild/internal/templates"
	"github.com/cpawithai/sitebuild/internal/util/sets"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageError names the stage a build failed in.
type StageError struct {
	Stage    StageName
	Err      error
	Canceled bool
}

func (e *StageError) Error() string {
	if e.Canceled {
		return fmt.Sprintf("stage %s canceled: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// BuildState carries mutable state across the stages of one build.
type BuildState struct {
	Generator *Generator
	Templates *templates.Set
	Posts     []Post
	Report    *BuildReport

	slugs sets.Set[string]
}

func newBuildState(g *Generator, report *BuildReport) *BuildState {
	return &BuildState{
		Generator: g,
		Report:    report,
		slugs:     sets.New[string](),
	}
}

// runStages executes stages in order, recording timing and stopping on the
// first error. Errors that are not already classified are wrapped as build
// errors so the CLI can still map them to an exit code.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	obs := bs.Generator.observer
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return &StageError{Stage: st.Name, Err: err, Canceled: true}
		}

		obs.OnStageStart(st.Name)
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur
		obs.OnStageComplete(st.Name, dur, err)

		if err != nil {
			canceled := stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
			if _, ok := errors.As(err); !ok && !canceled {
				err = errors.StageFailed(string(st.Name), err)
			}
			return &StageError{Stage: st.Name, Err: err, Canceled: canceled}
		}
		slog.Debug("Stage complete",
			logfields.BuildID(bs.Report.BuildID),
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}

func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	return bs.Generator.prepareOutput()
}

func stageLoadTemplates(_ context.Context, bs *BuildState) error {
	set, err := templates.LoadSet(bs.Generator.cfg.TemplatesDir(), bs.Generator.globals)
	if err != nil {
		return err
	}
	bs.Templates = set
	return nil
}

func stageBuildPosts(ctx context.Context, bs *BuildState) error {
	g := bs.Generator
	files, err := g.postSources()
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		post, err := g.buildPost(bs.Templates, path)
		if err != nil {
			return err
		}
		if !bs.slugs.Add(post.Slug) {
			slog.Warn("Duplicate slug; later post overwrites earlier output",
				logfields.Slug(post.Slug), logfields.File(path))
		}
		bs.Posts = append(bs.Posts, post)
		g.progressf("  ✅ %s\n", post.Title)
	}
	bs.Report.Posts = summarize(bs.Posts)
	return nil
}

func stageIndex(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.buildIndex(bs.Templates, bs.Posts); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ index (%d posts)\n", len(bs.Posts))
	return nil
}

func stageNotFound(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.buildNotFound(bs.Templates); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ 404\n")
	return nil
}

func stageLLMSTxt(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.buildLLMSTxt(bs.Posts); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ llms.txt\n")
	return nil
}

func stageSitemap(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.buildSitemap(bs.Posts); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ sitemap.xml\n")
	return nil
}

func stageFeed(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.buildFeed(bs.Posts); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ feed.xml\n")
	return nil
}

func stageCopyStatic(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.copyStatic(); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ static assets\n")
	return nil
}

func stageCNAME(_ context.Context, bs *BuildState) error {
	if err := bs.Generator.writeCNAME(); err != nil {
		return err
	}
	bs.Generator.progressf("  ✅ CNAME\n")
	return nil
}
