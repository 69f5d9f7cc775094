package preview

import (
	"sync"
	"time"

	"github.com/cpawithai/sitebuild/internal/errors"
)

// buildStatus tracks the outcome of the most recent build.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	lastBuildID  string
	lastBuiltAt  time.Time
	hasGoodBuild bool
}

func (bs *buildStatus) setError(buildID string, err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
	bs.lastBuildID = buildID
	bs.lastBuiltAt = time.Now()
}

func (bs *buildStatus) setSuccess(buildID string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = nil
	bs.lastBuildID = buildID
	bs.lastBuiltAt = time.Now()
	bs.hasGoodBuild = true
}

type statusSnapshot struct {
	Status       string    `json:"status"`
	BuildID      string    `json:"build_id,omitempty"`
	BuiltAt      time.Time `json:"built_at,omitzero"`
	Error        string    `json:"error,omitempty"`
	Category     string    `json:"error_category,omitempty"`
	HasGoodBuild bool      `json:"has_good_build"`
}

func (bs *buildStatus) snapshot() statusSnapshot {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	s := statusSnapshot{
		Status:       "ok",
		BuildID:      bs.lastBuildID,
		BuiltAt:      bs.lastBuiltAt,
		HasGoodBuild: bs.hasGoodBuild,
	}
	if bs.lastError != nil {
		s.Status = "error"
		s.Error = bs.lastError.Error()
		s.Category = string(errors.GetCategory(bs.lastError))
	}
	return s
}
