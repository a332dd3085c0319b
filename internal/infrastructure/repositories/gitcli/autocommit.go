package gitcli

import (
	"context"
	"fmt"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/specforge/internal/domain/entities"
)

const (
	inlineFileLimit  = 3
	messageSeparator = ": "
)

// SetAutoCommit enables or disables the debounced auto-commit policy.
// Disabling synchronously cancels a pending timer and drops trigger state;
// enabling after Dispose explicitly revives the handle.
func (it *GitCLIRepository) SetAutoCommit(enabled bool) {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.autoCommit = enabled
	if enabled {
		it.disposed = false
		return
	}
	it.stopTimerLocked()
}

// TriggerAutoCommit restarts the debounce window. Every call within the
// delay pushes the commit further out; the commit fires one delay after the
// last trigger.
func (it *GitCLIRepository) TriggerAutoCommit() {
	it.mu.Lock()
	defer it.mu.Unlock()

	if !it.autoCommit || it.disposed {
		return
	}

	if it.timer != nil {
		it.timer.Stop()
	}
	it.pendingTriggers++
	it.timer = time.AfterFunc(it.delay, it.fireAutoCommit)
}

// Dispose cancels pending auto-commit work. It is idempotent.
func (it *GitCLIRepository) Dispose() {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.disposed = true
	it.stopTimerLocked()
}

// stopTimerLocked cancels the pending timer and drops trigger bookkeeping.
// Callers must hold the mutex.
func (it *GitCLIRepository) stopTimerLocked() {
	if it.timer != nil {
		it.timer.Stop()
		it.timer = nil
	}
	it.pendingTriggers = 0
}

// fireAutoCommit runs the commit sequence once the debounce window expires:
// read status, stop when clean, stage everything, commit with a synthesized
// message. Every failure is logged and swallowed; a background commit must
// never take the caller down. A sequence that already started is not
// cancelled by disabling.
func (it *GitCLIRepository) fireAutoCommit() {
	it.mu.Lock()
	if !it.autoCommit || it.disposed {
		it.mu.Unlock()
		return
	}
	it.timer = nil
	triggers := it.pendingTriggers
	it.pendingTriggers = 0
	it.mu.Unlock()

	ctx := context.Background()

	status, statusErr := it.Status(ctx)
	if statusErr != nil {
		logger.Errorf("auto-commit: failed to read status: %v", statusErr)
		return
	}
	if !status.IsDirty {
		logger.Debugf("auto-commit: nothing to commit after %d trigger(s)", triggers)
		return
	}

	if stageErr := it.StageAll(ctx); stageErr != nil {
		logger.Errorf("auto-commit: failed to stage changes: %v", stageErr)
		return
	}

	message := buildCommitMessage(it.messageTemplate, status)
	commit, commitErr := it.Commit(ctx, message)
	if commitErr != nil {
		logger.Errorf("auto-commit: failed to commit: %v", commitErr)
		return
	}

	logger.Infof("auto-commit: created %s after %d trigger(s)", commit.ShortHash, triggers)
}

// buildCommitMessage synthesizes the auto-commit message from the configured
// template and a change summary. Small change sets inline the file names;
// larger ones fall back to a count.
func buildCommitMessage(template string, status *entities.RepositoryStatus) string {
	paths := changedPaths(status)

	summary := fmt.Sprintf("update %d files", len(paths))
	if len(paths) <= inlineFileLimit {
		summary = "update " + strings.Join(paths, ", ")
	}

	return template + messageSeparator + summary
}

// changedPaths collects every distinct path in the snapshot, staged first,
// then modified, then untracked.
func changedPaths(status *entities.RepositoryStatus) []string {
	seen := make(map[string]struct{})
	var paths []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, file := range status.Staged {
		add(file.Path)
	}
	for _, file := range status.Modified {
		add(file.Path)
	}
	for _, path := range status.Untracked {
		add(path)
	}

	return paths
}
