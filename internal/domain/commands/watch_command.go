package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// Watch is the use-case that keeps a working tree under observation and
// feeds filesystem changes into the auto-commit scheduler.
type Watch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WatchOptions) error
}

// WatchOptions controls a watch session.
type WatchOptions struct {
	// InitialTrigger arms the debounce window once at startup, so changes
	// made while the watcher was down still get committed.
	InitialTrigger bool
}

// ignoredDirs are directory names never watched: repository internals, the
// tool's own workspace artifacts and dependency trees.
var ignoredDirs = map[string]struct{}{
	".git":         {},
	".specforge":   {},
	"node_modules": {},
}

// WatchCommand implements Watch on fsnotify.
type WatchCommand struct {
	factory repositories.GitRepositoryFactory
}

// NewWatchCommand creates the watch use-case.
func NewWatchCommand(factory repositories.GitRepositoryFactory) *WatchCommand {
	return &WatchCommand{factory: factory}
}

// Execute watches the settings' work directory recursively until ctx is
// cancelled. Every relevant event restarts the repository's auto-commit
// debounce window; the commit itself happens on the repository's timer
// goroutine, never here.
func (it *WatchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts WatchOptions,
) error {
	repo := it.factory(settings)
	defer repo.Dispose()
	repo.SetAutoCommit(true)

	if !repo.IsRepository(ctx) {
		return fmt.Errorf("%q is not inside a repository", repo.WorkDir())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	defer watcher.Close()

	if addErr := addRecursive(watcher, repo.WorkDir()); addErr != nil {
		return addErr
	}

	logger.Infof("Watching %q (delay %s)", repo.WorkDir(), settings.AutoCommit.Delay.Std())

	if opts.InitialTrigger {
		repo.TriggerAutoCommit()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, repo, event)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watcher error: %v", watchErr)
		}
	}
}

// handleEvent filters one filesystem event and forwards it to the scheduler.
// Newly created directories get added to the watch set, since fsnotify
// watches are not recursive on their own.
func handleEvent(
	watcher *fsnotify.Watcher,
	repo repositories.GitRepository,
	event fsnotify.Event,
) {
	if shouldIgnorePath(event.Name) {
		return
	}

	if event.Op.Has(fsnotify.Create) {
		if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
			if addErr := addRecursive(watcher, event.Name); addErr != nil {
				logger.Warnf("Failed to watch new directory %q: %v", event.Name, addErr)
			}
		}
	}

	logger.Debugf("Change detected: %s %s", event.Op, event.Name)
	repo.TriggerAutoCommit()
}

// addRecursive registers root and every non-ignored directory below it.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if _, ignored := ignoredDirs[entry.Name()]; ignored && path != root {
			return filepath.SkipDir
		}
		if addErr := watcher.Add(path); addErr != nil {
			return fmt.Errorf("failed to watch %q: %w", path, addErr)
		}
		return nil
	})
}

// shouldIgnorePath reports whether a change at path must not feed the
// auto-commit scheduler.
func shouldIgnorePath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if _, ignored := ignoredDirs[part]; ignored {
			return true
		}
	}
	return false
}
