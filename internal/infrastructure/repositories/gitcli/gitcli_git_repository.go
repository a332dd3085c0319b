package gitcli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/parsers"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

const defaultLogLimit = 10

// GitCLIRepository implements repositories.GitRepository on top of the
// external git binary. Operations run synchronously and are not serialized
// against each other; overlapping mutations rely on git's own index locking.
type GitCLIRepository struct {
	runner          repositories.GitRunner
	delay           time.Duration
	messageTemplate string

	mu              sync.Mutex
	autoCommit      bool
	disposed        bool
	timer           *time.Timer
	pendingTriggers int
}

var _ repositories.GitRepository = (*GitCLIRepository)(nil)

// NewGitCLIRepository creates a repository handle over a fresh runner bound
// to the settings' work directory.
func NewGitCLIRepository(settings *entities.Settings) repositories.GitRepository {
	return NewGitCLIRepositoryWithRunner(settings, NewGitCLIRunner(settings))
}

// NewGitCLIRepositoryWithRunner creates a repository handle over an existing
// runner. Tests use it to substitute the process boundary.
func NewGitCLIRepositoryWithRunner(
	settings *entities.Settings,
	runner repositories.GitRunner,
) repositories.GitRepository {
	return &GitCLIRepository{
		runner:          runner,
		delay:           settings.AutoCommit.Delay.Std(),
		messageTemplate: settings.AutoCommit.MessageTemplate,
		autoCommit:      settings.AutoCommit.Enabled,
	}
}

// Init initializes a repository in the work directory and seeds a default
// ignore file when none exists yet.
func (it *GitCLIRepository) Init(ctx context.Context) error {
	if _, err := it.runner.Run(ctx, "init"); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	if seedErr := seedIgnoreFile(it.runner.Dir()); seedErr != nil {
		return fmt.Errorf("failed to seed ignore file: %w", seedErr)
	}
	return nil
}

// IsRepository probes silently whether the work directory is inside a
// working tree.
func (it *GitCLIRepository) IsRepository(ctx context.Context) bool {
	out, ok := it.runner.RunSilent(ctx, "rev-parse", "--is-inside-work-tree")
	return ok && strings.TrimSpace(out) == "true"
}

// Status returns a snapshot of the working tree. Outside a repository the
// zero snapshot comes back immediately, without further process calls. The
// branch probe is advisory; a detached or unborn HEAD leaves it empty.
func (it *GitCLIRepository) Status(ctx context.Context) (*entities.RepositoryStatus, error) {
	if !it.IsRepository(ctx) {
		return &entities.RepositoryStatus{}, nil
	}

	branch, _ := it.runner.RunSilent(ctx, "branch", "--show-current")

	out, err := it.runner.Run(ctx, "status", "--porcelain=v2", "--branch")
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	staged, modified, untracked := parsers.ParseStatus(out)

	return &entities.RepositoryStatus{
		IsRepo:    true,
		Branch:    strings.TrimSpace(branch),
		Staged:    staged,
		Modified:  modified,
		Untracked: untracked,
		IsDirty:   len(staged)+len(modified)+len(untracked) > 0,
	}, nil
}

// Stage adds the given paths to the index. An empty list is a no-op and does
// not spawn a process.
func (it *GitCLIRepository) Stage(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	args := append([]string{"add", "--"}, paths...)
	if _, err := it.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage %d path(s): %w", len(paths), err)
	}
	return nil
}

// StageAll stages every change in the working tree, deletions included.
func (it *GitCLIRepository) StageAll(ctx context.Context) error {
	if _, err := it.runner.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// Unstage removes the given paths from the index. An empty list is a no-op
// and does not spawn a process.
func (it *GitCLIRepository) Unstage(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	args := append([]string{"reset", "HEAD", "--"}, paths...)
	if _, err := it.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to unstage %d path(s): %w", len(paths), err)
	}
	return nil
}

// Commit records the staged changes and re-reads the resulting commit from
// the log, so callers get the exact metadata git produced.
func (it *GitCLIRepository) Commit(ctx context.Context, message string) (*entities.CommitInfo, error) {
	if _, err := it.runner.Run(ctx, "commit", "-m", message); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	commits, logErr := it.Log(ctx, 1)
	if logErr != nil {
		return nil, fmt.Errorf("failed to read back the new commit: %w", logErr)
	}
	if len(commits) == 0 {
		return nil, errors.New("commit succeeded but the log returned no entry")
	}

	return &commits[0], nil
}

// Diff runs a comparison selected by opts and parses the output with the
// lenient interpreter, or the strict one when opts.Strict is set.
func (it *GitCLIRepository) Diff(ctx context.Context, opts entities.DiffOptions) ([]entities.FileDiff, error) {
	args := []string{"diff"}
	if opts.Staged {
		args = append(args, "--cached")
	}
	if opts.ContextLines > 0 {
		args = append(args, "--unified="+strconv.Itoa(opts.ContextLines))
	}
	if opts.Target != "" {
		args = append(args, opts.Target)
	}
	if len(opts.Paths) > 0 {
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	out, err := it.runner.Run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to diff: %w", err)
	}

	if opts.Strict {
		return parsers.ParseDiffStrict(out)
	}
	return parsers.ParseDiff(out), nil
}

// Log returns up to limit recent commits, newest first. Without a resolvable
// HEAD (fresh repository) it returns an empty list, not an error.
func (it *GitCLIRepository) Log(ctx context.Context, limit int) ([]entities.CommitInfo, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}

	if _, ok := it.runner.RunSilent(ctx, "rev-parse", "--verify", "HEAD"); !ok {
		return nil, nil
	}

	out, err := it.runner.Run(ctx,
		"log", "-n", strconv.Itoa(limit), "--pretty=format:"+parsers.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	return parsers.ParseLog(out), nil
}

// SetWorkDir rebinds the repository, and its runner, to another working tree.
func (it *GitCLIRepository) SetWorkDir(path string) {
	it.runner.SetDir(path)
}

// WorkDir returns the currently bound working tree root.
func (it *GitCLIRepository) WorkDir() string {
	return it.runner.Dir()
}
