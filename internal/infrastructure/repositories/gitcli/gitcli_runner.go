package gitcli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// GitCLIRunner executes the configured git binary, one process per call.
// The working directory is the only mutable state; it is guarded because the
// auto-commit goroutine reads it while callers may rebind it.
type GitCLIRunner struct {
	bin   string
	debug bool

	mu  sync.RWMutex
	dir string
}

var _ repositories.GitRunner = (*GitCLIRunner)(nil)

// NewGitCLIRunner creates a runner bound to the settings' binary and work
// directory.
func NewGitCLIRunner(settings *entities.Settings) repositories.GitRunner {
	return &GitCLIRunner{
		bin:   settings.GitBin,
		debug: settings.Debug,
		dir:   settings.WorkDir,
	}
}

// Run executes the binary with the given arguments and returns captured
// stdout. Arguments are passed as an explicit vector; no shell is involved
// and stdin stays closed.
func (it *GitCLIRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, it.bin, args...)
	cmd.Dir = it.Dir()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	exitCode := 0
	if runErr != nil {
		exitCode = exitCodeOf(runErr)
	}
	if it.debug {
		logger.Debugf("exec %s %s (dir=%q): exit=%d stdout=%q stderr=%q",
			it.bin, strings.Join(args, " "), cmd.Dir, exitCode, stdout.String(), stderr.String())
	}

	if runErr != nil {
		return "", &entities.CommandError{
			Args:     append([]string{it.bin}, args...),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}

	return stdout.String(), nil
}

// RunSilent executes like Run but folds every failure into ok=false.
func (it *GitCLIRunner) RunSilent(ctx context.Context, args ...string) (string, bool) {
	out, err := it.Run(ctx, args...)
	if err != nil {
		return "", false
	}
	return out, true
}

// SetDir rebinds the working directory for subsequent invocations.
func (it *GitCLIRunner) SetDir(path string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.dir = path
}

// Dir returns the currently bound working directory.
func (it *GitCLIRunner) Dir() string {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.dir
}

// exitCodeOf extracts the process exit status, or SpawnExitCode when the
// command never ran.
func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return entities.SpawnExitCode
}
