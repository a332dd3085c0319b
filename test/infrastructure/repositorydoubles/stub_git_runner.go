//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies)
// for repository interfaces. These are hand-crafted implementations, no
// mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"
	"sync"

	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// StubResult is a single scripted runner response.
type StubResult struct {
	Output string
	Err    error
}

// StubGitRunner implements repositories.GitRunner with scripted responses.
// Responses are keyed by a space-joined argument prefix and the longest
// matching key wins, so "rev-parse --verify" and "rev-parse --is-inside"
// entries do not collide. Unmatched calls succeed with empty output.
// Recorded state is mutex-guarded because the auto-commit timer fires on
// its own goroutine.
type StubGitRunner struct {
	Responses map[string]StubResult

	mu    sync.Mutex
	dir   string
	calls [][]string
}

var _ repositories.GitRunner = (*StubGitRunner)(nil)

// NewStubGitRunner creates a stub runner with the given scripted responses.
func NewStubGitRunner(responses map[string]StubResult) *StubGitRunner {
	if responses == nil {
		responses = map[string]StubResult{}
	}
	return &StubGitRunner{Responses: responses} //nolint:exhaustruct // Zero values are the initial recording state
}

// Run records the call and returns the scripted response for the longest
// matching argument prefix.
func (s *StubGitRunner) Run(_ context.Context, args ...string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, append([]string(nil), args...))
	s.mu.Unlock()

	joined := strings.Join(args, " ")
	matched := false
	bestLen := 0
	var best StubResult
	for key, result := range s.Responses {
		if strings.HasPrefix(joined, key) && (!matched || len(key) > bestLen) {
			matched = true
			bestLen = len(key)
			best = result
		}
	}
	if !matched {
		return "", nil
	}
	if best.Err != nil {
		return "", best.Err
	}
	return best.Output, nil
}

// RunSilent records the call and folds scripted errors into ok=false.
func (s *StubGitRunner) RunSilent(ctx context.Context, args ...string) (string, bool) {
	out, err := s.Run(ctx, args...)
	if err != nil {
		return "", false
	}
	return out, true
}

// SetDir records the working directory.
func (s *StubGitRunner) SetDir(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = path
}

// Dir returns the recorded working directory.
func (s *StubGitRunner) Dir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

// Calls returns a copy of every recorded argument vector in order.
func (s *StubGitRunner) Calls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([][]string, len(s.calls))
	copy(copied, s.calls)
	return copied
}

// CallsFor returns the recorded argument vectors whose first element is verb.
func (s *StubGitRunner) CallsFor(verb string) [][]string {
	var matching [][]string
	for _, call := range s.Calls() {
		if len(call) > 0 && call[0] == verb {
			matching = append(matching, call)
		}
	}
	return matching
}
