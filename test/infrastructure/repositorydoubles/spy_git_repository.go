//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository and records every
// interaction. Counters are mutex-guarded because the watch loop drives the
// repository from its own goroutine.
type SpyGitRepository struct {
	// --- response configuration ---
	IsRepoResult bool
	StatusResult *entities.RepositoryStatus
	StatusErr    error
	CommitResult *entities.CommitInfo
	CommitErr    error
	DiffResult   []entities.FileDiff
	DiffErr      error
	LogResult    []entities.CommitInfo
	LogErr       error
	InitErr      error
	StageErr     error
	UnstageErr   error

	// --- call tracking ---
	mu              sync.Mutex
	initCount       int
	stagedPaths     [][]string
	stageAllCount   int
	unstagedPaths   [][]string
	commitMessages  []string
	diffOptions     []entities.DiffOptions
	logLimits       []int
	autoCommitState []bool
	triggerCount    int
	disposeCount    int
	workDir         string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

// NewSpyGitRepository creates a spy that reports a repository with a clean
// working tree until configured otherwise.
func NewSpyGitRepository() *SpyGitRepository {
	return &SpyGitRepository{ //nolint:exhaustruct // Zero values are the initial recording state
		IsRepoResult: true,
		StatusResult: &entities.RepositoryStatus{ //nolint:exhaustruct // Clean tree needs no file lists
			IsRepo: true,
			Branch: "main",
		},
	}
}

func (s *SpyGitRepository) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initCount++
	return s.InitErr
}

func (s *SpyGitRepository) IsRepository(_ context.Context) bool {
	return s.IsRepoResult
}

func (s *SpyGitRepository) Status(_ context.Context) (*entities.RepositoryStatus, error) {
	return s.StatusResult, s.StatusErr
}

func (s *SpyGitRepository) Stage(_ context.Context, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stagedPaths = append(s.stagedPaths, append([]string(nil), paths...))
	return s.StageErr
}

func (s *SpyGitRepository) StageAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stageAllCount++
	return s.StageErr
}

func (s *SpyGitRepository) Unstage(_ context.Context, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unstagedPaths = append(s.unstagedPaths, append([]string(nil), paths...))
	return s.UnstageErr
}

func (s *SpyGitRepository) Commit(_ context.Context, message string) (*entities.CommitInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitMessages = append(s.commitMessages, message)
	return s.CommitResult, s.CommitErr
}

func (s *SpyGitRepository) Diff(_ context.Context, opts entities.DiffOptions) ([]entities.FileDiff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diffOptions = append(s.diffOptions, opts)
	return s.DiffResult, s.DiffErr
}

func (s *SpyGitRepository) Log(_ context.Context, limit int) ([]entities.CommitInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logLimits = append(s.logLimits, limit)
	return s.LogResult, s.LogErr
}

func (s *SpyGitRepository) SetAutoCommit(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoCommitState = append(s.autoCommitState, enabled)
}

func (s *SpyGitRepository) TriggerAutoCommit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggerCount++
}

func (s *SpyGitRepository) SetWorkDir(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workDir = path
}

func (s *SpyGitRepository) WorkDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workDir
}

func (s *SpyGitRepository) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposeCount++
}

// InitCount returns how many times Init was called.
func (s *SpyGitRepository) InitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initCount
}

// StagedPaths returns every path slice passed to Stage.
func (s *SpyGitRepository) StagedPaths() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.stagedPaths...)
}

// StageAllCount returns how many times StageAll was called.
func (s *SpyGitRepository) StageAllCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stageAllCount
}

// UnstagedPaths returns every path slice passed to Unstage.
func (s *SpyGitRepository) UnstagedPaths() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.unstagedPaths...)
}

// CommitMessages returns every message passed to Commit.
func (s *SpyGitRepository) CommitMessages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commitMessages...)
}

// DiffOptions returns every options value passed to Diff.
func (s *SpyGitRepository) DiffOptions() []entities.DiffOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.DiffOptions(nil), s.diffOptions...)
}

// LogLimits returns every limit passed to Log.
func (s *SpyGitRepository) LogLimits() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.logLimits...)
}

// AutoCommitStates returns every value passed to SetAutoCommit in order.
func (s *SpyGitRepository) AutoCommitStates() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bool(nil), s.autoCommitState...)
}

// TriggerCount returns how many times TriggerAutoCommit was called.
func (s *SpyGitRepository) TriggerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggerCount
}

// DisposeCount returns how many times Dispose was called.
func (s *SpyGitRepository) DisposeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposeCount
}
