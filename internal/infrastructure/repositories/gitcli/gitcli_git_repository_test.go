//go:build unit

package gitcli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/parsers"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
	"github.com/rios0rios0/specforge/internal/infrastructure/repositories/gitcli"
	doubles "github.com/rios0rios0/specforge/test/infrastructure/repositorydoubles"
)

// logRecord builds one log entry the way the control-character format emits it.
func logRecord(hash, short, author, email, timestamp, message string) string {
	return strings.Join([]string{hash, short, author, email, timestamp, message + "\n"}, "\x1f") + "\x1e"
}

func newRepository(stub *doubles.StubGitRunner) repositories.GitRepository {
	return gitcli.NewGitCLIRepositoryWithRunner(entities.DefaultSettings(), stub)
}

func TestGitCLIRepositoryInit(t *testing.T) {
	t.Parallel()

	t.Run("should initialize and seed the ignore file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		stub := doubles.NewStubGitRunner(nil)
		stub.SetDir(tmpDir)
		repo := newRepository(stub)

		// when
		err := repo.Init(context.Background())

		// then
		require.NoError(t, err)
		require.Equal(t, [][]string{{"init"}}, stub.Calls())

		content, readErr := os.ReadFile(filepath.Join(tmpDir, ".gitignore"))
		require.NoError(t, readErr)
		assert.Contains(t, string(content), ".specforge/")
		assert.Contains(t, string(content), ".DS_Store")
	})

	t.Run("should keep an existing ignore file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		ignorePath := filepath.Join(tmpDir, ".gitignore")
		require.NoError(t, os.WriteFile(ignorePath, []byte("custom\n"), 0o644))
		stub := doubles.NewStubGitRunner(nil)
		stub.SetDir(tmpDir)
		repo := newRepository(stub)

		// when
		err := repo.Init(context.Background())

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(ignorePath)
		require.NoError(t, readErr)
		assert.Equal(t, "custom\n", string(content))
	})

	t.Run("should wrap init failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"init": {Err: &entities.CommandError{Args: []string{"git", "init"}, ExitCode: 1}},
		})
		repo := newRepository(stub)

		// when
		err := repo.Init(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize repository")
	})
}

func TestGitCLIRepositoryIsRepository(t *testing.T) {
	t.Parallel()

	t.Run("should report true inside a working tree", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {Output: "true\n"},
		})
		repo := newRepository(stub)

		// when / then
		assert.True(t, repo.IsRepository(context.Background()))
	})

	t.Run("should report false when the probe fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {
				Err: &entities.CommandError{Args: []string{"git", "rev-parse"}, ExitCode: 128},
			},
		})
		repo := newRepository(stub)

		// when / then
		assert.False(t, repo.IsRepository(context.Background()))
	})
}

func TestGitCLIRepositoryStatus(t *testing.T) {
	t.Parallel()

	t.Run("should return the zero snapshot outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {
				Err: &entities.CommandError{Args: []string{"git", "rev-parse"}, ExitCode: 128},
			},
		})
		repo := newRepository(stub)

		// when
		status, err := repo.Status(context.Background())

		// then
		require.NoError(t, err)
		assert.False(t, status.IsRepo)
		assert.False(t, status.IsDirty)
		assert.Empty(t, status.Branch)
		assert.Len(t, stub.Calls(), 1)
	})

	t.Run("should assemble a full snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {Output: "true\n"},
			"branch --show-current":           {Output: "main\n"},
			"status --porcelain=v2 --branch": {Output: "# branch.head main\n" +
				"1 A. N... 000000 100644 100644 0000000 1111111 added.md\n" +
				"1 .M N... 100644 100644 100644 1111111 1111111 edited.md\n" +
				"? scratch.md\n"},
		})
		repo := newRepository(stub)

		// when
		status, err := repo.Status(context.Background())

		// then
		require.NoError(t, err)
		assert.True(t, status.IsRepo)
		assert.Equal(t, "main", status.Branch)
		require.Len(t, status.Staged, 1)
		assert.Equal(t, "added.md", status.Staged[0].Path)
		require.Len(t, status.Modified, 1)
		assert.Equal(t, "edited.md", status.Modified[0].Path)
		assert.Equal(t, []string{"scratch.md"}, status.Untracked)
		assert.True(t, status.IsDirty)
	})

	t.Run("should be clean when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {Output: "true\n"},
			"branch --show-current":           {Output: "main\n"},
			"status --porcelain=v2 --branch":  {Output: "# branch.head main\n"},
		})
		repo := newRepository(stub)

		// when
		status, err := repo.Status(context.Background())

		// then
		require.NoError(t, err)
		assert.True(t, status.IsRepo)
		assert.False(t, status.IsDirty)
	})

	t.Run("should leave the branch empty when detached", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {Output: "true\n"},
			"branch --show-current": {
				Err: &entities.CommandError{Args: []string{"git", "branch"}, ExitCode: 1},
			},
			"status --porcelain=v2 --branch": {Output: ""},
		})
		repo := newRepository(stub)

		// when
		status, err := repo.Status(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, status.Branch)
	})

	t.Run("should wrap status failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --is-inside-work-tree": {Output: "true\n"},
			"status --porcelain=v2 --branch": {
				Err: &entities.CommandError{Args: []string{"git", "status"}, ExitCode: 1},
			},
		})
		repo := newRepository(stub)

		// when
		status, err := repo.Status(context.Background())

		// then
		require.Error(t, err)
		assert.Nil(t, status)
		assert.Contains(t, err.Error(), "failed to read status")
	})
}

func TestGitCLIRepositoryStaging(t *testing.T) {
	t.Parallel()

	t.Run("should not spawn a process when staging no paths", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(nil)
		repo := newRepository(stub)

		// when
		err := repo.Stage(context.Background(), nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, stub.Calls())
	})

	t.Run("should pass paths after the separator", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(nil)
		repo := newRepository(stub)

		// when
		err := repo.Stage(context.Background(), []string{"a.md", "b dir/c.md"})

		// then
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"add", "--", "a.md", "b dir/c.md"}}, stub.Calls())
	})

	t.Run("should stage everything with one call", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(nil)
		repo := newRepository(stub)

		// when
		err := repo.StageAll(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"add", "-A"}}, stub.Calls())
	})

	t.Run("should not spawn a process when unstaging no paths", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(nil)
		repo := newRepository(stub)

		// when
		err := repo.Unstage(context.Background(), []string{})

		// then
		require.NoError(t, err)
		assert.Empty(t, stub.Calls())
	})

	t.Run("should reset paths from HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(nil)
		repo := newRepository(stub)

		// when
		err := repo.Unstage(context.Background(), []string{"a.md"})

		// then
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"reset", "HEAD", "--", "a.md"}}, stub.Calls())
	})

	t.Run("should wrap staging failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"add": {Err: &entities.CommandError{Args: []string{"git", "add"}, ExitCode: 128}},
		})
		repo := newRepository(stub)

		// when
		err := repo.Stage(context.Background(), []string{"a.md"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to stage 1 path(s)")
	})
}

func TestGitCLIRepositoryCommit(t *testing.T) {
	t.Parallel()

	t.Run("should re-read the created commit from the log", func(t *testing.T) {
		t.Parallel()

		// given
		record := logRecord(
			"9e107d9d372bb6826bd81d3542a419d69e107d9d", "9e107d9",
			"Ada Example", "ada@example.com", "2026-03-04T05:06:07Z",
			"spec: tighten the intro")
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"commit -m":          {Output: ""},
			"rev-parse --verify": {Output: "9e107d9\n"},
			"log -n 1":           {Output: record},
		})
		repo := newRepository(stub)

		// when
		commit, err := repo.Commit(context.Background(), "spec: tighten the intro")

		// then
		require.NoError(t, err)
		assert.Equal(t, "9e107d9", commit.ShortHash)
		assert.Equal(t, "Ada Example", commit.AuthorName)
		assert.Equal(t, "spec: tighten the intro", commit.Message)
		require.Len(t, stub.CallsFor("commit"), 1)
		assert.Equal(t, []string{"commit", "-m", "spec: tighten the intro"}, stub.CallsFor("commit")[0])
	})

	t.Run("should fail when the log comes back empty", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"commit -m":          {Output: ""},
			"rev-parse --verify": {Output: "9e107d9\n"},
			"log -n 1":           {Output: ""},
		})
		repo := newRepository(stub)

		// when
		commit, err := repo.Commit(context.Background(), "anything")

		// then
		require.Error(t, err)
		assert.Nil(t, commit)
		assert.Contains(t, err.Error(), "log returned no entry")
	})

	t.Run("should wrap commit failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"commit -m": {Err: &entities.CommandError{
				Args:     []string{"git", "commit"},
				ExitCode: 1,
				Stderr:   "nothing to commit",
			}},
		})
		repo := newRepository(stub)

		// when
		commit, err := repo.Commit(context.Background(), "anything")

		// then
		require.Error(t, err)
		assert.Nil(t, commit)
		assert.Contains(t, err.Error(), "failed to commit")
		assert.Contains(t, err.Error(), "nothing to commit")
	})
}

func TestGitCLIRepositoryDiff(t *testing.T) {
	t.Parallel()

	diffFixture := `diff --git a/notes.txt b/notes.txt
index 83db48f..bf3a3a9 100644
--- a/notes.txt
+++ b/notes.txt
@@ -1 +1 @@
-a
+b
`

	t.Run("should run a plain diff by default", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"diff": {Output: diffFixture},
		})
		repo := newRepository(stub)

		// when
		diffs, err := repo.Diff(context.Background(), entities.DiffOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, diffs, 1)
		assert.Equal(t, "notes.txt", diffs[0].Path)
		assert.Equal(t, [][]string{{"diff"}}, stub.Calls())
	})

	t.Run("should combine the options in a fixed order", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"diff": {Output: ""},
		})
		repo := newRepository(stub)

		// when
		_, err := repo.Diff(context.Background(), entities.DiffOptions{
			Staged:       true,
			Target:       "HEAD~1",
			ContextLines: 5,
			Paths:        []string{"docs/a.md", "b.md"},
		})

		// then
		require.NoError(t, err)
		expected := []string{"diff", "--cached", "--unified=5", "HEAD~1", "--", "docs/a.md", "b.md"}
		assert.Equal(t, [][]string{expected}, stub.Calls())
	})

	t.Run("should tolerate garbage output in lenient mode", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"diff": {Output: "not a diff at all\n"},
		})
		repo := newRepository(stub)

		// when
		diffs, err := repo.Diff(context.Background(), entities.DiffOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, diffs)
	})

	t.Run("should surface parse failures in strict mode", func(t *testing.T) {
		t.Parallel()

		// given
		truncated := "diff --git a/x.txt b/x.txt\n" +
			"--- a/x.txt\n" +
			"+++ b/x.txt\n" +
			"@@ -1,2 +1,2 @@\n" +
			" only one line\n"
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"diff": {Output: truncated},
		})
		repo := newRepository(stub)

		// when
		diffs, err := repo.Diff(context.Background(), entities.DiffOptions{Strict: true})

		// then
		require.Error(t, err)
		assert.Nil(t, diffs)
		assert.Contains(t, err.Error(), "failed to parse diff")
	})

	t.Run("should wrap diff command failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"diff": {Err: &entities.CommandError{Args: []string{"git", "diff"}, ExitCode: 129}},
		})
		repo := newRepository(stub)

		// when
		_, err := repo.Diff(context.Background(), entities.DiffOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to diff")
	})
}

func TestGitCLIRepositoryLog(t *testing.T) {
	t.Parallel()

	t.Run("should default the limit and request the control character format", func(t *testing.T) {
		t.Parallel()

		// given
		record := logRecord("aaaa", "aaa", "Ada", "ada@example.com", "2026-03-04T05:06:07Z", "one")
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --verify": {Output: "aaaa\n"},
			"log":                {Output: record},
		})
		repo := newRepository(stub)

		// when
		commits, err := repo.Log(context.Background(), 0)

		// then
		require.NoError(t, err)
		require.Len(t, commits, 1)
		logCalls := stub.CallsFor("log")
		require.Len(t, logCalls, 1)
		assert.Equal(t, []string{"log", "-n", "10", "--pretty=format:" + parsers.LogFormat}, logCalls[0])
	})

	t.Run("should pass explicit limits through", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --verify": {Output: "aaaa\n"},
			"log":                {Output: ""},
		})
		repo := newRepository(stub)

		// when
		_, err := repo.Log(context.Background(), 3)

		// then
		require.NoError(t, err)
		require.Len(t, stub.CallsFor("log"), 1)
		assert.Equal(t, "3", stub.CallsFor("log")[0][2])
	})

	t.Run("should return nothing without a resolvable HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --verify": {
				Err: &entities.CommandError{Args: []string{"git", "rev-parse"}, ExitCode: 128},
			},
		})
		repo := newRepository(stub)

		// when
		commits, err := repo.Log(context.Background(), 5)

		// then
		require.NoError(t, err)
		assert.Empty(t, commits)
		assert.Empty(t, stub.CallsFor("log"))
	})

	t.Run("should parse multiple records", func(t *testing.T) {
		t.Parallel()

		// given
		records := logRecord("aaaa", "aaa", "Ada", "ada@example.com", "2026-03-04T05:06:07Z", "newest") +
			"\n" +
			logRecord("bbbb", "bbb", "Ben", "ben@example.com", "2026-03-03T05:06:07Z", "older")
		stub := doubles.NewStubGitRunner(map[string]doubles.StubResult{
			"rev-parse --verify": {Output: "aaaa\n"},
			"log":                {Output: records},
		})
		repo := newRepository(stub)

		// when
		commits, err := repo.Log(context.Background(), 2)

		// then
		require.NoError(t, err)
		require.Len(t, commits, 2)
		assert.Equal(t, "newest", commits[0].Message)
		assert.Equal(t, "older", commits[1].Message)
	})
}

func TestGitCLIRepositoryWorkDir(t *testing.T) {
	t.Parallel()

	t.Run("should propagate rebinding to the runner", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubGitRunner(nil)
		repo := newRepository(stub)
		stub.SetDir("/initial")

		// when
		repo.SetWorkDir("/next")

		// then
		assert.Equal(t, "/next", repo.WorkDir())
		assert.Equal(t, "/next", stub.Dir())
	})
}
