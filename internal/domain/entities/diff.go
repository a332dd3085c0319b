package entities

// ChangeType classifies how a path changed between two revisions.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
	ChangeRenamed  ChangeType = "renamed"
	ChangeCopied   ChangeType = "copied" // status records only; diffs fold copies into renames
)

// LineType classifies a single line inside a diff hunk.
type LineType string

const (
	LineContext LineType = "context"
	LineAdd     LineType = "add"
	LineDelete  LineType = "delete"
)

// DiffLine is one line of a hunk body with the leading marker stripped.
// OldLineNumber and NewLineNumber are 1-based positions in the pre- and
// post-image; 0 means the line does not exist on that side.
type DiffLine struct {
	Type          LineType `json:"type"`
	Content       string   `json:"content"`
	OldLineNumber int      `json:"old_line_number,omitempty"`
	NewLineNumber int      `json:"new_line_number,omitempty"`
}

// DiffHunk is one contiguous change region described by an @@ header.
type DiffHunk struct {
	OldStart int        `json:"old_start"`
	OldLines int        `json:"old_lines"`
	NewStart int        `json:"new_start"`
	NewLines int        `json:"new_lines"`
	Lines    []DiffLine `json:"lines"`
}

// FileDiff is the parsed change set for a single file section of a unified
// diff. Raw keeps the section's original text so callers can re-render it.
type FileDiff struct {
	Path    string     `json:"path"`
	OldPath string     `json:"old_path,omitempty"` // set for renames only
	Type    ChangeType `json:"type"`
	Hunks   []DiffHunk `json:"hunks"`
	Raw     string     `json:"raw,omitempty"`
}

// DiffOptions selects what a diff compares and how its output is parsed.
type DiffOptions struct {
	// Staged compares the index against HEAD instead of the working tree.
	Staged bool
	// Target adds an explicit revision or range to compare against.
	Target string
	// ContextLines overrides the context size when greater than zero.
	ContextLines int
	// Paths restricts the diff to the given paths.
	Paths []string
	// Strict rejects malformed diff output instead of skipping it.
	Strict bool
}
