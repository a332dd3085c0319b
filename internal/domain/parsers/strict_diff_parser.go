package parsers

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// ParseDiffStrict interprets unified diff text with a validating parser.
// Unlike ParseDiff it refuses malformed input instead of skipping it, which
// callers opt into when trusting line numbers matters more than availability.
func ParseDiffStrict(text string) ([]entities.FileDiff, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	diffs := make([]entities.FileDiff, 0, len(files))
	for _, file := range files {
		diffs = append(diffs, convertFile(file))
	}

	return diffs, nil
}

// convertFile maps a validated file patch onto the engine's diff model.
// Copies are folded into renames to match the lenient parser's type set.
func convertFile(file *gitdiff.File) entities.FileDiff {
	diff := entities.FileDiff{Path: file.NewName}
	if diff.Path == "" {
		diff.Path = file.OldName
	}

	switch {
	case file.IsNew:
		diff.Type = entities.ChangeAdded
	case file.IsDelete:
		diff.Type = entities.ChangeDeleted
	case file.IsRename, file.IsCopy:
		diff.Type = entities.ChangeRenamed
		diff.OldPath = file.OldName
	default:
		diff.Type = entities.ChangeModified
	}

	for _, fragment := range file.TextFragments {
		diff.Hunks = append(diff.Hunks, convertFragment(fragment))
	}

	return diff
}

// convertFragment rebuilds line numbering the same way the lenient parser
// does, starting at the fragment's declared positions.
func convertFragment(fragment *gitdiff.TextFragment) entities.DiffHunk {
	hunk := entities.DiffHunk{
		OldStart: int(fragment.OldPosition),
		OldLines: int(fragment.OldLines),
		NewStart: int(fragment.NewPosition),
		NewLines: int(fragment.NewLines),
	}

	oldLine, newLine := hunk.OldStart, hunk.NewStart
	for _, line := range fragment.Lines {
		content := strings.TrimSuffix(line.Line, "\n")
		switch line.Op {
		case gitdiff.OpContext:
			hunk.Lines = append(hunk.Lines, entities.DiffLine{
				Type:          entities.LineContext,
				Content:       content,
				OldLineNumber: oldLine,
				NewLineNumber: newLine,
			})
			oldLine++
			newLine++
		case gitdiff.OpAdd:
			hunk.Lines = append(hunk.Lines, entities.DiffLine{
				Type:          entities.LineAdd,
				Content:       content,
				NewLineNumber: newLine,
			})
			newLine++
		case gitdiff.OpDelete:
			hunk.Lines = append(hunk.Lines, entities.DiffLine{
				Type:          entities.LineDelete,
				Content:       content,
				OldLineNumber: oldLine,
			})
			oldLine++
		}
	}

	return hunk
}
