// Package parsers turns raw git output into domain entities. All parsers are
// pure functions over text. The lenient ones follow a best-effort policy:
// malformed input is skipped, never reported, so a partially broken payload
// still yields every section that could be understood.
package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rios0rios0/specforge/internal/domain/entities"
)

const diffSectionMarker = "diff --git "

// hunkHeaderPattern matches "@@ -oldStart[,oldLines] +newStart[,newLines] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// ParseDiff interprets unified diff text as produced by the diff command.
// Sections with unusable headers are dropped silently; lines that carry no
// recognized marker are kept only in the section's raw text.
func ParseDiff(text string) []entities.FileDiff {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")

	var diffs []entities.FileDiff
	for _, section := range splitSections(text) {
		if diff, ok := parseSection(section); ok {
			diffs = append(diffs, diff)
		}
	}

	return diffs
}

// splitSections groups lines into per-file sections, each starting with a
// "diff --git" marker line. Lines before the first marker are discarded.
func splitSections(text string) [][]string {
	var sections [][]string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, diffSectionMarker) {
			if current != nil {
				sections = append(sections, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		sections = append(sections, current)
	}

	return sections
}

// parseSection turns one marker-delimited section into a FileDiff. The second
// return value is false when the header line is unusable and the section must
// be dropped.
func parseSection(lines []string) (entities.FileDiff, bool) {
	diff := entities.FileDiff{Raw: strings.Join(lines, "\n")}

	fields := strings.Fields(lines[0])
	if len(fields) < 4 {
		return diff, false
	}

	diff.Path = stripPathPrefix(fields[3])
	diff.Type = detectChangeType(lines)
	if diff.Type == entities.ChangeRenamed {
		diff.OldPath = stripPathPrefix(fields[2])
	}
	diff.Hunks = parseHunks(lines)

	return diff, true
}

// stripPathPrefix removes the single-character prefix git puts on header
// paths ("a/", "b/", and the mnemonic prefixes such as "i/" or "w/").
func stripPathPrefix(token string) string {
	if len(token) >= 2 && token[1] == '/' {
		return token[2:]
	}
	return token
}

// detectChangeType scans a section for file-state marker lines. Those only
// ever appear in the extended header, where lines carry no body marker, so
// scanning the whole section is safe. Priority: new file, deleted file,
// rename, else modified.
func detectChangeType(lines []string) entities.ChangeType {
	var deleted, renamed bool
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "new file"):
			return entities.ChangeAdded
		case strings.HasPrefix(line, "deleted file"):
			deleted = true
		case strings.HasPrefix(line, "rename from "):
			renamed = true
		}
	}

	if deleted {
		return entities.ChangeDeleted
	}
	if renamed {
		return entities.ChangeRenamed
	}
	return entities.ChangeModified
}

// parseHunks extracts hunks from a section body. Lines outside any hunk (the
// extended header and the ---/+++ pair) carry no hunk content and are
// skipped. Inside a hunk the line numbers run from the declared start
// positions: context lines advance both counters, adds only the new one,
// deletes only the old one.
func parseHunks(lines []string) []entities.DiffHunk {
	var hunks []entities.DiffHunk
	var current *entities.DiffHunk
	oldLine, newLine := 0, 0

	for _, line := range lines[1:] {
		if match := hunkHeaderPattern.FindStringSubmatch(line); match != nil {
			if current != nil {
				hunks = append(hunks, *current)
			}
			current = &entities.DiffHunk{
				OldStart: atoiDefault(match[1], 1),
				OldLines: atoiDefault(match[2], 1),
				NewStart: atoiDefault(match[3], 1),
				NewLines: atoiDefault(match[4], 1),
			}
			oldLine, newLine = current.OldStart, current.NewStart
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, " "):
			current.Lines = append(current.Lines, entities.DiffLine{
				Type:          entities.LineContext,
				Content:       line[1:],
				OldLineNumber: oldLine,
				NewLineNumber: newLine,
			})
			oldLine++
			newLine++
		case strings.HasPrefix(line, "+"):
			current.Lines = append(current.Lines, entities.DiffLine{
				Type:          entities.LineAdd,
				Content:       line[1:],
				NewLineNumber: newLine,
			})
			newLine++
		case strings.HasPrefix(line, "-"):
			current.Lines = append(current.Lines, entities.DiffLine{
				Type:          entities.LineDelete,
				Content:       line[1:],
				OldLineNumber: oldLine,
			})
			oldLine++
		case line == "":
			// Some transports trim the trailing space off empty context
			// lines. Counting them keeps the numbering aligned.
			current.Lines = append(current.Lines, entities.DiffLine{
				Type:          entities.LineContext,
				OldLineNumber: oldLine,
				NewLineNumber: newLine,
			})
			oldLine++
			newLine++
		default:
			// "\ No newline at end of file" and anything unrecognized.
		}
	}
	if current != nil {
		hunks = append(hunks, *current)
	}

	return hunks
}

// atoiDefault parses a hunk header count, falling back when the capture group
// is empty.
func atoiDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
