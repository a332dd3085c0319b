package parsers

import (
	"strings"

	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// statusCodes maps porcelain v2 state characters to change types.
var statusCodes = map[byte]entities.ChangeType{
	'A': entities.ChangeAdded,
	'M': entities.ChangeModified,
	'D': entities.ChangeDeleted,
	'R': entities.ChangeRenamed,
	'C': entities.ChangeCopied,
}

const (
	ordinaryFieldCount = 9  // "1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>"
	renameFieldCount   = 10 // "2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <Xscore> <path>"
)

// ParseStatus interprets porcelain v2 status output into staged, modified and
// untracked change sets. Branch header lines and record types the engine does
// not track (unmerged entries) are skipped.
func ParseStatus(text string) (staged, modified []entities.FileStatus, untracked []string) {
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "1 "):
			stagedEntry, modifiedEntry := parseOrdinaryLine(line)
			if stagedEntry != nil {
				staged = append(staged, *stagedEntry)
			}
			if modifiedEntry != nil {
				modified = append(modified, *modifiedEntry)
			}
		case strings.HasPrefix(line, "2 "):
			if entry, ok := parseRenameLine(line); ok {
				staged = append(staged, entry)
			}
		case strings.HasPrefix(line, "? "):
			untracked = append(untracked, line[2:])
		}
	}

	return staged, modified, untracked
}

// parseOrdinaryLine handles "1" records. The staged character (position 0 of
// the XY code) and the worktree character (position 1) are independent: a
// path changed in both places yields an entry on both sides.
func parseOrdinaryLine(line string) (staged, modified *entities.FileStatus) {
	parts := strings.SplitN(line, " ", ordinaryFieldCount)
	if len(parts) < ordinaryFieldCount {
		return nil, nil
	}

	code := parts[1]
	path := parts[ordinaryFieldCount-1]
	if len(code) != 2 {
		return nil, nil
	}

	if code[0] != '.' {
		staged = &entities.FileStatus{Path: path, Status: codeToChange(code[0])}
	}
	if code[1] != '.' {
		modified = &entities.FileStatus{Path: path, Status: codeToChange(code[1])}
	}

	return staged, modified
}

// parseRenameLine handles "2" records, whose tail is "<path>\t<origPath>".
// Renames and copies are reported on the staged side only.
func parseRenameLine(line string) (entities.FileStatus, bool) {
	head, oldPath, found := strings.Cut(line, "\t")
	if !found {
		return entities.FileStatus{}, false
	}

	parts := strings.SplitN(head, " ", renameFieldCount)
	if len(parts) < renameFieldCount {
		return entities.FileStatus{}, false
	}

	code := parts[1]
	if len(code) != 2 || code[0] == '.' {
		return entities.FileStatus{}, false
	}

	return entities.FileStatus{
		Path:    parts[renameFieldCount-1],
		Status:  codeToChange(code[0]),
		OldPath: oldPath,
	}, true
}

// codeToChange maps a porcelain state character, defaulting unknown codes to
// modified.
func codeToChange(code byte) entities.ChangeType {
	if change, ok := statusCodes[code]; ok {
		return change
	}
	return entities.ChangeModified
}
