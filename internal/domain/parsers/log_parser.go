package parsers

import (
	"strings"
	"time"

	"github.com/rios0rios0/specforge/internal/domain/entities"
)

const (
	// logFieldSeparator and logRecordSeparator are the ASCII unit and record
	// separators, which cannot appear in commit metadata.
	logFieldSeparator  = "\x1f"
	logRecordSeparator = "\x1e"

	logFieldCount = 6
)

// LogFormat is the --pretty format matching ParseLog: hash, short hash,
// author name, author email, ISO timestamp and the full message. The message
// comes last so that its content can never shift the fixed fields.
const LogFormat = "%H%x1f%h%x1f%an%x1f%ae%x1f%aI%x1f%B%x1e"

// ParseLog interprets log output produced with LogFormat. Records with a
// wrong field count or an unparseable timestamp are skipped.
func ParseLog(text string) []entities.CommitInfo {
	var commits []entities.CommitInfo
	for _, record := range strings.Split(text, logRecordSeparator) {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}

		parts := strings.SplitN(record, logFieldSeparator, logFieldCount)
		if len(parts) < logFieldCount {
			continue
		}

		timestamp, parseErr := time.Parse(time.RFC3339, parts[4])
		if parseErr != nil {
			continue
		}

		commits = append(commits, entities.CommitInfo{
			Hash:        parts[0],
			ShortHash:   parts[1],
			AuthorName:  parts[2],
			AuthorEmail: parts[3],
			Timestamp:   timestamp,
			Message:     strings.TrimRight(parts[5], "\n"),
		})
	}

	return commits
}
