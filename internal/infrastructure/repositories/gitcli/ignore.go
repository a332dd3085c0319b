package gitcli

import (
	"fmt"
	"os"
	"path/filepath"
)

const ignoreFileName = ".gitignore"

// defaultIgnoreContent covers the authoring tool's workspace artifacts and
// common editor noise.
const defaultIgnoreContent = `# SpecForge workspace artifacts
.specforge/
*.specforge.lock

# Editor and OS noise
.DS_Store
Thumbs.db
*.swp
*.tmp
*~
`

// seedIgnoreFile writes the default ignore file into dir unless one already
// exists. An existing file is never touched.
func seedIgnoreFile(dir string) error {
	path := filepath.Join(dir, ignoreFileName)
	if _, statErr := os.Stat(path); statErr == nil {
		return nil
	}

	if writeErr := os.WriteFile(path, []byte(defaultIgnoreContent), 0o644); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}
