package entities

// FileStatus is one path's state in a status snapshot.
type FileStatus struct {
	Path    string     `json:"path"`
	Status  ChangeType `json:"status"`
	OldPath string     `json:"old_path,omitempty"` // original path for renames and copies
}

// RepositoryStatus is a point-in-time snapshot of the working tree. Staged
// and Modified are not mutually exclusive: a path changed in both the index
// and the working tree appears once in each list.
type RepositoryStatus struct {
	IsRepo    bool         `json:"is_repo"`
	Branch    string       `json:"branch,omitempty"` // empty when detached or unborn
	Staged    []FileStatus `json:"staged"`
	Modified  []FileStatus `json:"modified"`
	Untracked []string     `json:"untracked"`
	IsDirty   bool         `json:"is_dirty"`
}
