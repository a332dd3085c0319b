package gitcli

// BuildCommitMessage exports buildCommitMessage for testing.
var BuildCommitMessage = buildCommitMessage //nolint:gochecknoglobals // test export

// ChangedPaths exports changedPaths for testing.
var ChangedPaths = changedPaths //nolint:gochecknoglobals // test export
