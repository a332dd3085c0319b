package commands

// ShouldIgnorePath exports shouldIgnorePath for testing.
var ShouldIgnorePath = shouldIgnorePath //nolint:gochecknoglobals // test export

// AddRecursive exports addRecursive for testing.
var AddRecursive = addRecursive //nolint:gochecknoglobals // test export
