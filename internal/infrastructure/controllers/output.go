package controllers

import (
	"encoding/json"
	"fmt"
	"io"
)

// printJSON writes v as indented JSON, the format the desktop shell consumes
// over its IPC channel.
func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, writeErr := fmt.Fprintln(out, string(data))
	return writeErr
}
