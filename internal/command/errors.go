package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func writeCommandError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())

	// Check for schema errors and point at the ratings database
	if isSchemaError(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Hint: the ratings database was created by another version. Point --ratings-db at a new file.")
	}

	return err
}

// isSchemaError checks if an error is a SQLite schema mismatch.
func isSchemaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "has no column")
}
