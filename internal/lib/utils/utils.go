// Package utils contains small helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrintJSON writes v to w as tab-indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("marshalling JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

// Redact masks a secret, keeping only whether it was set.
func Redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}
