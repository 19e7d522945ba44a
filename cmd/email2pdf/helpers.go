// helpers.go provides shared utility functions for the CLI commands.

package main

import "fmt"

// humanSize formats a byte count as a human-readable string (e.g. "1.2 KB").
func humanSize(b int) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := unit, 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
