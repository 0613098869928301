// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/farescope/farescope/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLabelWidth calculates the maximum width for route and airline
// labels in table output based on terminal width and table configuration.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 20 // Rank + Flights + Avg Price with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 30 // All detail columns (Min + Max + Direct) with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the label
	available := termWidth - baseWidth
	if available < 10 {
		// Minimum reasonable label width
		return 10
	}
	if available > 40 {
		// Maximum label width to keep tables compact
		return 40
	}
	return available
}

// truncateLabel truncates a display label to a maximum width with an ellipsis
// suffix. Labels keep their leading characters, unlike file paths where the
// trailing segment matters most.
func truncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}
