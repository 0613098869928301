package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/farescope/farescope/schema"
)

// Color variables for console output.
var (
	VeryHighColor = color.New(color.FgRed, color.Bold)     // veryHighColor represents strong demand pressure.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor represents elevated demand.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents standard demand, not bold.
	LowColor      = color.New(color.FgCyan)                // lowColor represents informational / low-priority signal.
)

// GetColorTier returns a colored demand tier label for console output (table).
// It uses schema.GetDemandTier to determine the string, and then applies the
// appropriate color.
func GetColorTier(score float64) string {
	text := schema.GetDemandTier(score)

	switch text {
	case schema.VeryHighTier:
		return VeryHighColor.Sprint(text)
	case schema.HighTier:
		return HighColor.Sprint(text)
	case schema.ModerateTier:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".farescope_cache.db"
	}
	return filepath.Join(homeDir, ".farescope_cache.db")
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".farescope_runs.db"
	}
	return filepath.Join(homeDir, ".farescope_runs.db")
}

// NormalizeRoute normalizes a user-provided route string like "syd-mel" into
// the canonical "SYD-MEL" form. Both sides of the dash must be non-empty.
func NormalizeRoute(route string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(route))
	parts := strings.Split(trimmed, "-")
	if len(parts) != 2 {
		return "", fmt.Errorf("route must look like ORIGIN-DESTINATION, got %q", route)
	}

	origin := strings.TrimSpace(parts[0])
	destination := strings.TrimSpace(parts[1])
	if origin == "" || destination == "" {
		return "", fmt.Errorf("route must name both an origin and a destination, got %q", route)
	}

	return schema.RouteKey(origin, destination), nil
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at
// least one character of content. Without this check, small maxWidth values
// could cause slice bounds errors in the truncation calculation.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
