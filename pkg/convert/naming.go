package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// SettingsFileName is the base name of the settings file of the split form.
	SettingsFileName = "userSettings"

	// DefaultPrefixWidth is the minimum width of the ordering prefix.
	DefaultPrefixWidth = 3

	// DefaultIndent indents the per-site and settings files.
	DefaultIndent = "\t"

	// DefaultOutputPrefix is prepended to the directory name to form the
	// combined export file name.
	DefaultOutputPrefix = "gen-"
)

var fileNameReplacer = strings.NewReplacer(
	"*", "_",
	":", "_",
	`\`, "_",
	"/", "_",
)

// FileName derives a filesystem-safe base name from a site id by replacing
// *, :, \ and / with "_". No other character is altered.
func FileName(id string) string {
	return fileNameReplacer.Replace(id)
}

// PrefixWidth returns the number of digits needed to number n sites starting
// at zero, never less than minWidth (DefaultPrefixWidth when minWidth <= 0).
func PrefixWidth(n, minWidth int) int {
	if minWidth <= 0 {
		minWidth = DefaultPrefixWidth
	}
	width := len(strconv.Itoa(max(n-1, 0)))
	return max(width, minWidth)
}

// SiteBaseName returns the base name of the files for the site at position
// index. A width of zero disables the ordering prefix.
func SiteBaseName(id string, index, width int) string {
	name := FileName(id)
	if width <= 0 {
		return name
	}
	return fmt.Sprintf("%0*d", width, index) + name
}

// OutputPath returns the file name of the combined export for dir: prefix
// followed by the last element of dir and ".json". The file lives in the
// current working directory, not inside dir.
func OutputPath(dir, prefix string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) {
		if abs, err := filepath.Abs(dir); err == nil {
			base = filepath.Base(abs)
		}
	}
	return prefix + base + ".json"
}

// siblingPath swaps the .json extension of path for ext.
func siblingPath(path, ext string) string {
	return strings.TrimSuffix(path, ".json") + ext
}

// readOptional returns the contents of path, or "" if it does not exist.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
