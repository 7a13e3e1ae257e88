package userpath

import (
	"path/filepath"
	"strings"
)

// Expand replaces a leading ~ with home. Only "~" and "~/..." are expanded;
// "~user" forms are returned untouched.
func Expand(path, home string) string {
	if path == "" || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Resolve expands ~ and then anchors relative paths at base.
func Resolve(path, home, base string) string {
	path = Expand(path, home)
	if path == "" || filepath.IsAbs(path) || base == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// Shorten replaces a home directory prefix with ~ for display.
func Shorten(path, home string) string {
	if path == "" || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
