package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DocumentExtension selects the files collected from directories.
const DocumentExtension = ".xml"

// Expand returns paths with every directory replaced by the documents it
// contains. Plain files and URLs pass through untouched, even when they do
// not exist, so the caller reports them like any other unreadable input.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		if strings.Contains(path, "://") {
			out = append(out, path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			out = append(out, path)
			continue
		}

		found, err := ScanDirectory(path)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

// ScanDirectory lists the documents below root. Hidden directories are
// skipped.
func ScanDirectory(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), DocumentExtension) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	slices.Sort(found)
	return found, nil
}
