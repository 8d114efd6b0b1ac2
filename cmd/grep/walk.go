package main

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// walkDir recursively collects every regular file under root, following
// the original's walk semantics: directories are descended into,
// symlinks and other non-regular entries are skipped, not followed.
func walkDir(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
