// Package ingest enumerates candidate invoice documents on disk. It is an
// I/O collaborator of the extraction core, not part of it.
package ingest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/qiwei-han/invoice-extract/constants"
	"github.com/qiwei-han/invoice-extract/internal/common"
)

// ListFiles walks root, filters by includeExts (constants.AllowedExtensions
// when empty), skips hidden entries if requested, and returns the matched
// paths in walk order.
func ListFiles(root string, includeExts []string, skipHidden bool) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("root path is required: %w", common.ErrInvalidInput)
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = constants.AllowedExtensions
	} else {
		for _, e := range includeExts {
			if e = constants.NormalizeExt(strings.TrimSpace(e)); e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		// Never skip the root itself, even when its own name is dotted.
		if path != root && skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := exts[constants.NormalizeExt(filepath.Ext(path))]; !ok {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	return files, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
