// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover locates SVG files under a directory tree.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// svgExt is matched case-sensitively; differently-cased extensions
// (".SVG", ".Svg") are skipped.
const svgExt = ".svg"

// FindSVGs returns the paths of all files under root whose name ends in
// ".svg", in sorted lexicographic order. It fails before any traversal
// when root does not exist or is not a directory.
func FindSVGs(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input directory does not exist: %s", root)
		}
		return nil, fmt.Errorf("checking input directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path is not a directory: %s", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), svgExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
