package gos3

import (
	"path/filepath"
	"strings"
)

// ValidateLocalPath resolves path against the local root and returns it with
// its object key. It returns nil when the resolved path is outside the root
// or does not exist.
func (s *S3) ValidateLocalPath(path string) *LocalFile {
	if path == "" {
		return nil
	}

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.root, abs)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	if _, err := s.fs.Stat(abs); err != nil {
		return nil
	}

	return &LocalFile{Path: abs, Key: filepath.ToSlash(rel)}
}
