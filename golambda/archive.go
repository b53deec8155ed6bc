package golambda

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// zipFiles writes each file into a zip archive under its base name, in the
// order given. Duplicate base names are written as separate entries.
func zipFiles(fs billy.Filesystem, paths []string) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for _, p := range paths {
		data, err := util.ReadFile(fs, p)
		if err != nil {
			return nil, NewArchiveError(p, err)
		}

		w, err := zw.Create(filepath.Base(p))
		if err != nil {
			return nil, fmt.Errorf("zw.Create: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("w.Write: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zw.Close: %w", err)
	}

	return buf.Bytes(), nil
}
