// Package output writes generated files to disk.
package output

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer writes files, leaving files whose content did not change untouched
// so that file watchers and build caches are not triggered.
type Writer struct {
	log abstractlogger.Logger
}

func NewWriter(log abstractlogger.Logger) *Writer {
	if log == nil {
		log = abstractlogger.NoopLogger
	}
	return &Writer{
		log: log,
	}
}

// Write creates the parent directories of path and writes content.
// It reports whether the file was created or its content changed.
func (w *Writer) Write(path string, content []byte) (changed bool, err error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			w.log.Debug("output.Writer.Write: unchanged",
				abstractlogger.String("path", path),
			)
			return false, nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return false, errors.Wrapf(err, "reading %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return false, errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}

	w.log.Info("output.Writer.Write",
		abstractlogger.String("path", path),
		abstractlogger.Int("bytes", len(content)),
	)
	return true, nil
}
