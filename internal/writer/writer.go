// Package writer delivers generated images, either to disk or as
// inline base64 content. Filesystem failures carry a structured kind
// derived from the underlying syscall error; no error-string matching.
package writer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// MimeTypePNG is the fixed media type of every emitted image.
const MimeTypePNG = "image/png"

// Kind classifies filesystem failures.
type Kind int

const (
	// KindOther is any unclassified I/O failure.
	KindOther Kind = iota
	// KindNoSpace means the write failed with insufficient storage.
	KindNoSpace
	// KindConflict means the destination exists as an incompatible entry.
	KindConflict
	// KindNotFound means the destination path is invalid or unreachable.
	KindNotFound
)

// Error is an I/O failure with a classified kind. The underlying system
// error is preserved for diagnostics.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Artifact is one generated image's delivery form: a filesystem path,
// or inline base64 content when Inline is set.
type Artifact struct {
	Path     string
	Data     string
	MimeType string
	Inline   bool
}

// EnsureDir creates dir and any missing parents. Creating an existing
// directory is not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return classify(err)
	}
	return nil
}

// Emit delivers one encoded image. In file mode it writes dir/fileName
// and returns a path artifact; in inline mode it touches no filesystem
// state and returns the bytes base64-encoded.
func Emit(data []byte, dir, fileName string, inline bool) (*Artifact, error) {
	if inline {
		return &Artifact{
			Data:     base64.StdEncoding.EncodeToString(data),
			MimeType: MimeTypePNG,
			Inline:   true,
		}, nil
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, classify(err)
	}
	return &Artifact{Path: path, MimeType: MimeTypePNG}, nil
}

func classify(err error) *Error {
	kind := KindOther
	switch {
	case errors.Is(err, syscall.ENOSPC):
		kind = KindNoSpace
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, os.ErrExist):
		kind = KindConflict
	case errors.Is(err, os.ErrNotExist):
		kind = KindNotFound
	}
	return &Error{Kind: kind, Err: fmt.Errorf("write failed: %w", err)}
}
