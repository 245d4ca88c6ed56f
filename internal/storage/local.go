package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored file cannot be resolved.
var ErrNotFound = errors.New("file not found")

// Local persists uploads under a single directory on disk. This stands in for
// cloud object storage in production.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Local{root: root}, nil
}

func (s *Local) Root() string { return s.root }

// Save writes the file under a fresh "<uuid>_<sanitized name>" so repeated
// uploads of identically named files never collide.
func (s *Local) Save(originalName string, r io.Reader) (string, error) {
	stored := uuid.NewString() + "_" + SanitizeFilename(originalName)
	dst, err := os.Create(filepath.Join(s.root, stored))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return stored, nil
}

// Resolve maps a stored name back to its path. Anything that is not a bare
// filename inside the root is rejected, so traversal cannot escape it.
func (s *Local) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", ErrNotFound
	}
	p := filepath.Join(s.root, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return p, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips any path component and replaces characters outside
// [A-Za-z0-9._-] with underscores. Empty or dot-only results become "file".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
