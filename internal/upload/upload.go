// Package upload stores evidence files on disk under uuid-prefixed
// names so repeated uploads of the same filename never collide.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBadExtension = errors.New("file extension not allowed")
	ErrBadFilename  = errors.New("invalid filename")
)

type Store struct {
	dir        string
	extensions map[string]struct{}
}

// New creates the upload directory if needed. Extensions are lowercase
// without the leading dot, e.g. "pdf".
func New(dir string, extensions []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	return &Store{dir: dir, extensions: allowed}, nil
}

// Allowed reports whether a client filename carries a permitted extension.
func (s *Store) Allowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}

	_, ok := s.extensions[ext]

	return ok
}

// sanitize keeps only safe filename characters, mirroring what the stored
// name may contain. Anything else becomes an underscore.
func sanitize(name string) string {
	var b strings.Builder

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}

// Save writes the content under a fresh uuid-prefixed name and returns the
// stored filename.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	if !s.Allowed(filename) {
		return "", ErrBadExtension
	}

	stored := uuid.NewString() + "_" + sanitize(filepath.Base(filename))

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return stored, nil
}

// Path resolves a stored filename inside the upload directory. Names with
// path separators or traversal segments are rejected.
func (s *Store) Path(stored string) (string, error) {
	if stored == "" || stored != filepath.Base(stored) || strings.Contains(stored, "..") {
		return "", ErrBadFilename
	}

	return filepath.Join(s.dir, stored), nil
}

// Remove deletes a stored file. A missing file is not an error: the record
// pointing at it is already the source of truth.
func (s *Store) Remove(stored string) error {
	path, err := s.Path(stored)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing upload file: %w", err)
	}

	return nil
}
