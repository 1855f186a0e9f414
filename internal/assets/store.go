package assets

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("File not found")
	ErrInvalidName = errors.New("Invalid filename")
)

// Store keeps uploaded files on disk under a single directory. The filename
// is the whole identity; there is no database record behind it.
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save writes the upload under a fresh unique name: millisecond timestamp
// plus a random integer, keeping the original extension.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Path resolves a client-supplied filename to a path inside the store.
// Anything that could escape the directory is rejected outright.
func (s *Store) Path(name string) (string, error) {
	clean, err := s.sanitize(name)
	if err != nil {
		return "", err
	}

	p := filepath.Join(s.Dir, clean)
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return p, nil
}

func (s *Store) Delete(name string) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(p)
}

func (s *Store) sanitize(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", ErrInvalidName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return name, nil
}
