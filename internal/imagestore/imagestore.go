package imagestore

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Store keeps uploaded images on local disk. Files are renamed to the upload
// timestamp in milliseconds plus the original extension, and only that
// filename is persisted with the owning record; callers treat the store as
// an opaque collaborator.
type Store struct {
	dir string
	now func() time.Time
}

func New(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Save writes the uploaded content and returns the generated filename.
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrap(err, "imagestore")
	}
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "imagestore")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", errors.Wrap(err, "imagestore")
	}
	return name, nil
}

// Path returns the on-disk location of a stored filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// List returns the stored filenames, newest last (timestamp naming makes
// the lexicographic order chronological).
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(err, "imagestore")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (s *Store) Remove(name string) error {
	return os.Remove(s.Path(name))
}

// TimestampOf recovers the upload time encoded in a stored filename.
// Returns the zero time for names that do not follow the timestamp scheme.
func TimestampOf(name string) time.Time {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	ms, err := strconv.ParseInt(base, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
