package file

import (
	"errors"
	"fmt"
	"os"
)

const outputDirPerm os.FileMode = 0o755

// EnsureDir creates the directory if it does not exist.
func EnsureDir(dirPath string) error {
	if dirPath == "" {
		return errors.New("empty dir path")
	}
	if err := os.MkdirAll(dirPath, outputDirPerm); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	return nil
}

// DirSet remembers directories already created during the run so each output
// directory costs at most one MkdirAll. Entries are never removed.
// Not safe for concurrent use.
type DirSet struct {
	created map[string]struct{}
}

func NewDirSet() *DirSet {
	return &DirSet{created: make(map[string]struct{})}
}

// Ensure creates dirPath unless an earlier call already did.
func (s *DirSet) Ensure(dirPath string) error {
	if _, ok := s.created[dirPath]; ok {
		return nil
	}
	if err := EnsureDir(dirPath); err != nil {
		return err
	}
	s.created[dirPath] = struct{}{}
	return nil
}

// Len reports how many distinct directories have been ensured.
func (s *DirSet) Len() int { return len(s.created) }

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Commit makes a finished temporary output visible under its final name.
// The rename is atomic on a single filesystem; on failure tmpPath is left in place.
func Commit(tmpPath, finalPath string) error {
	if tmpPath == "" || finalPath == "" {
		return errors.New("empty commit path")
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("rename temp: %w", err)
	}
	return nil
}
