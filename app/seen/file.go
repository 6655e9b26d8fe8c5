package seen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var _ Store = (*FileStore)(nil)

// Line breaks inside an identifier are escaped so each one stays on a line.
var (
	lineEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	lineUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

const defaultFileMode os.FileMode = 0644

// FileStore keeps one identifier per line in a plain UTF-8 text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewRecord(nil), nil
	}
	if err != nil {
		return NewRecord(nil), &StoreIOError{Location: s.path, Err: err}
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		ids = append(ids, lineUnescaper.Replace(line))
	}

	return NewRecord(ids), nil
}

// Save replaces the file through a rename so a failed write never leaves a
// truncated state behind.
func (s *FileStore) Save(ctx context.Context, record *Record) error {
	if err := ctx.Err(); err != nil {
		return &StoreWriteError{Location: s.path, Err: err}
	}

	lines := make([]string, 0, record.Len())
	for _, id := range record.IDs() {
		lines = append(lines, lineEscaper.Replace(id))
	}
	content := strings.Join(lines, "\n")

	mode := defaultFileMode
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return &StoreWriteError{Location: s.path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &StoreWriteError{Location: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &StoreWriteError{Location: s.path, Err: err}
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return &StoreWriteError{Location: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &StoreWriteError{Location: s.path, Err: err}
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}
