package memory

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"time"
)

// Source is a simple in-memory file source for development and tests.
// Entries are listed in insertion order.
type Source struct {
	mu    sync.RWMutex
	order []string
	files map[string][]byte
}

// NewSource creates a source from a comma-separated mapping string.
// Format: "name=content,..."
// Example: "a.txt=hello,b.html=<p>hi</p>"
func NewSource(mappingStr string) (*Source, error) {
	s := &Source{files: make(map[string][]byte)}
	if mappingStr == "" {
		return s, nil
	}

	for _, pair := range strings.Split(mappingStr, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, &fs.PathError{Op: "parse", Path: pair, Err: fs.ErrInvalid}
		}
		s.Add(parts[0], []byte(parts[1]))
	}
	return s, nil
}

// Add stores a file at the root of the source, replacing any previous
// content under the same name.
func (s *Source) Add(name string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[name]; !ok {
		s.order = append(s.order, name)
	}
	s.files[name] = content
}

func (s *Source) lookup(name string) ([]byte, bool) {
	// Names arrive as "." + request path.
	key := strings.TrimPrefix(name, "./")
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[key]
	return content, ok
}

func (s *Source) Stat(name string) (os.FileInfo, error) {
	if name == "." || name == "./" {
		return fileInfo{name: ".", dir: true}, nil
	}
	content, ok := s.lookup(name)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fileInfo{name: path.Base(name), size: int64(len(content))}, nil
}

func (s *Source) Open(name string) (io.ReadCloser, error) {
	content, ok := s.lookup(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *Source) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...), nil
}

type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi fileInfo) Name() string { return fi.name }
func (fi fileInfo) Size() int64  { return fi.size }
func (fi fileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) IsDir() bool        { return fi.dir }
func (fi fileInfo) Sys() any           { return nil }
