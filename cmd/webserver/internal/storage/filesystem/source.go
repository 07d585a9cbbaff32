package filesystem

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source serves files from a directory on the local filesystem.
//
// Names are joined to the root verbatim: ".." segments are not cleaned, so a
// request can reach outside the root. This mirrors the legacy server and is a
// known weakness.
type Source struct {
	Root string
}

// NewSource creates a source rooted at root. An empty root means the
// process's working directory at request time.
func NewSource(root string) *Source {
	if root == "" {
		root = "."
	}
	return &Source{Root: root}
}

func (s *Source) path(name string) string {
	if s.Root == "." {
		return name
	}
	return s.Root + string(os.PathSeparator) + name
}

func (s *Source) Stat(name string) (os.FileInfo, error) {
	return os.Stat(s.path(name))
}

func (s *Source) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", name)
	}
	return f, nil
}

// List returns the root's entry names without sorting them.
func (s *Source) List() ([]string, error) {
	dir, err := os.Open(s.Root)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open root directory")
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list root directory")
	}
	return names, nil
}
