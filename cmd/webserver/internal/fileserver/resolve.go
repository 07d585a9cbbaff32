package fileserver

import (
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/core"
)

// TargetKind classifies a request path against the file source.
type TargetKind int

const (
	NotFound TargetKind = iota
	Directory
	File
)

func (k TargetKind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "not_found"
	}
}

// Target is the outcome of resolving a request path.
type Target struct {
	Kind TargetKind
	// Name is the request path with "." prepended.
	Name string
}

// Resolve classifies path. Only "/" names the directory index; any other
// path is a File when it names an existing regular file, otherwise NotFound.
func Resolve(source core.FileSource, path string) Target {
	name := "." + path
	if path == "/" {
		return Target{Kind: Directory, Name: name}
	}

	info, err := source.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return Target{Kind: NotFound, Name: name}
	}
	return Target{Kind: File, Name: name}
}
