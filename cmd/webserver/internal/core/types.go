package core

import (
	"context"
	"io"
	"net"
	"os"
)

// ConnectionHandler consumes one accepted connection end to end.
// It takes full ownership of the connection and must close it on every path.
type ConnectionHandler interface {
	HandleConnection(ctx context.Context, conn net.Conn)
}

// FileSource abstracts the read-only tree a handler serves from.
// Names passed to Stat and Open are the literal "." + request path strings,
// relative to the source's root.
type FileSource interface {
	// Stat describes the named entry, following symbolic links.
	Stat(name string) (os.FileInfo, error)
	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)
	// List returns the names of the entries at the root of the source in the
	// order the underlying listing produces them.
	List() ([]string, error)
}

// Executor runs a unit of work independently of the caller. The listener
// hands every accepted connection to an Executor.
type Executor func(task func())

// GoExecutor runs every task on its own goroutine, without any bound.
func GoExecutor(task func()) {
	go task()
}
