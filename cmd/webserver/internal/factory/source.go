package factory

import (
	"github.com/pkg/errors"

	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/config"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/core"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/logger"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/storage/filesystem"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/storage/memory"
)

// SourceFactory creates file sources based on configuration
type SourceFactory struct {
	cfg *config.Config
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config) *SourceFactory {
	return &SourceFactory{cfg: cfg}
}

// Create creates the file source requests are served from
func (f *SourceFactory) Create() (core.FileSource, error) {
	if f.cfg.MemoryFiles != "" {
		return f.createMemorySource()
	}
	return f.createFilesystemSource(), nil
}

func (f *SourceFactory) createMemorySource() (core.FileSource, error) {
	logger.Info("Creating memory source", "files", f.cfg.MemoryFiles)

	source, err := memory.NewSource(f.cfg.MemoryFiles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create memory source")
	}
	return source, nil
}

func (f *SourceFactory) createFilesystemSource() core.FileSource {
	logger.Info("Creating filesystem source", "root", f.cfg.Root)
	if f.cfg.Root == "." {
		logger.Warn("Serving the working directory; request paths are not checked for traversal")
	}
	return filesystem.NewSource(f.cfg.Root)
}
