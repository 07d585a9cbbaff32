package factory

import (
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/config"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/core"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/fileserver"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/logger"
)

// HandlerFactory creates connection handlers
type HandlerFactory struct {
	cfg *config.Config
}

// NewHandlerFactory creates a new handler factory
func NewHandlerFactory(cfg *config.Config) *HandlerFactory {
	return &HandlerFactory{cfg: cfg}
}

// Create creates the file serving handler for source
func (f *HandlerFactory) Create(source core.FileSource) *fileserver.Handler {
	logger.Info("Creating file server handler",
		"legacy_content_type", f.cfg.LegacyContentType,
		"read_timeout", f.cfg.ReadTimeout)

	if f.cfg.ReadTimeout == 0 {
		logger.Warn("No read timeout - a silent client holds its connection indefinitely")
	}

	handler := fileserver.NewHandler(source)
	handler.LegacyContentType = f.cfg.LegacyContentType
	handler.ReadTimeout = f.cfg.ReadTimeout
	return handler
}
