package fileserver

import (
	"context"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/core"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/logger"
)

// Handler serves one HTTP/1.0 GET request per connection from a FileSource.
type Handler struct {
	Source core.FileSource
	// LegacyContentType makes unknown extensions report the historical
	// misspelled default type.
	LegacyContentType bool
	// ReadTimeout bounds the wait for the request. Zero waits forever.
	ReadTimeout time.Duration
	Stats       *Stats
}

// NewHandler creates a handler serving from source.
func NewHandler(source core.FileSource) *Handler {
	return &Handler{
		Source: source,
		Stats:  &Stats{},
	}
}

// HandleConnection implements core.ConnectionHandler.
// It takes full ownership of the connection lifecycle.
func (h *Handler) HandleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	h.Stats.connections.Add(1)

	log := logger.With("conn_id", core.ConnectionID(ctx), "remote_addr", conn.RemoteAddr())

	// 1. Read
	data, err := ReadRequest(conn, h.ReadTimeout)
	if errors.Is(err, ErrEmptyRequest) {
		log.Debug("Peer closed without sending a request")
		h.Stats.empty.Add(1)
		return
	}
	if err != nil {
		log.Warn("Read failed", "error", err)
		h.Stats.failures.Add(1)
		return
	}

	// 2. Parse, resolve and build
	var line RequestLine
	var res *Response
	line, err = ParseRequestLine(data)
	if err != nil {
		log.Warn("Malformed request", "error", err)
		res = htmlResponse(StatusBadRequest, BadRequestPage())
	} else {
		log.Debug("Request received", "request_line", line.String())
		res, err = h.respond(line.Path)
		if err != nil {
			log.Error("Unable to build response", "path", line.Path, "error", err)
			h.Stats.failures.Add(1)
			return
		}
	}
	if closer, ok := res.Body.(io.Closer); ok {
		defer closer.Close()
	}

	// 3. Write
	n, err := WriteResponse(conn, res)
	h.Stats.bytes.Add(uint64(n))
	if err != nil {
		log.Warn("Write failed", "status", res.Status, "error", err)
		h.Stats.failures.Add(1)
		return
	}
	h.Stats.recordStatus(res.Status)

	log.Info("Request served",
		slog.String("method", line.Method),
		slog.String("path", line.Path),
		slog.String("status", res.Status),
		slog.String("content_type", res.ContentType),
		slog.String("size", humanize.Bytes(uint64(n))))
}

func (h *Handler) respond(path string) (*Response, error) {
	target := Resolve(h.Source, path)
	switch target.Kind {
	case Directory:
		entries, err := h.Source.List()
		if err != nil {
			return nil, err
		}
		return htmlResponse(StatusOK, IndexPage(entries)), nil
	case File:
		// Open before anything is written, so an unreadable file leaves the
		// client with no partial response.
		body, err := h.Source.Open(target.Name)
		if err != nil {
			return nil, err
		}
		return &Response{
			Status:      StatusOK,
			ContentType: ContentType(target.Name, h.LegacyContentType),
			Body:        body,
		}, nil
	default:
		return htmlResponse(StatusNotFound, NotFoundPage(target.Name)), nil
	}
}
