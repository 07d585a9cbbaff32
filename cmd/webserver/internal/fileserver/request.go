package fileserver

import (
	"bytes"
	"io"
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	crlf = "\r\n"

	// readBufferSize bounds the single read performed per connection.
	readBufferSize = 1024
)

var (
	// ErrEmptyRequest is returned when the peer closes without sending data.
	ErrEmptyRequest = errors.New("empty request")
	// ErrMalformedRequest is returned when the request line cannot be parsed.
	ErrMalformedRequest = errors.New("malformed request line")
)

// RequestLine is the first line of a request. Headers and body are never
// parsed.
type RequestLine struct {
	Method  string
	Path    string
	Version string
}

func (r RequestLine) String() string {
	return strings.TrimSpace(r.Method + " " + r.Path + " " + r.Version)
}

// ReadRequest performs one bounded read from conn. A timeout of zero waits
// indefinitely.
func ReadRequest(conn net.Conn, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, errors.Wrap(err, "unable to set read deadline")
		}
	}

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		if err == nil || err == io.EOF {
			return nil, ErrEmptyRequest
		}
		return nil, errors.Wrap(err, "unable to read request")
	}
	// Data that arrived with an error is still a request.
	return buf[:n], nil
}

// ParseRequestLine extracts the request line from raw request bytes. Only the
// bytes before the first CRLF are consulted. The method and version are not
// validated: any line with at least two whitespace separated tokens is
// accepted and treated as a GET.
func ParseRequestLine(data []byte) (RequestLine, error) {
	end := bytes.Index(data, []byte(crlf))
	if end < 0 {
		return RequestLine{}, errors.Wrap(ErrMalformedRequest, "missing CRLF")
	}

	fields := strings.Fields(string(data[:end]))
	if len(fields) < 2 {
		return RequestLine{}, errors.Wrapf(ErrMalformedRequest, "%d tokens in %q", len(fields), data[:end])
	}

	line := RequestLine{Method: fields[0], Path: fields[1]}
	if len(fields) > 2 {
		line.Version = fields[2]
	}
	return line, nil
}
