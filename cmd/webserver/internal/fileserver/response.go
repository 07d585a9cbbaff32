package fileserver

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	StatusOK         = "HTTP/1.0 200 OK"
	StatusNotFound   = "HTTP/1.0 404 Not Found"
	StatusBadRequest = "HTTP/1.0 400 Bad Request"
)

// Response is a status line, a single content type header and a body. No
// other headers are ever sent: the client detects the end of the body when
// the connection closes.
type Response struct {
	Status      string
	ContentType string
	Body        io.Reader
}

// WriteResponse writes res to w as separate writes for the status line, the
// content type line, the blank line and the body. It returns the number of
// body bytes written.
func WriteResponse(w io.Writer, res *Response) (int64, error) {
	if _, err := io.WriteString(w, res.Status+crlf); err != nil {
		return 0, errors.Wrap(err, "unable to write status line")
	}
	if _, err := io.WriteString(w, "Content-type: "+res.ContentType+crlf); err != nil {
		return 0, errors.Wrap(err, "unable to write content type")
	}
	if _, err := io.WriteString(w, crlf); err != nil {
		return 0, errors.Wrap(err, "unable to write header terminator")
	}
	if res.Body == nil {
		return 0, nil
	}
	n, err := io.Copy(w, res.Body)
	if err != nil {
		return n, errors.Wrap(err, "unable to write body")
	}
	return n, nil
}

// IndexPage renders one link per entry, in the given order. Names are not
// escaped.
func IndexPage(entries []string) string {
	var b strings.Builder
	b.WriteString("<html>\n<head>\n<title>Index</title></head>\n")
	b.WriteString("<ul>\n")
	for _, name := range entries {
		fmt.Fprintf(&b, "\t<li><a href=\"%s\">%s</a></li>\n", name, name)
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// NotFoundPage embeds name as received. It is not escaped.
func NotFoundPage(name string) string {
	return "<html>\n<head>\n<title>Error 404</title>\n</head>\n" +
		"<body>\n\"" + name + "\" Not Found</body>\n</html>\n"
}

// BadRequestPage is sent when the request line cannot be parsed.
func BadRequestPage() string {
	return "<html>\n<head>\n<title>Error 400</title>\n</head>\n" +
		"<body>\nBad Request</body>\n</html>\n"
}

func htmlResponse(status, body string) *Response {
	return &Response{
		Status:      status,
		ContentType: "text/html",
		Body:        strings.NewReader(body),
	}
}
