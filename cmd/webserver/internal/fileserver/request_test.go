package fileserver

import (
	"bytes"
	"io"
	"net"
	"testing"

	"github.com/pkg/errors"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want RequestLine
	}{
		{
			name: "get",
			raw:  "GET /a.txt HTTP/1.0\r\nHost: localhost\r\n\r\n",
			want: RequestLine{Method: "GET", Path: "/a.txt", Version: "HTTP/1.0"},
		},
		{
			name: "non-get method is accepted",
			raw:  "POST /b.html HTTP/1.1\r\n\r\nbody",
			want: RequestLine{Method: "POST", Path: "/b.html", Version: "HTTP/1.1"},
		},
		{
			name: "two tokens",
			raw:  "GET /\r\n",
			want: RequestLine{Method: "GET", Path: "/"},
		},
		{
			name: "extra whitespace",
			raw:  "GET \t /x   HTTP/1.0\r\n",
			want: RequestLine{Method: "GET", Path: "/x", Version: "HTTP/1.0"},
		},
		{
			name: "only first line is consulted",
			raw:  "GET /first HTTP/1.0\r\nGET /second HTTP/1.0\r\n",
			want: RequestLine{Method: "GET", Path: "/first", Version: "HTTP/1.0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequestLine([]byte(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRequestLineMalformed(t *testing.T) {
	for _, raw := range []string{
		"GET /a.txt HTTP/1.0",
		"GET\r\n",
		"\r\n",
		"   \r\nGET / HTTP/1.0\r\n",
	} {
		_, err := ParseRequestLine([]byte(raw))
		if !errors.Is(err, ErrMalformedRequest) {
			t.Errorf("ParseRequestLine(%q) error = %v, want ErrMalformedRequest", raw, err)
		}
	}
}

func TestReadRequestIsBounded(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go client.Write(bytes.Repeat([]byte("x"), 4096))

	data, err := ReadRequest(server, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != readBufferSize {
		t.Errorf("read %d bytes, want %d", len(data), readBufferSize)
	}
}

func TestReadRequestEmpty(t *testing.T) {
	conn := newMockConn("")
	if _, err := ReadRequest(conn, 0); !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("error = %v, want ErrEmptyRequest", err)
	}
}

func TestReadRequestFailure(t *testing.T) {
	conn := newMockConn("")
	conn.readErr = io.ErrClosedPipe
	_, err := ReadRequest(conn, 0)
	if err == nil || errors.Is(err, ErrEmptyRequest) {
		t.Errorf("error = %v, want read failure", err)
	}
}
