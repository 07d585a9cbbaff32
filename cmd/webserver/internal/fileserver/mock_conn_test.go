package fileserver

import (
	"bytes"
	"io"
	"net"
	"strings"
	"time"
)

type mockAddr struct {
	str string
}

func (m mockAddr) Network() string { return "tcp" }
func (m mockAddr) String() string  { return m.str }

// mockConn replays a fixed request and records everything written to it.
type mockConn struct {
	in      *strings.Reader
	out     bytes.Buffer
	writes  []string
	readErr error
	closed  bool
}

func newMockConn(request string) *mockConn {
	return &mockConn{in: strings.NewReader(request)}
}

func (m *mockConn) Read(b []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.in.Len() == 0 {
		return 0, io.EOF
	}
	return m.in.Read(b)
}

func (m *mockConn) Write(b []byte) (int, error) {
	if m.closed {
		return 0, net.ErrClosed
	}
	m.writes = append(m.writes, string(b))
	return m.out.Write(b)
}

func (m *mockConn) Close() error {
	m.closed = true
	return nil
}

func (m *mockConn) LocalAddr() net.Addr                { return mockAddr{"(server)"} }
func (m *mockConn) RemoteAddr() net.Addr               { return mockAddr{"(client)"} }
func (m *mockConn) SetDeadline(t time.Time) error      { return nil }
func (m *mockConn) SetReadDeadline(t time.Time) error  { return nil }
func (m *mockConn) SetWriteDeadline(t time.Time) error { return nil }
