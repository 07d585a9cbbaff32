package core

import (
	"context"
	"net"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/net/netutil"

	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/logger"
)

type connIDKey struct{}

// ConnectionID returns the identifier the server assigned to the connection
// being handled under ctx, or an empty string.
func ConnectionID(ctx context.Context) string {
	id, _ := ctx.Value(connIDKey{}).(string)
	return id
}

// Listen binds a TCP listener on all interfaces at port. When maxConns is
// positive, no more than maxConns connections are accepted at once.
func Listen(port, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to listen on port %d", port)
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}

// Server is the generic TCP server.
// It depends ONLY on interfaces, not concrete implementations.
type Server struct {
	Listener          net.Listener
	ConnectionHandler ConnectionHandler
	// Executor runs each connection. GoExecutor is used when nil.
	Executor Executor
}

// Serve accepts connections until ctx is cancelled or the listener fails.
// The listener is closed when Serve returns.
func (s *Server) Serve(ctx context.Context) error {
	execute := s.Executor
	if execute == nil {
		execute = GoExecutor
	}

	stop := context.AfterFunc(ctx, func() {
		s.Listener.Close()
	})
	defer stop()
	defer s.Listener.Close()

	var backoff time.Duration
	for {
		conn, err := s.Listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return errors.Wrap(err, "listener closed")
			}
			backoff = nextBackoff(backoff)
			logger.Warn("Accept error, retrying", "error", err, "delay", backoff)
			time.Sleep(backoff)
			continue
		}
		backoff = 0
		logger.Debug("Connection accepted", "remote_addr", conn.RemoteAddr())

		execute(func() {
			s.handleConnection(ctx, conn)
		})
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	id := uuid.NewString()
	ctx = context.WithValue(ctx, connIDKey{}, id)

	// A fault in one handler must not reach the accept loop or other
	// connections.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Connection handler panicked",
				"conn_id", id,
				"remote_addr", conn.RemoteAddr(),
				"panic", r,
				"stack", string(debug.Stack()))
			conn.Close()
		}
	}()

	// Delegate the entire lifecycle to the handler
	s.ConnectionHandler.HandleConnection(ctx, conn)
}

func nextBackoff(current time.Duration) time.Duration {
	if current == 0 {
		return 5 * time.Millisecond
	}
	current *= 2
	if limit := time.Second; current > limit {
		return limit
	}
	return current
}
