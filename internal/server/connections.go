package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrShuttingDown = errors.New("server is shutting down")

// Conn - anything whose blocked reads can be released with a deadline.
type Conn interface {
	SetReadDeadline(t time.Time) error
}

// Connections - the live connections of one listener. On shutdown their blocked
// reads are released together and the workers are waited for.
type Connections struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	live    map[Conn]struct{}
	closing bool
}

func NewConnections() *Connections {
	return &Connections{
		live: make(map[Conn]struct{}),
	}
}

// Track - registers a connection before its worker starts. Once shutdown has
// started it returns ErrShuttingDown and the caller must drop the connection.
func (that *Connections) Track(conn Conn) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closing {
		return ErrShuttingDown
	}

	that.live[conn] = struct{}{}
	that.wg.Add(1)

	return nil
}

// Release - must be called once by the worker of a tracked connection.
func (that *Connections) Release(conn Conn) {
	that.mu.Lock()
	delete(that.live, conn)
	that.mu.Unlock()

	that.wg.Done()
}

// Extend - moves the read deadline of conn timeout into the future.
func (that *Connections) Extend(conn Conn, timeout time.Duration) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closing {
		return ErrShuttingDown
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("failed to set read deadline: %w", err)
	}

	return nil
}

// Interrupt - starts shutdown: blocked reads return at once and no deadline can be extended.
func (that *Connections) Interrupt() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closing = true

	now := time.Now()
	for conn := range that.live {
		_ = conn.SetReadDeadline(now)
	}
}

func (that *Connections) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.live)
}

// Wait - starts shutdown if it has not started yet, then blocks until every
// tracked worker has released its connection or ctx is done.
func (that *Connections) Wait(ctx context.Context) error {
	that.Interrupt()

	done := make(chan struct{})
	go func() {
		that.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%d connections still open: %w", that.Len(), ctx.Err())
	}
}
