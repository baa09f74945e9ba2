package platform

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrNotReady is returned when a web server port does not open in time.
var ErrNotReady = errors.New("web server not ready")

// Dial attempts a single TCP connection to addr.
func Dial(ctx context.Context, addr string) error {
	d := net.Dialer{Timeout: time.Second}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}

// WaitForPort polls addr with exponential backoff until it accepts a connection
// or timeout elapses.
func WaitForPort(ctx context.Context, addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = timeout

	err := backoff.Retry(func() error {
		return Dial(ctx, addr)
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("%w: %s after %s: %w", ErrNotReady, addr, timeout, err)
	}
	return nil
}
