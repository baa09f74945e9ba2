package platform

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
)

// ErrNotFound is returned when no function is registered under a name.
var ErrNotFound = errors.New("function not found")

// Handler is the entry point of a function, run once per container start.
type Handler func(ctx context.Context) error

// Function is a registered function.
type Function struct {
	Spec    FunctionSpec
	handler Handler
}

// App is a named collection of functions.
type App struct {
	name      string
	readyHost string

	mu        sync.RWMutex
	functions map[string]*Function
	order     []string
}

// AppOption customises an App.
type AppOption func(*App)

// WithReadyHost sets the host dialled when waiting for a web server. Defaults to 127.0.0.1.
func WithReadyHost(host string) AppOption {
	return func(a *App) { a.readyHost = host }
}

// NewApp creates an empty App.
func NewApp(name string, opts ...AppOption) *App {
	a := &App{
		name:      name,
		readyHost: "127.0.0.1",
		functions: make(map[string]*Function),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the app name.
func (a *App) Name() string {
	return a.name
}

// Function validates spec and registers it with its entry point.
func (a *App) Function(spec FunctionSpec, h Handler) (*Function, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %s: handler is required", ErrInvalidSpec, spec.Name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.functions[spec.Name]; exists {
		return nil, fmt.Errorf("%w: %s: already registered", ErrInvalidSpec, spec.Name)
	}
	fn := &Function{Spec: spec, handler: h}
	a.functions[spec.Name] = fn
	a.order = append(a.order, spec.Name)
	return fn, nil
}

// Lookup returns the function registered under name.
func (a *App) Lookup(name string) (*Function, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	fn, ok := a.functions[name]
	return fn, ok
}

// Functions returns the registered functions in registration order.
func (a *App) Functions() []*Function {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*Function, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.functions[name])
	}
	return out
}

// Invoke runs the entry point of the named function and waits for its web server.
func (a *App) Invoke(ctx context.Context, name string) error {
	fn, ok := a.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := fn.handler(ctx); err != nil {
		return fmt.Errorf("function %s failed: %w", name, err)
	}

	ws := fn.Spec.WebServer
	if ws == nil {
		return nil
	}
	addr := net.JoinHostPort(a.readyHost, strconv.Itoa(ws.Port))
	return WaitForPort(ctx, addr, ws.startupTimeout())
}
