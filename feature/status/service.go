package status

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"time"

	"server-launcher/core/launcher"
	"server-launcher/core/platform"

	"go.uber.org/zap"
)

// ErrNotLaunched is returned before a child has been tracked.
var ErrNotLaunched = errors.New("server not launched")

// Report describes the function and its launched child.
type Report struct {
	App       string     `json:"app"`
	Function  string     `json:"function"`
	Label     string     `json:"label,omitempty"`
	Port      int        `json:"port,omitempty"`
	LaunchID  string     `json:"launch_id,omitempty"`
	Pid       int        `json:"pid,omitempty"`
	Binary    string     `json:"binary,omitempty"`
	Args      []string   `json:"args,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	Running   bool       `json:"running"`
	ExitError string     `json:"exit_error,omitempty"`
}

// Service tracks the launched child for reporting.
type Service struct {
	app       string
	spec      platform.FunctionSpec
	readyHost string
	logger    *zap.Logger

	mu    sync.RWMutex
	child *launcher.Child
}

// NewService creates a status service for the function spec of app.
func NewService(app string, spec platform.FunctionSpec, logger *zap.Logger) *Service {
	return &Service{
		app:       app,
		spec:      spec,
		readyHost: "127.0.0.1",
		logger:    logger,
	}
}

// Track records the launched child.
func (s *Service) Track(child *launcher.Child) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.child = child
}

// Report returns the current status.
func (s *Service) Report() Report {
	r := Report{App: s.app, Function: s.spec.Name}
	if ws := s.spec.WebServer; ws != nil {
		r.Label = ws.Label
		r.Port = ws.Port
	}

	s.mu.RLock()
	child := s.child
	s.mu.RUnlock()
	if child == nil {
		return r
	}

	started := child.StartedAt
	r.LaunchID = child.ID
	r.Pid = child.Pid()
	r.Binary = child.Path
	r.Args = child.Args
	r.StartedAt = &started
	r.Running = child.Running()
	if !r.Running {
		if err := child.Err(); err != nil {
			r.ExitError = err.Error()
		}
	}
	return r
}

// Ready dials the backend web port once.
func (s *Service) Ready(ctx context.Context) error {
	s.mu.RLock()
	launched := s.child != nil
	s.mu.RUnlock()
	if !launched {
		return ErrNotLaunched
	}

	ws := s.spec.WebServer
	if ws == nil {
		return nil
	}
	return platform.Dial(ctx, net.JoinHostPort(s.readyHost, strconv.Itoa(ws.Port)))
}
