package platform

import (
	"errors"
	"fmt"
	"time"
)

// DefaultStartupTimeout bounds how long Invoke waits for a web server port.
const DefaultStartupTimeout = 60 * time.Second

// ErrInvalidSpec is returned when a FunctionSpec fails validation.
var ErrInvalidSpec = errors.New("invalid function spec")

// Image describes how the container image is built.
type Image struct {
	// Dockerfile is the path of the Dockerfile, relative to Context.
	Dockerfile string `yaml:"dockerfile"`
	// Context is the build context directory.
	Context string `yaml:"context,omitempty"`
}

// Secret references a named secret bundle injected into the container.
type Secret struct {
	Name string `yaml:"name"`
}

// WebServer exposes a port of the container through the platform.
type WebServer struct {
	Port  int
	Label string
	// StartupTimeout defaults to DefaultStartupTimeout when zero.
	StartupTimeout time.Duration
}

// FunctionSpec is the platform configuration of a single function.
type FunctionSpec struct {
	Name          string
	Image         Image
	MinContainers int
	Secrets       []Secret
	WebServer     *WebServer
}

// Validate checks the spec for values the platform would reject.
func (s FunctionSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSpec)
	}
	if s.Image.Dockerfile == "" {
		return fmt.Errorf("%w: %s: image dockerfile is required", ErrInvalidSpec, s.Name)
	}
	if s.MinContainers < 0 {
		return fmt.Errorf("%w: %s: min containers must not be negative", ErrInvalidSpec, s.Name)
	}
	for _, secret := range s.Secrets {
		if secret.Name == "" {
			return fmt.Errorf("%w: %s: secret name is required", ErrInvalidSpec, s.Name)
		}
	}
	if ws := s.WebServer; ws != nil {
		if ws.Port < 1 || ws.Port > 65535 {
			return fmt.Errorf("%w: %s: web server port %d out of range", ErrInvalidSpec, s.Name, ws.Port)
		}
		if ws.Label == "" {
			return fmt.Errorf("%w: %s: web server label is required", ErrInvalidSpec, s.Name)
		}
		if ws.StartupTimeout < 0 {
			return fmt.Errorf("%w: %s: startup timeout must not be negative", ErrInvalidSpec, s.Name)
		}
	}
	return nil
}

func (w WebServer) startupTimeout() time.Duration {
	if w.StartupTimeout <= 0 {
		return DefaultStartupTimeout
	}
	return w.StartupTimeout
}
