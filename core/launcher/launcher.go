package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrChdir is returned when the application root cannot be entered.
	ErrChdir = errors.New("failed to change working directory")
	// ErrStart is returned when the server executable cannot be started.
	ErrStart = errors.New("failed to start server process")
)

// Launcher performs the one-shot start of the backend server.
type Launcher struct {
	cfg    Config
	logger *zap.Logger
	env    Environment
	chdir  func(dir string) error
	start  Starter
}

// Option customises a Launcher.
type Option func(*Launcher)

// WithEnvironment replaces the process environment.
func WithEnvironment(env Environment) Option {
	return func(l *Launcher) { l.env = env }
}

// WithChdir replaces the working directory switch.
func WithChdir(fn func(dir string) error) Option {
	return func(l *Launcher) { l.chdir = fn }
}

// WithStarter replaces the process starter.
func WithStarter(fn Starter) Option {
	return func(l *Launcher) { l.start = fn }
}

// New creates a Launcher operating on the real process by default.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:    cfg,
		logger: logger,
		env:    OSEnvironment{},
		chdir:  os.Chdir,
		start:  ExecStarter,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch defaults the port variable, switches to the application root and starts
// the server. It returns as soon as the process has started.
func (l *Launcher) Launch(ctx context.Context) (*Child, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logg := l.logger.With(zap.String("launch_id", id))

	defaulted, err := SetDefault(l.env, l.cfg.PortEnv, l.cfg.DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", l.cfg.PortEnv, err)
	}
	port, _ := l.env.LookupEnv(l.cfg.PortEnv)
	logg.Info("Port resolved",
		zap.String("env", l.cfg.PortEnv),
		zap.String("port", port),
		zap.Bool("defaulted", defaulted),
	)

	if err := l.chdir(l.cfg.WorkDir); err != nil {
		return nil, fmt.Errorf("%w to %s: %w", ErrChdir, l.cfg.WorkDir, err)
	}

	args := l.cfg.Args()
	proc, err := l.start(l.cfg.Binary, args, l.env.Environ())
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrStart, l.cfg.Binary, err)
	}

	child := newChild(id, l.cfg.Binary, args, proc)
	logg.Info("Server process started",
		zap.String("binary", child.Path),
		zap.Strings("args", child.Args),
		zap.String("work_dir", l.cfg.WorkDir),
		zap.Int("pid", child.Pid()),
	)

	go child.reap(logg)

	return child, nil
}
