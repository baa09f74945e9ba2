package launcher

import (
	"os"
	"os/exec"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Process is a started child process.
type Process interface {
	Pid() int
	Signal(sig os.Signal) error
	Wait() error
}

// Starter starts path with args and env and returns without waiting for it.
type Starter func(path string, args []string, env []string) (Process, error)

// ExecStarter starts the process with os/exec, inheriting stdout and stderr.
func ExecStarter(path string, args []string, env []string) (Process, error) {
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &cmdProcess{cmd: cmd}, nil
}

type cmdProcess struct {
	cmd *exec.Cmd
}

func (p *cmdProcess) Pid() int                   { return p.cmd.Process.Pid }
func (p *cmdProcess) Signal(sig os.Signal) error { return p.cmd.Process.Signal(sig) }
func (p *cmdProcess) Wait() error                { return p.cmd.Wait() }

// Child is the handle of a launched server process.
type Child struct {
	// ID identifies this launch in logs and status reports.
	ID string
	// Path is the executable that was started.
	Path string
	// Args are the arguments passed to the executable.
	Args []string
	// StartedAt is when the process was started.
	StartedAt time.Time

	proc Process
	done chan struct{}

	mu  sync.Mutex
	err error
}

func newChild(id, path string, args []string, proc Process) *Child {
	return &Child{
		ID:        id,
		Path:      path,
		Args:      args,
		StartedAt: time.Now(),
		proc:      proc,
		done:      make(chan struct{}),
	}
}

// Pid returns the operating system process ID.
func (c *Child) Pid() int {
	return c.proc.Pid()
}

// Signal sends sig to the child. It is a no-op once the child has been reaped.
func (c *Child) Signal(sig os.Signal) error {
	if !c.Running() {
		return nil
	}
	return c.proc.Signal(sig)
}

// Done is closed after the child has exited and been reaped.
func (c *Child) Done() <-chan struct{} {
	return c.done
}

// Running reports whether the child has not been reaped yet.
func (c *Child) Running() bool {
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Err returns the exit error once Done is closed.
func (c *Child) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// reap collects the exit status. The exit is logged and nothing else reacts to it.
func (c *Child) reap(logger *zap.Logger) {
	err := c.proc.Wait()

	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	close(c.done)

	if err != nil {
		logger.Warn("Server process exited", zap.String("launch_id", c.ID), zap.Error(err))
		return
	}
	logger.Info("Server process exited", zap.String("launch_id", c.ID))
}
