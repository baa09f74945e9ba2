// Package launcher starts the prebuilt backend server as a detached child process.
//
// A launch is a single fire-and-forget action performed once per container start:
//
//  1. The port environment variable is set to its default, but only when it is unset.
//  2. The working directory is switched to the application root.
//  3. The server executable is started with its one opaque flag.
//
// Launch returns as soon as the child is running. It never waits for the child to exit;
// a background goroutine only reaps it so that it does not linger as a zombie.
//
// # Failures
//
// A failed directory change or process start is returned to the caller, wrapped in
// ErrChdir or ErrStart. Callers treat any error as a failed container start.
//
// # Usage
//
//	l := launcher.New(cfg.Launcher, logg)
//	child, err := l.Launch(ctx)
//	if err != nil {
//	    return err
//	}
//	logg.Info("server started", zap.Int("pid", child.Pid()))
package launcher
