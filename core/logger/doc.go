// Package logger builds the zap logger shared by the CLI, the launcher and the
// status server.
//
// Level selects the preset (debug gives the development config with ISO8601
// timestamps) and Format selects json or console encoding. WithRayID attaches the
// request ID set by the rayid middleware.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	log.Info("Server process started", zap.Int("pid", pid))
package logger
