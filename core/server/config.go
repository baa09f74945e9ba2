package server

import "net"

// Config holds configuration for the optional status server.
type Config struct {
	// Enabled turns the status server on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the interface the status server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the status server listens. It must differ from the backend port.
	Port string `mapstructure:"port" default:"9090"`
	// ApiKey protects every endpoint when set.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ConflictsWith reports whether the status server would bind the backend port.
func (c Config) ConflictsWith(backendPort string) bool {
	return c.Enabled && c.Port == backendPort
}
