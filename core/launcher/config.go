package launcher

// Config holds the fixed launch parameters of the backend server.
type Config struct {
	// PortEnv is the name of the environment variable carrying the listen port.
	PortEnv string `mapstructure:"port_env" default:"PORT"`
	// DefaultPort is written to PortEnv when it is unset.
	DefaultPort string `mapstructure:"default_port" default:"3002"`
	// WorkDir is the application root the launcher switches into.
	WorkDir string `mapstructure:"work_dir" default:"/app"`
	// Binary is the absolute path of the server executable.
	Binary string `mapstructure:"binary" default:"/app/server"`
	// Flag is passed to the server verbatim as its only argument.
	Flag string `mapstructure:"flag" default:"-release=true"`
}

// Args returns the argument list passed to the server executable.
func (c Config) Args() []string {
	if c.Flag == "" {
		return nil
	}
	return []string{c.Flag}
}
