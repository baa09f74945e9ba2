package launcher

import "os"

// Environment is the process environment the launcher reads and mutates.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Environ() []string
}

// OSEnvironment is the real process environment.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSEnvironment) Setenv(key, value string) error { return os.Setenv(key, value) }

func (OSEnvironment) Environ() []string { return os.Environ() }

// SetDefault sets key to value only if key is not present in env.
// An existing empty value counts as present.
func SetDefault(env Environment, key, value string) (bool, error) {
	if _, ok := env.LookupEnv(key); ok {
		return false, nil
	}
	if err := env.Setenv(key, value); err != nil {
		return false, err
	}
	return true, nil
}
