package secrets

// Config controls secret bundle injection at launch.
type Config struct {
	// Enabled fetches the function's secret bundle from storage before launch.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Override lets bundle values replace variables already in the environment.
	Override bool `mapstructure:"override" default:"false"`
	// Prefix is prepended to bundle object names.
	Prefix string `mapstructure:"prefix" default:""`
}
