package config

import (
	"reflect"
	"strings"

	"server-launcher/core/launcher"
	"server-launcher/core/logger"
	"server-launcher/core/platform"
	"server-launcher/core/server"
	"server-launcher/core/storage"
	"server-launcher/feature/secrets"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LegacySecretEnv names the secret bundle in older deployments.
const LegacySecretEnv = "MODAL_BACKEND_SECRET"

// Config holds all configuration for the launcher.
type Config struct {
	// Launcher holds the fixed launch parameters of the backend server.
	Launcher launcher.Config `mapstructure:"launcher"`
	// Function holds the platform function declaration.
	Function platform.Config `mapstructure:"function"`
	// Secrets controls secret bundle injection.
	Secrets secrets.Config `mapstructure:"secrets"`
	// Storage holds configuration for the object storage holding secret bundles.
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the status server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in containers.
	_ = godotenv.Load(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("function.secret_name", "FUNCTION_SECRET_NAME", LegacySecretEnv); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every 'mapstructure' key with its
// 'default' tag, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
