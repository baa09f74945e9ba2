package platform

import "time"

// Config is the function declaration as read from configuration.
type Config struct {
	// App is the platform app name.
	App string `mapstructure:"app" default:"timeful-backend"`
	// Name is the function name within the app.
	Name string `mapstructure:"name" default:"serve"`
	// Dockerfile is the image build recipe.
	Dockerfile string `mapstructure:"dockerfile" default:"Dockerfile.modal"`
	// Context is the image build context.
	Context string `mapstructure:"context" default:"."`
	// MinContainers is the number of containers kept warm.
	MinContainers int `mapstructure:"min_containers" default:"1"`
	// SecretName is the secret bundle attached to the function.
	SecretName string `mapstructure:"secret_name" default:"timeful-backend-secrets"`
	// Port is the web server port routed by the platform.
	Port int `mapstructure:"port" default:"3002"`
	// Label is the public label of the web endpoint.
	Label string `mapstructure:"label" default:"timeful-backend"`
	// StartupTimeoutSeconds bounds the wait for the web port.
	StartupTimeoutSeconds int `mapstructure:"startup_timeout_seconds" default:"60"`
}

// Spec converts the configuration into a FunctionSpec.
func (c Config) Spec() FunctionSpec {
	spec := FunctionSpec{
		Name:          c.Name,
		Image:         Image{Dockerfile: c.Dockerfile, Context: c.Context},
		MinContainers: c.MinContainers,
		WebServer: &WebServer{
			Port:           c.Port,
			Label:          c.Label,
			StartupTimeout: time.Duration(c.StartupTimeoutSeconds) * time.Second,
		},
	}
	if c.SecretName != "" {
		spec.Secrets = []Secret{{Name: c.SecretName}}
	}
	return spec
}
