package platform

import "gopkg.in/yaml.v3"

// Manifest describes an App for deployment tooling.
type Manifest struct {
	App       string             `yaml:"app"`
	Functions []FunctionManifest `yaml:"functions"`
}

// FunctionManifest describes one function.
type FunctionManifest struct {
	Name          string             `yaml:"name"`
	Image         Image              `yaml:"image"`
	MinContainers int                `yaml:"min_containers"`
	Secrets       []string           `yaml:"secrets,omitempty"`
	WebServer     *WebServerManifest `yaml:"web_server,omitempty"`
}

// WebServerManifest describes an exposed web server.
type WebServerManifest struct {
	Port           int    `yaml:"port"`
	Label          string `yaml:"label"`
	StartupTimeout string `yaml:"startup_timeout"`
}

// Manifest returns the description of every registered function.
func (a *App) Manifest() Manifest {
	m := Manifest{App: a.name, Functions: []FunctionManifest{}}
	for _, fn := range a.Functions() {
		spec := fn.Spec
		fm := FunctionManifest{
			Name:          spec.Name,
			Image:         spec.Image,
			MinContainers: spec.MinContainers,
		}
		for _, s := range spec.Secrets {
			fm.Secrets = append(fm.Secrets, s.Name)
		}
		if ws := spec.WebServer; ws != nil {
			fm.WebServer = &WebServerManifest{
				Port:           ws.Port,
				Label:          ws.Label,
				StartupTimeout: ws.startupTimeout().String(),
			}
		}
		m.Functions = append(m.Functions, fm)
	}
	return m
}

// YAML encodes the manifest.
func (m Manifest) YAML() ([]byte, error) {
	return yaml.Marshal(m)
}
