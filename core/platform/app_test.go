package platform_test

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"server-launcher/core/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validSpec() platform.FunctionSpec {
	return platform.FunctionSpec{
		Name:          "serve",
		Image:         platform.Image{Dockerfile: "Dockerfile.modal", Context: "."},
		MinContainers: 1,
		Secrets:       []platform.Secret{{Name: "timeful-backend-secrets"}},
		WebServer:     &platform.WebServer{Port: 3002, Label: "timeful-backend"},
	}
}

func noop(context.Context) error { return nil }

func TestFunctionSpec_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*platform.FunctionSpec)
		valid  bool
	}{
		{"Valid", func(*platform.FunctionSpec) {}, true},
		{"NoWebServer", func(s *platform.FunctionSpec) { s.WebServer = nil }, true},
		{"ZeroMinContainers", func(s *platform.FunctionSpec) { s.MinContainers = 0 }, true},
		{"MissingName", func(s *platform.FunctionSpec) { s.Name = "" }, false},
		{"MissingDockerfile", func(s *platform.FunctionSpec) { s.Image.Dockerfile = "" }, false},
		{"NegativeMinContainers", func(s *platform.FunctionSpec) { s.MinContainers = -1 }, false},
		{"EmptySecretName", func(s *platform.FunctionSpec) { s.Secrets = []platform.Secret{{}} }, false},
		{"PortZero", func(s *platform.FunctionSpec) { s.WebServer.Port = 0 }, false},
		{"PortTooLarge", func(s *platform.FunctionSpec) { s.WebServer.Port = 70000 }, false},
		{"MissingLabel", func(s *platform.FunctionSpec) { s.WebServer.Label = "" }, false},
		{"NegativeTimeout", func(s *platform.FunctionSpec) { s.WebServer.StartupTimeout = -time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, platform.ErrInvalidSpec)
			}
		})
	}
}

func TestApp_Function(t *testing.T) {
	t.Run("Registers", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		fn, err := app.Function(validSpec(), noop)
		require.NoError(t, err)
		assert.Equal(t, "serve", fn.Spec.Name)

		got, ok := app.Lookup("serve")
		assert.True(t, ok)
		assert.Same(t, fn, got)
	})

	t.Run("RejectsDuplicate", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		_, err := app.Function(validSpec(), noop)
		require.NoError(t, err)
		_, err = app.Function(validSpec(), noop)
		assert.ErrorIs(t, err, platform.ErrInvalidSpec)
	})

	t.Run("RejectsNilHandler", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		_, err := app.Function(validSpec(), nil)
		assert.ErrorIs(t, err, platform.ErrInvalidSpec)
	})

	t.Run("KeepsRegistrationOrder", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		for _, name := range []string{"b", "a", "c"} {
			spec := validSpec()
			spec.Name = name
			_, err := app.Function(spec, noop)
			require.NoError(t, err)
		}
		var names []string
		for _, fn := range app.Functions() {
			names = append(names, fn.Spec.Name)
		}
		assert.Equal(t, []string{"b", "a", "c"}, names)
	})
}

func listen(t *testing.T) (net.Listener, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return ln, ln.Addr().(*net.TCPAddr).Port
}

func TestApp_Invoke(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		err := app.Invoke(context.Background(), "missing")
		assert.ErrorIs(t, err, platform.ErrNotFound)
	})

	t.Run("HandlerErrorFailsStart", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		boom := errors.New("boom")
		_, err := app.Function(validSpec(), func(context.Context) error { return boom })
		require.NoError(t, err)

		err = app.Invoke(context.Background(), "serve")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("WithoutWebServer", func(t *testing.T) {
		app := platform.NewApp("timeful-backend")
		spec := validSpec()
		spec.WebServer = nil
		calls := 0
		_, err := app.Function(spec, func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)

		require.NoError(t, app.Invoke(context.Background(), "serve"))
		assert.Equal(t, 1, calls)
	})

	t.Run("WaitsForPort", func(t *testing.T) {
		_, port := listen(t)

		app := platform.NewApp("timeful-backend")
		spec := validSpec()
		spec.WebServer.Port = port
		spec.WebServer.StartupTimeout = 5 * time.Second
		_, err := app.Function(spec, noop)
		require.NoError(t, err)

		assert.NoError(t, app.Invoke(context.Background(), "serve"))
	})

	t.Run("PortNeverOpens", func(t *testing.T) {
		ln, port := listen(t)
		require.NoError(t, ln.Close())

		app := platform.NewApp("timeful-backend")
		spec := validSpec()
		spec.WebServer.Port = port
		spec.WebServer.StartupTimeout = 300 * time.Millisecond
		_, err := app.Function(spec, noop)
		require.NoError(t, err)

		err = app.Invoke(context.Background(), "serve")
		assert.ErrorIs(t, err, platform.ErrNotReady)
	})
}

func TestWaitForPort_OpensLate(t *testing.T) {
	ln, port := listen(t)
	addr := "127.0.0.1:" + strconv.Itoa(port)
	require.NoError(t, ln.Close())

	lateCh := make(chan net.Listener, 1)
	go func() {
		time.Sleep(200 * time.Millisecond)
		if late, err := net.Listen("tcp", addr); err == nil {
			lateCh <- late
		}
	}()

	assert.NoError(t, platform.WaitForPort(context.Background(), addr, 5*time.Second))
	select {
	case late := <-lateCh:
		_ = late.Close()
	case <-time.After(time.Second):
	}
}

func TestApp_Manifest(t *testing.T) {
	app := platform.NewApp("timeful-backend")
	_, err := app.Function(validSpec(), noop)
	require.NoError(t, err)

	m := app.Manifest()
	assert.Equal(t, "timeful-backend", m.App)
	require.Len(t, m.Functions, 1)
	fm := m.Functions[0]
	assert.Equal(t, "serve", fm.Name)
	assert.Equal(t, 1, fm.MinContainers)
	assert.Equal(t, []string{"timeful-backend-secrets"}, fm.Secrets)
	require.NotNil(t, fm.WebServer)
	assert.Equal(t, 3002, fm.WebServer.Port)
	assert.Equal(t, "timeful-backend", fm.WebServer.Label)
	assert.Equal(t, platform.DefaultStartupTimeout.String(), fm.WebServer.StartupTimeout)

	out, err := m.YAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "timeful-backend", decoded["app"])
	assert.Contains(t, string(out), "dockerfile: Dockerfile.modal")
	assert.Contains(t, string(out), "label: timeful-backend")
}
