package secrets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"server-launcher/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapEnv map[string]string

func (e mapEnv) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

func (e mapEnv) Setenv(key, value string) error {
	if key == "FAIL" {
		return errors.New("setenv failed")
	}
	e[key] = value
	return nil
}

func (e mapEnv) Environ() []string {
	var out []string
	for k, v := range e {
		out = append(out, k+"="+v)
	}
	return out
}

func TestApply(t *testing.T) {
	bundle := map[string]string{"PORT": "9000", "TOKEN": "abc", "DB": "mongo"}

	t.Run("KeepsExisting", func(t *testing.T) {
		env := mapEnv{"PORT": "3002"}
		applied, err := Apply(env, bundle, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"DB", "TOKEN"}, applied)
		assert.Equal(t, "3002", env["PORT"])
		assert.Equal(t, "abc", env["TOKEN"])
	})

	t.Run("Override", func(t *testing.T) {
		env := mapEnv{"PORT": "3002"}
		applied, err := Apply(env, bundle, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"DB", "PORT", "TOKEN"}, applied)
		assert.Equal(t, "9000", env["PORT"])
	})

	t.Run("SetenvError", func(t *testing.T) {
		env := mapEnv{}
		applied, err := Apply(env, map[string]string{"A": "1", "FAIL": "x"}, false)
		assert.Error(t, err)
		assert.Equal(t, []string{"A"}, applied)
	})
}

func TestService_Inject(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "secrets", "", zap.NewNop())

	body := io.NopCloser(strings.NewReader("PORT=9000\nMONGODB_URI=mongodb://db\n"))
	mockClient.On("GetObject", mock.Anything, "secrets", "timeful-backend-secrets.env", mock.Anything).Return(body, nil)

	env := mapEnv{"PORT": "3002"}
	applied, err := svc.Inject(context.Background(), "timeful-backend-secrets", env, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"MONGODB_URI"}, applied)
	assert.Equal(t, "3002", env["PORT"])
	assert.Equal(t, "mongodb://db", env["MONGODB_URI"])
}

func TestService_InjectMissingBundle(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "secrets", "", zap.NewNop())

	mockClient.On("GetObject", mock.Anything, "secrets", "missing.env", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	env := mapEnv{}
	_, err := svc.Inject(context.Background(), "missing", env, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, env)
}
