package secrets

import (
	"context"
	"fmt"

	"server-launcher/core/launcher"

	"go.uber.org/zap"
)

// Apply writes bundle into env. Keys already present in env keep their value
// unless override is set. It returns the sorted keys that were written.
func Apply(env launcher.Environment, bundle map[string]string, override bool) ([]string, error) {
	var applied []string
	for _, key := range sortedKeys(bundle) {
		if _, exists := env.LookupEnv(key); exists && !override {
			continue
		}
		if err := env.Setenv(key, bundle[key]); err != nil {
			return applied, fmt.Errorf("failed to set %s: %w", key, err)
		}
		applied = append(applied, key)
	}
	return applied, nil
}

// Inject fetches the named bundle and applies it to env.
func (s *Service) Inject(ctx context.Context, name string, env launcher.Environment, override bool) ([]string, error) {
	bundle, err := s.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	applied, err := Apply(env, bundle, override)
	if err != nil {
		return applied, err
	}
	s.logger.Info("Injected secret bundle",
		zap.String("name", name),
		zap.Int("keys", len(bundle)),
		zap.Int("applied", len(applied)),
	)
	return applied, nil
}
