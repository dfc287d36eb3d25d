package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	envPrefix  = "HEARTRISK_"
	dotEnvFile = ".env"
)

// loadEnviron merges the variables of dotEnvPath (if it exists) with osEnv.
// Real environment variables win over the file.
func loadEnviron(dotEnvPath string, osEnv []string) (map[string]string, error) {
	environ, err := godotenv.Read(dotEnvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", dotEnvPath, err)
		}
		environ = map[string]string{}
	}

	for _, kv := range osEnv {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			environ[k] = v
		}
	}
	return environ, nil
}

// parseEnv overlays cfg with HEARTRISK_* variables. Unset variables leave
// the current values untouched.
func parseEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
