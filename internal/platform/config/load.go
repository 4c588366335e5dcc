package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration of profile from four layers, later layers
// winning: built-in defaults, {configDir}/base.yaml, {configDir}/{profile}.yaml
// and APP_-prefixed environment variables.
//
// An environment variable is matched against the keys the earlier layers
// produced, so field-internal underscores survive:
//
//	APP_SERVER_REQUEST_TIMEOUT             -> server.request_timeout
//	APP_CLIENTS_ACCOUNT_RETRY_MAX_ATTEMPTS -> clients.account.retry.max_attempts
//	APP_RATE_LIMIT_CATEGORIES_WHEELCHAIR   -> rate_limit.categories.wheelchair
//
// List keys take a comma-separated value:
//
//	APP_WORKER_NAMES=SendEmailMessage,TriggerWebhook -> worker.names
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envTransform maps APP_FOO_BAR onto the known key whose dots and
// underscores flatten to foo_bar. Unknown variables fall back to treating
// every underscore as nesting.
func envTransform(k *koanf.Koanf) func(string, string) (string, any) {
	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))

		key, ok := known[flat]
		if !ok {
			return strings.ReplaceAll(flat, "_", "."), value
		}
		if isList(k.Get(key)) {
			return key, splitList(value)
		}
		return key, value
	}
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	}
	return false
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
