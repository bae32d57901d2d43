package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	fsprovider "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "APP_"
	baseFile  = "base.yaml"
)

// Option customizes Load.
type Option func(*loader)

// WithConfigDir reads base.yaml and the profile yaml from dir on disk.
// The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.fsys = os.DirFS(dir) }
}

// WithFS reads base.yaml and the profile yaml from fsys.
func WithFS(fsys fs.FS) Option {
	return func(l *loader) { l.fsys = fsys }
}

// WithOverrideFile layers an extra yaml file over the profile. It is applied
// before environment variables, so env still wins. Empty means none.
func WithOverrideFile(path string) Option {
	return func(l *loader) { l.override = path }
}

type loader struct {
	fsys     fs.FS
	override string
	k        *koanf.Koanf
}

// Load resolves the storefront configuration for profile. Layers, lowest
// precedence first:
//
//	defaults
//	base.yaml
//	<profile>.yaml
//	override file (WithOverrideFile)
//	APP_* environment variables
//
// Env names map onto known keys, so APP_CLIENT_RETRY_MAX_ATTEMPTS sets
// client.retry.max_attempts and APP_STOREFRONT_SUFFIXES=com,io sets the
// suffix list.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{fsys: os.DirFS("configs"), k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{baseFile, profile + ".yaml"} {
		if err := l.k.Load(fsprovider.Provider(l.fsys, name), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
	}
	if l.override != "" {
		if err := l.k.Load(file.Provider(l.override), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading override %s: %w", l.override, err)
		}
	}
	if err := l.loadEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for profile %q: %w", profile, err)
	}
	return &cfg, nil
}

// loadEnv applies APP_* variables. Underscores are ambiguous (nesting vs
// read_timeout), so names are matched against the keys already loaded and
// only fall back to treating every underscore as a separator.
func (l *loader) loadEnv() error {
	known := make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	transform := func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		key, ok := known[name]
		if !ok {
			return strings.ReplaceAll(name, "_", "."), value
		}
		if _, list := l.k.Get(key).([]any); list {
			return key, splitList(value)
		}
		return key, value
	}

	if err := l.k.Load(env.Provider(".", env.Opt{Prefix: envPrefix, TransformFunc: transform}), nil); err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	return nil
}

// splitList turns "com, io," into [com io].
func splitList(value string) []string {
	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), profile != path.Clean(profile), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	}
	return nil
}
