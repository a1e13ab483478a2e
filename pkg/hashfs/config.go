package hashfs

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/wuxler/ruafs/pkg/errdefs"
)

// Recognized keys for the map form of the configuration, as spelled in
// framework settings, environment files and config maps.
const (
	ConfigKeyHost       = "HOST"
	ConfigKeyPathPrefix = "PATH_PREFIX"
	ConfigKeyRootFolder = "ROOT_FOLDER"
	ConfigKeyDepth      = "DEPTH"
	ConfigKeyWidth      = "WIDTH"
	ConfigKeyAlgorithm  = "ALGORITHM"
)

// Defaults applied by DefaultConfig.
const (
	DefaultDepth     = 4
	DefaultWidth     = 1
	DefaultAlgorithm = "sha256"
)

// Config carries the settings a storage engine is opened with and the inputs
// of URL composition.
type Config struct {
	// Host is the static scheme://host[/path] base prepended to external
	// URLs. When empty, external URLs fall back to the origin of the live
	// request.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// PathPrefix is the URL path segment prepended to every relative path.
	// Must be empty or start with a slash.
	PathPrefix string `json:"path_prefix,omitempty" yaml:"path_prefix,omitempty"`

	// RootFolder is the directory the engine stores content under. Required.
	RootFolder string `json:"root_folder" yaml:"root_folder"`

	// Depth is the number of directory levels content fans out into.
	// Forwarded to the engine as-is.
	Depth int `json:"depth,omitempty" yaml:"depth,omitempty"`

	// Width is the number of hash characters per directory level. Forwarded
	// to the engine as-is.
	Width int `json:"width,omitempty" yaml:"width,omitempty"`

	// Algorithm names the content hash the engine keys files by. Forwarded
	// to the engine as-is.
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
}

// DefaultConfig returns a Config with defaults applied. RootFolder has no
// default and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		Depth:     DefaultDepth,
		Width:     DefaultWidth,
		Algorithm: DefaultAlgorithm,
	}
}

// WithDefaults returns a copy of c with unset engine fields replaced by
// defaults. Host, PathPrefix and RootFolder are kept as they are since the
// empty string is meaningful for them.
func (c Config) WithDefaults() Config {
	if c.Depth == 0 {
		c.Depth = DefaultDepth
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	return c
}

// Validate reports the first violation found. It runs before any client
// handle is created so a misconfigured application fails at startup rather
// than on first use.
func (c Config) Validate() error {
	if c.PathPrefix != "" && !strings.HasPrefix(c.PathPrefix, "/") {
		return errdefs.Newf(ErrConfig, "config key %q must be empty or start with a slash, got %q",
			ConfigKeyPathPrefix, c.PathPrefix)
	}
	if c.RootFolder == "" {
		return errdefs.Newf(ErrConfig, "config key %q is required", ConfigKeyRootFolder)
	}
	return nil
}

// ConfigFromMap builds a Config from framework-style settings. Absent keys
// take defaults and unrecognized keys are ignored. PATH_PREFIX present with a
// nil value marks a setting that was declared but never assigned and is
// rejected outright; validation of the resulting Config is left to the
// caller.
func ConfigFromMap(settings map[string]any) (Config, error) {
	cfg := DefaultConfig()

	if value, ok := settings[ConfigKeyPathPrefix]; ok {
		if value == nil {
			return Config{}, errdefs.Newf(ErrConfig,
				"config key %q is declared but never assigned, set it to an empty string or a path starting with a slash",
				ConfigKeyPathPrefix)
		}
		prefix, err := cast.ToStringE(value)
		if err != nil {
			return Config{}, errdefs.Newf(ErrConfig, "config key %q: %s", ConfigKeyPathPrefix, err)
		}
		cfg.PathPrefix = prefix
	}
	if value, ok := settings[ConfigKeyHost]; ok && value != nil {
		host, err := cast.ToStringE(value)
		if err != nil {
			return Config{}, errdefs.Newf(ErrConfig, "config key %q: %s", ConfigKeyHost, err)
		}
		cfg.Host = host
	}
	if value, ok := settings[ConfigKeyRootFolder]; ok && value != nil {
		root, err := cast.ToStringE(value)
		if err != nil {
			return Config{}, errdefs.Newf(ErrConfig, "config key %q: %s", ConfigKeyRootFolder, err)
		}
		cfg.RootFolder = root
	}
	if value, ok := settings[ConfigKeyDepth]; ok && value != nil {
		depth, err := cast.ToIntE(value)
		if err != nil {
			return Config{}, errdefs.Newf(ErrConfig, "config key %q: %s", ConfigKeyDepth, err)
		}
		cfg.Depth = depth
	}
	if value, ok := settings[ConfigKeyWidth]; ok && value != nil {
		width, err := cast.ToIntE(value)
		if err != nil {
			return Config{}, errdefs.Newf(ErrConfig, "config key %q: %s", ConfigKeyWidth, err)
		}
		cfg.Width = width
	}
	if value, ok := settings[ConfigKeyAlgorithm]; ok && value != nil {
		algorithm, err := cast.ToStringE(value)
		if err != nil {
			return Config{}, errdefs.Newf(ErrConfig, "config key %q: %s", ConfigKeyAlgorithm, err)
		}
		cfg.Algorithm = algorithm
	}
	return cfg, nil
}
