package options

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/smallnest/deepcopy"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/ruafs/pkg/errdefs"
	"github.com/wuxler/ruafs/pkg/hashfs"
	"github.com/wuxler/ruafs/pkg/util/homedir"
)

const (
	// StorageFlagCategory is the category of the storage flags.
	StorageFlagCategory = "[Storage]"

	// EnvPrefix is the prefix of the environment variables recognized as
	// storage settings.
	EnvPrefix = "RUAFS_"
)

// NewStorage returns a *Storage with default values.
func NewStorage() *Storage {
	return &Storage{
		Depth:     hashfs.DefaultDepth,
		Width:     hashfs.DefaultWidth,
		Algorithm: hashfs.DefaultAlgorithm,
	}
}

// Storage carries the flags every storage-touching command shares. The
// effective configuration is merged from three sources, lowest precedence
// first: a dotenv settings file, a YAML config file, then flags and RUAFS_*
// process environment.
type Storage struct {
	ConfigFile string `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	EnvFile    string `json:"env_file,omitempty" yaml:"env_file,omitempty"`
	Host       string `json:"host,omitempty" yaml:"host,omitempty"`
	PathPrefix string `json:"path_prefix,omitempty" yaml:"path_prefix,omitempty"`
	RootFolder string `json:"root_folder,omitempty" yaml:"root_folder,omitempty"`
	Depth      int64  `json:"depth,omitempty" yaml:"depth,omitempty"`
	Width      int64  `json:"width,omitempty" yaml:"width,omitempty"`
	Algorithm  string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// fileSettings caches the merged file-backed sources after the first
	// load so repeated Settings calls do not reread them.
	fileSettings map[string]any
}

// Flags returns the []cli.Flag related to current options.
func (o *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to a YAML storage config file",
			Sources:     cli.EnvVars("RUAFS_CONFIG"),
			Value:       o.ConfigFile,
			Destination: &o.ConfigFile,
			Category:    StorageFlagCategory,
			TakesFile:   true,
		},
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "path to a dotenv file with RUAFS_* settings",
			Sources:     cli.EnvVars("RUAFS_ENV_FILE"),
			Value:       o.EnvFile,
			Destination: &o.EnvFile,
			Category:    StorageFlagCategory,
			TakesFile:   true,
		},
		&cli.StringFlag{
			Name:        "host",
			Usage:       "static scheme://host base prepended to external URLs",
			Sources:     cli.EnvVars("RUAFS_HOST"),
			Value:       o.Host,
			Destination: &o.Host,
			Category:    StorageFlagCategory,
		},
		&cli.StringFlag{
			Name:        "path-prefix",
			Usage:       "URL path prepended to every relative path, empty or starting with a slash",
			Sources:     cli.EnvVars("RUAFS_PATH_PREFIX"),
			Value:       o.PathPrefix,
			Destination: &o.PathPrefix,
			Category:    StorageFlagCategory,
		},
		&cli.StringFlag{
			Name:        "root-folder",
			Usage:       "directory the storage engine keeps content under",
			Sources:     cli.EnvVars("RUAFS_ROOT_FOLDER"),
			Value:       o.RootFolder,
			Destination: &o.RootFolder,
			Category:    StorageFlagCategory,
		},
		&cli.IntFlag{
			Name:        "depth",
			Usage:       "number of directory levels content fans out into",
			Sources:     cli.EnvVars("RUAFS_DEPTH"),
			Value:       o.Depth,
			Destination: &o.Depth,
			Category:    StorageFlagCategory,
		},
		&cli.IntFlag{
			Name:        "width",
			Usage:       "number of hash characters per directory level",
			Sources:     cli.EnvVars("RUAFS_WIDTH"),
			Value:       o.Width,
			Destination: &o.Width,
			Category:    StorageFlagCategory,
		},
		&cli.StringFlag{
			Name:        "algorithm",
			Usage:       "content hash the storage engine keys files by",
			Sources:     cli.EnvVars("RUAFS_ALGORITHM"),
			Value:       o.Algorithm,
			Destination: &o.Algorithm,
			Category:    StorageFlagCategory,
		},
	}
}

// Settings returns the effective settings in the map form hashfs.ConfigFromMap
// accepts. File-backed sources are loaded once and kept; every call overlays
// the flag values onto a deep copy so the loaded state stays pristine.
func (o *Storage) Settings(cmd *cli.Command) (map[string]any, error) {
	loaded, err := o.loadFileSettings()
	if err != nil {
		return nil, err
	}
	settings := deepcopy.Copy(loaded)
	if cmd.IsSet("host") {
		settings[hashfs.ConfigKeyHost] = o.Host
	}
	if cmd.IsSet("path-prefix") {
		settings[hashfs.ConfigKeyPathPrefix] = o.PathPrefix
	}
	if cmd.IsSet("root-folder") {
		settings[hashfs.ConfigKeyRootFolder] = o.RootFolder
	}
	if cmd.IsSet("depth") {
		settings[hashfs.ConfigKeyDepth] = o.Depth
	}
	if cmd.IsSet("width") {
		settings[hashfs.ConfigKeyWidth] = o.Width
	}
	if cmd.IsSet("algorithm") {
		settings[hashfs.ConfigKeyAlgorithm] = o.Algorithm
	}
	return settings, nil
}

// LoadConfig builds the storage config from the merged settings with
// defaults applied and "~" in the root folder expanded. Validation is left
// to the caller.
func (o *Storage) LoadConfig(cmd *cli.Command) (hashfs.Config, error) {
	settings, err := o.Settings(cmd)
	if err != nil {
		return hashfs.Config{}, err
	}
	cfg, err := hashfs.ConfigFromMap(settings)
	if err != nil {
		return hashfs.Config{}, err
	}
	if cfg.RootFolder != "" {
		expanded, err := homedir.Expand(cfg.RootFolder)
		if err != nil {
			return hashfs.Config{}, errdefs.Newf(hashfs.ErrConfig, "expand root folder %s: %s", cfg.RootFolder, err)
		}
		cfg.RootFolder = expanded
	}
	return cfg.WithDefaults(), nil
}

func (o *Storage) loadFileSettings() (map[string]any, error) {
	if o.fileSettings != nil {
		return o.fileSettings, nil
	}
	settings := map[string]any{}
	if o.EnvFile != "" {
		path, err := homedir.Expand(o.EnvFile)
		if err != nil {
			return nil, errdefs.Newf(hashfs.ErrConfig, "expand env file path %s: %s", o.EnvFile, err)
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, errdefs.Newf(hashfs.ErrConfig, "read env file %s: %s", path, err)
		}
		for key, value := range values {
			if name, ok := strings.CutPrefix(key, EnvPrefix); ok {
				settings[name] = value
			}
		}
	}
	if o.ConfigFile != "" {
		path, err := homedir.Expand(o.ConfigFile)
		if err != nil {
			return nil, errdefs.Newf(hashfs.ErrConfig, "expand config file path %s: %s", o.ConfigFile, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errdefs.Newf(hashfs.ErrConfig, "read config file %s: %s", path, err)
		}
		values := map[string]any{}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errdefs.Newf(hashfs.ErrConfig, "parse config file %s: %s", path, err)
		}
		for key, value := range values {
			settings[strings.ToUpper(key)] = value
		}
	}
	o.fileSettings = settings
	return settings, nil
}
