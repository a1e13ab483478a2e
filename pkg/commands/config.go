package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/ruafs/pkg/cmdhelper"
	"github.com/wuxler/ruafs/pkg/commands/internal/options"
	"github.com/wuxler/ruafs/pkg/errdefs"
	"github.com/wuxler/ruafs/pkg/hashfs"
	"github.com/wuxler/ruafs/pkg/xlog"
)

// NewConfigCommand returns a config command.
func NewConfigCommand() *ConfigCommand {
	return &ConfigCommand{}
}

// ConfigCommand groups the storage configuration subcommands.
type ConfigCommand struct{}

// ToCLI tranforms to a *cli.Command.
func (c *ConfigCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect and initialize the storage configuration",
		Commands: []*cli.Command{
			NewConfigCheckCommand().ToCLI(),
			NewConfigInitCommand().ToCLI(),
		},
	}
}

// NewConfigCheckCommand returns a config check command with default values.
func NewConfigCheckCommand() *ConfigCheckCommand {
	return &ConfigCheckCommand{
		Common:  options.NewCommon(),
		Storage: options.NewStorage(),
		Format:  "text",
		FS:      afero.NewOsFs(),
	}
}

// ConfigCheckCommand validates the effective storage configuration and
// inspects the root folder.
type ConfigCheckCommand struct {
	Common  *options.Common
	Storage *options.Storage

	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// FS is the filesystem the root folder is inspected on. Defaults to the
	// host filesystem.
	FS afero.Fs
}

// ToCLI tranforms to a *cli.Command.
func (c *ConfigCheckCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate the storage configuration and inspect the root folder",
		UsageText: `ruafs config check [OPTIONS]

# Check the configuration passed as flags or RUAFS_* environment:
$ ruafs config check --root-folder /var/lib/ruafs --path-prefix /uploads

# Check a YAML config file:
$ ruafs config check --config ruafs.yaml

# Check a dotenv settings file and print the result as JSON:
$ ruafs config check --env-file .env --format json
`,
		Flags:  c.Flags(),
		Before: cmdhelper.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ConfigCheckCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       c.Format,
			Destination: &c.Format,
		},
	}
	flags = append(flags, c.Storage.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// configReport is the inspection result printed by the check command.
type configReport struct {
	Config           hashfs.Config `json:"config" yaml:"config"`
	RootFolderExists bool          `json:"root_folder_exists" yaml:"root_folder_exists"`
	RootFolderIsDir  bool          `json:"root_folder_is_dir" yaml:"root_folder_is_dir"`
}

// Run is the main function for the current command.
func (c *ConfigCheckCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Apply()

	cfg, err := c.Storage.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	report := configReport{Config: cfg}
	info, err := c.FS.Stat(cfg.RootFolder)
	if err == nil {
		report.RootFolderExists = true
		report.RootFolderIsDir = info.IsDir()
	}
	if report.RootFolderExists && !report.RootFolderIsDir {
		return errdefs.Newf(hashfs.ErrConfig, "root folder %q exists but is not a directory", cfg.RootFolder)
	}

	xlog.C(ctx).Debug("configuration validated", "root_folder", cfg.RootFolder)

	switch strings.ToLower(c.Format) {
	case "json":
		pretty, err := cmdhelper.PrettifyJSON(report)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", pretty)
	case "yaml", "yml":
		enc := yaml.NewEncoder(cmd.Writer)
		if err := enc.Encode(report); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		cmdhelper.Fprintf(cmd.Writer, `Configuration OK
  - Host        : %s
  - PathPrefix  : %s
  - RootFolder  : %s (exists: %t)
  - Depth/Width : %d/%d
  - Algorithm   : %s`,
			cfg.Host, cfg.PathPrefix, cfg.RootFolder, report.RootFolderExists,
			cfg.Depth, cfg.Width, cfg.Algorithm)
		if !report.RootFolderExists {
			cmdhelper.Fprintf(cmd.Writer, "Run %q to create the root folder", "ruafs config init")
		}
	}
	return nil
}

// NewConfigInitCommand returns a config init command with default values.
func NewConfigInitCommand() *ConfigInitCommand {
	return &ConfigInitCommand{
		Common:  options.NewCommon(),
		Storage: options.NewStorage(),
		FS:      afero.NewOsFs(),
	}
}

// ConfigInitCommand creates the root folder the storage engine stores
// content under, and optionally writes the normalized config file.
type ConfigInitCommand struct {
	Common  *options.Common
	Storage *options.Storage

	Force       bool   `json:"force,omitempty" yaml:"force,omitempty"`
	WriteConfig string `json:"write_config,omitempty" yaml:"write_config,omitempty"`

	// FS is the filesystem the root folder is created on. Defaults to the
	// host filesystem.
	FS afero.Fs
}

// ToCLI tranforms to a *cli.Command.
func (c *ConfigInitCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the root folder for the storage engine",
		UsageText: `ruafs config init [OPTIONS]

# Create the root folder after a confirmation prompt:
$ ruafs config init --root-folder /var/lib/ruafs

# Create without prompting and write the normalized config file:
$ ruafs config init --root-folder /var/lib/ruafs --force --write-config ruafs.yaml
`,
		Flags:  c.Flags(),
		Before: cmdhelper.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ConfigInitCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "create without prompting for confirmation",
			Value:       c.Force,
			Destination: &c.Force,
		},
		&cli.StringFlag{
			Name:        "write-config",
			Usage:       "write the normalized configuration to the given YAML file",
			Value:       c.WriteConfig,
			Destination: &c.WriteConfig,
			TakesFile:   true,
		},
	}
	flags = append(flags, c.Storage.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// Run is the main function for the current command.
func (c *ConfigInitCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Apply()

	cfg, err := c.Storage.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	info, err := c.FS.Stat(cfg.RootFolder)
	switch {
	case err == nil && !info.IsDir():
		return errdefs.Newf(hashfs.ErrConfig, "root folder %q exists but is not a directory", cfg.RootFolder)
	case err == nil:
		cmdhelper.Fprintf(cmd.Writer, "Root folder %s already exists", cfg.RootFolder)
	default:
		confirmed := true
		if !c.Force {
			prompt := &promptui.Prompt{
				Label:     fmt.Sprintf("Create root folder %s", cfg.RootFolder),
				Default:   "N",
				IsConfirm: true,
			}
			userInput, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					return nil
				}
				return err
			}
			confirmed = strings.EqualFold(userInput, "y")
		}
		if !confirmed {
			return nil
		}
		if err := c.FS.MkdirAll(cfg.RootFolder, 0o755); err != nil {
			return errdefs.NewE(errdefs.ErrSystem, err)
		}
		cmdhelper.Fprintf(cmd.Writer, "Created root folder %s", cfg.RootFolder)
		xlog.C(ctx).Info("root folder created", "path", cfg.RootFolder)
	}

	if c.WriteConfig != "" {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(c.FS, c.WriteConfig, data, 0o644); err != nil {
			return errdefs.NewE(errdefs.ErrSystem, err)
		}
		cmdhelper.Fprintf(cmd.Writer, "Wrote config file %s", c.WriteConfig)
	}
	return nil
}
