package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/ruafs/pkg/cmdhelper"
	"github.com/wuxler/ruafs/pkg/commands/internal/options"
	"github.com/wuxler/ruafs/pkg/errdefs"
	"github.com/wuxler/ruafs/pkg/hashfs"
	"github.com/wuxler/ruafs/pkg/util/xhttp"
)

// NewURLCommand returns a url command with default values.
func NewURLCommand() *URLCommand {
	return &URLCommand{
		Common:  options.NewCommon(),
		Storage: options.NewStorage(),
	}
}

// URLCommand prints the URLs the configuration composes for stored content
// paths. Composition only, the content's existence is never checked.
type URLCommand struct {
	Common  *options.Common
	Storage *options.Storage

	External bool   `json:"external,omitempty" yaml:"external,omitempty"`
	Origin   string `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// ToCLI tranforms to a *cli.Command.
func (c *URLCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "url",
		Usage: "Print URLs for stored content paths",
		UsageText: `ruafs url [OPTIONS] RELPATH [RELPATH...]

# Print the root-relative URL of a stored file:
$ ruafs url --path-prefix /uploads a/b/c/d/abcdef.jpg

# Print the absolute URL served from a configured host:
$ ruafs url --host https://cdn.example.com --path-prefix /uploads --external a/b/c/d/abcdef.jpg

# Print the absolute URL as seen from a request origin:
$ ruafs url --path-prefix /uploads --external --origin http://localhost:5000 a/b/c/d/abcdef.jpg
`,
		ArgsUsage: "RELPATH [RELPATH...]",
		Flags:     c.Flags(),
		Before:    cmdhelper.BeforeFunc(cmdhelper.MinimumNArgs(1), c.Validate),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *URLCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "external",
			Aliases:     []string{"e"},
			Usage:       "print absolute URLs instead of root-relative ones",
			Value:       c.External,
			Destination: &c.External,
		},
		&cli.StringFlag{
			Name:        "origin",
			Usage:       "request origin used for external URLs when no host is configured",
			Value:       c.Origin,
			Destination: &c.Origin,
		},
	}
	flags = append(flags, c.Storage.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// Validate validates commands flags.
func (c *URLCommand) Validate(_ context.Context, _ *cli.Command) error {
	if c.Origin == "" {
		return nil
	}
	if _, _, err := xhttp.ParseHostScheme(c.Origin); err != nil {
		return errdefs.Newf(errdefs.ErrInvalidParameter, "invalid origin %q: %s", c.Origin, err)
	}
	return nil
}

// Run is the main function for the current command.
func (c *URLCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Apply()

	cfg, err := c.Storage.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fs, err := hashfs.New(ctx, cfg, hashfs.NopOpener())
	if err != nil {
		return err
	}

	for _, relpath := range cmd.Args().Slice() {
		url := fs.URLFor(relpath)
		if c.External {
			url = fs.ExternalURLFor(c.Origin, relpath)
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", url)
	}
	return nil
}
