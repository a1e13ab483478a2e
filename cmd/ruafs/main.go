// Package main is the entry of the application.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/ruafs/pkg/cmdhelper"
	"github.com/wuxler/ruafs/pkg/commands"
)

func main() {
	// Load a local dotenv file when present so RUAFS_* variables are
	// visible to flag sources before parsing starts.
	_ = godotenv.Load()

	app := cli.Command{
		Name:                  "ruafs",
		Usage:                 "ruafs is a content-addressable file storage toolkit for web applications",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewConfigCommand().ToCLI(),
			commands.NewURLCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
