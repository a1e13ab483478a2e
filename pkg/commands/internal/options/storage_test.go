package options_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/ruafs/pkg/commands/internal/options"
	"github.com/wuxler/ruafs/pkg/hashfs"
)

// runFlags parses args against the storage flags and returns the parsed
// command for IsSet introspection.
func runFlags(t *testing.T, o *options.Storage, args ...string) *cli.Command {
	t.Helper()
	var parsed *cli.Command
	command := &cli.Command{
		Name:  "test",
		Flags: o.Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			parsed = cmd
			return nil
		},
	}
	require.NoError(t, command.Run(context.Background(), append([]string{"test"}, args...)))
	require.NotNil(t, parsed)
	return parsed
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStorage_LoadConfig_FlagsOnly(t *testing.T) {
	o := options.NewStorage()
	cmd := runFlags(t, o,
		"--host", "https://media.example.com",
		"--path-prefix", "/uploads",
		"--root-folder", "/var/lib/ruafs",
	)

	cfg, err := o.LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, hashfs.Config{
		Host:       "https://media.example.com",
		PathPrefix: "/uploads",
		RootFolder: "/var/lib/ruafs",
		Depth:      4,
		Width:      1,
		Algorithm:  "sha256",
	}, cfg)
}

func TestStorage_LoadConfig_ExpandsRootFolder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	o := options.NewStorage()
	cmd := runFlags(t, o, "--root-folder", "~/data")

	cfg, err := o.LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), cfg.RootFolder)
}

func TestStorage_LoadConfig_EnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", `
RUAFS_HOST=https://cdn.example.com
RUAFS_PATH_PREFIX=/assets
RUAFS_ROOT_FOLDER=/srv/ruafs
RUAFS_DEPTH=6
UNRELATED_KEY=ignored
`)

	o := options.NewStorage()
	cmd := runFlags(t, o, "--env-file", envFile)

	settings, err := o.Settings(cmd)
	require.NoError(t, err)
	assert.NotContains(t, settings, "UNRELATED_KEY")

	cfg, err := o.LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", cfg.Host)
	assert.Equal(t, "/assets", cfg.PathPrefix)
	assert.Equal(t, "/srv/ruafs", cfg.RootFolder)
	// Dotenv values arrive as strings and are coerced.
	assert.Equal(t, 6, cfg.Depth)
	assert.Equal(t, 1, cfg.Width)
}

func TestStorage_LoadConfig_ConfigFile(t *testing.T) {
	configFile := writeFile(t, "ruafs.yaml", `
host: https://media.example.com
path_prefix: /uploads
root_folder: /var/lib/ruafs
depth: 2
width: 2
algorithm: sha512
`)

	o := options.NewStorage()
	cmd := runFlags(t, o, "--config", configFile)

	cfg, err := o.LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, hashfs.Config{
		Host:       "https://media.example.com",
		PathPrefix: "/uploads",
		RootFolder: "/var/lib/ruafs",
		Depth:      2,
		Width:      2,
		Algorithm:  "sha512",
	}, cfg)
}

func TestStorage_LoadConfig_Precedence(t *testing.T) {
	envFile := writeFile(t, ".env", `
RUAFS_HOST=https://env.example.com
RUAFS_PATH_PREFIX=/from-env
RUAFS_ROOT_FOLDER=/env/ruafs
`)
	configFile := writeFile(t, "ruafs.yaml", `
host: https://file.example.com
path_prefix: /from-file
`)

	o := options.NewStorage()
	cmd := runFlags(t, o,
		"--env-file", envFile,
		"--config", configFile,
		"--host", "https://flag.example.com",
	)

	cfg, err := o.LoadConfig(cmd)
	require.NoError(t, err)
	// Flag beats config file beats env file; untouched keys fall through.
	assert.Equal(t, "https://flag.example.com", cfg.Host)
	assert.Equal(t, "/from-file", cfg.PathPrefix)
	assert.Equal(t, "/env/ruafs", cfg.RootFolder)
}

func TestStorage_Settings_ReturnsIsolatedCopies(t *testing.T) {
	configFile := writeFile(t, "ruafs.yaml", `
root_folder: /var/lib/ruafs
`)

	o := options.NewStorage()
	cmd := runFlags(t, o, "--config", configFile)

	first, err := o.Settings(cmd)
	require.NoError(t, err)
	first[hashfs.ConfigKeyRootFolder] = "/mutated"

	second, err := o.Settings(cmd)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ruafs", second[hashfs.ConfigKeyRootFolder])
}

func TestStorage_LoadConfig_Errors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		o := options.NewStorage()
		cmd := runFlags(t, o, "--env-file", filepath.Join(t.TempDir(), "absent.env"))
		_, err := o.LoadConfig(cmd)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})

	t.Run("unparsable config file", func(t *testing.T) {
		configFile := writeFile(t, "broken.yaml", "root_folder: [unterminated")
		o := options.NewStorage()
		cmd := runFlags(t, o, "--config", configFile)
		_, err := o.LoadConfig(cmd)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})

	t.Run("uncoercible depth", func(t *testing.T) {
		configFile := writeFile(t, "ruafs.yaml", "depth: many")
		o := options.NewStorage()
		cmd := runFlags(t, o, "--config", configFile)
		_, err := o.LoadConfig(cmd)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})
}
