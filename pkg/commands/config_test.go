package commands_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/ruafs/pkg/commands"
	"github.com/wuxler/ruafs/pkg/hashfs"
)

func TestConfigCommand_Subcommands(t *testing.T) {
	command := commands.NewConfigCommand().ToCLI()
	require.Len(t, command.Commands, 2)
	assert.Equal(t, "check", command.Commands[0].Name)
	assert.Equal(t, "init", command.Commands[1].Name)
}

func TestConfigCheckCommand(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		root := t.TempDir()
		out, err := runCLI(t, commands.NewConfigCheckCommand().ToCLI(),
			"--root-folder", root, "--path-prefix", "/uploads")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration OK")
		assert.Contains(t, out, "exists: true")
	})

	t.Run("missing root folder hints at init", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "not-created")
		out, err := runCLI(t, commands.NewConfigCheckCommand().ToCLI(), "--root-folder", root)
		require.NoError(t, err)
		assert.Contains(t, out, "exists: false")
		assert.Contains(t, out, "ruafs config init")
	})

	t.Run("json format", func(t *testing.T) {
		root := t.TempDir()
		out, err := runCLI(t, commands.NewConfigCheckCommand().ToCLI(),
			"--root-folder", root, "--format", "json")
		require.NoError(t, err)

		var report struct {
			Config           hashfs.Config `json:"config"`
			RootFolderExists bool          `json:"root_folder_exists"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, root, report.Config.RootFolder)
		assert.True(t, report.RootFolderExists)
	})

	t.Run("invalid path prefix", func(t *testing.T) {
		_, err := runCLI(t, commands.NewConfigCheckCommand().ToCLI(),
			"--root-folder", t.TempDir(), "--path-prefix", "uploads")
		require.Error(t, err)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})

	t.Run("missing root folder key", func(t *testing.T) {
		_, err := runCLI(t, commands.NewConfigCheckCommand().ToCLI())
		require.Error(t, err)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})

	t.Run("root folder is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		_, err := runCLI(t, commands.NewConfigCheckCommand().ToCLI(), "--root-folder", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})
}

func TestConfigInitCommand(t *testing.T) {
	t.Run("creates root folder", func(t *testing.T) {
		command := commands.NewConfigInitCommand()
		command.FS = afero.NewMemMapFs()

		out, err := runCLI(t, command.ToCLI(), "--root-folder", "/data/ruafs", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "Created root folder /data/ruafs")

		exists, err := afero.DirExists(command.FS, "/data/ruafs")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("existing root folder is kept", func(t *testing.T) {
		command := commands.NewConfigInitCommand()
		command.FS = afero.NewMemMapFs()
		require.NoError(t, command.FS.MkdirAll("/data/ruafs", 0o755))

		out, err := runCLI(t, command.ToCLI(), "--root-folder", "/data/ruafs", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "already exists")
	})

	t.Run("root folder occupied by a file", func(t *testing.T) {
		command := commands.NewConfigInitCommand()
		command.FS = afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(command.FS, "/data/ruafs", []byte("x"), 0o600))

		_, err := runCLI(t, command.ToCLI(), "--root-folder", "/data/ruafs", "--force")
		require.Error(t, err)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})

	t.Run("writes normalized config file", func(t *testing.T) {
		command := commands.NewConfigInitCommand()
		command.FS = afero.NewMemMapFs()

		out, err := runCLI(t, command.ToCLI(),
			"--root-folder", "/data/ruafs", "--force", "--write-config", "/etc/ruafs.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "Wrote config file /etc/ruafs.yaml")

		data, err := afero.ReadFile(command.FS, "/etc/ruafs.yaml")
		require.NoError(t, err)
		var cfg hashfs.Config
		require.NoError(t, yaml.Unmarshal(data, &cfg))
		assert.Equal(t, "/data/ruafs", cfg.RootFolder)
		assert.Equal(t, 4, cfg.Depth)
		assert.Equal(t, "sha256", cfg.Algorithm)
	})

	t.Run("invalid configuration aborts", func(t *testing.T) {
		command := commands.NewConfigInitCommand()
		command.FS = afero.NewMemMapFs()

		_, err := runCLI(t, command.ToCLI(), "--path-prefix", "uploads", "--force")
		require.Error(t, err)
		assert.ErrorIs(t, err, hashfs.ErrConfig)
	})
}
