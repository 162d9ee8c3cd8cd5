package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/config"
	"github.com/thenoetrevino/blogdb/internal/testutil"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	testutil.SetupCobraCommand(cmd, args)
	return testutil.ExecuteCommand(t, cmd)
}

func TestInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.EnvDatabasePath, "")
	want := filepath.Join(home, "blogdb", "config.yaml")

	output, err := run(t, InitCmd())
	require.NoError(t, err)
	assert.Equal(t, want+"\n", output)

	cfg, err := config.LoadFile(want)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRecentLimit, cfg.Report.RecentLimit)

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := run(t, InitCmd())
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, os.WriteFile(want, []byte("report:\n  recent_limit: 3\n"), 0o600))

		_, err := run(t, InitCmd(), "--force")
		require.NoError(t, err)

		cfg, err := config.LoadFile(want)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultRecentLimit, cfg.Report.RecentLimit)
	})
}

func TestShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.EnvDatabasePath, "/tmp/env.db")

	output, err := run(t, ShowCmd())

	require.NoError(t, err)
	assert.Contains(t, output, "path: /tmp/env.db")
	assert.Contains(t, output, "recent_limit: 10")
}

func TestConfigCmd_SkipsInit(t *testing.T) {
	for _, sub := range ConfigCmd().Commands() {
		assert.False(t, cli.NeedsInit(sub), sub.Name())
	}
}
