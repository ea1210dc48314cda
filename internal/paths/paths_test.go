package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/labdb", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "labdb"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string // substring the result must contain
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			flag:    "",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "platform default when both empty",
			flag:    "",
			envVal:  "",
			wantSub: "labdb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveDatabasePath(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		configValue string
		envVal      string
		wantSub     string
	}{
		{
			name:        "flag wins over everything",
			flag:        "/explicit/experiments.db",
			configValue: "/config/experiments.db",
			envVal:      "/env/experiments.db",
			wantSub:     "/explicit/experiments.db",
		},
		{
			name:        "config value wins over env",
			configValue: "/config/experiments.db",
			envVal:      "/env/experiments.db",
			wantSub:     "/config/experiments.db",
		},
		{
			name:    "env wins over default",
			envVal:  "/env/experiments.db",
			wantSub: "/env/experiments.db",
		},
		{
			name:    "CWD default when nothing set",
			wantSub: DefaultDatabaseName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDatabase, tt.envVal)
			got, err := ResolveDatabasePath(tt.flag, tt.configValue)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}
