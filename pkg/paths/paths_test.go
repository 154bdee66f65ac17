package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFilePath(t *testing.T) {
	t.Run("explicit file wins", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "/etc/sysknife.toml")
		assert.Equal(t, "/etc/sysknife.toml", ConfigFilePath())
	})

	t.Run("config dir override", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")
		t.Setenv(EnvConfigDir, "/opt/conf")
		assert.Equal(t, filepath.Join("/opt/conf", ConfigFileName), ConfigFilePath())
	})
}

func TestLogFilePath(t *testing.T) {
	t.Run("state dir override", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/var/lib/knife")
		assert.Equal(t, "/var/lib/knife/sysknife.log", LogFilePath())
	})

	t.Run("XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, "/custom/state/sysknife/sysknife.log", LogFilePath())
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "words"), ExpandHome("~/words"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
}
