package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [directory]", watchCmd.Use)
}

func TestWatchCmd_NoDirectoryConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldStore := configStore
	configStore = nil
	defer func() {
		configStore = oldStore
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "watch_dir not configured")
}

func TestWatchCmd_MissingDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "/nonexistent/watch/dir"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
