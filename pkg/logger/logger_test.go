package logger

import (
	"os"
	"path/filepath"
	"study_buddy_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	prev := Log
	t.Cleanup(func() { Log = prev })

	InitLogger(&config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		Log:    config.LogConfig{File: path},
	})
	Log.Info("hello")
	_ = Log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
}
