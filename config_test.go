package pipelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig проверяет значения по умолчанию: ротация на 10 MB,
// 5 backup файлов, вывод в консоль включён.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLevel, cfg.Level)
	assert.Equal(t, DefaultFilePath, cfg.FilePath)
	assert.Equal(t, 10, cfg.MaxSize)
	assert.Equal(t, 5, cfg.MaxBackups)
	assert.Equal(t, 0, cfg.MaxAge)
	assert.False(t, cfg.Compress)
	assert.True(t, cfg.Console)
}

// TestLoadConfig_Defaults проверяет загрузку без переменных окружения.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoadConfig_EnvOverride проверяет что PIPELOG_* переопределяют defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PIPELOG_LEVEL", "debug")
	t.Setenv("PIPELOG_FILE", "/tmp/etl/run.log")
	t.Setenv("PIPELOG_MAX_SIZE", "25")
	t.Setenv("PIPELOG_MAX_BACKUPS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "/tmp/etl/run.log", cfg.FilePath)
	assert.Equal(t, 25, cfg.MaxSize)
	assert.Equal(t, 2, cfg.MaxBackups)
}

// TestLoadConfigFromFile проверяет чтение YAML файла и приоритет env поверх него.
func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pipelog.yaml")
	yaml := "level: warning\nfilePath: logs/etl.log\nmaxBackups: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))

	t.Setenv("PIPELOG_LEVEL", "error")

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	// env переопределяет YAML
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "logs/etl.log", cfg.FilePath)
	assert.Equal(t, 7, cfg.MaxBackups)
}

// TestLoadConfigFromFile_Missing проверяет ошибку для несуществующего файла.
func TestLoadConfigFromFile_Missing(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "нет-такого.yaml"))
	assert.Error(t, err)
}

// TestDatedLogFile проверяет формат датированного имени файла лога.
func TestDatedLogFile(t *testing.T) {
	ts := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	got := DatedLogFile("logs", "football_etl", ts)
	assert.Equal(t, filepath.Join("logs", "football_etl_20260829.log"), got)
}
