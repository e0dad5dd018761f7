package pipelog

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseLevel_AllLevels проверяет что все уровни корректно парсятся.
func TestParseLevel_AllLevels(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{levelNameDebug, LevelDebug},
		{levelNameInfo, LevelInfo},
		{levelNameWarning, LevelWarning},
		{levelNameError, LevelError},
		{levelNameCritical, LevelCritical},
		{"", LevelInfo},        // пустая строка → info
		{"unknown", LevelInfo}, // неизвестное значение → info
		{"DEBUG", LevelInfo},   // case sensitive → info (не DEBUG)
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestLevelOrdering проверяет строгий порядок уровней.
func TestLevelOrdering(t *testing.T) {
	assert.Less(t, LevelDebug, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarning)
	assert.Less(t, LevelWarning, LevelError)
	assert.Less(t, LevelError, LevelCritical)
}

// TestLevelName_DisplayNames проверяет отображаемые имена уровней,
// включая WARNING и CRITICAL, которых нет в slog из коробки.
func TestLevelName_DisplayNames(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelName(tt.level))
		})
	}
}

// TestLevelName_UnknownLevel проверяет fallback на имя slog для уровней
// вне таблицы.
func TestLevelName_UnknownLevel(t *testing.T) {
	assert.Equal(t, slog.Level(2).String(), levelName(slog.Level(2)))
}
