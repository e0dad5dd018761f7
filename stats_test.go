package pipelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStats_String проверяет детерминированный рендеринг: ключи
// отсортированы, пары key=value через запятую.
func TestStats_String(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected string
	}{
		{"nil", nil, ""},
		{"empty", Stats{}, ""},
		{"single", Stats{"rows": 10}, "rows=10"},
		{
			"sorted keys",
			Stats{"teams": 4, "rows": 10, "fixtures": 2},
			"fixtures=2, rows=10, teams=4",
		},
		{
			"mixed value types",
			Stats{"status": "failed", "rows": 0, "partial": true},
			"partial=true, rows=0, status=failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.String())
		})
	}
}

// TestStats_String_Stable проверяет что повторный рендеринг одной
// статистики даёт одну и ту же строку.
func TestStats_String_Stable(t *testing.T) {
	s := Stats{"b": 2, "a": 1, "c": 3, "d": 4, "e": 5}
	first := s.String()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, s.String())
	}
}

// TestStats_Status проверяет извлечение статуса для метрик.
func TestStats_Status(t *testing.T) {
	assert.Equal(t, "completed", Stats(nil).status("completed"))
	assert.Equal(t, "completed", Stats{"rows": 1}.status("completed"))
	assert.Equal(t, "failed", Stats{"status": "failed"}.status("completed"))
}
