package pipelog

import (
	"fmt"
	"sort"
	"strings"
)

// Stats — статистика пайплайна или задачи для итоговой записи в лог.
// Рендерится детерминированно: пары key=value в порядке сортировки
// ключей, через запятую. Значения форматируются через fmt.
type Stats map[string]any

// String возвращает стабильное текстовое представление статистики,
// например "rows=10, status=completed". Для пустой статистики — "".
func (s Stats) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, s[k]))
	}
	return strings.Join(parts, ", ")
}

// status возвращает значение ключа "status" или дефолт, если ключ
// отсутствует либо статистики нет. Используется для метрик запусков.
func (s Stats) status(fallback string) string {
	if v, ok := s["status"]; ok {
		return fmt.Sprint(v)
	}
	return fallback
}
