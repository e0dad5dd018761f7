package pipelog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Значения по умолчанию для Config.
// Единый источник истины — используется в DefaultConfig и тестах.
const (
	DefaultLevel      = levelNameInfo
	DefaultFilePath   = "logs/pipeline.log"
	DefaultMaxSize    = 10 // MB, порог ротации файла
	DefaultMaxBackups = 5  // количество хранимых backup файлов
	DefaultMaxAge     = 0  // дней; 0 — без ограничения по возрасту
	DefaultCompress   = false
)

// Config содержит настройки логирования пайплайна.
type Config struct {
	// Level - уровень логирования (debug, info, warning, error, critical)
	Level string `yaml:"level" env:"PIPELOG_LEVEL" env-default:"info"`

	// FilePath - путь к файлу логов
	FilePath string `yaml:"filePath" env:"PIPELOG_FILE" env-default:"logs/pipeline.log"`

	// MaxSize - максимальный размер файла лога в MB до ротации
	MaxSize int `yaml:"maxSize" env:"PIPELOG_MAX_SIZE" env-default:"10"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"PIPELOG_MAX_BACKUPS" env-default:"5"`

	// MaxAge - максимальный возраст backup файлов в днях (0 — не ограничен)
	MaxAge int `yaml:"maxAge" env:"PIPELOG_MAX_AGE" env-default:"0"`

	// Compress - сжимать ли backup файлы в gzip
	Compress bool `yaml:"compress" env:"PIPELOG_COMPRESS" env-default:"false"`

	// Console - дублировать ли записи в stdout.
	// ПРИМЕЧАНИЕ: bool с env-default:"true" корректен только при чтении из env;
	// для программного создания используйте DefaultConfig(), где Console=true.
	Console bool `yaml:"console" env:"PIPELOG_CONSOLE" env-default:"true"`
}

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
		Console:    true,
	}
}

// LoadConfig загружает конфигурацию логирования из переменных окружения
// PIPELOG_* поверх значений по умолчанию.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("загрузка конфигурации из переменных окружения: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromFile загружает конфигурацию из YAML файла, переменные
// окружения PIPELOG_* переопределяют значения из файла.
func LoadConfigFromFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("загрузка конфигурации из файла %q: %w", path, err)
	}
	return cfg, nil
}

// DatedLogFile возвращает путь к файлу лога с датой в имени,
// например logs/football_etl_20260829.log. Удобно для batch-пайплайнов,
// которые пишут отдельный лог на каждый запуск дня.
func DatedLogFile(dir, prefix string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.log", prefix, t.Format("20060102")))
}
