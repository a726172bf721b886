package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string        // Адрес и порт запуска сервиса
	DatabaseURI    string        // URI подключения к БД снимка каталога
	BackendAddress string        // Базовый URL REST бэкенда
	NATSURL        string        // Адрес NATS, пусто выключает публикацию событий
	JWTSecret      string        // Секретный ключ для JWT
	JWTTokenTTL    time.Duration // Время жизни JWT токена
	LogLevel       string        // Уровень логирования

	// Клиент бэкенда
	BackendTimeout  time.Duration
	BackendRetryMax int

	// Синхронизация снимка каталога
	SyncWorkers      int           // Количество воркеров
	SyncQueueSize    int           // Размер очереди бизнесов
	SyncScanInterval time.Duration // Интервал обхода бизнесов

	// Локаль сортировки строк в таблицах и каскаде
	CollationLocale language.Tag

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки.
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	return load(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func load(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:       24 * time.Hour,
		LogLevel:          "info",
		BackendTimeout:    10 * time.Second,
		BackendRetryMax:   3,
		SyncWorkers:       3,
		SyncQueueSize:     100,
		SyncScanInterval:  5 * time.Minute,
		CollationLocale:   language.Korean,
		MinPasswordLength: 8,
	}

	// Определяем флаги
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.BackendAddress, "b", "", "backend base URL")
	fs.StringVar(&cfg.NATSURL, "n", "", "NATS server URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if v, ok := lookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}

	if v, ok := lookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}

	if v, ok := lookupEnv("BACKEND_ADDRESS"); ok {
		cfg.BackendAddress = v
	}

	if v, ok := lookupEnv("NATS_URL"); ok {
		cfg.NATSURL = v
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if v, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if v, ok := lookupEnv("JWT_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			cfg.JWTTokenTTL = ttl
		}
	}

	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if v, ok := lookupEnv("BACKEND_TIMEOUT"); ok {
		if timeout, err := time.ParseDuration(v); err == nil && timeout > 0 {
			cfg.BackendTimeout = timeout
		}
	}

	if v, ok := lookupEnv("BACKEND_RETRY_MAX"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.BackendRetryMax = n
		}
	}

	if v, ok := lookupEnv("SYNC_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SyncWorkers = n
		}
	}

	if v, ok := lookupEnv("SYNC_QUEUE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SyncQueueSize = n
		}
	}

	if v, ok := lookupEnv("SYNC_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(v); err == nil && interval > 0 {
			cfg.SyncScanInterval = interval
		}
	}

	if v, ok := lookupEnv("MIN_PASSWORD_LENGTH"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinPasswordLength = n
		}
	}

	// Неверная локаль ломает порядок во всех таблицах, поэтому это ошибка, а не дефолт
	if v, ok := lookupEnv("COLLATION_LOCALE"); ok {
		tag, err := language.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid COLLATION_LOCALE %q: %w", v, err)
		}
		cfg.CollationLocale = tag
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.BackendAddress == "" {
		return nil, fmt.Errorf("backend address is required (use -b flag or BACKEND_ADDRESS env)")
	}

	return cfg, nil
}
