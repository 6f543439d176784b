package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
	Upload   UploadConfig
	Staging  StagingConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки хранилища.
// Driver: "postgres" (по умолчанию) или "memory" — хранилище в памяти для
// локальной разработки и демо без внешней БД.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	// Для 'single', если не пуст, используется первый адрес из списка.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single' (для обратной совместимости).
	// Используется, если Mode="single" и Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - бесконечно). По умолчанию 0 (без ретраев).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (в миллисекундах). По умолчанию 8ms.
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (в миллисекундах). По умолчанию 512ms.
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// OpenAIConfig содержит настройки внешнего генератора
type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	// Model: имя модели. По умолчанию gpt-4o.
	Model string `mapstructure:"model"`
	// BaseURL: альтернативный endpoint (прокси или совместимый сервер). Опционально.
	BaseURL string `mapstructure:"base_url"`
}

// UploadConfig содержит настройки загрузки документов
type UploadConfig struct {
	// MaxFileSizeMB: лимит размера загружаемого PDF в мегабайтах. По умолчанию 10.
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// StagingConfig содержит времена жизни staged-данных в Redis
type StagingConfig struct {
	// DraftTTLHours: TTL черновика. По умолчанию 24 часа.
	DraftTTLHours int `mapstructure:"draft_ttl_hours"`
	// DocumentTTLHours: TTL загруженного документа. По умолчанию 24 часа.
	DocumentTTLHours int `mapstructure:"document_ttl_hours"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// MaxFileSizeBytes возвращает лимит загрузки в байтах
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	size := u.MaxFileSizeMB
	if size <= 0 {
		size = 10
	}
	return size * 1024 * 1024
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Устанавливаем значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readtimeout", 15)
	vip.SetDefault("server.writetimeout", 60)
	vip.SetDefault("database.driver", "postgres")
	vip.SetDefault("openai.model", "gpt-4o")
	vip.SetDefault("upload.max_file_size_mb", 10)
	vip.SetDefault("staging.draft_ttl_hours", 24)
	vip.SetDefault("staging.document_ttl_hours", 24)

	// 2. Привязываем переменные окружения ЯВНО
	// Привязка для секции Database
	vip.BindEnv("database.driver", "DATABASE_DRIVER")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	// Привязка для секции Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS") // Для массива строк
	vip.BindEnv("redis.addr", "REDIS_ADDR")   // Для одиночной строки
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для секции OpenAI
	vip.BindEnv("openai.api_key", "OPENAI_API_KEY")
	vip.BindEnv("openai.model", "OPENAI_MODEL")
	vip.BindEnv("openai.base_url", "OPENAI_BASE_URL")

	// Привязка для Upload/Staging
	vip.BindEnv("upload.max_file_size_mb", "UPLOAD_MAX_FILE_SIZE_MB")
	vip.BindEnv("staging.draft_ttl_hours", "STAGING_DRAFT_TTL_HOURS")
	vip.BindEnv("staging.document_ttl_hours", "STAGING_DOCUMENT_TTL_HOURS")

	// Привязка для Server
	vip.BindEnv("server.port", "SERVER_PORT")

	// 3. Устанавливаем путь к файлу конфигурации
	if configPath != "" {
		vip.SetConfigFile(configPath)
		// 4. Пытаемся прочитать файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 5. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Логирование конфигурации (только в debug режиме)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Driver: %s", cfg.Database.Driver)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Redis Mode: %s", cfg.Redis.Mode)
		log.Printf("OpenAI Model: %s", cfg.OpenAI.Model)
		log.Printf("OpenAI API Key Set: %t", cfg.OpenAI.APIKey != "")
		log.Printf("Upload Max File Size MB: %d", cfg.Upload.MaxFileSizeMB)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	// 7. Проверка обязательных параметров
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required in config (check OPENAI_API_KEY env var)")
	}
	if cfg.Database.Driver == "postgres" {
		if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
			return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
	}

	return &cfg, nil
}
