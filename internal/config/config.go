// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Поддерживаемые драйверы хранилища.
const (
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
)

// ErrMissingJWTSecret возвращается, если секрет подписи токенов не задан.
var ErrMissingJWTSecret = errors.New("jwt secret is not set")

// ErrInvalidRateLimit возвращается при неположительных лимитах или окнах.
var ErrInvalidRateLimit = errors.New("invalid rate limit")

// Config общая структура для хранения настроек
type Config struct {
	Env               string `yaml:"env" env:"APP_ENV" env-default:"production"`
	GRPCHealthAddress string `yaml:"grpc_health_address" env:"GRPC_HEALTH_ADDRESS"`
	Storage           `yaml:"storage"`
	RedisConnection   `yaml:"redis_connection"`
	HTTPServer        `yaml:"http_server"`
	JWTToken          `yaml:"jwttoken"`
	RateLimit         `yaml:"rate_limit"`
	RabbitMQ          `yaml:"rabbitmq"`
	ObjectStorage     `yaml:"object_storage"`
	Admin             `yaml:"admin"`
}

// Storage описывает выбранный драйвер и параметры подключения к нему.
type Storage struct {
	Driver         string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongodb"`
	MongoURI       string `yaml:"mongo_uri" env:"MONGODB_URI"`
	MongoDatabase  string `yaml:"mongo_database" env:"MONGODB_DATABASE" env-default:"health_tracker"`
	PostgresDSN    string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"24h"`
}

// RateLimit задаёт лимиты запросов на клиента (по IP).
type RateLimit struct {
	RequestsPerWindow int           `yaml:"requests_per_window" env-default:"100"`
	Window            time.Duration `yaml:"window" env-default:"15m"`
	LoginAttempts     int           `yaml:"login_attempts" env-default:"5"`
	LoginWindow       time.Duration `yaml:"login_window" env-default:"15m"`
}

// RabbitMQ параметры брокера для публикации доменных событий.
// Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env-default:"health.events"`
	Retries    int           `yaml:"retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// ObjectStorage параметры хранилища файлов (аватары).
// Если Bucket пуст, файлы складываются в LocalDir.
type ObjectStorage struct {
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY_ID"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_ACCESS_KEY"`
	PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
	LocalDir  string `yaml:"local_dir" env-default:"./uploads"`
}

// Admin учётные данные администратора, создаваемого при старте.
type Admin struct {
	Email    string `yaml:"email" env:"ADMIN_EMAIL"`
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

// Load читает конфиг по указанному пути, накладывает переменные окружения
// и проверяет обязательные параметры.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return ErrMissingJWTSecret
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	switch c.Driver {
	case DriverMongoDB:
		if c.MongoURI == "" {
			return errors.New("mongo_uri is required for mongodb driver")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres_dsn is required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	if c.RequestsPerWindow <= 0 || c.LoginAttempts <= 0 {
		return fmt.Errorf("%w: request and login limits must be positive, got %d and %d",
			ErrInvalidRateLimit, c.RequestsPerWindow, c.LoginAttempts)
	}
	if c.Window <= 0 || c.LoginWindow <= 0 {
		return fmt.Errorf("%w: windows must be positive, got %s and %s",
			ErrInvalidRateLimit, c.Window, c.LoginWindow)
	}
	return nil
}

// IsDevelopment сообщает, можно ли отдавать клиенту внутренние детали ошибок.
// Детали отдаются только при явном env: development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// MustLoad функция для загрузки конфига, завершает процесс при любой ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  MongoDatabase: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n",
		c.Env,
		c.Driver,
		c.MongoDatabase,
		c.AddressRedis,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
	)
}
