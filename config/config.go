package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Upload   UploadConfig   `yaml:"upload"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	RateLimit    int           `yaml:"rate_limit"`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

type RedisConfig struct {
	Addr         string        `yaml:"addr"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type JWTConfig struct {
	SigningKey string        `yaml:"signing_key"`
	Expiry     time.Duration `yaml:"expiry"`
	Issuer     string        `yaml:"issuer"`
}

type UploadConfig struct {
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	PublicBase string `yaml:"public_base"`
}

type LogConfig struct {
	RequestLogDir string `yaml:"request_log_dir"`
	GormLogDir    string `yaml:"gorm_log_dir"`
}

// Load builds the configuration: defaults -> config file -> environment.
func Load() (*Config, error) {
	if err := loadEnv(); err != nil {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg := &Config{}
	setDefaults(cfg)

	if err := loadFromFile(cfg); err != nil {
		log.Printf("Warning: failed to load config file: %v", err)
	}

	loadFromEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadEnv loads .env style files for the current GO_ENV.
func loadEnv() error {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFiles := []string{
		".env",
		fmt.Sprintf(".env.%s", env),
		".env.local",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return err
			}
		}
	}
	return nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8801"
	cfg.Server.Mode = "debug"
	cfg.Server.ReadTimeout = 30 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.RateLimit = 1000

	cfg.Database.MaxIdleConns = 10
	cfg.Database.MaxOpenConns = 100
	cfg.Database.ConnMaxLifetime = time.Hour
	cfg.Database.LogLevel = "info"

	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.DB = 0
	cfg.Redis.PoolSize = 10
	cfg.Redis.DialTimeout = 5 * time.Second
	cfg.Redis.ReadTimeout = 3 * time.Second
	cfg.Redis.WriteTimeout = 3 * time.Second

	cfg.JWT.Expiry = 24 * time.Hour
	cfg.JWT.Issuer = "resto-go-pos"

	cfg.Upload.Dir = "uploads"
	cfg.Upload.MaxSizeMB = 10
	cfg.Upload.PublicBase = "/uploads"

	cfg.Log.RequestLogDir = "logs"
	cfg.Log.GormLogDir = "gormlog"
}

func loadFromFile(cfg *Config) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadFromEnv(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = db
		}
	}
	if signingKey := os.Getenv("JWT_SIGNING_KEY"); signingKey != "" {
		cfg.JWT.SigningKey = signingKey
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.Upload.Dir = dir
	}
}

func validate(cfg *Config) error {
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database DSN is required, set MYSQL_DSN or database.dsn")
	}
	if cfg.JWT.SigningKey == "" {
		return fmt.Errorf("JWT signing key is required, set JWT_SIGNING_KEY")
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.Server.Port, ":")); err != nil {
		return fmt.Errorf("invalid server port: %s", cfg.Server.Port)
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[cfg.Server.Mode] {
		return fmt.Errorf("invalid server mode: %s", cfg.Server.Mode)
	}
	return nil
}
