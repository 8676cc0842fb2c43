package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultAccessTokenTTL  = 120 * time.Minute
	defaultRefreshTokenTTL = 24 * 30 * 2 * time.Hour
	defaultResetCodeTTL    = 10 * time.Minute
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	JWT struct {
		SigningKey      string        `yaml:"signing_key"`
		AccessTokenTTL  time.Duration `yaml:"-"`
		RefreshTokenTTL time.Duration `yaml:"-"`
	} `yaml:"jwt"`
	Google struct {
		ClientID string `yaml:"client_id"`
	} `yaml:"google"`
	Mail struct {
		Endpoint string `yaml:"endpoint"`
		APIKey   string `yaml:"api_key"`
		From     string `yaml:"from"`
	} `yaml:"mail"`
	Firebase struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"firebase"`
	ResetCodeTTL time.Duration `yaml:"-"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: failed to read config file %s: %v", path, err)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	cfg.JWT.AccessTokenTTL = defaultAccessTokenTTL
	cfg.JWT.RefreshTokenTTL = defaultRefreshTokenTTL
	cfg.ResetCodeTTL = defaultResetCodeTTL

	applyEnvOverrides(&cfg)

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SIGNING_KEY"); v != "" {
		cfg.JWT.SigningKey = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.Google.ClientID = v
	}
	if v := os.Getenv("MAIL_ENDPOINT"); v != "" {
		cfg.Mail.Endpoint = v
	}
	if v := os.Getenv("MAIL_API_KEY"); v != "" {
		cfg.Mail.APIKey = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		cfg.Mail.From = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_FILE"); v != "" {
		cfg.Firebase.CredentialsFile = v
	}
	if v := os.Getenv("RESET_CODE_TTL_MINUTES"); v != "" {
		mins, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("parse RESET_CODE_TTL_MINUTES: %v", err)
		}
		cfg.ResetCodeTTL = time.Duration(mins) * time.Minute
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		mins, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("parse ACCESS_TOKEN_TTL_MINUTES: %v", err)
		}
		cfg.JWT.AccessTokenTTL = time.Duration(mins) * time.Minute
	}
}
