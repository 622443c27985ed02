package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      *Appconfig      `yaml:"app"`
	DB       *DBconfig       `yaml:"db"`
	RabbitMq *RabbitMqconfig `yaml:"rabbitmq"`
	Routing  *Routingconfig  `yaml:"routing"`
	Srv      *Serviceconfig  `yaml:"service"`
	Log      *Loggerconfig   `yaml:"logger"`
}

type Appconfig struct {
	JwtSecret string `yaml:"jwt_secret"`
}

type DBconfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Database   string `yaml:"database"`
	MaxRetries int    `yaml:"max_retries"`
}

type RabbitMqconfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type Routingconfig struct {
	BaseURL string `yaml:"base_url"`
	Profile string `yaml:"profile"`
}

type Serviceconfig struct {
	DashboardServicePort string `yaml:"dashboard_service"`
}

type Loggerconfig struct {
	Level string `yaml:"level"`
}

func New() (*Config, error) {
	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			return def
		}
		return val
	}

	getEnvBool := func(key string, def bool) bool {
		valStr := os.Getenv(key)
		if valStr == "" {
			return def
		}
		val, err := strconv.ParseBool(valStr)
		if err != nil {
			return def
		}
		return val
	}

	cnf := &Config{
		App: &Appconfig{
			JwtSecret: getEnv("JWT_SECRET", "dev-only-secret"),
		},
		DB: &DBconfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "deliverytrack_user"),
			Password:   getEnv("DB_PASSWORD", "deliverytrack_pass"),
			Database:   getEnv("DB_NAME", "deliverytrack_db"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
		},
		RabbitMq: &RabbitMqconfig{
			Enabled:  getEnvBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		},
		Routing: &Routingconfig{
			BaseURL: getEnv("ROUTING_BASE_URL", "https://router.project-osrm.org"),
			Profile: getEnv("ROUTING_PROFILE", "driving"),
		},
		Srv: &Serviceconfig{
			DashboardServicePort: getEnv("DASHBOARD_SERVICE_PORT", "4000"),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	return cnf, nil
}

// NewFromYAML loads env defaults first, then overlays the values present in
// the given YAML file, so a config file never has to repeat every section.
func NewFromYAML(path string) (*Config, error) {
	cnf, err := New()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cnf); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cnf, nil
}
