package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Feed struct {
	DocURL string `mapstructure:"doc_url"`
}

type Scheduler struct {
	UpdateIntervalHours int    `mapstructure:"update_interval_hours"`
	LockFile            string `mapstructure:"lock_file"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Feed       Feed       `mapstructure:"feed"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional, real deployments pass env vars directly
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("scheduler.update_interval_hours", 24)
	viper.SetDefault("scheduler.lock_file", ".scheduler.lock")
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// feed env vars
	_ = viper.BindEnv("feed.doc_url", "RATES_DOC_URL")

	// scheduler env vars
	_ = viper.BindEnv("scheduler.update_interval_hours", "SCHEDULER_UPDATE_INTERVAL_HOURS")
	_ = viper.BindEnv("scheduler.lock_file", "SCHEDULER_LOCK_FILE")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
