package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Port            string        `yaml:"port" env:"PORT" env-default:"6969"`
	WebSocketPort   string        `yaml:"websocket-port" env:"WEBSOCKET_PORT" env-default:""`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:""`
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"READ_TIMEOUT" env-default:"10m"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	Redis           Redis         `yaml:"redis" env-prefix:"REDIS_"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"6379"`
	Password string `yaml:"password" env:"PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"DB" env-default:"0"`
}

// Load - reads the config file at path when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
