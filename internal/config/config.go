package config

import (
	"time"

	"github.com/pathfound/projectzero/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Server     ServerConfig        `mapstructure:"server"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
	Demo       DemoConfig          `mapstructure:"demo"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=0,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// PaginationConfig bounds the page sizes clients may request.
type PaginationConfig struct {
	DefaultSize int           `mapstructure:"default_size" validate:"min=1"`
	MaxSize     int           `mapstructure:"max_size" validate:"gtefield=DefaultSize"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// DemoConfig is the in-memory catalog served by the demo listings.
type DemoConfig struct {
	Names []string `mapstructure:"names"`
}
