package config

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/i474232898/tennis-dashboard/internal/tennis"
)

// envPrefix is prepended to every variable name, e.g. TENNIS_PORT.
const envPrefix = "TENNIS"

type AppConfig struct {
	// DataFilePath is the CSV file holding the tennis records.
	DataFilePath string `envconfig:"DATA_FILE_PATH" default:"Sample_Data/tennis.csv" validate:"required"`

	Host string `envconfig:"HOST" default:"127.0.0.1" validate:"required"`
	Port string `envconfig:"PORT" default:"8050" validate:"required,numeric"`

	// Debug enables template reloading on every request.
	Debug bool `envconfig:"DEBUG" default:"true"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
}

// Addr returns the host:port the dashboard listens on.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ErrorType categorizes configuration failures.
type ErrorType string

const (
	ErrParsing    ErrorType = "PARSING_FAILED"
	ErrValidation ErrorType = "VALIDATION_FAILED"
)

// ConfigError wraps a failure to load the configuration.
type ConfigError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads configuration from the environment (and a .env file when
// present) with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return &cfg, nil
}

// DefaultTypeMap returns the column types of the tennis table. The map is
// fixed; it is not read from the environment.
func DefaultTypeMap() tennis.TypeMap {
	return tennis.TypeMap{
		tennis.ColPlayTime:    tennis.TypeString,
		tennis.ColOutlook:     tennis.TypeString,
		tennis.ColTemp:        tennis.TypeString,
		tennis.ColHumidity:    tennis.TypeString,
		tennis.ColWindy:       tennis.TypeString,
		tennis.ColPlay:        tennis.TypeString,
		tennis.ColTemperature: tennis.TypeInt,
	}
}
