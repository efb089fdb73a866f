package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rhyrak/timetable-wizard/internal/scheduler"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"WIZARD_PORT"`
		Mode string `yaml:"mode" env:"WIZARD_MODE"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path" env:"WIZARD_DB"`
	} `yaml:"database"`

	Scheduler struct {
		TopK            int    `yaml:"top_k" env:"WIZARD_TOP_K"`
		MaxCombinations int64  `yaml:"max_combinations" env:"WIZARD_MAX_COMBINATIONS"`
		Timeout         string `yaml:"timeout" env:"WIZARD_TIMEOUT"`
	} `yaml:"scheduler"`

	Weights struct {
		Homework    float64 `yaml:"homework" env:"WIZARD_WEIGHT_HOMEWORK"`
		TeamProject float64 `yaml:"team_project" env:"WIZARD_WEIGHT_TEAM"`
		Grading     float64 `yaml:"grading" env:"WIZARD_WEIGHT_GRADING"`
	} `yaml:"weights"`

	Logging struct {
		Level  string `yaml:"level" env:"WIZARD_LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"WIZARD_LOG_PRETTY"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and env still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(config *Config) {
	def := scheduler.NewDefaultConfiguration()

	config.Server.Port = "3001"
	config.Server.Mode = "release"

	config.Database.Path = "db/wizard.db"

	config.Scheduler.TopK = def.TopK
	config.Scheduler.MaxCombinations = def.MaxCombinations
	config.Scheduler.Timeout = def.Timeout.String()

	config.Weights.Homework = def.HomeworkWeight
	config.Weights.TeamProject = def.TeamWeight
	config.Weights.Grading = def.GradingWeight

	config.Logging.Level = "info"
	config.Logging.Pretty = true
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("%w: server port is required", ErrInvalidConfig)
	}
	switch config.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server mode must be debug, release or test, got %q", ErrInvalidConfig, config.Server.Mode)
	}
	if config.Database.Path == "" {
		return fmt.Errorf("%w: database path is required", ErrInvalidConfig)
	}
	if config.Scheduler.TopK < 0 {
		return fmt.Errorf("%w: top_k must not be negative", ErrInvalidConfig)
	}
	if config.Scheduler.MaxCombinations < 0 {
		return fmt.Errorf("%w: max_combinations must not be negative", ErrInvalidConfig)
	}
	if _, err := time.ParseDuration(config.Scheduler.Timeout); err != nil {
		return fmt.Errorf("%w: timeout: %w", ErrInvalidConfig, err)
	}
	if err := config.PreferenceWeights().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) PreferenceWeights() preference.Weights {
	return preference.Weights{
		Homework:    c.Weights.Homework,
		TeamProject: c.Weights.TeamProject,
		Grading:     c.Weights.Grading,
	}
}

// SchedulerConfiguration converts the file/env settings into run parameters.
func (c *Config) SchedulerConfiguration() *scheduler.Configuration {
	cfg := scheduler.NewDefaultConfiguration()
	cfg.TopK = c.Scheduler.TopK
	cfg.MaxCombinations = c.Scheduler.MaxCombinations
	if d, err := time.ParseDuration(c.Scheduler.Timeout); err == nil {
		cfg.Timeout = d
	}
	cfg.HomeworkWeight = c.Weights.Homework
	cfg.TeamWeight = c.Weights.TeamProject
	cfg.GradingWeight = c.Weights.Grading
	return cfg
}
