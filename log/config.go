package log

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of a log config file
//
//	level: debug
//	filter: "debug:processing.* info+:*"
type Config struct {
	Level  string `yaml:"level"`
	Filter string `yaml:"filter"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid log config: %w", err)
	}
	return &cfg, nil
}

// Apply adjusts level and filter of l according to cfg.
// The returned logger may be a new instance.
func (cfg *Config) Apply(l *Logger) (*Logger, error) {
	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		l.SetLevel(level)
	}
	if cfg.Filter == "" {
		return l, nil
	}
	return l.WithFilter(cfg.Filter)
}
