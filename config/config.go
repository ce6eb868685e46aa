package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

const (
	OptFile   = "file"
	OptBadger = "badger"
)

func (c Config) Validate() error {
	if c.APICfg.Port <= 0 || c.APICfg.Port > 65535 {
		return fmt.Errorf("invalid api port %d", c.APICfg.Port)
	}

	switch c.StoreCfg.Type {
	case OptFile, OptBadger:
	default:
		return fmt.Errorf("invalid store type %q", c.StoreCfg.Type)
	}

	if c.StoreCfg.Path == "" {
		return errors.New("invalid store path")
	}

	if c.FreshnessSeconds <= 0 {
		return errors.New("freshness_seconds must be positive")
	}

	if c.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}

	return nil
}

// Freshness is how recent the last sync must be to count as connected.
func (c Config) Freshness() time.Duration {
	return time.Duration(c.FreshnessSeconds) * time.Second
}

// StorePath resolves the store path against home.
func (c Config) StorePath(home string) string {
	p := os.ExpandEnv(c.StoreCfg.Path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(os.ExpandEnv(home), p)
}

// ReadConfig parses yaml data on top of the defaults.
// Error during parsing or an invalid configuration in the Config will return an error.
func ReadConfig(data []byte) (*Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, config.Validate()
}

// Export converts the config to yaml format
func (c Config) Export() ([]byte, error) {
	sb := strings.Builder{}
	sb.WriteString("########################\n")
	sb.WriteString("### treerelay Config ###\n")
	sb.WriteString("########################\n\n")

	d, err := yaml.Marshal(&c)
	if err != nil {
		return nil, err
	}

	sb.Write(d)

	sb.WriteString("\n########################\n")

	return []byte(sb.String()), nil
}
