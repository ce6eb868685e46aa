package config

const (
	DefaultPort         = 21326
	DefaultMaxBodyBytes = 10 * 1024 * 1024
	DefaultDataFile     = "tree-data.json"
)

type Config struct {
	APICfg           APIConfig   `yaml:"api_config" mapstructure:"api_config"`
	StoreCfg         StoreConfig `yaml:"store" mapstructure:"store"`
	FreshnessSeconds int64       `yaml:"freshness_seconds" mapstructure:"freshness_seconds"`
	MaxBodyBytes     int64       `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	PProfAddr        string      `yaml:"pprof_addr" mapstructure:"pprof_addr"`
}

type APIConfig struct {
	Port    int64 `yaml:"port" mapstructure:"port"`
	Metrics bool  `yaml:"metrics" mapstructure:"metrics"`
}

// StoreConfig selects where the snapshot is persisted. For "file" the path is
// the JSON file, for "badger" it is the database directory. Relative paths
// resolve against the home directory.
type StoreConfig struct {
	Type string `yaml:"type" mapstructure:"type"`
	Path string `yaml:"path" mapstructure:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		APICfg: APIConfig{
			Port:    DefaultPort,
			Metrics: true,
		},
		StoreCfg: StoreConfig{
			Type: OptFile,
			Path: DefaultDataFile,
		},
		FreshnessSeconds: 30,
		MaxBodyBytes:     DefaultMaxBodyBytes,
		PProfAddr:        "",
	}
}
