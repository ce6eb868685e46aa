package config

import (
	"errors"
	"os"
	"path"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigName     = "config"
	ConfigType     = "yaml"
	ConfigFileName = ConfigName + "." + ConfigType
)

// Creates necessary directory and file if they do not exist
// Returns false if the file exists and true if the file does not exist
// If an error occurs, it returns false and the error
func createIfNotExists(directory string, fileName string, contents []byte) (bool, error) {
	err := os.MkdirAll(directory, 0755)
	if err != nil {
		return false, err
	}

	filePath := path.Join(directory, fileName)
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		err := os.WriteFile(filePath, contents, 0644)
		if err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func createFiles(directory string) error {
	config, err := DefaultConfig().Export()
	if err != nil {
		return err
	}

	created, err := createIfNotExists(directory, ConfigFileName, config)
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("path", path.Join(directory, ConfigFileName)).Msg("wrote default config")
	}

	return nil
}

// Init loads config.yaml from home, writing the defaults there first when the
// file is missing.
func Init(home string) (*Config, error) {
	directory := os.ExpandEnv(home)

	err := os.MkdirAll(directory, os.ModePerm)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	v.AddConfigPath(directory)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}

		if err := createFiles(directory); err != nil {
			return nil, err
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	config := DefaultConfig()

	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	log.Debug().
		Int64("port", config.APICfg.Port).
		Str("store_type", config.StoreCfg.Type).
		Str("store_path", config.StoreCfg.Path).
		Msg("treerelay config")

	return config, config.Validate()
}
