package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the snapshot lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .taskcal config file and the TASKCAL
// environment, falling back to ~/.taskcal.db for the snapshot path.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.taskcal.db")
	viper.SetConfigName(".taskcal") // .yaml is implicit
	viper.SetEnvPrefix("TASKCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("TASKCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
