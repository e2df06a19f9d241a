package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// defaults matching the add-on options schema
const (
	DefaultListenAddr  = ":8099"
	DefaultDataDir     = "/data"
	DefaultHAConfigDir = "/config"
	DefaultPackagePath = "packages/lume_generated.yaml"
	DefaultDwell       = 300
	EntityPrefix       = "lume"
)

func InitialiseConfig() error {
	viper.SetConfigName("config")              // name of config file (without extension)
	viper.SetConfigType("json")                // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/lume/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/lume/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                   // optionally look for config in the working directory

	viper.SetDefault("listenAddr", DefaultListenAddr)
	viper.SetDefault("dataDir", DefaultDataDir)
	viper.SetDefault("haConfigDir", DefaultHAConfigDir)
	viper.SetDefault("packagePath", DefaultPackagePath)
	viper.SetDefault("dwellSeconds", DefaultDwell)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
