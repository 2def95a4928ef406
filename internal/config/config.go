package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// FollowGroup names a bridge group whose colour temperature prismd keeps
// aligned with the circadian suggestion.
type FollowGroup struct {
	GroupID    string `mapstructure:"groupId"`
	Brightness int    `mapstructure:"brightness"`
}

type Config struct {
	BridgeIP        string        `mapstructure:"bridgeIp"`
	BridgeAppKey    string        `mapstructure:"bridgeApplicationKey"`
	GeoLocation     string        `mapstructure:"geoLocation"`
	DatabasePath    string        `mapstructure:"databasePath"`
	CircadianGroups []FollowGroup `mapstructure:"circadianGroups"`
}

func InitialiseConfig() {
	viper.SetConfigName("config")               // name of config file (without extension)
	viper.SetConfigType("json")                 // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/prism/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/prism/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                    // optionally look for config in the working directory
	viper.SetDefault("databasePath", "prism.db")
	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		log.Error(err)
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
}

func ReadConfig() *Config {
	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		log.Error(err)
		panic(fmt.Errorf("fatal error parsing config: %w", err))
	}
	return &config
}
