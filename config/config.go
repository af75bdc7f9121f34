package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var Conf = config{}

type config struct {
	Filter     FilterConfig     `mapstructure:"filter" yaml:"filter"`
	HTTPServer HTTPServerConfig `mapstructure:"httpserver" yaml:"httpserver"`
}

type FilterConfig struct {
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
	LogPath string `mapstructure:"log-path" yaml:"log-path"`
}

type HTTPServerConfig struct {
	Host   string `mapstructure:"host" yaml:"host"`
	Port   int    `mapstructure:"port" yaml:"port"`
	APIKey string `mapstructure:"apikey" yaml:"apikey"`
}

// SetupConfig loads the optional YAML configuration file. The stdin filter
// surface works with no file at all, so an empty path only applies defaults.
// Environment variables are never consulted.
func SetupConfig(configFile string) {
	viper.SetDefault("httpserver.host", "127.0.0.1")
	viper.SetDefault("httpserver.port", 8088)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("failed to read configuration file: %v", err))
		}
		logrus.Infof("read configuration file %s successfully", configFile)
	}

	// load config info to global Conf variable
	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("failed to unmarshal configuration file %v", err))
	}
}
