// Package conf contains utility functions for loading and parsing configuration files.
package conf

import (
	"os"

	"github.com/spf13/viper"
)

// PostgresConf describes a default configuration for the postgres database.
type PostgresConf struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSL      string `mapstructure:"ssl"`
}

// RedisConf describes a default configuration for the redis.
type RedisConf struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	Database   int    `mapstructure:"database"`
	DisableTLS bool   `mapstructure:"disable_tls"`
}

// AddrConf describes a host and port a server binds to.
type AddrConf struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// APNSConf describes the credentials used for apple push notifications.
type APNSConf struct {
	Path  string `mapstructure:"path"`
	KeyID string `mapstructure:"key"`
	Team  string `mapstructure:"team"`
	Topic string `mapstructure:"topic"`
}

// Load opens and parses a configuration file.
func Load(file string, conf interface{}) error {
	_, err := os.Stat(file)
	if err != nil {
		return err
	}

	viper.SetConfigFile(file)
	viper.SetConfigType("toml")

	err = viper.ReadInConfig()
	if err != nil {
		return err
	}

	err = viper.GetViper().Unmarshal(conf)
	if err != nil {
		return err
	}

	return nil
}
