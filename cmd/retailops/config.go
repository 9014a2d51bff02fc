// Config loading for the retailops CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

const (
	configName = ".retailops"
	configType = "yaml"

	cfgKeyDBPath      = "db_path"
	cfgKeyBusyTimeout = "busy_timeout_ms"

	defaultDBPath = "retailops.db"
)

// loadConfig reads the optional config file with Viper. Precedence:
// explicit --config file, then ./.retailops.yaml, then defaults. A missing
// config file is not an error.
func loadConfig(configFile string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDBPath, defaultDBPath)
	v.SetDefault(cfgKeyBusyTimeout, types.DefaultBusyTimeoutMS)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configFile == "" {
			return configFromViper(v), nil
		}
		return types.Config{}, fmt.Errorf("read config: %w", err)
	}

	return configFromViper(v), nil
}

func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		DBPath:        v.GetString(cfgKeyDBPath),
		BusyTimeoutMS: v.GetInt(cfgKeyBusyTimeout),
	}
}
