package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// Root config keys
	vLogLevel  = "log_level"
	vLogFormat = "log_format"
	vNoColor   = "no_color"
)

// newViper reads the optional config file and the DEPSORT_* environment.
// A missing config file is not an error.
func newViper() (*viper.Viper, error) {
	v := viper.New()

	// Specify an alternate config file
	if cfgFile := os.Getenv("DEPSORT_CONFIG"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search config paths in the current directory and $HOME/.depsort.
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.depsort")
		v.SetConfigName("depsort-config")
	}

	// E.g. DEPSORT_LOG_LEVEL=debug
	v.SetEnvPrefix("depsort")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(vLogLevel, "info")
	v.SetDefault(vLogFormat, "console")
	v.SetDefault(vNoColor, false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return v, fmt.Errorf("loading config file: %w", err)
		}
	}

	return v, nil
}
