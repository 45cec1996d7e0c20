package main

import (
	"fmt"
	"strings"

	"github.com/pbanos/c45"
	"github.com/pbanos/c45/dataset/sqldataset"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "C45"

type errUnknownProfile string

func (e errUnknownProfile) Error() string {
	return fmt.Sprintf("unknown profile %q, expected cpu or mem", string(e))
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("grow.max-depth", c45.DefaultMaxDepth)
	v.SetDefault("grow.min-samples", c45.DefaultMinimumSamples)
	v.SetDefault("grow.trace", true)
	v.SetDefault("input.table", sqldataset.DefaultTable)
	return v
}

// loadConfig reads the configuration file, when one was given. Flags set on
// the command line take precedence over it, and it over the defaults.
func (rc *rootCmdConfig) loadConfig() error {
	if rc.configFile == "" {
		return nil
	}
	rc.v.SetConfigFile(rc.configFile)
	if err := rc.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading configuration file %s: %v", rc.configFile, err)
	}
	return nil
}

// stoppingStrategy returns the stopping strategy configured for growing trees.
func (rc *rootCmdConfig) stoppingStrategy() (*c45.StoppingStrategy, error) {
	ss := c45.DefaultStoppingStrategy()
	ss.MaxDepth = rc.v.GetInt("grow.max-depth")
	ss.MinimumSamples = rc.v.GetInt("grow.min-samples")
	if ss.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", ss.MaxDepth)
	}
	if ss.MinimumSamples < 0 {
		return nil, fmt.Errorf("min samples must not be negative, got %d", ss.MinimumSamples)
	}
	return ss, nil
}

// bindFlags binds every configuration key in keys to the flag of flags named
// after its value.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if f := flags.Lookup(name); f != nil {
			v.BindPFlag(key, f)
		}
	}
}
