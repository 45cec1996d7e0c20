package main

import (
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	configFile string
	verbose    bool
	profile    string
	v          *viper.Viper
	log        *logrus.Logger
	stopper    interface{ Stop() }
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: newViper(), log: logrus.New()}
	rootCmd := &cobra.Command{
		Use:   "c45",
		Short: "c45 is a tool to grow C4.5 decision trees",
		Long:  `A tool to grow binary decision trees from delimited files or SQL tables with numeric attributes and an integer Y column, and to test them`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.loadConfig(); err != nil {
				return err
			}
			if err := config.initLog(); err != nil {
				return err
			}
			return config.startProfile()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.stopProfile()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&(config.configFile), "config", "", "path to a configuration file (yaml, toml or json)")
	flags.BoolVarP(&(config.verbose), "verbose", "v", false, "log debug messages")
	flags.String("log-level", "info", "level of the logged messages: debug, info, warn or error")
	flags.String("log-path", "", "directory to write hourly rotated log files to (defaults to STDERR)")
	flags.StringVar(&(config.profile), "profile", "", "write a profile of the run to the working directory: cpu or mem")
	bindFlags(config.v, flags, map[string]string{
		"log.level": "log-level",
		"log.path":  "log-path",
	})
	rootCmd.AddCommand(versionCmd(), growCmd(config), columnsCmd(config), testCmd(config), predictCmd(config), setCmd(config))
	return rootCmd
}

func (rc *rootCmdConfig) startProfile() error {
	switch rc.profile {
	case "":
		return nil
	case "cpu":
		rc.stopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		rc.stopper = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return errUnknownProfile(rc.profile)
	}
	rc.log.WithField("profile", rc.profile).Debug("profiling enabled")
	return nil
}

func (rc *rootCmdConfig) stopProfile() {
	if rc.stopper != nil {
		rc.stopper.Stop()
	}
}
