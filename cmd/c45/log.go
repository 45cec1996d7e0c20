package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

const (
	timeFormat   = "2006-01-02 15:04:05"
	defaultLevel = logrus.InfoLevel
	logFileName  = "c45.log"
)

// initLog sets up the logger from the log.level and log.path settings.
// Unknown levels fall back to info, and --verbose forces debug.
func (rc *rootCmdConfig) initLog() error {
	level, err := logrus.ParseLevel(rc.v.GetString("log.level"))
	if err != nil {
		level = defaultLevel
	}
	if rc.verbose {
		level = logrus.DebugLevel
	}
	rc.log.SetLevel(level)
	rc.log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
	})
	rc.log.SetOutput(os.Stderr)
	path := rc.v.GetString("log.path")
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating log directory %s: %v", path, err)
	}
	name := filepath.Join(path, logFileName)
	// one file per hour, kept for 30 days
	w, err := rotatelogs.New(
		name+".%Y%m%d%H",
		rotatelogs.WithLinkName(name),
		rotatelogs.WithMaxAge(720*time.Hour),
		rotatelogs.WithRotationTime(time.Hour),
	)
	if err != nil {
		return fmt.Errorf("opening rotated log at %s: %v", name, err)
	}
	rc.log.SetOutput(w)
	return nil
}
