package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/c45"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootConfig() *rootCmdConfig {
	return &rootCmdConfig{v: newViper(), log: logrus.New()}
}

func TestStoppingStrategyDefaults(t *testing.T) {
	ss, err := newRootConfig().stoppingStrategy()
	require.NoError(t, err)
	assert.Equal(t, c45.DefaultStoppingStrategy(), ss)
}

func TestStoppingStrategyFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c45.yml")
	require.NoError(t, os.WriteFile(path, []byte("grow:\n  max-depth: 4\n  min-samples: 3\n"), 0644))
	rc := newRootConfig()
	rc.configFile = path
	require.NoError(t, rc.loadConfig())
	ss, err := rc.stoppingStrategy()
	require.NoError(t, err)
	assert.Equal(t, 4, ss.MaxDepth)
	assert.Equal(t, 3, ss.MinimumSamples)

	rc.v.Set("grow.max-depth", -1)
	_, err = rc.stoppingStrategy()
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	rc := newRootConfig()
	rc.configFile = filepath.Join(t.TempDir(), "missing.yml")
	assert.Error(t, rc.loadConfig())
}

func TestInitLog(t *testing.T) {
	rc := newRootConfig()
	rc.v.Set("log.level", "bogus")
	require.NoError(t, rc.initLog())
	assert.Equal(t, logrus.InfoLevel, rc.log.GetLevel())

	rc.v.Set("log.level", "warn")
	require.NoError(t, rc.initLog())
	assert.Equal(t, logrus.WarnLevel, rc.log.GetLevel())

	rc.verbose = true
	require.NoError(t, rc.initLog())
	assert.Equal(t, logrus.DebugLevel, rc.log.GetLevel())

	rc.v.Set("log.path", filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, rc.initLog())
	rc.log.Info("rotated")
	_, err := os.Stat(filepath.Join(rc.v.GetString("log.path"), logFileName))
	assert.NoError(t, err)
}

func TestStartProfileRejectsUnknownKinds(t *testing.T) {
	rc := newRootConfig()
	rc.profile = "disk"
	assert.Equal(t, errUnknownProfile("disk"), rc.startProfile())
	rc.profile = ""
	assert.NoError(t, rc.startProfile())
	rc.stopProfile()
}
