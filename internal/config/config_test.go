package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	t.Setenv("DATA_DIR", "/tmp/crowdfund-data")
	t.Setenv("LOG_LVL", "debug")

	os.Args = []string{
		"cmd",
		"-d", "/var/lib/crowdfund",
		"-l", "error",
	}
	cfg := New()

	assert.Equal(t, "/var/lib/crowdfund", cfg.DataDir)
	assert.Equal(t, "error", cfg.LogLvl)
}

func TestNewEnvOnly(t *testing.T) {
	resetFlagsAndArgs()
	t.Setenv("DATA_DIR", "/tmp/crowdfund-data")
	t.Setenv("LOG_LVL", "debug")

	cfg := New()

	assert.Equal(t, "/tmp/crowdfund-data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLvl)
}
