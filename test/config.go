package test

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// TEST_WAIT_TIMEOUT bounds how long a peer waits for a single event
	WaitTimeout time.Duration `envconfig:"TEST_WAIT_TIMEOUT" default:"5s"`
	// TEST_DEBUG_FRAMES dumps every received frame for scenario debugging
	DebugFrames bool `envconfig:"TEST_DEBUG_FRAMES" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
